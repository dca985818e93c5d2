package svglayout

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cutsheet/cutsheet/svgtree"
	"github.com/cutsheet/cutsheet/svgunit"
)

func testComponent(t *testing.T, width, height string) Component {
	t.Helper()
	doc := &svgtree.Document{
		Root:   svgtree.NewElement(svgtree.SVGNamespace, "svg"),
		Width:  width,
		Height: height,
	}
	c, err := FromDocument(doc)
	require.NoError(t, err)
	return c
}

func TestFromDocument(t *testing.T) {
	c := testComponent(t, "50.8mm", "1in")
	assert.InDelta(t, 50.8, c.Width(), 1e-9)
	assert.InDelta(t, 25.4, c.Height(), 1e-9)
	assert.Zero(t, c.X())
	assert.Zero(t, c.Y())
	assert.Zero(t, c.Rotation())
}

func TestFromDocumentBadSize(t *testing.T) {
	doc := &svgtree.Document{
		Root:   svgtree.NewElement(svgtree.SVGNamespace, "svg"),
		Width:  "5cm",
		Height: "10mm",
	}
	_, err := FromDocument(doc)
	var invalid svgunit.InvalidUnitError
	require.ErrorAs(t, err, &invalid)
}

func TestPoseAccumulation(t *testing.T) {
	c := testComponent(t, "10mm", "10mm")

	chained := c.Translated(1, 2).Translated(3, 4)
	direct := c.Translated(4, 6)
	assert.Equal(t, direct, chained)

	assert.Equal(t, c.Rotated(120), c.Rotated(30).Rotated(90))

	// The base component is unchanged, ready for more copies.
	assert.Zero(t, c.X())
	assert.Zero(t, c.Rotation())
}

func TestPoseOrderDoesNotMatter(t *testing.T) {
	c := testComponent(t, "20mm", "10mm")
	a := c.Translated(5, 7).Rotated(90)
	b := c.Rotated(90).Translated(5, 7)
	assert.Equal(t, a, b)
	assert.Equal(t, a.Render(), b.Render())
}

func transformOf(t *testing.T, c Component) string {
	t.Helper()
	g := c.Render()
	v, _ := g.Attr("", "transform")
	return v
}

func TestRenderTransform(t *testing.T) {
	// 25.4mm x 12.7mm -> 96px x 48px, center at (48,24).
	c := testComponent(t, "25.4mm", "12.7mm")

	assert.Equal(t, "", transformOf(t, c))

	assert.Equal(t, "translate(96,48)",
		transformOf(t, c.Translated(25.4, 12.7)))

	assert.Equal(t, "translate(48,24) rotate(90) translate(-48,-24)",
		transformOf(t, c.Rotated(90)))

	assert.Equal(t,
		"translate(96,48) translate(48,24) rotate(90) translate(-48,-24)",
		transformOf(t, c.Translated(25.4, 12.7).Rotated(90)))
}

func TestRenderTransformOmitsZeroParts(t *testing.T) {
	c := testComponent(t, "10mm", "10mm")

	// A rotation that cancels out leaves only the translation.
	tr := transformOf(t, c.Rotated(45).Rotated(-45).Translated(25.4, 0))
	assert.Equal(t, "translate(96,0)", tr)
	assert.NotContains(t, tr, "rotate")
}

func TestRenderWrapsFragmentUnmodified(t *testing.T) {
	fragment := svgtree.NewElement(svgtree.SVGNamespace, "svg").
		WithChildren([]*svgtree.Node{svgtree.NewElement(svgtree.SVGNamespace, "rect")})
	doc := &svgtree.Document{Root: fragment, Width: "10mm", Height: "10mm"}
	c, err := FromDocument(doc)
	require.NoError(t, err)

	g := c.Translated(1, 1).Render()
	assert.Equal(t, "g", g.Name.Local)
	require.Len(t, g.Children, 1)
	// Same tree value, not a copy.
	assert.Same(t, fragment, g.Children[0])
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("testdata/parts/no-such-part.svg")
	require.Error(t, err)
	assert.True(t, os.IsNotExist(err))
}
