package svgproof

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cutsheet/cutsheet/svglayout"
	"github.com/cutsheet/cutsheet/svgtree"
)

func TestWriteFile(t *testing.T) {
	doc := &svgtree.Document{
		Root:   svgtree.NewElement(svgtree.SVGNamespace, "svg"),
		Width:  "50mm",
		Height: "30mm",
	}
	c, err := svglayout.FromDocument(doc)
	require.NoError(t, err)

	scene := svglayout.NewScene(300, 200)
	scene.Place(c.Translated(10, 10))
	scene.Place(c.Translated(100, 50).Rotated(30))

	path := filepath.Join(t.TempDir(), "proof.pdf")
	require.NoError(t, WriteFile(path, scene))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NotEmpty(t, raw)
	assert.Equal(t, "%PDF", string(raw[:4]))
}

func TestCornersRotation(t *testing.T) {
	doc := &svgtree.Document{
		Root:   svgtree.NewElement(svgtree.SVGNamespace, "svg"),
		Width:  "20mm",
		Height: "10mm",
	}
	c, err := svglayout.FromDocument(doc)
	require.NoError(t, err)

	// A 90 degree turn swaps the box's extents about its center.
	box := corners(c.Rotated(90))
	cx, cy := 10*ptPerMm, 5*ptPerMm
	assert.InDelta(t, cx+5*ptPerMm, box[0][0], 1e-9)
	assert.InDelta(t, cy-10*ptPerMm, box[0][1], 1e-9)
}
