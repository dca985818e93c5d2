// Package svglayout places reusable SVG fragments on a physical
// sheet. A component wraps a fragment with its declared size and a
// pose (position in millimeters, rotation in degrees); a scene
// collects placed components and produces the per-layer output
// documents used for cutting.
package svglayout

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cutsheet/cutsheet/svgtree"
	"github.com/cutsheet/cutsheet/svgunit"
)

// Component is an immutable placed fragment. The fragment tree is
// shared, never copied or mutated; the pose operations return new
// values, so one loaded component can be placed several times.
type Component struct {
	fragment      *svgtree.Node
	width, height float64 // mm, fixed at construction
	x, y          float64 // mm
	rotation      float64 // degrees
}

// FromDocument wraps a loaded document as a component at pose
// (0,0,0). The physical size comes from the document's declared
// width/height attributes.
func FromDocument(doc *svgtree.Document) (Component, error) {
	w, err := svgunit.ParseLength(doc.Width)
	if err != nil {
		return Component{}, fmt.Errorf("component width: %w", err)
	}
	h, err := svgunit.ParseLength(doc.Height)
	if err != nil {
		return Component{}, fmt.Errorf("component height: %w", err)
	}
	return Component{fragment: doc.Root, width: w, height: h}, nil
}

// Load reads the fragment from the named SVG file.
func Load(path string) (Component, error) {
	doc, err := svgtree.ReadDocument(path)
	if err != nil {
		return Component{}, err
	}
	c, err := FromDocument(doc)
	if err != nil {
		return Component{}, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Translated returns a copy moved by (dx, dy) millimeters.
func (c Component) Translated(dx, dy float64) Component {
	c.x += dx
	c.y += dy
	return c
}

// Rotated returns a copy turned by the given angle in degrees.
//
// Translation and rotation accumulate into two independent totals:
// the rendered placement always rotates about the component's own
// center first and translates second, so the order of Translated and
// Rotated calls never changes the result.
func (c Component) Rotated(degrees float64) Component {
	c.rotation += degrees
	return c
}

// Width returns the physical width in millimeters.
func (c Component) Width() float64 { return c.width }

// Height returns the physical height in millimeters.
func (c Component) Height() float64 { return c.height }

// X returns the accumulated horizontal offset in millimeters.
func (c Component) X() float64 { return c.x }

// Y returns the accumulated vertical offset in millimeters.
func (c Component) Y() float64 { return c.y }

// Rotation returns the accumulated rotation in degrees.
func (c Component) Rotation() float64 { return c.rotation }

// Render wraps the fragment, unmodified, in a group node whose
// transform applies the pose in pixel space: rotation about the
// fragment center, then translation. Each part is omitted when zero,
// keeping the attribute minimal; with a zero pose the group carries
// no transform at all.
func (c Component) Render() *svgtree.Node {
	group := svgtree.NewElement(svgtree.SVGNamespace, "g").
		WithChildren([]*svgtree.Node{c.fragment})
	if transform := c.transform(); transform != "" {
		group = group.WithAttr("", "transform", transform)
	}
	return group
}

func (c Component) transform() string {
	var parts []string
	if c.x != 0 || c.y != 0 {
		parts = append(parts, fmt.Sprintf("translate(%s,%s)",
			fmtPx(svgunit.MmToPx(c.x)), fmtPx(svgunit.MmToPx(c.y))))
	}
	if c.rotation != 0 {
		cx := svgunit.MmToPx(c.width) / 2
		cy := svgunit.MmToPx(c.height) / 2
		parts = append(parts,
			fmt.Sprintf("translate(%s,%s)", fmtPx(cx), fmtPx(cy)),
			fmt.Sprintf("rotate(%s)", fmtPx(c.rotation)),
			fmt.Sprintf("translate(%s,%s)", fmtPx(-cx), fmtPx(-cy)))
	}
	return strings.Join(parts, " ")
}

func fmtPx(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
