package svglayout

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/cutsheet/cutsheet/svgfilter"
	"github.com/cutsheet/cutsheet/svglabel"
	"github.com/cutsheet/cutsheet/svgtree"
	"github.com/cutsheet/cutsheet/svgunit"
)

// Scene is the master layout: a physical canvas and the components
// placed on it, in z-order.
type Scene struct {
	width, height float64 // mm
	components    []Component
}

// NewScene returns an empty scene with the given canvas size in
// millimeters.
func NewScene(widthMm, heightMm float64) *Scene {
	return &Scene{width: widthMm, height: heightMm}
}

// Place adds a posed component on top of the already placed ones.
func (s *Scene) Place(c Component) {
	s.components = append(s.components, c)
}

// Width returns the canvas width in millimeters.
func (s *Scene) Width() float64 { return s.width }

// Height returns the canvas height in millimeters.
func (s *Scene) Height() float64 { return s.height }

// Components returns the placed components in z-order.
func (s *Scene) Components() []Component {
	return append([]Component(nil), s.components...)
}

// Build assembles the unfiltered master document: an svg element
// sized in millimeters, with a pixel-space viewBox, containing every
// placed component's rendered group.
func (s *Scene) Build() *svgtree.Node {
	rendered := lo.Map(s.components, func(c Component, _ int) *svgtree.Node {
		return c.Render()
	})
	return svgtree.NewElement(svgtree.SVGNamespace, "svg").
		WithAttr("", "width", fmt.Sprintf("%smm", fmtPx(s.width))).
		WithAttr("", "height", fmt.Sprintf("%smm", fmtPx(s.height))).
		WithAttr("", "viewBox", fmt.Sprintf("0 0 %s %s",
			fmtPx(svgunit.MmToPx(s.width)), fmtPx(svgunit.MmToPx(s.height)))).
		WithChildren(rendered)
}

// Outputs produces one document per requested layer: the master tree
// is tag-filtered once against the run's variant selections, then
// layer-filtered once per layer. The per-layer calls are independent
// of each other. A layer whose whole tree is filtered away maps to
// nil.
func (s *Scene) Outputs(ctx svglabel.TagContext, layers []int, mode svglabel.ErrorMode) (map[int]*svgtree.Node, error) {
	tagged, err := svgfilter.Filter(s.Build(), svgfilter.MatchTags(ctx), mode)
	if err != nil {
		return nil, err
	}
	outputs := make(map[int]*svgtree.Node, len(layers))
	for _, layer := range layers {
		if tagged == nil {
			outputs[layer] = nil
			continue
		}
		tree, err := svgfilter.Filter(tagged, svgfilter.MatchLayer(layer), mode)
		if err != nil {
			return nil, fmt.Errorf("layer %d: %w", layer, err)
		}
		outputs[layer] = tree
	}
	return outputs, nil
}
