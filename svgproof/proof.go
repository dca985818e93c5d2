// Package svgproof writes a PDF proof sheet of a scene: the sheet
// outline and every component's rotated bounding box, scaled to fit
// an A4 page. It gives a printable sanity check of the placement
// before any material is cut.
package svgproof

import (
	"math"

	"github.com/benoitkugler/pdf/contentstream"
	"github.com/benoitkugler/pdf/model"

	"github.com/cutsheet/cutsheet/svglayout"
)

const (
	pageWidth  = 595.28 // A4, in points
	pageHeight = 841.89
	margin     = 42.52 // 15mm
	ptPerMm    = 72 / 25.4
)

// WriteFile renders the proof sheet for the scene into the named
// PDF file.
func WriteFile(path string, scene *svglayout.Scene) error {
	pdf := contentstream.NewAppearance(pageWidth, pageHeight)

	sheetW := scene.Width() * ptPerMm
	sheetH := scene.Height() * ptPerMm
	scale := math.Min((pageWidth-2*margin)/sheetW, (pageHeight-2*margin)/sheetH)

	pdf.Ops(
		contentstream.OpSave{},
		// PDF y grows upward; flip so the scene reads top-down like
		// the SVG output.
		contentstream.OpConcat{Matrix: model.Matrix{1, 0, 0, -1, 0, pageHeight}},
		contentstream.OpConcat{Matrix: model.Matrix{scale, 0, 0, scale, margin, margin}},
		contentstream.OpSetLineWidth{W: 0.3 * ptPerMm / scale},
	)

	strokeRect(&pdf, [4][2]float64{
		{0, 0}, {sheetW, 0}, {sheetW, sheetH}, {0, sheetH},
	})
	for _, c := range scene.Components() {
		strokeRect(&pdf, corners(c))
	}
	pdf.Ops(contentstream.OpRestore{})

	var doc model.Document
	var page model.PageObject
	pdf.ApplyToPageObject(&page, true)
	doc.Catalog.Pages.Kids = append(doc.Catalog.Pages.Kids, &page)
	return doc.WriteFile(path, nil)
}

// corners returns the component's bounding box in points, rotated
// about its center like the rendered SVG transform.
func corners(c svglayout.Component) [4][2]float64 {
	x, y := c.X()*ptPerMm, c.Y()*ptPerMm
	w, h := c.Width()*ptPerMm, c.Height()*ptPerMm
	cx, cy := x+w/2, y+h/2
	sin, cos := math.Sincos(c.Rotation() * math.Pi / 180)

	box := [4][2]float64{{x, y}, {x + w, y}, {x + w, y + h}, {x, y + h}}
	for i, p := range box {
		dx, dy := p[0]-cx, p[1]-cy
		box[i] = [2]float64{cx + dx*cos - dy*sin, cy + dx*sin + dy*cos}
	}
	return box
}

func strokeRect(pdf *contentstream.Appearance, box [4][2]float64) {
	pdf.Ops(
		contentstream.OpMoveTo{X: box[0][0], Y: box[0][1]},
		contentstream.OpLineTo{X: box[1][0], Y: box[1][1]},
		contentstream.OpLineTo{X: box[2][0], Y: box[2][1]},
		contentstream.OpLineTo{X: box[3][0], Y: box[3][1]},
		contentstream.OpClosePath{},
		contentstream.OpStroke{},
	)
}
