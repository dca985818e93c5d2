// Package svgpreview rasterizes a quick placement check of a scene,
// by wrapping rasterx. Each component is drawn as its rotated
// bounding box; fragment geometry is not interpreted, so the preview
// stays cheap whatever the parts contain.
package svgpreview

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"os"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"

	"github.com/cutsheet/cutsheet/svglayout"
	"github.com/cutsheet/cutsheet/svgunit"
)

// DefaultScale renders at the SVG pixel density (96 per inch).
const DefaultScale = svgunit.PxPerInch / svgunit.MmPerInch

var (
	sheetColor   = color.NRGBA{0xff, 0xff, 0xff, 0xff}
	partColor    = color.NRGBA{0xd6, 0xe4, 0xf0, 0xff}
	outlineColor = color.NRGBA{0x1f, 0x4e, 0x79, 0xff}
)

// Render draws the scene's component boxes into an image, at
// pxPerMm pixels per millimeter (DefaultScale when <= 0).
func Render(scene *svglayout.Scene, pxPerMm float64) *image.RGBA {
	if pxPerMm <= 0 {
		pxPerMm = DefaultScale
	}
	w := max(1, int(math.Ceil(scene.Width()*pxPerMm)))
	h := max(1, int(math.Ceil(scene.Height()*pxPerMm)))
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(sheetColor), image.Point{}, draw.Src)

	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	filler := rasterx.NewFiller(w, h, scanner)
	dasher := rasterx.NewDasher(w, h, scanner)
	dasher.SetStroke(fixed.I(1), fixed.I(4), rasterx.ButtCap, rasterx.ButtCap,
		rasterx.FlatGap, rasterx.Miter, nil, 0)

	for _, c := range scene.Components() {
		minX := c.X() * pxPerMm
		minY := c.Y() * pxPerMm
		maxX := (c.X() + c.Width()) * pxPerMm
		maxY := (c.Y() + c.Height()) * pxPerMm

		scanner.SetColor(partColor)
		rasterx.AddRect(minX, minY, maxX, maxY, c.Rotation(), filler)
		filler.Draw()
		filler.Clear()

		scanner.SetColor(outlineColor)
		rasterx.AddRect(minX, minY, maxX, maxY, c.Rotation(), dasher)
		dasher.Draw()
		dasher.Clear()
	}
	return img
}

// WriteFile renders the scene and writes it as a PNG file.
func WriteFile(path string, scene *svglayout.Scene, pxPerMm float64) error {
	fout, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(fout, Render(scene, pxPerMm)); err != nil {
		fout.Close()
		return err
	}
	return fout.Close()
}
