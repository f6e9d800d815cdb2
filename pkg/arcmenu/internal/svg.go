package internal

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// RasterizeSVG draws an SVG document scaled to w x h.
func RasterizeSVG(data []byte, w, h int) (*image.RGBA, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("rasterize svg: invalid size %dx%d", w, h)
	}

	icon, err := oksvg.ReadIconStream(bytes.NewReader(data), oksvg.WarnErrorMode)
	if err != nil {
		return nil, fmt.Errorf("rasterize svg: %w", err)
	}
	icon.SetTarget(0, 0, float64(w), float64(h))

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(w, h, scanner), 1)
	return img, nil
}

// Badge draws a filled circle that touches every edge of a w x h image.
func Badge(w, h int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	filler := rasterx.NewFiller(w, h, scanner)
	filler.SetColor(c)

	r := float64(min(w, h)) / 2
	rasterx.AddCircle(float64(w)/2, float64(h)/2, r, filler)
	filler.Draw()
	return img
}

// Overlay draws src centered on dst, inset by inset pixels on every side.
func Overlay(dst *image.RGBA, src image.Image, inset int) {
	b := dst.Bounds().Inset(inset)
	sb := src.Bounds()
	off := image.Pt(b.Min.X+(b.Dx()-sb.Dx())/2, b.Min.Y+(b.Dy()-sb.Dy())/2)
	draw.Draw(dst, sb.Sub(sb.Min).Add(off), src, sb.Min, draw.Over)
}

// Unpremultiply converts img to straight alpha, which is what SDL's blend
// mode expects.
func Unpremultiply(img image.Image) *image.NRGBA {
	b := img.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), img, b.Min, draw.Src)
	return out
}
