package rasterizer

import (
	"image"
	"image/color"

	"github.com/jrawgo/jraw"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/draw"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// miterLimit is the default miter limit of the canvas context.
const miterLimit = 10.0

func toI26_6(f float64) fixed.Int26_6 {
	return fixed.Int26_6(f * 64.0)
}

func toP26_6(p jraw.Vector, origin image.Point) fixed.Point26_6 {
	return fixed.Point26_6{X: toI26_6(p.X - float64(origin.X)), Y: toI26_6(p.Y - float64(origin.Y))}
}

// toRasterizer adds the path to a vector rasterizer with origin as the top-left corner, closing every subpath.
func toRasterizer(p *jraw.Path, ras *vector.Rasterizer, origin image.Point) {
	dx, dy := float32(origin.X), float32(origin.Y)
	for _, sp := range p.Subpaths() {
		if len(sp.Points) < 2 {
			continue
		}
		ras.MoveTo(float32(sp.Points[0].X)-dx, float32(sp.Points[0].Y)-dy)
		for _, pt := range sp.Points[1:] {
			ras.LineTo(float32(pt.X)-dx, float32(pt.Y)-dy)
		}
		ras.ClosePath()
	}
}

// toAdder adds the path to a rasterx stroker or filler.
func toAdder(p *jraw.Path, a rasterx.Adder, origin image.Point) {
	for _, sp := range p.Subpaths() {
		if len(sp.Points) < 2 {
			continue
		}
		a.Start(toP26_6(sp.Points[0], origin))
		for _, pt := range sp.Points[1:] {
			a.Line(toP26_6(pt, origin))
		}
		a.Stop(sp.Closed)
	}
}

func capFunc(c jraw.LineCap) rasterx.CapFunc {
	switch c {
	case jraw.RoundCap:
		return rasterx.RoundCap
	case jraw.SquareCap:
		return rasterx.SquareCap
	case jraw.ButtCap:
		return rasterx.ButtCap
	}
	panic("rasterizer: line cap not supported")
}

func joinMode(j jraw.LineJoin) rasterx.JoinMode {
	switch j {
	case jraw.RoundJoin:
		return rasterx.Round
	case jraw.BevelJoin:
		return rasterx.Bevel
	case jraw.MiterJoin:
		return rasterx.Miter
	}
	panic("rasterizer: line join not supported")
}

func strokePath(img draw.Image, p *jraw.Path, c color.Color, width float64, lineCap jraw.LineCap, lineJoin jraw.LineJoin) {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	scanner := rasterx.NewScannerGV(w, h, img, bounds)
	stroker := rasterx.NewStroker(w, h, scanner)
	capper := capFunc(lineCap)
	stroker.SetStroke(toI26_6(width), toI26_6(miterLimit), capper, capper, rasterx.RoundGap, joinMode(lineJoin))
	stroker.SetColor(c)
	toAdder(p, stroker, bounds.Min)
	stroker.Draw()
}
