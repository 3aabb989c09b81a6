package rasterizer

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/jrawgo/jraw"
	"github.com/tdewolff/test"
)

func TestRasterizerFill(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	j := jraw.New(New(img))
	j.NoStroke().Fill(jraw.Red).Rect(2, 2, 4, 4)
	test.T(t, img.RGBAAt(3, 3), jraw.Red)
	test.T(t, img.RGBAAt(0, 0), jraw.Transparent)
	test.T(t, img.RGBAAt(7, 7), jraw.Transparent)

	// translated
	j.Translate(5, 5).Fill(jraw.Blue).Rect(0, 0, 2, 2)
	test.T(t, img.RGBAAt(6, 6), jraw.Blue)
	test.T(t, img.RGBAAt(4, 4), jraw.Red)

	// singular transformations draw nothing
	j.ResetMatrix().Scale(0, 1).Fill(jraw.Green).Rect(0, 0, 10, 10)
	test.T(t, img.RGBAAt(0, 0), jraw.Transparent)
}

func TestRasterizerBackground(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	ras := New(img)
	w, h := ras.Size()
	test.Float(t, w, 10)
	test.Float(t, h, 10)

	j := jraw.New(ras).Translate(100, 100).Background(jraw.Red)
	test.T(t, img.RGBAAt(0, 0), jraw.Red)
	test.T(t, img.RGBAAt(9, 9), jraw.Red)

	j.ResetMatrix()
	ras.ClearRect(0, 0, 5, 10)
	test.T(t, img.RGBAAt(2, 5), jraw.Transparent)
	test.T(t, img.RGBAAt(7, 5), jraw.Red)

	j.Clear()
	test.T(t, img.RGBAAt(7, 5), jraw.Transparent)
}

func TestRasterizerClearEdge(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	ras := New(img)
	jraw.New(ras).Background(jraw.Red)

	// half of pixel column 4 is cleared, keeping premultiplied red at half alpha
	ras.ClearRect(0, 0, 4.5, 10)
	test.T(t, img.RGBAAt(3, 5), jraw.Transparent)
	test.T(t, img.RGBAAt(5, 5), jraw.Red)
	c := img.RGBAAt(4, 5)
	test.That(t, 0 < c.A && c.A < 0xff, c)
	test.T(t, c.R, c.A)
	test.T(t, c.G, uint8(0))
}

func TestRasterizerStroke(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	j := jraw.New(New(img))
	j.Stroke(jraw.Blue).StrokeWeight(2).Line(0, 5, 10, 5)
	test.That(t, img.RGBAAt(5, 4).A != 0)
	test.That(t, img.RGBAAt(5, 5).A != 0)
	test.T(t, img.RGBAAt(5, 1), jraw.Transparent)
	test.T(t, img.RGBAAt(5, 8), jraw.Transparent)

	// transparent strokes draw nothing
	img = image.NewRGBA(image.Rect(0, 0, 10, 10))
	jraw.New(New(img)).Stroke(jraw.Transparent).Line(0, 5, 10, 5)
	test.T(t, img.RGBAAt(5, 5), jraw.Transparent)
}

func TestRasterizerStyles(t *testing.T) {
	for _, c := range []jraw.LineCap{jraw.ButtCap, jraw.RoundCap, jraw.SquareCap} {
		test.That(t, capFunc(c) != nil, c)
	}
	for _, lj := range []jraw.LineJoin{jraw.MiterJoin, jraw.RoundJoin, jraw.BevelJoin} {
		joinMode(lj)
	}

	defer func() {
		test.That(t, recover() != nil, "must panic")
	}()
	capFunc(jraw.LineCap(42))
}

func TestPNGWriter(t *testing.T) {
	rec := jraw.NewRecorder(20, 10)
	jraw.New(rec).Background(jraw.White).NoStroke().Fill(jraw.Black).Circle(10, 5, 3)

	buf := &bytes.Buffer{}
	test.Error(t, PNGWriter(buf, rec))
	img, err := png.Decode(buf)
	test.Error(t, err)
	test.T(t, img.Bounds(), image.Rect(0, 0, 20, 10))
	test.T(t, color.RGBAModel.Convert(img.At(0, 0)), color.Color(jraw.White))
	test.T(t, color.RGBAModel.Convert(img.At(10, 5)), color.Color(jraw.Black))
}

func inked(img *image.RGBA, r image.Rectangle) int {
	n := 0
	r = r.Intersect(img.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if img.RGBAAt(x, y).A != 0 {
				n++
			}
		}
	}
	return n
}

func TestRasterizerText(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 60, 30))
	j := jraw.New(New(img)).NoStroke().Fill(jraw.Black).Font("20px sans-serif")
	j.Text("H", 10, 25)
	test.That(t, 0 < inked(img, img.Bounds()), "text must draw")
	test.T(t, inked(img, image.Rect(0, 26, 60, 30)), 0) // below the baseline
	test.T(t, inked(img, image.Rect(0, 0, 10, 30)), 0)  // left of the anchor

	img = image.NewRGBA(image.Rect(0, 0, 60, 30))
	j = jraw.New(New(img)).NoStroke().Font("20px sans-serif").TextAlign(jraw.RightAlign).TextBaseline(jraw.TopBaseline)
	j.Text("H", 50, 0)
	test.That(t, 0 < inked(img, img.Bounds()), "text must draw")
	test.T(t, inked(img, image.Rect(51, 0, 60, 30)), 0) // right of the anchor

	// stroked text
	img = image.NewRGBA(image.Rect(0, 0, 60, 30))
	jraw.New(New(img)).NoFill().Stroke(jraw.Red).Font("20px sans-serif").Text("H", 10, 25)
	test.That(t, 0 < inked(img, img.Bounds()), "text must draw")
}

func TestRasterizerImage(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			src.SetRGBA(x, y, jraw.Red)
		}
	}

	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	j := jraw.New(New(img))
	j.Image(src, 4, 4)
	test.T(t, img.RGBAAt(4, 4).A, uint8(255))
	test.T(t, img.RGBAAt(5, 5).A, uint8(255))
	test.T(t, img.RGBAAt(8, 8), jraw.Transparent)
	test.T(t, img.RGBAAt(1, 1), jraw.Transparent)

	// scaled into a rectangle
	img = image.NewRGBA(image.Rect(0, 0, 10, 10))
	jraw.New(New(img)).ImageRect(src, 0, 0, 10, 10)
	test.That(t, img.RGBAAt(9, 9).A != 0)
	test.That(t, img.RGBAAt(0, 0).A != 0)
}

func TestRasterizerResize(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	ras := New(img)
	j := jraw.New(ras).Translate(5, 5).Fill(jraw.Red)
	j.ResizeCanvas(20, 5)
	w, h := ras.Size()
	test.Float(t, w, 20)
	test.Float(t, h, 5)
	test.T(t, j.Translation(), jraw.Vector{X: 0, Y: 0})

	// the fill color is set again after the reset
	j.NoStroke().Rect(0, 0, 20, 5)
	test.T(t, ras.Image().(*image.RGBA).RGBAAt(15, 2), jraw.Red)

	rec := jraw.NewRecorder(10, 10)
	rec.Resize(3, 4)
	test.T(t, Draw(rec).Bounds(), image.Rect(0, 0, 3, 4))
}
