package svg

import (
	"bytes"
	"compress/gzip"
	"image"
	"io"
	"strings"
	"testing"

	"github.com/jrawgo/jraw"
	"github.com/tdewolff/test"
)

func TestSVG(t *testing.T) {
	buf := &bytes.Buffer{}
	svg := New(buf, 100, 50, nil)
	w, h := svg.Size()
	test.Float(t, w, 100)
	test.Float(t, h, 50)

	j := jraw.New(svg)
	j.NoStroke().Fill(jraw.Red).Rect(10, 20, 30, 40)
	j.Fill(jraw.Black).Rect(10, 20, 30, 40)
	j.NoFill().Stroke(jraw.Blue).StrokeWeight(2).LineCap(jraw.RoundCap).Line(10, 15, 20, 15)
	test.Error(t, svg.Close())

	s := buf.String()
	test.That(t, strings.HasPrefix(s, `<svg version="1.1" width="100" height="50" viewBox="0 0 100 50" xmlns="http://www.w3.org/2000/svg">`), s)
	test.That(t, strings.HasSuffix(s, "</svg>"), s)
	test.That(t, strings.Contains(s, `<path d="M10 20L40 20L40 60L10 60z" fill="#ff0000"/>`), s)
	test.That(t, strings.Contains(s, `<path d="M10 20L40 20L40 60L10 60z"/>`), s)
	test.That(t, strings.Contains(s, `<path d="M10 15L20 15" fill="none" stroke="#0000ff" stroke-width="2" stroke-linecap="round"/>`), s)
}

func TestSVGTransform(t *testing.T) {
	buf := &bytes.Buffer{}
	svg := New(buf, 100, 100, nil)
	jraw.New(svg).NoStroke().Translate(10, 10).Scale(2, 2).Rect(1, 1, 5, 5)
	test.Error(t, svg.Close())
	test.That(t, strings.Contains(buf.String(), `<path d="M12 12L22 12L22 22L12 22z"/>`), buf.String())
}

func TestSVGClear(t *testing.T) {
	buf := &bytes.Buffer{}
	svg := New(buf, 100, 100, nil)
	j := jraw.New(svg).NoStroke().Rect(10, 10, 10, 10)

	// partial clears are ignored
	svg.ClearRect(10, 10, 10, 10)
	test.That(t, svg.body.Len() != 0)

	j.Clear()
	test.T(t, svg.body.Len(), 0)
	test.Error(t, svg.Close())
	test.That(t, !strings.Contains(buf.String(), "<path"))
}

func TestSVGOptions(t *testing.T) {
	draw := func(opts *Options) *bytes.Buffer {
		buf := &bytes.Buffer{}
		svg := New(buf, 100, 100, opts)
		jraw.New(svg).NoStroke().Fill(jraw.Red).Rect(10, 10, 10, 10)
		test.Error(t, svg.Close())
		return buf
	}

	plain := draw(nil)
	minified := draw(&Options{Minify: true})
	test.That(t, strings.Contains(minified.String(), "<path"), minified.String())
	test.That(t, minified.Len() <= plain.Len())

	compressed := draw(&Options{Compression: 9})
	zr, err := gzip.NewReader(compressed)
	test.Error(t, err)
	b, err := io.ReadAll(zr)
	test.Error(t, err)
	test.String(t, string(b), plain.String())
}

func TestSVGText(t *testing.T) {
	buf := &bytes.Buffer{}
	svg := New(buf, 100, 50, nil)
	jraw.New(svg).NoStroke().Fill(jraw.Red).Font("20px sans-serif").Text("A", 10, 30)
	jraw.New(svg).NoFill().Stroke(jraw.Blue).Text("A", 10, 30)
	test.Error(t, svg.Close())

	s := buf.String()
	test.That(t, strings.Contains(s, `" fill="#ff0000"/>`), s)
	test.That(t, strings.Contains(s, `" fill="none" stroke="#0000ff"/>`), s)
	test.T(t, strings.Count(s, "<path"), 2)
}

func TestSVGImage(t *testing.T) {
	buf := &bytes.Buffer{}
	svg := New(buf, 100, 50, nil)
	img := image.NewRGBA(image.Rect(0, 0, 4, 2))
	jraw.New(svg).Translate(10, 0).ImageRect(img, 0, 5, 8, 8)
	test.Error(t, svg.Close())

	s := buf.String()
	test.That(t, strings.Contains(s, `<image transform="matrix(2 0 0 4 10 5)" width="4" height="2" href="data:image/png;base64,`), s)
	test.That(t, strings.Contains(s, `"/></svg>`), s)
}

func TestSVGResize(t *testing.T) {
	buf := &bytes.Buffer{}
	svg := New(buf, 100, 50, nil)
	j := jraw.New(svg).NoStroke().Rect(0, 0, 10, 10)
	j.ResizeCanvas(20, 30)
	test.T(t, svg.body.Len(), 0)
	test.Error(t, svg.Close())
	test.That(t, strings.HasPrefix(buf.String(), `<svg version="1.1" width="20" height="30"`), buf.String())
}
