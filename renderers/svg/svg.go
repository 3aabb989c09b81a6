package svg

import (
	"bytes"
	"compress/gzip"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/jrawgo/jraw"
	"github.com/tdewolff/minify/v2"
	minifySVG "github.com/tdewolff/minify/v2/svg"
	"go.uber.org/zap"
)

// Options are the SVG output options.
type Options struct {
	Compression int  // gzip compression level, zero disables compression
	Minify      bool // minify the document before writing
}

// DefaultOptions are the default options.
var DefaultOptions = Options{}

// SVG is a canvas context that writes a scalable vector graphics document. Every fill and stroke becomes a path element in device coordinates.
type SVG struct {
	jraw.State
	w             io.Writer
	body          *bytes.Buffer
	width, height float64
	opts          *Options
}

// New returns a scalable vector graphics (SVG) context of the given size in pixels. The document is written to w on Close.
func New(w io.Writer, width, height float64, opts *Options) *SVG {
	if opts == nil {
		defaultOptions := DefaultOptions
		opts = &defaultOptions
	}
	return &SVG{
		State:  jraw.NewState(),
		w:      w,
		body:   &bytes.Buffer{},
		width:  width,
		height: height,
		opts:   opts,
	}
}

// Close writes the document.
func (r *SVG) Close() error {
	w := r.w
	var zw *gzip.Writer
	if r.opts.Compression != 0 {
		if r.opts.Compression < gzip.HuffmanOnly || gzip.BestCompression < r.opts.Compression {
			r.opts.Compression = gzip.DefaultCompression
		}
		var err error
		if zw, err = gzip.NewWriterLevel(w, r.opts.Compression); err != nil {
			return err
		}
		w = zw
	}

	doc := &bytes.Buffer{}
	fmt.Fprintf(doc, `<svg version="1.1" width="%v" height="%v" viewBox="0 0 %v %v" xmlns="http://www.w3.org/2000/svg">`, dec(r.width), dec(r.height), dec(r.width), dec(r.height))
	doc.Write(r.body.Bytes())
	doc.WriteString("</svg>")

	var err error
	if r.opts.Minify {
		m := minify.New()
		m.AddFunc("image/svg+xml", minifySVG.Minify)
		err = m.Minify("image/svg+xml", w, doc)
	} else {
		_, err = w.Write(doc.Bytes())
	}
	if zw != nil {
		if errClose := zw.Close(); err == nil {
			err = errClose // does not close underlying writer
		}
	}
	return err
}

// Size returns the size of the document in pixels.
func (r *SVG) Size() (float64, float64) {
	return r.width, r.height
}

// Fill writes the current path as a filled path element.
func (r *SVG) Fill() {
	r.writeFill(r.Path, r.FillColor)
}

// Resize changes the size of the document and discards everything drawn so far.
func (r *SVG) Resize(w, h float64) {
	r.width, r.height = w, h
	r.body.Reset()
	r.State = jraw.NewState()
}

// Stroke writes the current path as a stroked path element. Stroke widths follow the scale of the current transformation.
func (r *SVG) Stroke() {
	r.writeStroke(r.Path)
}

// FillText writes the glyph outlines of text as a filled path element.
func (r *SVG) FillText(text string, x, y float64) {
	r.writeFill(r.TextPath(text, x, y), r.FillColor)
}

// StrokeText writes the glyph outlines of text as a stroked path element.
func (r *SVG) StrokeText(text string, x, y float64) {
	r.writeStroke(r.TextPath(text, x, y))
}

// DrawImage writes img as an embedded PNG image element.
func (r *SVG) DrawImage(img image.Image, x, y, w, h float64) {
	size := img.Bounds().Size()
	if size.X == 0 || size.Y == 0 || w == 0.0 || h == 0.0 {
		return
	}
	a, b, c, d, e, f := r.View.Translate(x, y).Scale(w/float64(size.X), h/float64(size.Y)).Canvas()
	fmt.Fprintf(r.body, `<image transform="matrix(%v %v %v %v %v %v)" width="%d" height="%d" href="data:image/png;base64,`, dec(a), dec(b), dec(c), dec(d), dec(e), dec(f), size.X, size.Y)
	encoder := base64.NewEncoder(base64.StdEncoding, r.body)
	if err := png.Encode(encoder, img); err != nil {
		panic(err) // writes to a buffer do not fail
	}
	encoder.Close()
	fmt.Fprintf(r.body, `"/>`)
}

func (r *SVG) writeStroke(p *jraw.Path) {
	if p.Empty() || !jraw.Visible(r.StrokeColor) {
		return
	}
	fmt.Fprintf(r.body, `<path d="%s" fill="none" stroke="%s`, pathData(p), jraw.CSSColor(r.StrokeColor))
	if width := r.LineWidth * r.View.Scaling(); width != 1.0 {
		fmt.Fprintf(r.body, `" stroke-width="%v`, dec(width))
	}
	if r.LineCap != jraw.ButtCap {
		fmt.Fprintf(r.body, `" stroke-linecap="%v`, r.LineCap)
	}
	if r.LineJoin != jraw.MiterJoin {
		fmt.Fprintf(r.body, `" stroke-linejoin="%v`, r.LineJoin)
	}
	fmt.Fprintf(r.body, `"/>`)
}

// FillRect writes a filled rectangle without affecting the current path.
func (r *SVG) FillRect(x, y, w, h float64) {
	r.writeFill(r.RectPath(x, y, w, h), r.FillColor)
}

// ClearRect discards everything drawn so far when the rectangle covers the whole document. Partial clears cannot be expressed and are ignored.
func (r *SVG) ClearRect(x, y, w, h float64) {
	x0, y0, x1, y1 := r.RectPath(x, y, w, h).Bounds()
	if x0 <= 0.0 && y0 <= 0.0 && r.width <= x1 && r.height <= y1 {
		r.body.Reset()
		return
	}
	jraw.Logger().Debug("svg: partial clearRect ignored", zap.Float64("x", x), zap.Float64("y", y), zap.Float64("w", w), zap.Float64("h", h))
}

func (r *SVG) writeFill(p *jraw.Path, c color.Color) {
	if p.Empty() || !jraw.Visible(c) {
		return
	}
	fmt.Fprintf(r.body, `<path d="%s`, pathData(p))
	if col := jraw.CSSColor(c); col != "#000000" {
		fmt.Fprintf(r.body, `" fill="%s`, col)
	}
	fmt.Fprintf(r.body, `"/>`)
}
