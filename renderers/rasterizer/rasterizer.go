package rasterizer

import (
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"

	"github.com/jrawgo/jraw"
	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/tiff"
	"golang.org/x/image/vector"
)

// Writer encodes a recorded drawing to w.
type Writer func(w io.Writer, rec *jraw.Recorder) error

// PNGWriter writes the drawing as a PNG file.
func PNGWriter(w io.Writer, rec *jraw.Recorder) error {
	return png.Encode(w, Draw(rec))
}

// JPGWriter writes the drawing as a JPG file.
func JPGWriter(opts *jpeg.Options) Writer {
	return func(w io.Writer, rec *jraw.Recorder) error {
		return jpeg.Encode(w, Draw(rec), opts)
	}
}

// GIFWriter writes the drawing as a GIF file.
func GIFWriter(opts *gif.Options) Writer {
	return func(w io.Writer, rec *jraw.Recorder) error {
		return gif.Encode(w, Draw(rec), opts)
	}
}

// TIFFWriter writes the drawing as a TIFF file.
func TIFFWriter(opts *tiff.Options) Writer {
	return func(w io.Writer, rec *jraw.Recorder) error {
		return tiff.Encode(w, Draw(rec), opts)
	}
}

// Draw replays a recorded drawing on a new transparent image of the recorder's size.
func Draw(rec *jraw.Recorder) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, int(rec.W+0.5), int(rec.H+0.5)))
	ras := New(img)
	rec.Replay(ras)
	return ras.Image().(*image.RGBA) // replaced by a resize
}

// Rasterizer is a canvas context that draws on an image. One unit corresponds to one pixel.
type Rasterizer struct {
	jraw.State
	img draw.Image
}

// New returns a context that draws on img.
func New(img draw.Image) *Rasterizer {
	return &Rasterizer{
		State: jraw.NewState(),
		img:   img,
	}
}

// Image returns the image drawn on.
func (r *Rasterizer) Image() draw.Image {
	return r.img
}

// Size returns the size of the image in pixels.
func (r *Rasterizer) Size() (float64, float64) {
	size := r.img.Bounds().Size()
	return float64(size.X), float64(size.Y)
}

// Fill fills the current path with the fill color using the non-zero winding rule. Open subpaths are closed implicitly.
func (r *Rasterizer) Fill() {
	r.fillPath(r.Path, r.FillColor)
}

// Resize replaces the image by a transparent image of the given size and resets the state.
func (r *Rasterizer) Resize(w, h float64) {
	r.img = image.NewRGBA(image.Rect(0, 0, int(w+0.5), int(h+0.5)))
	r.State = jraw.NewState()
}

// Stroke strokes the current path with the stroke color and line style.
func (r *Rasterizer) Stroke() {
	r.stroke(r.Path)
}

// FillText fills the glyph outlines of text.
func (r *Rasterizer) FillText(text string, x, y float64) {
	r.fillPath(r.TextPath(text, x, y), r.FillColor)
}

// StrokeText strokes the glyph outlines of text.
func (r *Rasterizer) StrokeText(text string, x, y float64) {
	r.stroke(r.TextPath(text, x, y))
}

// DrawImage draws img into the rectangle (x,y,w,h) with Catmull-Rom interpolation.
func (r *Rasterizer) DrawImage(img image.Image, x, y, w, h float64) {
	if img.Bounds().Empty() || w == 0.0 || h == 0.0 {
		return
	}
	m := r.ImageMatrix(img, x, y, w, h)
	if m.Singular() {
		return
	}
	aff3 := f64.Aff3{m[0][0], m[0][1], m[0][2], m[1][0], m[1][1], m[1][2]}
	draw.CatmullRom.Transform(r.img, aff3, img, img.Bounds(), draw.Over, nil)
}

// FillRect fills a rectangle without affecting the current path.
func (r *Rasterizer) FillRect(x, y, w, h float64) {
	r.fillPath(r.RectPath(x, y, w, h), r.FillColor)
}

// ClearRect sets the pixels covered by the rectangle to transparent.
func (r *Rasterizer) ClearRect(x, y, w, h float64) {
	p := r.RectPath(x, y, w, h)
	if p.Empty() || r.View.Singular() {
		return
	}
	bounds := r.img.Bounds()
	mask := image.NewAlpha(bounds)
	ras := vector.NewRasterizer(bounds.Dx(), bounds.Dy())
	toRasterizer(p, ras, bounds.Min)
	ras.Draw(mask, bounds, image.Opaque, image.Point{})

	x0, y0, x1, y1 := p.Bounds()
	clip := image.Rect(int(x0)-1, int(y0)-1, int(x1)+2, int(y1)+2).Intersect(bounds)
	for py := clip.Min.Y; py < clip.Max.Y; py++ {
		for px := clip.Min.X; px < clip.Max.X; px++ {
			m := uint32(mask.AlphaAt(px, py).A)
			if m == 0 {
				continue
			}
			cr, cg, cb, ca := r.img.At(px, py).RGBA()
			k := 0xff - m
			r.img.Set(px, py, color.RGBA64{
				uint16(cr * k / 0xff),
				uint16(cg * k / 0xff),
				uint16(cb * k / 0xff),
				uint16(ca * k / 0xff),
			})
		}
	}
}

func (r *Rasterizer) stroke(p *jraw.Path) {
	if p.Empty() || !jraw.Visible(r.StrokeColor) || r.View.Singular() {
		return
	}
	strokePath(r.img, p, r.StrokeColor, r.LineWidth*r.View.Scaling(), r.LineCap, r.LineJoin)
}

func (r *Rasterizer) fillPath(p *jraw.Path, c color.Color) {
	if p.Empty() || !jraw.Visible(c) || r.View.Singular() {
		return
	}
	bounds := r.img.Bounds()
	ras := vector.NewRasterizer(bounds.Dx(), bounds.Dy())
	toRasterizer(p, ras, bounds.Min)
	ras.Draw(r.img, bounds, image.NewUniform(c), image.Point{})
}
