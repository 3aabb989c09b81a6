package eps

import (
	"encoding/hex"
	"fmt"
	"image"
	"image/color"
	"io"
	"math"
	"strings"

	"github.com/jrawgo/jraw"
	"github.com/tdewolff/minify/v2"
)

// Precision is the number of decimals written for coordinates.
var Precision = 3

// Writer writes a recorded drawing as an EPS file.
func Writer(w io.Writer, rec *jraw.Recorder) error {
	eps := New(w, rec.W, rec.H)
	rec.Replay(eps)
	return eps.Close()
}

// EPS is an encapsulated PostScript context. Be aware that EPS does not support transparency of colors, translucent colors are drawn opaque and fully transparent colors are not drawn. The size is fixed by the header, so EPS cannot be resized.
type EPS struct {
	jraw.State
	w             io.Writer
	width, height float64
	err           error

	color     color.RGBA
	lineWidth float64
	lineCap   jraw.LineCap
	lineJoin  jraw.LineJoin
}

// New returns an encapsulated PostScript (EPS) context of the given size in points. The header is written immediately.
func New(w io.Writer, width, height float64) *EPS {
	r := &EPS{
		State:     jraw.NewState(),
		w:         w,
		width:     width,
		height:    height,
		color:     jraw.Black,
		lineWidth: 1.0,
	}
	r.printf("%%!PS-Adobe-3.0 EPSF-3.0\n%%%%BoundingBox: 0 0 %v %v\n", int(math.Ceil(width)), int(math.Ceil(height)))
	return r
}

// Close finishes the document and returns the first write error.
func (r *EPS) Close() error {
	r.printf("\nshowpage\n%%%%EOF\n")
	return r.err
}

func (r *EPS) printf(format string, a ...interface{}) {
	if r.err == nil {
		_, r.err = fmt.Fprintf(r.w, format, a...)
	}
}

// Size returns the size of the document in points.
func (r *EPS) Size() (float64, float64) {
	return r.width, r.height
}

func (r *EPS) setColor(c color.Color) {
	rgba := color.RGBAModel.Convert(c).(color.RGBA)
	if rgba.A != 0 && rgba.A != 255 {
		nrgba := color.NRGBAModel.Convert(c).(color.NRGBA)
		rgba = color.RGBA{nrgba.R, nrgba.G, nrgba.B, 255}
	}
	if rgba != r.color {
		r.printf(" %v %v %v setrgbcolor", dec(float64(rgba.R)/255.0), dec(float64(rgba.G)/255.0), dec(float64(rgba.B)/255.0))
		r.color = rgba
	}
}

// Fill fills the current path with the fill color.
func (r *EPS) Fill() {
	r.fillPath(r.Path, r.FillColor)
}

// FillRect fills a rectangle without affecting the current path.
func (r *EPS) FillRect(x, y, w, h float64) {
	r.fillPath(r.RectPath(x, y, w, h), r.FillColor)
}

// ClearRect paints the rectangle white, since EPS has no transparent background.
func (r *EPS) ClearRect(x, y, w, h float64) {
	r.fillPath(r.RectPath(x, y, w, h), jraw.White)
}

// Stroke strokes the current path with the stroke style. Stroke widths follow the scale of the current transformation.
func (r *EPS) Stroke() {
	r.strokePath(r.Path)
}

// FillText fills the glyph outlines of text.
func (r *EPS) FillText(text string, x, y float64) {
	r.fillPath(r.TextPath(text, x, y), r.FillColor)
}

// StrokeText strokes the glyph outlines of text.
func (r *EPS) StrokeText(text string, x, y float64) {
	r.strokePath(r.TextPath(text, x, y))
}

// DrawImage writes img as an RGB image scaled into the rectangle (x,y,w,h). The alpha channel is dropped.
func (r *EPS) DrawImage(img image.Image, x, y, w, h float64) {
	bounds := img.Bounds()
	size := bounds.Size()
	if size.X == 0 || size.Y == 0 || w == 0.0 || h == 0.0 {
		return
	}

	// the unit square maps onto the image, flipped into PostScript space
	m := jraw.NewMatrix(1.0, 0.0, 0.0, -1.0, 0.0, r.height).Mul(r.View).Translate(x, y).Scale(w, h)
	a, b, c, d, e, f := m.Canvas()
	r.printf(" gsave [%v %v %v %v %v %v] concat", dec(a), dec(b), dec(c), dec(d), dec(e), dec(f))
	r.printf(" /picstr %d string def %d %d 8 [%d 0 0 %d 0 0] {currentfile picstr readhexstring pop} false 3 colorimage\n", 3*size.X, size.X, size.Y, size.X, size.Y)

	row := make([]byte, 3*size.X)
	for py := bounds.Min.Y; py < bounds.Max.Y; py++ {
		for px := bounds.Min.X; px < bounds.Max.X; px++ {
			col := color.NRGBAModel.Convert(img.At(px, py)).(color.NRGBA)
			i := 3 * (px - bounds.Min.X)
			row[i], row[i+1], row[i+2] = col.R, col.G, col.B
		}
		r.printf("%s\n", hex.EncodeToString(row))
	}
	r.printf(" grestore")
}

func (r *EPS) strokePath(p *jraw.Path) {
	if p.Empty() || !jraw.Visible(r.StrokeColor) {
		return
	}
	r.setColor(r.StrokeColor)
	if width := r.LineWidth * r.View.Scaling(); width != r.lineWidth {
		r.printf(" %v setlinewidth", dec(width))
		r.lineWidth = width
	}
	if r.LineCap != r.lineCap {
		r.printf(" %d setlinecap", psCap(r.LineCap))
		r.lineCap = r.LineCap
	}
	if r.LineJoin != r.lineJoin {
		r.printf(" %d setlinejoin", psJoin(r.LineJoin))
		r.lineJoin = r.LineJoin
	}
	r.printf(" %s stroke", r.toPS(p))
}

func (r *EPS) fillPath(p *jraw.Path, c color.Color) {
	if p.Empty() || !jraw.Visible(c) {
		return
	}
	r.setColor(c)
	r.printf(" %s fill", r.toPS(p))
}

// toPS returns the path in PostScript operators, flipping the y-axis so that the origin is in the top-left corner.
func (r *EPS) toPS(p *jraw.Path) string {
	sb := strings.Builder{}
	for _, sp := range p.Subpaths() {
		if len(sp.Points) < 2 {
			continue
		}
		for i, pt := range sp.Points {
			if 0 < sb.Len() {
				sb.WriteByte(' ')
			}
			op := "lineto"
			if i == 0 {
				op = "moveto"
			}
			fmt.Fprintf(&sb, "%v %v %s", dec(pt.X), dec(r.height-pt.Y), op)
		}
		if sp.Closed {
			sb.WriteString(" closepath")
		}
	}
	return "newpath " + sb.String()
}

func psCap(c jraw.LineCap) int {
	switch c {
	case jraw.ButtCap:
		return 0
	case jraw.RoundCap:
		return 1
	case jraw.SquareCap:
		return 2
	}
	panic("EPS: line cap not supported")
}

func psJoin(j jraw.LineJoin) int {
	switch j {
	case jraw.MiterJoin:
		return 0
	case jraw.RoundJoin:
		return 1
	case jraw.BevelJoin:
		return 2
	}
	panic("EPS: line join not supported")
}

type dec float64

func (f dec) String() string {
	s := fmt.Sprintf("%.*f", Precision, f)
	s = string(minify.Decimal([]byte(s), Precision))
	if dec(math.MaxInt32) < f || f < dec(math.MinInt32) {
		if i := strings.IndexByte(s, '.'); i == -1 {
			s += ".0"
		}
	}
	return s
}
