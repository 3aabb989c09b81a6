package jraw

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"strconv"
	"strings"
)

// Op is a single recorded call on a canvas context.
type Op struct {
	Name  string
	Args  []float64
	Color color.Color
	CCW   bool
	Text  string
	Image image.Image
}

func (op Op) String() string {
	sb := strings.Builder{}
	sb.WriteString(op.Name)
	sb.WriteByte('(')
	args := make([]string, 0, len(op.Args)+2)
	switch op.Name {
	case "font", "fillText", "strokeText":
		args = append(args, strconv.Quote(op.Text))
	case "drawImage":
		size := op.Image.Bounds().Size()
		args = append(args, fmt.Sprintf("%dx%d", size.X, size.Y))
	}
	for _, arg := range op.Args {
		args = append(args, strconv.FormatFloat(arg, 'g', 6, 64))
	}
	if op.Color != nil {
		args = append(args, CSSColor(op.Color))
	}
	if op.Name == "arc" || op.Name == "ellipse" {
		args = append(args, strconv.FormatBool(op.CCW))
	}
	sb.WriteString(strings.Join(args, ","))
	sb.WriteByte(')')
	return sb.String()
}

// Recorder is a context that records all calls so that they can be inspected or replayed onto another context later.
type Recorder struct {
	W, H float64
	Ops  []Op
}

// NewRecorder returns a recorder for a surface of the given size.
func NewRecorder(w, h float64) *Recorder {
	return &Recorder{W: w, H: h}
}

func (r *Recorder) add(name string, args ...float64) {
	r.Ops = append(r.Ops, Op{Name: name, Args: args})
}

// Reset removes all recorded calls.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
}

// Names returns the names of the recorded calls in order.
func (r *Recorder) Names() []string {
	names := make([]string, len(r.Ops))
	for i, op := range r.Ops {
		names[i] = op.Name
	}
	return names
}

// String returns the recorded calls separated by semicolons.
func (r *Recorder) String() string {
	ops := make([]string, len(r.Ops))
	for i, op := range r.Ops {
		ops[i] = op.String()
	}
	return strings.Join(ops, ";")
}

// WriteTo writes the recorded calls, one per line.
func (r *Recorder) WriteTo(w io.Writer) (int64, error) {
	var n int64
	for _, op := range r.Ops {
		m, err := fmt.Fprintln(w, op.String())
		n += int64(m)
		if err != nil {
			return n, err
		}
	}
	return n, nil
}

// Replay performs the recorded calls on ctx.
func (r *Recorder) Replay(ctx Context2D) {
	for _, op := range r.Ops {
		a := op.Args
		switch op.Name {
		case "save":
			ctx.Save()
		case "restore":
			ctx.Restore()
		case "translate":
			ctx.Translate(a[0], a[1])
		case "rotate":
			ctx.Rotate(a[0])
		case "scale":
			ctx.Scale(a[0], a[1])
		case "setTransform":
			ctx.SetTransform(a[0], a[1], a[2], a[3], a[4], a[5])
		case "resetTransform":
			ctx.ResetTransform()
		case "beginPath":
			ctx.BeginPath()
		case "moveTo":
			ctx.MoveTo(a[0], a[1])
		case "lineTo":
			ctx.LineTo(a[0], a[1])
		case "quadraticCurveTo":
			ctx.QuadraticCurveTo(a[0], a[1], a[2], a[3])
		case "bezierCurveTo":
			ctx.BezierCurveTo(a[0], a[1], a[2], a[3], a[4], a[5])
		case "rect":
			ctx.Rect(a[0], a[1], a[2], a[3])
		case "arc":
			ctx.Arc(a[0], a[1], a[2], a[3], a[4], op.CCW)
		case "ellipse":
			ctx.Ellipse(a[0], a[1], a[2], a[3], a[4], a[5], a[6], op.CCW)
		case "closePath":
			ctx.ClosePath()
		case "fill":
			ctx.Fill()
		case "stroke":
			ctx.Stroke()
		case "fillStyle":
			ctx.SetFillStyle(op.Color)
		case "strokeStyle":
			ctx.SetStrokeStyle(op.Color)
		case "lineWidth":
			ctx.SetLineWidth(a[0])
		case "lineCap":
			ctx.SetLineCap(LineCap(a[0]))
		case "lineJoin":
			ctx.SetLineJoin(LineJoin(a[0]))
		case "clearRect":
			ctx.ClearRect(a[0], a[1], a[2], a[3])
		case "fillRect":
			ctx.FillRect(a[0], a[1], a[2], a[3])
		case "font":
			ctx.SetFont(op.Text)
		case "textAlign":
			ctx.SetTextAlign(TextAlign(a[0]))
		case "textBaseline":
			ctx.SetTextBaseline(TextBaseline(a[0]))
		case "fillText":
			ctx.FillText(op.Text, a[0], a[1])
		case "strokeText":
			ctx.StrokeText(op.Text, a[0], a[1])
		case "drawImage":
			ctx.DrawImage(op.Image, a[0], a[1], a[2], a[3])
		case "resize":
			if r, ok := ctx.(Resizer); ok {
				r.Resize(a[0], a[1])
			} else {
				Logger().Debug("replay: context cannot be resized")
			}
		default:
			panic("unknown canvas operation " + op.Name)
		}
	}
}

func (r *Recorder) Size() (float64, float64) {
	return r.W, r.H
}

func (r *Recorder) Save() {
	r.add("save")
}

func (r *Recorder) Restore() {
	r.add("restore")
}

func (r *Recorder) Translate(x, y float64) {
	r.add("translate", x, y)
}

func (r *Recorder) Rotate(theta float64) {
	r.add("rotate", theta)
}

func (r *Recorder) Scale(x, y float64) {
	r.add("scale", x, y)
}

func (r *Recorder) SetTransform(a, b, c, d, e, f float64) {
	r.add("setTransform", a, b, c, d, e, f)
}

func (r *Recorder) ResetTransform() {
	r.add("resetTransform")
}

func (r *Recorder) BeginPath() {
	r.add("beginPath")
}

func (r *Recorder) MoveTo(x, y float64) {
	r.add("moveTo", x, y)
}

func (r *Recorder) LineTo(x, y float64) {
	r.add("lineTo", x, y)
}

func (r *Recorder) QuadraticCurveTo(cpx, cpy, x, y float64) {
	r.add("quadraticCurveTo", cpx, cpy, x, y)
}

func (r *Recorder) BezierCurveTo(cp1x, cp1y, cp2x, cp2y, x, y float64) {
	r.add("bezierCurveTo", cp1x, cp1y, cp2x, cp2y, x, y)
}

func (r *Recorder) Rect(x, y, w, h float64) {
	r.add("rect", x, y, w, h)
}

func (r *Recorder) Arc(x, y, radius, start, end float64, ccw bool) {
	r.Ops = append(r.Ops, Op{Name: "arc", Args: []float64{x, y, radius, start, end}, CCW: ccw})
}

func (r *Recorder) Ellipse(x, y, rx, ry, rot, start, end float64, ccw bool) {
	r.Ops = append(r.Ops, Op{Name: "ellipse", Args: []float64{x, y, rx, ry, rot, start, end}, CCW: ccw})
}

func (r *Recorder) ClosePath() {
	r.add("closePath")
}

func (r *Recorder) Fill() {
	r.add("fill")
}

func (r *Recorder) Stroke() {
	r.add("stroke")
}

func (r *Recorder) SetFillStyle(c color.Color) {
	r.Ops = append(r.Ops, Op{Name: "fillStyle", Color: c})
}

func (r *Recorder) SetStrokeStyle(c color.Color) {
	r.Ops = append(r.Ops, Op{Name: "strokeStyle", Color: c})
}

func (r *Recorder) SetLineWidth(w float64) {
	r.add("lineWidth", w)
}

func (r *Recorder) SetLineCap(c LineCap) {
	r.add("lineCap", float64(c))
}

func (r *Recorder) SetLineJoin(j LineJoin) {
	r.add("lineJoin", float64(j))
}

func (r *Recorder) ClearRect(x, y, w, h float64) {
	r.add("clearRect", x, y, w, h)
}

func (r *Recorder) FillRect(x, y, w, h float64) {
	r.add("fillRect", x, y, w, h)
}

func (r *Recorder) SetFont(font string) {
	r.Ops = append(r.Ops, Op{Name: "font", Text: font})
}

func (r *Recorder) SetTextAlign(a TextAlign) {
	r.add("textAlign", float64(a))
}

func (r *Recorder) SetTextBaseline(b TextBaseline) {
	r.add("textBaseline", float64(b))
}

func (r *Recorder) FillText(text string, x, y float64) {
	r.Ops = append(r.Ops, Op{Name: "fillText", Args: []float64{x, y}, Text: text})
}

func (r *Recorder) StrokeText(text string, x, y float64) {
	r.Ops = append(r.Ops, Op{Name: "strokeText", Args: []float64{x, y}, Text: text})
}

// DrawImage records the image by reference, it must not be modified until the recording is replayed.
func (r *Recorder) DrawImage(img image.Image, x, y, w, h float64) {
	r.Ops = append(r.Ops, Op{Name: "drawImage", Args: []float64{x, y, w, h}, Image: img})
}

// Resize changes the size of the recorder and records the resize, so that replaying onto a resizable context resizes it as well.
func (r *Recorder) Resize(w, h float64) {
	r.W, r.H = w, h
	r.add("resize", w, h)
}
