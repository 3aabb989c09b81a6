package jraw

import (
	"image"
	"image/color"
	"math"

	"go.uber.org/zap"
)

// Option configures a Jraw.
type Option func(*Jraw)

// WithIsolation brackets every shape with Save and Restore on the context, so that state changed by the context while drawing does not leak into later shapes.
func WithIsolation(isolate bool) Option {
	return func(j *Jraw) {
		j.isolate = isolate
	}
}

// WithLogger sets the logger of a Jraw, by default the package logger is used.
func WithLogger(l *zap.Logger) Option {
	return func(j *Jraw) {
		if l != nil {
			j.log = l
		}
	}
}

type style struct {
	fill, stroke           bool
	fillColor, strokeColor color.Color
	weight                 float64
	font                   Font
}

// Jraw is a fluent drawing API that forwards to a canvas context. Besides forwarding it keeps track of the cumulative translation, scale, and rotation, and a stack of those for PushMatrix and PopMatrix. A Jraw is not safe for concurrent use.
type Jraw struct {
	ctx     Context2D
	isolate bool
	log     *zap.Logger

	style
	styles    []style
	transform Transform
	stack     matrixStack
	err       error
}

// New returns a Jraw drawing on ctx. Fill and stroke are both enabled with the context's default colors.
func New(ctx Context2D, opts ...Option) *Jraw {
	j := &Jraw{
		ctx: ctx,
		log: Logger(),
		style: style{
			fill:        true,
			stroke:      true,
			fillColor:   DefaultStyle.FillColor,
			strokeColor: DefaultStyle.StrokeColor,
			weight:      DefaultStyle.LineWidth,
			font:        DefaultStyle.Font,
		},
		transform: IdentityTransform,
	}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// Context returns the underlying canvas context.
func (j *Jraw) Context() Context2D {
	return j.ctx
}

// Width returns the width of the drawing surface.
func (j *Jraw) Width() float64 {
	w, _ := j.ctx.Size()
	return w
}

// Height returns the height of the drawing surface.
func (j *Jraw) Height() float64 {
	_, h := j.ctx.Size()
	return h
}

// Err returns the first error encountered while drawing, caused by bad SVG path data or an unparsable font.
func (j *Jraw) Err() error {
	return j.err
}

func (j *Jraw) setErr(err error) {
	if j.err == nil {
		j.err = err
	}
	j.log.Debug("drawing failed", zap.Error(err))
}

////////////////////////////////////////////////////////////////

func (j *Jraw) shape(build func(ctx Context2D)) *Jraw {
	if j.isolate {
		j.ctx.Save()
	}
	j.ctx.BeginPath()
	build(j.ctx)
	if j.fill {
		j.ctx.Fill()
	}
	if j.stroke {
		j.ctx.Stroke()
	}
	if j.isolate {
		j.ctx.Restore()
	}
	return j
}

// Rect draws a rectangle with its top-left corner at (x,y).
func (j *Jraw) Rect(x, y, w, h float64) *Jraw {
	return j.shape(func(ctx Context2D) {
		ctx.Rect(x, y, w, h)
	})
}

// Square draws a square with its top-left corner at (x,y).
func (j *Jraw) Square(x, y, size float64) *Jraw {
	return j.Rect(x, y, size, size)
}

// Circle draws a circle around (x,y) with radius r.
func (j *Jraw) Circle(x, y, r float64) *Jraw {
	return j.shape(func(ctx Context2D) {
		ctx.Arc(x, y, r, 0.0, 2.0*math.Pi, false)
	})
}

// Ellipse draws an axis-aligned ellipse around (x,y) with radii rx and ry.
func (j *Jraw) Ellipse(x, y, rx, ry float64) *Jraw {
	return j.shape(func(ctx Context2D) {
		ctx.Ellipse(x, y, rx, ry, 0.0, 0.0, 2.0*math.Pi, false)
	})
}

// Arc draws a circular arc around (x,y) from angle start to end, clockwise on screen. A fill closes the arc with a chord.
func (j *Jraw) Arc(x, y, r, start, end float64) *Jraw {
	return j.shape(func(ctx Context2D) {
		ctx.Arc(x, y, r, start, end, false)
	})
}

// Line draws a line from (x1,y1) to (x2,y2). Lines are only stroked.
func (j *Jraw) Line(x1, y1, x2, y2 float64) *Jraw {
	if !j.stroke {
		return j
	}
	if j.isolate {
		j.ctx.Save()
	}
	j.ctx.BeginPath()
	j.ctx.MoveTo(x1, y1)
	j.ctx.LineTo(x2, y2)
	j.ctx.Stroke()
	if j.isolate {
		j.ctx.Restore()
	}
	return j
}

// Point draws a dot at (x,y) in the stroke color with the stroke weight as diameter.
func (j *Jraw) Point(x, y float64) *Jraw {
	if !j.stroke {
		return j
	}
	j.ctx.Save()
	j.ctx.SetFillStyle(j.strokeColor)
	j.ctx.BeginPath()
	j.ctx.Arc(x, y, j.weight/2.0, 0.0, 2.0*math.Pi, false)
	j.ctx.Fill()
	j.ctx.Restore()
	return j
}

// Triangle draws a triangle through three points.
func (j *Jraw) Triangle(x1, y1, x2, y2, x3, y3 float64) *Jraw {
	return j.shape(func(ctx Context2D) {
		ctx.MoveTo(x1, y1)
		ctx.LineTo(x2, y2)
		ctx.LineTo(x3, y3)
		ctx.ClosePath()
	})
}

// Polygon draws a closed polygon through the given points. Fewer than two points draw nothing.
func (j *Jraw) Polygon(points ...*Vector) *Jraw {
	if len(points) < 2 {
		return j
	}
	return j.shape(func(ctx Context2D) {
		ctx.MoveTo(points[0].X, points[0].Y)
		for _, p := range points[1:] {
			ctx.LineTo(p.X, p.Y)
		}
		ctx.ClosePath()
	})
}

// Path draws SVG path data. When the data cannot be parsed nothing is drawn and the error is available from Err.
func (j *Jraw) Path(d string) *Jraw {
	rec := &Recorder{}
	if err := ParseSVGPath(d, rec); err != nil {
		j.setErr(err)
		return j
	}
	return j.shape(rec.Replay)
}

// Text draws text anchored at (x,y) with the current font and alignment. Like shapes it is filled if filling is enabled and stroked if stroking is enabled.
func (j *Jraw) Text(text string, x, y float64) *Jraw {
	if j.isolate {
		j.ctx.Save()
	}
	if j.fill {
		j.ctx.FillText(text, x, y)
	}
	if j.stroke {
		j.ctx.StrokeText(text, x, y)
	}
	if j.isolate {
		j.ctx.Restore()
	}
	return j
}

// TextWidth returns the width of text set in the current font.
func (j *Jraw) TextWidth(text string) float64 {
	return MeasureText(text, j.font)
}

// Image draws img at its natural size with its top-left corner at (x,y).
func (j *Jraw) Image(img image.Image, x, y float64) *Jraw {
	size := img.Bounds().Size()
	return j.ImageRect(img, x, y, float64(size.X), float64(size.Y))
}

// ImageRect draws img scaled into the rectangle (x,y,w,h).
func (j *Jraw) ImageRect(img image.Image, x, y, w, h float64) *Jraw {
	j.ctx.DrawImage(img, x, y, w, h)
	return j
}

////////////////////////////////////////////////////////////////

// Fill sets the fill color and enables filling of subsequent shapes.
func (j *Jraw) Fill(c color.Color) *Jraw {
	j.fill = true
	j.fillColor = c
	j.ctx.SetFillStyle(c)
	return j
}

// NoFill disables filling of subsequent shapes.
func (j *Jraw) NoFill() *Jraw {
	j.fill = false
	return j
}

// Stroke sets the stroke color and enables stroking of subsequent shapes.
func (j *Jraw) Stroke(c color.Color) *Jraw {
	j.stroke = true
	j.strokeColor = c
	j.ctx.SetStrokeStyle(c)
	return j
}

// NoStroke disables stroking of subsequent shapes.
func (j *Jraw) NoStroke() *Jraw {
	j.stroke = false
	return j
}

// StrokeWeight sets the line width.
func (j *Jraw) StrokeWeight(w float64) *Jraw {
	j.weight = w
	j.ctx.SetLineWidth(w)
	return j
}

// LineCap sets the shape of line end points.
func (j *Jraw) LineCap(c LineCap) *Jraw {
	j.ctx.SetLineCap(c)
	return j
}

// LineJoin sets the shape of line corners.
func (j *Jraw) LineJoin(lj LineJoin) *Jraw {
	j.ctx.SetLineJoin(lj)
	return j
}

// Font sets the font from a CSS font shorthand such as "bold 16px sans-serif". An unparsable font is kept on Err and the font does not change.
func (j *Jraw) Font(font string) *Jraw {
	f, err := ParseFont(font)
	if err != nil {
		j.setErr(err)
		return j
	}
	j.font = f
	j.ctx.SetFont(font)
	return j
}

// TextAlign sets the horizontal alignment of text.
func (j *Jraw) TextAlign(a TextAlign) *Jraw {
	j.ctx.SetTextAlign(a)
	return j
}

// TextBaseline sets the vertical alignment of text.
func (j *Jraw) TextBaseline(b TextBaseline) *Jraw {
	j.ctx.SetTextBaseline(b)
	return j
}

// CurrentFont returns the current font.
func (j *Jraw) CurrentFont() Font {
	return j.font
}

// FillColor returns the current fill color and whether filling is enabled.
func (j *Jraw) FillColor() (color.Color, bool) {
	return j.fillColor, j.fill
}

// StrokeColor returns the current stroke color and whether stroking is enabled.
func (j *Jraw) StrokeColor() (color.Color, bool) {
	return j.strokeColor, j.stroke
}

// Background fills the whole surface with c, regardless of the current transformation.
func (j *Jraw) Background(c color.Color) *Jraw {
	w, h := j.ctx.Size()
	j.ctx.Save()
	j.ctx.ResetTransform()
	j.ctx.SetFillStyle(c)
	j.ctx.FillRect(0.0, 0.0, w, h)
	j.ctx.Restore()
	return j
}

// Clear clears the whole surface to transparent, regardless of the current transformation.
func (j *Jraw) Clear() *Jraw {
	w, h := j.ctx.Size()
	j.ctx.Save()
	j.ctx.ResetTransform()
	j.ctx.ClearRect(0.0, 0.0, w, h)
	j.ctx.Restore()
	return j
}

// ResizeCanvas resizes the drawing surface if the context supports it. Like resizing a canvas element this clears the surface and resets the context, so the transformation is reset to the identity while the matrix stack is kept, and the current colors, weight, and font are set again.
func (j *Jraw) ResizeCanvas(w, h float64) *Jraw {
	r, ok := j.ctx.(Resizer)
	if !ok {
		j.log.Debug("context cannot be resized", zap.Float64("w", w), zap.Float64("h", h))
		return j
	}
	r.Resize(w, h)
	j.transform = IdentityTransform
	j.ctx.SetFillStyle(j.fillColor)
	j.ctx.SetStrokeStyle(j.strokeColor)
	j.ctx.SetLineWidth(j.weight)
	j.ctx.SetFont(j.font.String())
	return j
}

////////////////////////////////////////////////////////////////

// Translate moves the origin by (x,y).
func (j *Jraw) Translate(x, y float64) *Jraw {
	j.ctx.Translate(x, y)
	j.transform.Translation.Add(Vector{x, y})
	return j
}

// Rotate rotates by theta radians, clockwise on screen.
func (j *Jraw) Rotate(theta float64) *Jraw {
	j.ctx.Rotate(theta)
	j.transform.Rotation += theta
	return j
}

// Scale scales by x and y.
func (j *Jraw) Scale(x, y float64) *Jraw {
	j.ctx.Scale(x, y)
	j.transform.Scale.X *= x
	j.transform.Scale.Y *= y
	return j
}

// ResetMatrix resets the transformation to the identity. The matrix stack is kept.
func (j *Jraw) ResetMatrix() *Jraw {
	j.ctx.ResetTransform()
	j.transform = IdentityTransform
	return j
}

// Translation returns the cumulative translation.
func (j *Jraw) Translation() Vector {
	return j.transform.Translation
}

// ScaleFactor returns the cumulative scale.
func (j *Jraw) ScaleFactor() Vector {
	return j.transform.Scale
}

// Rotation returns the cumulative rotation in radians.
func (j *Jraw) Rotation() float64 {
	return j.transform.Rotation
}

// Transform returns a snapshot of the cumulative transformation.
func (j *Jraw) Transform() Transform {
	return j.transform
}

// Depth returns the number of transforms on the matrix stack.
func (j *Jraw) Depth() int {
	return len(j.stack)
}

// PushMatrix saves the current transformation on the matrix stack.
func (j *Jraw) PushMatrix() *Jraw {
	j.stack.push(j.transform)
	return j
}

// PopMatrix restores the last pushed transformation by resetting the context's transformation and reapplying the translation, rotation, and scale. Popping an empty stack keeps the current transformation, but the context is still reset and the current transformation reapplied.
func (j *Jraw) PopMatrix() *Jraw {
	t, ok := j.stack.pop()
	if !ok {
		j.log.Debug("pop on empty matrix stack")
		t = j.transform
	}
	j.apply(t)
	return j
}

func (j *Jraw) apply(t Transform) {
	j.ctx.ResetTransform()
	j.ctx.Translate(t.Translation.X, t.Translation.Y)
	j.ctx.Rotate(t.Rotation)
	j.ctx.Scale(t.Scale.X, t.Scale.Y)
	j.transform = t
}

// Isolate calls fn with the context state and matrix saved, and restores both afterwards, including fill and stroke settings.
func (j *Jraw) Isolate(fn func(*Jraw)) *Jraw {
	j.styles = append(j.styles, j.style)
	j.ctx.Save()
	j.PushMatrix()
	stack := append(matrixStack(nil), j.stack...)
	fn(j)
	if n := len(j.stack); n != len(stack) {
		j.log.Debug("unbalanced matrix stack in isolation", zap.Int("want", len(stack)), zap.Int("got", n))
		j.stack = stack
	}
	j.PopMatrix()
	j.ctx.Restore()
	j.style = j.styles[len(j.styles)-1]
	j.styles = j.styles[:len(j.styles)-1]
	return j
}
