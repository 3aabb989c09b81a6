package jraw

import (
	"image"
	"image/color"

	"go.uber.org/zap"
)

// LineCap is the shape of the end points of stroked lines.
type LineCap int

// see LineCap
const (
	ButtCap LineCap = iota
	RoundCap
	SquareCap
)

func (c LineCap) String() string {
	switch c {
	case RoundCap:
		return "round"
	case SquareCap:
		return "square"
	}
	return "butt"
}

// LineJoin is the shape of the corners where stroked segments meet.
type LineJoin int

// see LineJoin
const (
	MiterJoin LineJoin = iota
	RoundJoin
	BevelJoin
)

func (j LineJoin) String() string {
	switch j {
	case RoundJoin:
		return "round"
	case BevelJoin:
		return "bevel"
	}
	return "miter"
}

// Context2D is the subset of the HTML5 canvas 2D context that Jraw draws with. Angles are in radians and the y-axis points down.
type Context2D interface {
	PathBuilder

	// Size returns the size of the drawing surface in pixels.
	Size() (float64, float64)

	Save()
	Restore()

	Translate(x, y float64)
	Rotate(theta float64)
	Scale(x, y float64)
	SetTransform(a, b, c, d, e, f float64)
	ResetTransform()

	BeginPath()
	Fill()
	Stroke()

	SetFillStyle(color.Color)
	SetStrokeStyle(color.Color)
	SetLineWidth(float64)
	SetLineCap(LineCap)
	SetLineJoin(LineJoin)

	ClearRect(x, y, w, h float64)
	FillRect(x, y, w, h float64)

	// SetFont sets the font as a CSS font shorthand, invalid fonts are ignored.
	SetFont(string)
	SetTextAlign(TextAlign)
	SetTextBaseline(TextBaseline)
	FillText(text string, x, y float64)
	StrokeText(text string, x, y float64)

	// DrawImage draws img scaled into the rectangle (x,y,w,h).
	DrawImage(img image.Image, x, y, w, h float64)
}

// Resizer is implemented by contexts whose surface can be resized. As with the canvas element, resizing clears the surface and resets the context state.
type Resizer interface {
	Resize(w, h float64)
}

// Style is the drawing state saved and restored by Save and Restore.
type Style struct {
	FillColor   color.Color
	StrokeColor color.Color
	LineWidth   float64
	LineCap     LineCap
	LineJoin    LineJoin

	Font         Font
	TextAlign    TextAlign
	TextBaseline TextBaseline
}

// DefaultStyle is the initial style of a canvas context.
var DefaultStyle = Style{
	FillColor:   Black,
	StrokeColor: Black,
	LineWidth:   1.0,
	LineCap:     ButtCap,
	LineJoin:    MiterJoin,

	Font:         DefaultFont,
	TextAlign:    StartAlign,
	TextBaseline: AlphabeticBaseline,
}

// State is the drawing state of a software context: the style, the current transformation, the path, and the stack of saved states. Backends embed it and only implement the drawing operations.
type State struct {
	Style
	View  Matrix
	Path  *Path
	stack []savedState
}

type savedState struct {
	style Style
	view  Matrix
}

// NewState returns the initial canvas state.
func NewState() State {
	return State{
		Style: DefaultStyle,
		View:  Identity,
		Path:  NewPath(),
	}
}

// Save pushes the style and transformation onto the stack.
func (s *State) Save() {
	s.stack = append(s.stack, savedState{s.Style, s.View})
}

// Restore pops the last saved style and transformation, it does nothing when the stack is empty.
func (s *State) Restore() {
	if len(s.stack) == 0 {
		return
	}
	saved := s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
	s.Style = saved.style
	s.setView(saved.view)
}

func (s *State) setView(m Matrix) {
	s.View = m
	s.Path.SetMatrix(m)
}

func (s *State) Translate(x, y float64) {
	s.setView(s.View.Translate(x, y))
}

func (s *State) Rotate(theta float64) {
	s.setView(s.View.Rotate(theta))
}

func (s *State) Scale(x, y float64) {
	s.setView(s.View.Scale(x, y))
}

func (s *State) SetTransform(a, b, c, d, e, f float64) {
	s.setView(NewMatrix(a, b, c, d, e, f))
}

func (s *State) ResetTransform() {
	s.setView(Identity)
}

func (s *State) BeginPath() {
	s.Path.Reset()
}

func (s *State) MoveTo(x, y float64) {
	s.Path.MoveTo(x, y)
}

func (s *State) LineTo(x, y float64) {
	s.Path.LineTo(x, y)
}

func (s *State) QuadraticCurveTo(cpx, cpy, x, y float64) {
	s.Path.QuadraticCurveTo(cpx, cpy, x, y)
}

func (s *State) BezierCurveTo(cp1x, cp1y, cp2x, cp2y, x, y float64) {
	s.Path.BezierCurveTo(cp1x, cp1y, cp2x, cp2y, x, y)
}

func (s *State) Rect(x, y, w, h float64) {
	s.Path.Rect(x, y, w, h)
}

func (s *State) Arc(x, y, r, start, end float64, ccw bool) {
	s.Path.Arc(x, y, r, start, end, ccw)
}

func (s *State) Ellipse(x, y, rx, ry, rot, start, end float64, ccw bool) {
	s.Path.Ellipse(x, y, rx, ry, rot, start, end, ccw)
}

func (s *State) ClosePath() {
	s.Path.ClosePath()
}

func (s *State) SetFillStyle(c color.Color) {
	s.FillColor = c
}

func (s *State) SetStrokeStyle(c color.Color) {
	s.StrokeColor = c
}

func (s *State) SetLineWidth(w float64) {
	// the canvas ignores non-positive widths
	if 0.0 < w {
		s.LineWidth = w
	}
}

func (s *State) SetLineCap(c LineCap) {
	s.LineCap = c
}

func (s *State) SetLineJoin(j LineJoin) {
	s.LineJoin = j
}

func (s *State) SetFont(font string) {
	if f, err := ParseFont(font); err == nil {
		s.Font = f
	}
}

func (s *State) SetTextAlign(a TextAlign) {
	s.TextAlign = a
}

func (s *State) SetTextBaseline(b TextBaseline) {
	s.TextBaseline = b
}

// TextPath returns the outline of text anchored at (x,y) with the current font and alignment, transformed by the current view as a separate path. Text does not affect the current path.
func (s *State) TextPath(text string, x, y float64) *Path {
	p := NewPath()
	p.SetMatrix(s.View)
	if err := TextOutline(p, text, x, y, s.Font, s.TextAlign, s.TextBaseline); err != nil {
		Logger().Debug("text outline failed", zap.String("text", text), zap.Error(err))
	}
	return p
}

// ImageMatrix returns the transformation from the pixel space of img to the device space for an image drawn into the rectangle (x,y,w,h).
func (s *State) ImageMatrix(img image.Image, x, y, w, h float64) Matrix {
	size := img.Bounds().Size()
	min := img.Bounds().Min
	return s.View.Translate(x, y).Scale(w/float64(size.X), h/float64(size.Y)).Translate(-float64(min.X), -float64(min.Y))
}

// Depth returns the number of saved states.
func (s *State) Depth() int {
	return len(s.stack)
}

// RectPath returns the rectangle (x,y,w,h) transformed by the current view as a separate path, for ClearRect and FillRect which leave the current path untouched.
func (s *State) RectPath(x, y, w, h float64) *Path {
	p := NewPath()
	p.SetMatrix(s.View)
	p.Rect(x, y, w, h)
	return p
}
