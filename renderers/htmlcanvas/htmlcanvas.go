//go:build js

package htmlcanvas

import (
	"image"
	"image/color"
	"syscall/js"

	"github.com/jrawgo/jraw"
	"golang.org/x/image/draw"
)

// HTMLCanvas is a canvas context that forwards to the 2D context of an HTML canvas element.
type HTMLCanvas struct {
	el            js.Value
	ctx           js.Value
	width, height float64
}

// New returns a context for the canvas element c, resized to width and height pixels.
func New(c js.Value, width, height float64) *HTMLCanvas {
	c.Set("width", width)
	c.Set("height", height)

	ctx := c.Call("getContext", "2d")
	ctx.Call("clearRect", 0, 0, width, height)
	ctx.Set("imageSmoothingEnabled", true)
	ctx.Set("imageSmoothingQuality", "high")
	return &HTMLCanvas{
		el:     c,
		ctx:    ctx,
		width:  width,
		height: height,
	}
}

// ByID returns a context for the canvas element with the given id, keeping its size.
func ByID(id string) *HTMLCanvas {
	c := js.Global().Get("document").Call("getElementById", id)
	if c.IsNull() || c.IsUndefined() {
		panic("HTML Canvas: no element with id " + id)
	}
	return &HTMLCanvas{
		el:     c,
		ctx:    c.Call("getContext", "2d"),
		width:  c.Get("width").Float(),
		height: c.Get("height").Float(),
	}
}

// Size returns the size of the canvas in pixels.
func (r *HTMLCanvas) Size() (float64, float64) {
	return r.width, r.height
}

// Resize sets the size of the canvas element, which clears it and resets the context.
func (r *HTMLCanvas) Resize(w, h float64) {
	r.el.Set("width", w)
	r.el.Set("height", h)
	r.width, r.height = w, h
}

func (r *HTMLCanvas) Save() {
	r.ctx.Call("save")
}

func (r *HTMLCanvas) Restore() {
	r.ctx.Call("restore")
}

func (r *HTMLCanvas) Translate(x, y float64) {
	r.ctx.Call("translate", x, y)
}

func (r *HTMLCanvas) Rotate(theta float64) {
	r.ctx.Call("rotate", theta)
}

func (r *HTMLCanvas) Scale(x, y float64) {
	r.ctx.Call("scale", x, y)
}

func (r *HTMLCanvas) SetTransform(a, b, c, d, e, f float64) {
	r.ctx.Call("setTransform", a, b, c, d, e, f)
}

func (r *HTMLCanvas) ResetTransform() {
	r.ctx.Call("setTransform", 1.0, 0.0, 0.0, 1.0, 0.0, 0.0)
}

func (r *HTMLCanvas) BeginPath() {
	r.ctx.Call("beginPath")
}

func (r *HTMLCanvas) MoveTo(x, y float64) {
	r.ctx.Call("moveTo", x, y)
}

func (r *HTMLCanvas) LineTo(x, y float64) {
	r.ctx.Call("lineTo", x, y)
}

func (r *HTMLCanvas) QuadraticCurveTo(cpx, cpy, x, y float64) {
	r.ctx.Call("quadraticCurveTo", cpx, cpy, x, y)
}

func (r *HTMLCanvas) BezierCurveTo(cp1x, cp1y, cp2x, cp2y, x, y float64) {
	r.ctx.Call("bezierCurveTo", cp1x, cp1y, cp2x, cp2y, x, y)
}

func (r *HTMLCanvas) Rect(x, y, w, h float64) {
	r.ctx.Call("rect", x, y, w, h)
}

func (r *HTMLCanvas) Arc(x, y, radius, start, end float64, ccw bool) {
	r.ctx.Call("arc", x, y, radius, start, end, ccw)
}

func (r *HTMLCanvas) Ellipse(x, y, rx, ry, rot, start, end float64, ccw bool) {
	r.ctx.Call("ellipse", x, y, rx, ry, rot, start, end, ccw)
}

func (r *HTMLCanvas) ClosePath() {
	r.ctx.Call("closePath")
}

func (r *HTMLCanvas) Fill() {
	r.ctx.Call("fill")
}

func (r *HTMLCanvas) Stroke() {
	r.ctx.Call("stroke")
}

func (r *HTMLCanvas) SetFillStyle(c color.Color) {
	r.ctx.Set("fillStyle", jraw.CSSColor(c))
}

func (r *HTMLCanvas) SetStrokeStyle(c color.Color) {
	r.ctx.Set("strokeStyle", jraw.CSSColor(c))
}

func (r *HTMLCanvas) SetLineWidth(w float64) {
	r.ctx.Set("lineWidth", w)
}

func (r *HTMLCanvas) SetLineCap(c jraw.LineCap) {
	r.ctx.Set("lineCap", c.String())
}

func (r *HTMLCanvas) SetLineJoin(j jraw.LineJoin) {
	r.ctx.Set("lineJoin", j.String())
}

func (r *HTMLCanvas) ClearRect(x, y, w, h float64) {
	r.ctx.Call("clearRect", x, y, w, h)
}

func (r *HTMLCanvas) FillRect(x, y, w, h float64) {
	r.ctx.Call("fillRect", x, y, w, h)
}

func (r *HTMLCanvas) SetFont(font string) {
	r.ctx.Set("font", font)
}

func (r *HTMLCanvas) SetTextAlign(a jraw.TextAlign) {
	r.ctx.Set("textAlign", a.String())
}

func (r *HTMLCanvas) SetTextBaseline(b jraw.TextBaseline) {
	r.ctx.Set("textBaseline", b.String())
}

func (r *HTMLCanvas) FillText(text string, x, y float64) {
	r.ctx.Call("fillText", text, x, y)
}

func (r *HTMLCanvas) StrokeText(text string, x, y float64) {
	r.ctx.Call("strokeText", text, x, y)
}

// DrawImage copies img to an offscreen canvas element and draws that into the rectangle (x,y,w,h).
func (r *HTMLCanvas) DrawImage(img image.Image, x, y, w, h float64) {
	size := img.Bounds().Size()
	if size.X == 0 || size.Y == 0 {
		return
	}
	nrgba := image.NewNRGBA(image.Rect(0, 0, size.X, size.Y))
	draw.Draw(nrgba, nrgba.Bounds(), img, img.Bounds().Min, draw.Src)

	src := js.Global().Get("document").Call("createElement", "canvas")
	src.Set("width", size.X)
	src.Set("height", size.Y)
	srcCtx := src.Call("getContext", "2d")
	data := srcCtx.Call("createImageData", size.X, size.Y)
	js.CopyBytesToJS(data.Get("data"), nrgba.Pix)
	srcCtx.Call("putImageData", data, 0, 0)
	r.ctx.Call("drawImage", src, x, y, w, h)
}
