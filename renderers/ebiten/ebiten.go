package ebiten

import (
	"image"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jrawgo/jraw"
	"github.com/jrawgo/jraw/renderers/rasterizer"
)

// Options are the window options.
type Options struct {
	Title string
	Scale int // window pixels per canvas pixel
	TPS   int // ticks per second, each tick advances the animation by one frame
}

// DefaultOptions are the default options.
var DefaultOptions = Options{
	Title: "jraw",
	Scale: 1,
	TPS:   60,
}

// Window shows a drawing in a desktop window. The drawing is rasterized in software and copied to the screen every frame, animations are driven by the window's game loop.
type Window struct {
	ras    *rasterizer.Rasterizer
	pixels *ebiten.Image
	j      *jraw.Jraw
	queue  *jraw.FrameQueue
	anim   *jraw.Animator
	opts   Options
}

// New returns a window with a canvas of width by height pixels.
func New(width, height int, opts *Options) *Window {
	if opts == nil {
		defaultOptions := DefaultOptions
		opts = &defaultOptions
	}
	if opts.Scale < 1 {
		opts.Scale = 1
	}
	if opts.TPS < 1 {
		opts.TPS = DefaultOptions.TPS
	}

	ras := rasterizer.New(image.NewRGBA(image.Rect(0, 0, width, height)))
	queue := &jraw.FrameQueue{}
	return &Window{
		ras:   ras,
		j:     jraw.New(ras),
		queue: queue,
		anim:  jraw.NewAnimator(queue),
		opts:  *opts,
	}
}

// Jraw returns the drawing API of the canvas.
func (w *Window) Jraw() *jraw.Jraw {
	return w.j
}

// Animator returns the animator driven by the window, one frame per tick.
func (w *Window) Animator() *jraw.Animator {
	return w.anim
}

// Image returns the canvas image, which is replaced when the canvas is resized.
func (w *Window) Image() *image.RGBA {
	return w.ras.Image().(*image.RGBA)
}

// Update implements ebiten.Game.
func (w *Window) Update() error {
	w.queue.Advance(time.Second / time.Duration(w.opts.TPS))
	return nil
}

// Draw implements ebiten.Game.
func (w *Window) Draw(screen *ebiten.Image) {
	img := w.Image()
	size := img.Bounds().Size()
	if w.pixels == nil || w.pixels.Bounds().Size() != size {
		if w.pixels != nil {
			w.pixels.Deallocate()
		}
		w.pixels = ebiten.NewImage(size.X, size.Y)
	}
	w.pixels.WritePixels(img.Pix)
	screen.DrawImage(w.pixels, nil)
}

// Layout implements ebiten.Game.
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	size := w.Image().Bounds().Size()
	return size.X, size.Y
}

// Run opens the window and blocks until it is closed.
func (w *Window) Run() error {
	size := w.Image().Bounds().Size()
	ebiten.SetWindowTitle(w.opts.Title)
	ebiten.SetWindowSize(size.X*w.opts.Scale, size.Y*w.opts.Scale)
	ebiten.SetTPS(w.opts.TPS)
	return ebiten.RunGame(w)
}
