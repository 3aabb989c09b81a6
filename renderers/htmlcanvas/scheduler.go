//go:build js

package htmlcanvas

import (
	"syscall/js"
	"time"
)

// FrameScheduler schedules frames with window.requestAnimationFrame.
type FrameScheduler struct {
	window js.Value
	cb     func(time.Duration)
	fn     js.Func
}

// NewFrameScheduler returns a scheduler for the global window. Release frees the JavaScript callback once the animation is done.
func NewFrameScheduler() *FrameScheduler {
	s := &FrameScheduler{window: js.Global()}
	s.fn = js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		cb := s.cb
		s.cb = nil
		if cb != nil {
			ms := 0.0
			if 0 < len(args) {
				ms = args[0].Float()
			}
			cb(time.Duration(ms * float64(time.Millisecond)))
		}
		return nil
	})
	return s
}

// RequestFrame schedules cb before the next repaint. JavaScript is single threaded, so only one callback is outstanding at a time.
func (s *FrameScheduler) RequestFrame(cb func(time.Duration)) {
	s.cb = cb
	s.window.Call("requestAnimationFrame", s.fn)
}

// Release frees the JavaScript callback, no frames may be requested afterwards.
func (s *FrameScheduler) Release() {
	s.cb = nil
	s.fn.Release()
}
