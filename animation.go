package jraw

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// Scheduler schedules a callback before the next frame is painted, like requestAnimationFrame. The callback receives the time elapsed since the scheduler's origin.
type Scheduler interface {
	RequestFrame(func(ts time.Duration))
}

// Frame describes the frame being drawn.
type Frame struct {
	Count uint64        // frames drawn before this one
	Time  time.Duration // timestamp reported by the scheduler
	Delta time.Duration // time since the previous frame, zero for the first
}

// FrameFunc draws a single frame.
type FrameFunc func(Frame)

// Animator calls a frame function once per frame while it is running. At most one frame is scheduled at any time, and scheduling stops as soon as the animator is stopped or the frame function is removed.
type Animator struct {
	scheduler Scheduler

	mu      sync.Mutex
	fn      FrameFunc
	running bool
	pending bool
	frames  uint64
	last    time.Duration
}

// NewAnimator returns a stopped animator that schedules frames on s.
func NewAnimator(s Scheduler) *Animator {
	return &Animator{scheduler: s}
}

// Loop sets the frame function. Setting nil stops a running animation at the next frame.
func (a *Animator) Loop(fn FrameFunc) *Animator {
	a.mu.Lock()
	a.fn = fn
	a.mu.Unlock()
	return a
}

// Start starts the animation. Starting a running animator does nothing.
func (a *Animator) Start() *Animator {
	a.mu.Lock()
	if a.running {
		a.mu.Unlock()
		return a
	}
	a.running = true
	a.frames = 0
	schedule := !a.pending
	a.pending = true
	a.mu.Unlock()

	Logger().Debug("animation started")
	if schedule {
		a.scheduler.RequestFrame(a.tick)
	}
	return a
}

// Stop stops the animation, the pending frame will not draw.
func (a *Animator) Stop() *Animator {
	a.mu.Lock()
	wasRunning := a.running
	a.running = false
	a.mu.Unlock()

	if wasRunning {
		Logger().Debug("animation stopped")
	}
	return a
}

// Toggle stops a running animation and starts a stopped one.
func (a *Animator) Toggle() *Animator {
	if a.Running() {
		return a.Stop()
	}
	return a.Start()
}

// Running returns true if the animator is started.
func (a *Animator) Running() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.running
}

// Frames returns the number of frames drawn since the last start.
func (a *Animator) Frames() uint64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.frames
}

func (a *Animator) tick(ts time.Duration) {
	a.mu.Lock()
	a.pending = false
	fn := a.fn
	if !a.running || fn == nil {
		if a.running {
			Logger().Debug("animation stopped", zap.String("reason", "no frame function"))
		}
		a.running = false
		a.mu.Unlock()
		return
	}
	frame := Frame{Count: a.frames, Time: ts}
	if 0 < a.frames {
		frame.Delta = ts - a.last
	}
	a.last = ts
	a.mu.Unlock()

	fn(frame)

	a.mu.Lock()
	a.frames++
	schedule := a.running && !a.pending
	if schedule {
		a.pending = true
	}
	a.mu.Unlock()

	if schedule {
		a.scheduler.RequestFrame(a.tick)
	}
}
