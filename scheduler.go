package jraw

import (
	"sync"
	"time"
)

// TimerScheduler calls frame callbacks from a timer at a fixed frame rate, for use outside the browser.
type TimerScheduler struct {
	interval time.Duration
	origin   time.Time

	mu   sync.Mutex
	next time.Time
}

// NewTimerScheduler returns a scheduler running at fps frames per second, 60 if fps is not positive.
func NewTimerScheduler(fps int) *TimerScheduler {
	if fps <= 0 {
		fps = 60
	}
	now := time.Now()
	return &TimerScheduler{
		interval: time.Second / time.Duration(fps),
		origin:   now,
		next:     now,
	}
}

// RequestFrame calls cb at the next frame boundary on its own goroutine.
func (s *TimerScheduler) RequestFrame(cb func(time.Duration)) {
	s.mu.Lock()
	now := time.Now()
	s.next = s.next.Add(s.interval)
	if s.next.Before(now) {
		// drop frames instead of catching up
		s.next = now
	}
	wait := s.next.Sub(now)
	s.mu.Unlock()

	time.AfterFunc(wait, func() {
		cb(time.Since(s.origin))
	})
}

// FrameQueue collects frame callbacks until Advance is called, for frame loops driven from outside such as a game loop or a test.
type FrameQueue struct {
	mu      sync.Mutex
	pending []func(time.Duration)
	now     time.Duration
}

// RequestFrame queues cb for the next call to Advance.
func (q *FrameQueue) RequestFrame(cb func(time.Duration)) {
	q.mu.Lock()
	q.pending = append(q.pending, cb)
	q.mu.Unlock()
}

// Len returns the number of queued callbacks.
func (q *FrameQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// Advance moves the clock forward by dt and runs the callbacks queued so far. Callbacks queued while running are kept for the next call.
func (q *FrameQueue) Advance(dt time.Duration) int {
	q.mu.Lock()
	q.now += dt
	now := q.now
	pending := q.pending
	q.pending = nil
	q.mu.Unlock()

	for _, cb := range pending {
		cb(now)
	}
	return len(pending)
}
