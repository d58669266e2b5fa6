package core

import "time"

// FrameClock measures the wall-clock time elapsed between frames. Frontends
// that do not hand out a frame delta of their own feed its result into the
// game's Update.
type FrameClock struct {
	now  func() time.Time
	last time.Time
}

// NewFrameClock constructs a clock reading time from now. A nil now uses
// time.Now.
func NewFrameClock(now func() time.Time) *FrameClock {
	if now == nil {
		now = time.Now
	}
	return &FrameClock{now: now}
}

// Delta returns the seconds elapsed since the previous call. The first call
// returns 0.
func (f *FrameClock) Delta() float64 {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	if delta < 0 {
		return 0
	}
	return delta.Seconds()
}

// Reset forgets the previous frame so the next Delta returns 0.
func (f *FrameClock) Reset() {
	f.last = time.Time{}
}

// FrameInterval converts a frames-per-second rate into a frame duration.
func FrameInterval(fps int) time.Duration {
	if fps <= 0 {
		fps = 60
	}
	return time.Second / time.Duration(fps)
}
