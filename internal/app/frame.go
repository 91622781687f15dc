package app

import "time"

// frameClock measures per-frame delta time and a once-per-second FPS count.
type frameClock struct {
	last      time.Time
	fpsStart  time.Time
	frames    int
	budget    time.Duration // zero means unlimited
	lastCount int
}

func newFrameClock(now time.Time, fpsLimit int) *frameClock {
	c := &frameClock{last: now, fpsStart: now}
	if fpsLimit > 0 {
		c.budget = time.Second / time.Duration(fpsLimit)
	}
	return c
}

// tick starts a new frame and returns the time since the previous one in
// fractional milliseconds.
func (c *frameClock) tick(now time.Time) float32 {
	dt := now.Sub(c.last)
	c.last = now
	return float32(dt.Seconds() * 1000)
}

// frameDone counts a finished frame. It returns the frame count of the
// last full second once that second has elapsed.
func (c *frameClock) frameDone(now time.Time) (int, bool) {
	c.frames++
	if now.Sub(c.fpsStart) < time.Second {
		return 0, false
	}
	c.lastCount = c.frames
	c.frames = 0
	c.fpsStart = now
	return c.lastCount, true
}

// idle returns how long to sleep so the frame that began at c.last does
// not finish before the frame budget.
func (c *frameClock) idle(now time.Time) time.Duration {
	if c.budget == 0 {
		return 0
	}
	spent := now.Sub(c.last)
	if spent >= c.budget {
		return 0
	}
	return c.budget - spent
}
