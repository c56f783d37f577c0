package core

import "time"

// FrameClock tracks wall-clock deltas between frames for simulations that
// advance by elapsed seconds rather than fixed ticks. Deltas are capped so
// a stalled window does not produce one giant catch-up step.
type FrameClock struct {
	last    time.Time
	maxStep time.Duration
}

// NewFrameClock constructs a clock capping single deltas at maxStep.
func NewFrameClock(maxStep time.Duration) *FrameClock {
	if maxStep <= 0 {
		maxStep = 250 * time.Millisecond
	}
	return &FrameClock{maxStep: maxStep}
}

// Delta returns the elapsed seconds since the previous call. The first call
// returns zero.
func (c *FrameClock) Delta() float64 {
	now := time.Now()
	if c.last.IsZero() {
		c.last = now
		return 0
	}
	d := now.Sub(c.last)
	c.last = now
	if d > c.maxStep {
		d = c.maxStep
	}
	return d.Seconds()
}
