package core

import "time"

// Frame timing limits shared by every frame driver.
const (
	// MaxFrameDelta bounds a single simulation step.
	MaxFrameDelta = 50 * time.Millisecond

	// DefaultFrameDelta is used when there is no previous timestamp.
	DefaultFrameDelta = 16700 * time.Microsecond
)

// FrameClock turns monotonic frame timestamps into clamped frame deltas.
// The zero value is ready to use.
type FrameClock struct {
	last    time.Time
	started bool
}

// Tick records a frame at now and returns the delta since the previous one.
// The first frame, and any frame whose timestamp does not advance, yields
// DefaultFrameDelta. Deltas are capped at MaxFrameDelta.
func (c *FrameClock) Tick(now time.Time) time.Duration {
	dt := DefaultFrameDelta
	if c.started {
		if d := now.Sub(c.last); d > 0 {
			dt = d
		}
	}
	c.last = now
	c.started = true

	if dt > MaxFrameDelta {
		dt = MaxFrameDelta
	}
	return dt
}

// Millis converts a duration to floating-point milliseconds.
func Millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
