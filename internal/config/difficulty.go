package config

import "math"

// TimerRamp computes the countdown length for the next reach from the score.
// The ramp is monotonically non-increasing and never drops below the floor.
type TimerRamp struct {
	cfg     TimerConfig
	enabled bool
}

// NewTimerRamp creates a timer ramp from the difficulty config.
func NewTimerRamp(cfg DifficultyConfig) *TimerRamp {
	return &TimerRamp{
		cfg:     cfg.Timer,
		enabled: cfg.Enabled,
	}
}

// IsEnabled returns whether the timer shrinks with the score.
func (r *TimerRamp) IsEnabled() bool {
	return r.enabled && r.cfg.PerClimbMS > 0
}

// Base returns the timer length at score zero.
func (r *TimerRamp) Base() float64 {
	return math.Max(r.cfg.BaseMS, r.Floor())
}

// Floor returns the shortest timer the ramp can produce.
func (r *TimerRamp) Floor() float64 {
	return math.Max(0, r.cfg.FloorMS)
}

// Max returns the timer length in milliseconds after the given number of
// successful climbs: max(floor, base - score*perClimb).
func (r *TimerRamp) Max(score int) float64 {
	if !r.IsEnabled() {
		return r.Base()
	}
	return math.Max(r.Floor(), r.cfg.BaseMS-float64(score)*r.cfg.PerClimbMS)
}

// Level returns how far along the ramp the score is, from 0.0 to 1.0.
func (r *TimerRamp) Level(score int) float64 {
	span := r.Base() - r.Floor()
	if span <= 0 || !r.IsEnabled() {
		return 0
	}
	return clampF((r.Base()-r.Max(score))/span, 0.0, 1.0)
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
