// Package config provides YAML-based game configuration loading and
// difficulty management for the climber.
package config

// ClimbConfig contains all configuration for Wall Climber.
type ClimbConfig struct {
	Wall       WallConfig       `yaml:"wall"`
	Streak     StreakConfig     `yaml:"streak"`
	Climber    ClimberConfig    `yaml:"climber"`
	Scroll     ScrollConfig     `yaml:"scroll"`
	Theme      string           `yaml:"theme"` // "auto", "day" or "night"
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// WallConfig defines the hold ladder geometry.
type WallConfig struct {
	StepHeight   float64 `yaml:"step_height"`
	BottomOffset float64 `yaml:"bottom_offset"`
	RowHeight    float64 `yaml:"row_height"`
	SeedHolds    int     `yaml:"seed_holds"`
	CullSteps    float64 `yaml:"cull_steps"`
	CoverSteps   float64 `yaml:"cover_steps"`
}

// StreakConfig defines the anti-streak bias.
type StreakConfig struct {
	Limit int `yaml:"limit"`
}

// ClimberConfig defines climber animation durations in milliseconds.
type ClimberConfig struct {
	ReachMS float64 `yaml:"reach_ms"`
	PullMS  float64 `yaml:"pull_ms"`
	FallMS  float64 `yaml:"fall_ms"`
}

// ScrollConfig defines the scroll tween.
type ScrollConfig struct {
	MaxSpeed float64 `yaml:"max_speed"` // pixels per second
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled bool        `yaml:"enabled"`
	Timer   TimerConfig `yaml:"timer"`
}

// TimerConfig defines the countdown ramp.
type TimerConfig struct {
	BaseMS     float64 `yaml:"base_ms"`
	FloorMS    float64 `yaml:"floor_ms"`
	PerClimbMS float64 `yaml:"per_climb_ms"`
}

// Theme names accepted in config and on the command line.
const (
	ThemeAuto  = "auto"
	ThemeDay   = "day"
	ThemeNight = "night"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string into a preset.
// Unknown or empty strings yield "" (keep config defaults).
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
