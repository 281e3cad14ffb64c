package config

import (
	_ "embed"
)

//go:embed defaults/climb.yaml
var defaultClimbYAML []byte

// DefaultClimbConfig returns the hardcoded Wall Climber configuration.
// It mirrors defaults/climb.yaml and is used if the embedded file cannot be parsed.
func DefaultClimbConfig() ClimbConfig {
	return ClimbConfig{
		Wall: WallConfig{
			StepHeight:   90,
			BottomOffset: 120,
			RowHeight:    30,
			SeedHolds:    7,
			CullSteps:    2,
			CoverSteps:   6,
		},
		Streak: StreakConfig{
			Limit: 4,
		},
		Climber: ClimberConfig{
			ReachMS: 140,
			PullMS:  180,
			FallMS:  600,
		},
		Scroll: ScrollConfig{
			MaxSpeed: 600,
		},
		Theme: ThemeAuto,
		Difficulty: DifficultyConfig{
			Enabled: true,
			Timer: TimerConfig{
				BaseMS:     3000,
				FloorMS:    1000,
				PerClimbMS: 10,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "climb":
		return defaultClimbYAML
	default:
		return nil
	}
}
