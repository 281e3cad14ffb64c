package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadClimb loads Wall Climber configuration.
// Search order: customPath -> ~/.arcade/configs/climb.yaml -> ./configs/climb.yaml -> embedded default
func LoadClimb(customPath string) (ClimbConfig, error) {
	// Start from defaults so partial files only override what they set
	cfg := DefaultClimbConfig()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return DefaultClimbConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return sanitize(cfg), nil
	}

	if userCfgPath := userConfigPath("climb.yaml"); userCfgPath != "" {
		if loaded, ok := tryLoad(userCfgPath); ok {
			return loaded, nil
		}
	}

	if loaded, ok := tryLoad(filepath.Join("configs", "climb.yaml")); ok {
		return loaded, nil
	}

	embedded := DefaultClimbConfig()
	if err := yaml.Unmarshal(defaultClimbYAML, &embedded); err != nil {
		return DefaultClimbConfig(), nil // Fallback to hardcoded if embed fails
	}
	return sanitize(embedded), nil
}

// tryLoad reads and parses a config file, reporting false on any failure.
func tryLoad(path string) (ClimbConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ClimbConfig{}, false
	}
	cfg := DefaultClimbConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return ClimbConfig{}, false
	}
	return sanitize(cfg), true
}

// sanitize replaces values that would break the simulation with defaults.
func sanitize(cfg ClimbConfig) ClimbConfig {
	def := DefaultClimbConfig()

	if cfg.Wall.StepHeight <= 0 {
		cfg.Wall.StepHeight = def.Wall.StepHeight
	}
	if cfg.Wall.RowHeight <= 0 {
		cfg.Wall.RowHeight = def.Wall.RowHeight
	}
	if cfg.Wall.BottomOffset < 0 {
		cfg.Wall.BottomOffset = def.Wall.BottomOffset
	}
	if cfg.Wall.SeedHolds < 1 {
		cfg.Wall.SeedHolds = def.Wall.SeedHolds
	}
	if cfg.Wall.CullSteps <= 0 {
		cfg.Wall.CullSteps = def.Wall.CullSteps
	}
	if cfg.Wall.CoverSteps <= 0 {
		cfg.Wall.CoverSteps = def.Wall.CoverSteps
	}
	if cfg.Streak.Limit < 1 {
		cfg.Streak.Limit = def.Streak.Limit
	}
	if cfg.Climber.ReachMS <= 0 {
		cfg.Climber.ReachMS = def.Climber.ReachMS
	}
	if cfg.Climber.PullMS <= 0 {
		cfg.Climber.PullMS = def.Climber.PullMS
	}
	if cfg.Climber.FallMS <= 0 {
		cfg.Climber.FallMS = def.Climber.FallMS
	}
	if cfg.Scroll.MaxSpeed <= 0 {
		cfg.Scroll.MaxSpeed = def.Scroll.MaxSpeed
	}
	if cfg.Difficulty.Timer.BaseMS <= 0 {
		cfg.Difficulty.Timer = def.Difficulty.Timer
	}
	switch cfg.Theme {
	case ThemeAuto, ThemeDay, ThemeNight:
	default:
		cfg.Theme = ThemeAuto
	}
	return cfg
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyClimbPreset modifies the config based on a difficulty preset.
func ApplyClimbPreset(cfg *ClimbConfig, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true

	switch preset {
	case DifficultyEasy:
		cfg.Difficulty.Timer.BaseMS = 4000
		cfg.Difficulty.Timer.FloorMS = 1500
		cfg.Difficulty.Timer.PerClimbMS = 8
	case DifficultyHard:
		cfg.Difficulty.Timer.BaseMS = 2400
		cfg.Difficulty.Timer.FloorMS = 700
		cfg.Difficulty.Timer.PerClimbMS = 15
	}
}
