package config

import "testing"

func TestTimerRampDefaults(t *testing.T) {
	ramp := NewTimerRamp(DefaultClimbConfig().Difficulty)

	tests := []struct {
		score    int
		expected float64
	}{
		{0, 3000},
		{1, 2990},
		{50, 2500},
		{199, 1010},
		{200, 1000},
		{201, 1000},
		{10000, 1000},
	}

	for _, tc := range tests {
		if got := ramp.Max(tc.score); got != tc.expected {
			t.Errorf("Max(%d) = %v, expected %v", tc.score, got, tc.expected)
		}
	}
}

func TestTimerRampMonotonic(t *testing.T) {
	ramp := NewTimerRamp(DefaultClimbConfig().Difficulty)

	prev := ramp.Max(0)
	for n := 1; n <= 400; n++ {
		cur := ramp.Max(n)
		if cur > prev {
			t.Fatalf("Max(%d) = %v increased from %v", n, cur, prev)
		}
		if cur < ramp.Floor() {
			t.Fatalf("Max(%d) = %v dropped below floor %v", n, cur, ramp.Floor())
		}
		prev = cur
	}
}

func TestTimerRampDisabled(t *testing.T) {
	cfg := DefaultClimbConfig()
	ApplyClimbPreset(&cfg, DifficultyFixed)
	ramp := NewTimerRamp(cfg.Difficulty)

	if ramp.IsEnabled() {
		t.Error("fixed preset should disable the ramp")
	}
	if got := ramp.Max(150); got != 3000 {
		t.Errorf("Max(150) with fixed preset = %v, expected 3000", got)
	}
	if ramp.Level(150) != 0 {
		t.Error("Level should stay 0 when disabled")
	}
}

func TestTimerRampLevel(t *testing.T) {
	ramp := NewTimerRamp(DefaultClimbConfig().Difficulty)

	if ramp.Level(0) != 0 {
		t.Errorf("Level(0) = %v, expected 0", ramp.Level(0))
	}
	if ramp.Level(100) != 0.5 {
		t.Errorf("Level(100) = %v, expected 0.5", ramp.Level(100))
	}
	if ramp.Level(500) != 1 {
		t.Errorf("Level(500) = %v, expected 1", ramp.Level(500))
	}
}
