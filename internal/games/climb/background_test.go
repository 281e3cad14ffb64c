package climb

import (
	"math"
	"testing"
)

func TestBackgroundScrollSpeeds(t *testing.T) {
	b := NewBackground(1000, ThemeDay)
	b.Scroll(100)

	expected := []float64{15, 30, 55, 100}
	for i, l := range b.Layers() {
		if math.Abs(l.Offset-expected[i]) > 1e-9 {
			t.Errorf("Layer %d offset = %v, expected %v", i, l.Offset, expected[i])
		}
	}
}

func TestBackgroundWraps(t *testing.T) {
	b := NewBackground(600, ThemeNight)
	for i := 0; i < 500; i++ {
		b.Scroll(37)
		for j, l := range b.Layers() {
			if l.Offset < 0 || l.Offset >= 600 {
				t.Fatalf("Step %d: layer %d offset %v out of [0, 600)", i, j, l.Offset)
			}
		}
	}

	b.SetHeight(100)
	for j, l := range b.Layers() {
		if l.Offset < 0 || l.Offset >= 100 {
			t.Errorf("Layer %d offset %v not rewrapped after resize", j, l.Offset)
		}
	}
}

func TestBackgroundToggleTheme(t *testing.T) {
	b := NewBackground(600, ThemeDay)

	b.ToggleTheme()
	if b.Theme() != ThemeNight {
		t.Errorf("Expected night after toggle, got %v", b.Theme())
	}
	b.ToggleTheme()
	if b.Theme() != ThemeDay {
		t.Errorf("Expected day after second toggle, got %v", b.Theme())
	}
}

func TestThemeForHour(t *testing.T) {
	tests := []struct {
		hour     int
		expected Theme
	}{
		{0, ThemeNight},
		{6, ThemeNight},
		{7, ThemeDay},
		{12, ThemeDay},
		{18, ThemeDay},
		{19, ThemeNight},
		{23, ThemeNight},
	}

	for _, tc := range tests {
		if got := ThemeForHour(tc.hour); got != tc.expected {
			t.Errorf("ThemeForHour(%d) = %v, expected %v", tc.hour, got, tc.expected)
		}
	}
}
