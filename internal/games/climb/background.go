package climb

import "math"

// Theme selects the day or night backdrop.
type Theme uint8

const (
	ThemeDay Theme = iota
	ThemeNight
)

// String returns the lowercase theme name.
func (t Theme) String() string {
	if t == ThemeNight {
		return "night"
	}
	return "day"
}

// ThemeForHour picks day between 07:00 and 18:59, night otherwise.
func ThemeForHour(hour int) Theme {
	if hour >= 7 && hour < 19 {
		return ThemeDay
	}
	return ThemeNight
}

// Layer is one parallax band. Offset stays within [0, height).
type Layer struct {
	Speed  float64
	Offset float64
}

// layerSpeeds go from the far sky to the near wall.
var layerSpeeds = [...]float64{0.15, 0.3, 0.55, 1.0}

// Background tracks the parallax offsets and the current theme.
type Background struct {
	theme  Theme
	height float64
	layers [len(layerSpeeds)]Layer
}

// NewBackground creates a background that wraps every height wall pixels.
func NewBackground(height float64, theme Theme) *Background {
	b := &Background{theme: theme, height: height}
	for i, speed := range layerSpeeds {
		b.layers[i].Speed = speed
	}
	return b
}

// Scroll moves every layer down by delta scaled by its speed.
func (b *Background) Scroll(delta float64) {
	for i := range b.layers {
		b.layers[i].Offset = b.wrap(b.layers[i].Offset + delta*b.layers[i].Speed)
	}
}

func (b *Background) wrap(v float64) float64 {
	if b.height <= 0 {
		return v
	}
	v = math.Mod(v, b.height)
	if v < 0 {
		v += b.height
	}
	return v
}

// SetHeight changes the wrap height, e.g. after a terminal resize.
func (b *Background) SetHeight(height float64) {
	b.height = height
	for i := range b.layers {
		b.layers[i].Offset = b.wrap(b.layers[i].Offset)
	}
}

// ToggleTheme switches between day and night.
func (b *Background) ToggleTheme() {
	if b.theme == ThemeDay {
		b.theme = ThemeNight
	} else {
		b.theme = ThemeDay
	}
}

// SetTheme forces a theme.
func (b *Background) SetTheme(t Theme) { b.theme = t }

// Theme returns the current theme.
func (b *Background) Theme() Theme { return b.theme }

// Height returns the wrap height.
func (b *Background) Height() float64 { return b.height }

// Layers returns a copy of the parallax layers, far to near.
func (b *Background) Layers() []Layer {
	out := make([]Layer, len(b.layers))
	copy(out, b.layers[:])
	return out
}
