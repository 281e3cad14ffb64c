package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
//
// Scene colors carry the background of the surface they are drawn on so a
// glyph never leaves a default-background hole in the sky or the wall.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBrightYellow
	ColorGray

	// Wall slab and everything drawn on it.
	ColorSand
	ColorSandCrack
	ColorHoldSmall
	ColorHoldMedium
	ColorHoldLarge
	ColorHoldRound
	ColorClimber
	ColorClimberFallen

	// Far parallax bands, one set per theme.
	ColorSkyDay
	ColorSkyDayHaze
	ColorSkyDayPeak
	ColorSkyNight
	ColorSkyNightHaze
	ColorSkyNightPeak
)

// OnSky reports whether c is drawn over the sky fill.
func (c Color) OnSky() bool {
	return c >= ColorSkyDay && c <= ColorSkyNightPeak
}

// OnSand reports whether c is drawn over the wall slab.
func (c Color) OnSand() bool {
	return c >= ColorSand && c <= ColorClimberFallen
}
