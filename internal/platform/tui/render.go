package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/vovakirdan/tui-climber/internal/core"
)

const (
	sandBg     = lipgloss.Color("94")
	skyDayBg   = lipgloss.Color("117")
	skyNightBg = lipgloss.Color("17")
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:      lipgloss.NewStyle(),
	core.ColorRed:          lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:        lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:       lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBrightYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorGray:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),

	core.ColorSand:          lipgloss.NewStyle().Foreground(lipgloss.Color("180")).Background(sandBg),
	core.ColorSandCrack:     lipgloss.NewStyle().Foreground(lipgloss.Color("58")).Background(sandBg),
	core.ColorHoldSmall:     lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Background(sandBg),
	core.ColorHoldMedium:    lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Background(sandBg),
	core.ColorHoldLarge:     lipgloss.NewStyle().Foreground(lipgloss.Color("201")).Background(sandBg),
	core.ColorHoldRound:     lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Background(sandBg),
	core.ColorClimber:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(sandBg),
	core.ColorClimberFallen: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9")).Background(sandBg),

	core.ColorSkyDay:       lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Background(skyDayBg),
	core.ColorSkyDayHaze:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(skyDayBg),
	core.ColorSkyDayPeak:   lipgloss.NewStyle().Foreground(lipgloss.Color("25")).Background(skyDayBg),
	core.ColorSkyNight:     lipgloss.NewStyle().Foreground(lipgloss.Color("189")).Background(skyNightBg),
	core.ColorSkyNightHaze: lipgloss.NewStyle().Foreground(lipgloss.Color("103")).Background(skyNightBg),
	core.ColorSkyNightPeak: lipgloss.NewStyle().Foreground(lipgloss.Color("61")).Background(skyNightBg),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			// Collect consecutive cells with same color
			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			// Apply style to the run
			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// centerText pads text on the left so it sits in the middle of width columns.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
