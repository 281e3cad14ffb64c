package climb

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-climber/internal/core"
)

// Visual characters for rendering
const (
	WallChar     = '▒'
	CrackChar    = '╎'
	StarChar     = '·'
	CloudChar    = '~'
	PeakChar     = '▲'
	TimerFull    = '█'
	TimerEmpty   = '░'
	ClimberHead  = 'O'
	FallenHead   = 'X'
	ClimberTorso = '|'
)

// holdGlyphs maps each hold type to its glyph and color.
var holdGlyphs = map[HoldType]struct {
	Rune  rune
	Color core.Color
}{
	HoldSmall:  {'•', core.ColorHoldSmall},
	HoldMedium: {'◆', core.ColorHoldMedium},
	HoldLarge:  {'■', core.ColorHoldLarge},
	HoldRound:  {'●', core.ColorHoldRound},
}

// hudRows are reserved at the top of the screen for the score and timer.
const hudRows = 2

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.session == nil {
		return
	}

	g.drawBackground(dst)
	g.drawWall(dst)
	g.drawHolds(dst)
	g.drawClimber(dst)
	g.drawHUD(dst)

	s := g.session
	switch s.Phase() {
	case PhaseHome:
		g.drawCenteredMessage(dst, "WALL CLIMBER",
			"←/→ reach for the next hold",
			"Enter to start  |  T theme")
	case PhaseGameOver:
		g.drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Score: %d  |  Best: %d", s.Score(), s.HighScore()),
			"Enter/R to climb again  |  B home")
	}
}

// row converts a wall Y coordinate to a screen row.
func (g *Game) row(y float64) int {
	return int(math.Floor(y / g.rowHeight()))
}

// wallBounds returns the first and last column of the wall slab.
func wallBounds(w int) (int, int) {
	margin := w * 3 / 20
	return margin, w - margin - 1
}

// holdColumn places a hold at a quarter or three quarters of the width.
func holdColumn(w int, side Side) int {
	if side == Left {
		return w / 4
	}
	return w * 3 / 4
}

// drawBackground paints the sky and the three far parallax layers.
func (g *Game) drawBackground(dst *core.Screen) {
	bg := g.session.Background()
	deco := CloudChar
	colors := [...]core.Color{core.ColorSkyDay, core.ColorSkyDayHaze, core.ColorSkyDayPeak}
	if bg.Theme() == ThemeNight {
		deco = StarChar
		colors = [...]core.Color{core.ColorSkyNight, core.ColorSkyNightHaze, core.ColorSkyNightPeak}
	}
	dst.Fill(' ', colors[0])

	layers := bg.Layers()
	w, h := dst.Width(), dst.Height()
	rowH := g.rowHeight()
	glyphs := [...]rune{deco, deco, PeakChar}
	spacing := [...]int{5, 4, 6}

	for i := 0; i < len(glyphs) && i < len(layers); i++ {
		shift := int(math.Floor(layers[i].Offset / rowH))
		for y := 0; y < h; y++ {
			band := y - shift
			if mod(band, spacing[i]) != 0 {
				continue
			}
			x := mod(band*7+i*13, w)
			dst.SetColored(x, y, glyphs[i], colors[i])
			dst.SetColored(w-1-x, y, glyphs[i], colors[i])
		}
	}
}

// drawWall paints the wall slab with cracks moving with the near layer.
func (g *Game) drawWall(dst *core.Screen) {
	left, right := wallBounds(dst.Width())
	dst.FillRect(core.NewRect(left, 0, right-left+1, dst.Height()), WallChar, core.ColorSand)

	layers := g.session.Background().Layers()
	near := layers[len(layers)-1]
	shift := int(math.Floor(near.Offset / g.rowHeight()))
	for y := 0; y < dst.Height(); y++ {
		band := y - shift
		if mod(band, 3) == 0 {
			x := left + 1 + mod(band*5, max(1, right-left-1))
			dst.SetColored(x, y, CrackChar, core.ColorSandCrack)
		}
	}
}

func (g *Game) drawHolds(dst *core.Screen) {
	for _, h := range g.session.Ladder().Holds() {
		y := g.row(h.Y)
		if y < hudRows || y >= dst.Height() {
			continue
		}
		glyph := holdGlyphs[h.Type]
		dst.SetColored(holdColumn(dst.Width(), h.Side), y, glyph.Rune, glyph.Color)
	}
}

// drawClimber draws a three-row figure with its feet on the climber's row.
func (g *Game) drawClimber(dst *core.Screen) {
	c := g.session.Climber()
	x := int(c.X/g.rowHeight()*2) + int(c.Lean())
	feet := g.row(c.Y)

	if c.State() == StateFall {
		drop := int(c.FallProgress() * float64(dst.Height()-feet))
		feet += drop
		dst.SetColored(x, feet-2, FallenHead, core.ColorClimberFallen)
		dst.DrawTextColored(x-1, feet-1, `\|/`, core.ColorClimberFallen)
		dst.DrawTextColored(x-1, feet, `/ \`, core.ColorClimberFallen)
		return
	}

	color := core.ColorClimber
	dst.SetColored(x, feet-2, ClimberHead, color)

	switch c.State() {
	case StateReach:
		arm := 1 + int(c.ReachProgress()*3)
		dst.SetColored(x, feet-1, ClimberTorso, color)
		for i := 1; i <= arm; i++ {
			if c.Facing() == Left {
				dst.SetColored(x-i, feet-1, '─', color)
			} else {
				dst.SetColored(x+i, feet-1, '─', color)
			}
		}
	case StatePull:
		dst.DrawTextColored(x-1, feet-2, `\O/`, color)
		dst.SetColored(x, feet-1, ClimberTorso, color)
	default:
		dst.DrawTextColored(x-1, feet-1, `/|\`, color)
	}
	dst.DrawTextColored(x-1, feet, `/ \`, color)
}

func (g *Game) drawHUD(dst *core.Screen) {
	s := g.session
	w := dst.Width()

	dst.FillRect(core.NewRect(0, 0, w, hudRows), ' ', core.ColorDefault)
	dst.DrawText(2, 0, fmt.Sprintf(" Score: %d ", s.Score()))

	icon := "☀"
	if s.Background().Theme() == ThemeNight {
		icon = "☾"
	}
	best := fmt.Sprintf(" %s Best: %d ", icon, s.HighScore())
	dst.DrawText(w-len([]rune(best))-2, 0, best)

	if s.Settings().Ramp.IsEnabled() {
		pace := fmt.Sprintf(" Pace: %d%% ", int(math.Round(s.Pace()*100)))
		dst.DrawText((w-len(pace))/2, 0, pace)
	}

	barW := w - 4
	if barW <= 0 {
		return
	}
	frac := s.TimerFraction()
	filled := int(math.Round(frac * float64(barW)))
	color := core.ColorGreen
	switch {
	case frac <= 0.25:
		color = core.ColorRed
	case frac <= 0.5:
		color = core.ColorYellow
	}
	for i := 0; i < barW; i++ {
		if i < filled {
			dst.SetColored(2+i, 1, TimerFull, color)
		} else {
			dst.SetColored(2+i, 1, TimerEmpty, core.ColorGray)
		}
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title string, lines ...string) {
	w := dst.Width()
	h := dst.Height()

	boxW := len([]rune(title))
	for _, l := range lines {
		boxW = max(boxW, len([]rune(l)))
	}
	boxW += 4
	boxH := len(lines) + 4
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)

	dst.DrawTextColored(boxX+(boxW-len([]rune(title)))/2, boxY+1, title, core.ColorBrightYellow)
	for i, l := range lines {
		dst.DrawText(boxX+(boxW-len([]rune(l)))/2, boxY+3+i, l)
	}
}

// mod is the non-negative remainder of a divided by n.
func mod(a, n int) int {
	if n <= 0 {
		return 0
	}
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}
