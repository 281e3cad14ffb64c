// Package climb implements Wall Climber, a one-button-per-side arcade game.
// The player reaches left or right for the next hold before the countdown
// runs out; a wrong reach or a timeout ends the climb.
package climb

import (
	"time"

	"github.com/vovakirdan/tui-climber/internal/config"
	"github.com/vovakirdan/tui-climber/internal/core"
	"github.com/vovakirdan/tui-climber/internal/registry"
)

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset
var themeOverride string

// now is swapped in tests that depend on the automatic theme.
var now = time.Now

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names keep the
// config defaults.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetTheme forces "day" or "night" for new games; anything else follows
// the config.
func SetTheme(name string) {
	themeOverride = name
}

// Game adapts a Session to the registry.Game interface and maps the
// terminal grid onto wall pixels.
type Game struct {
	runtime core.RuntimeConfig
	cfg     config.ClimbConfig
	session *Session
	keeper  core.ScoreKeeper
	tick    uint64
}

// New creates a new Wall Climber game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "climb"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Wall Climber"
}

// Reset loads the config and builds a fresh session on the home screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadClimb(configPath)
	if err != nil {
		cfg = config.DefaultClimbConfig()
	}
	if difficultyPreset != "" {
		config.ApplyClimbPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg

	width, height := g.wallSize(runtime.ScreenW, runtime.ScreenH)
	settings := SettingsFromConfig(cfg, width, height)
	settings.Theme = g.resolveTheme()

	g.session = NewSession(settings, NewSource(runtime.Seed), g.keeper)
	g.tick = 0
}

func (g *Game) resolveTheme() Theme {
	name := g.cfg.Theme
	if themeOverride == config.ThemeDay || themeOverride == config.ThemeNight {
		name = themeOverride
	}
	switch name {
	case config.ThemeDay:
		return ThemeDay
	case config.ThemeNight:
		return ThemeNight
	default:
		return ThemeForHour(now().Hour())
	}
}

// wallSize converts a terminal size to wall pixels. A cell is half as wide
// as it is tall.
func (g *Game) wallSize(cols, rows int) (float64, float64) {
	rowH := g.rowHeight()
	return float64(cols) * rowH / 2, float64(rows) * rowH
}

func (g *Game) rowHeight() float64 {
	if g.cfg.Wall.RowHeight <= 0 {
		return config.DefaultClimbConfig().Wall.RowHeight
	}
	return g.cfg.Wall.RowHeight
}

// HandleAction applies one discrete action immediately.
func (g *Game) HandleAction(a core.Action) {
	if g.session == nil {
		return
	}
	s := g.session
	switch a {
	case core.ActionLeft:
		s.HandleInput(Left)
	case core.ActionRight:
		s.HandleInput(Right)
	case core.ActionToggleTheme:
		s.ToggleTheme()
	case core.ActionConfirm:
		if s.Phase() != PhasePlaying {
			s.Start()
		}
	case core.ActionRestart:
		if s.Phase() == PhaseGameOver {
			s.Start()
		}
	case core.ActionBack:
		s.GoHome()
	}
}

// Step applies the frame's actions in arrival order, then advances the
// session by the frame's delta.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.session == nil {
		return core.StepResult{State: g.State()}
	}

	for _, a := range in.Order {
		g.HandleAction(a)
	}

	g.tick++
	g.session.Update(g.frameMillis(in.Delta))

	return core.StepResult{State: g.State()}
}

// frameMillis resolves a zero delta to one nominal tick.
func (g *Game) frameMillis(d time.Duration) float64 {
	if d > 0 {
		return core.Millis(d)
	}
	if g.runtime.TickRate > 0 {
		return 1000 / float64(g.runtime.TickRate)
	}
	return core.Millis(core.DefaultFrameDelta)
}

// Resize adapts the wall to a new terminal size without restarting.
func (g *Game) Resize(cols, rows int) {
	g.runtime.ScreenW = cols
	g.runtime.ScreenH = rows
	if g.session != nil {
		g.session.Resize(g.wallSize(cols, rows))
	}
}

// SetKeeper sets where the best score is loaded from and saved to.
func (g *Game) SetKeeper(k core.ScoreKeeper) {
	g.keeper = k
	if g.session != nil {
		g.session.SetKeeper(k)
	}
}

// Session exposes the underlying session.
func (g *Game) Session() *Session {
	return g.session
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{Idle: true}
	}
	s := g.session
	return core.GameState{
		Score:    s.Score(),
		Best:     s.HighScore(),
		GameOver: s.Phase() == PhaseGameOver,
		Idle:     s.Phase() == PhaseHome,
		Elapsed:  time.Duration(s.Elapsed() * float64(time.Millisecond)),
	}
}

// Register the game with the registry
func init() {
	registry.Register("climb", func() registry.Game {
		return New()
	})
}
