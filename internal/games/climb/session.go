package climb

import (
	"math"

	"github.com/vovakirdan/tui-climber/internal/config"
	"github.com/vovakirdan/tui-climber/internal/core"
)

// Phase is the top-level session state.
type Phase uint8

const (
	PhaseHome Phase = iota
	PhasePlaying
	PhaseGameOver
)

// String returns the lowercase phase name.
func (p Phase) String() string {
	switch p {
	case PhaseHome:
		return "home"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// Timer is the per-reach countdown in milliseconds. 0 <= Remain <= Max.
type Timer struct {
	Max    float64
	Remain float64
}

// Fraction returns Remain/Max, or 0 for an empty timer.
func (t Timer) Fraction() float64 {
	if t.Max <= 0 {
		return 0
	}
	return t.Remain / t.Max
}

// Settings collects everything a session needs to know about the wall.
type Settings struct {
	Ladder         LadderConfig
	Timing         ClimberTiming
	Ramp           *config.TimerRamp
	MaxScrollSpeed float64 // pixels per second
	Width          float64 // wall width in pixels
	Height         float64 // wall height in pixels
	Theme          Theme
}

// climberLift is how far above the bottom hold the climber stands.
const climberLift = 20

// SettingsFromConfig builds session settings for a wall of the given
// size in pixels.
func SettingsFromConfig(cfg config.ClimbConfig, width, height float64) Settings {
	return Settings{
		Ladder: LadderConfig{
			StepHeight:  cfg.Wall.StepHeight,
			Bottom:      height - cfg.Wall.BottomOffset,
			SeedHolds:   cfg.Wall.SeedHolds,
			StreakLimit: cfg.Streak.Limit,
			CullSteps:   cfg.Wall.CullSteps,
			CoverSteps:  cfg.Wall.CoverSteps,
		},
		Timing: ClimberTiming{
			Reach: cfg.Climber.ReachMS,
			Pull:  cfg.Climber.PullMS,
			Fall:  cfg.Climber.FallMS,
		},
		Ramp:           config.NewTimerRamp(cfg.Difficulty),
		MaxScrollSpeed: cfg.Scroll.MaxSpeed,
		Width:          width,
		Height:         height,
	}
}

// DefaultSettings returns settings from the built-in config for a
// 400x600 pixel wall.
func DefaultSettings() Settings {
	return SettingsFromConfig(config.DefaultClimbConfig(), 400, 600)
}

// Session is the game controller. It owns the ladder, the climber and the
// background and is driven by two entry points: HandleInput for discrete
// events and Update once per frame. Both must run on the same goroutine,
// and HandleInput must not be called from inside Update.
type Session struct {
	settings     Settings
	bottomOffset float64

	ladder     *Ladder
	climber    *Climber
	background *Background
	keeper     core.ScoreKeeper

	phase      Phase
	score      int
	highScore  int
	timer      Timer
	scrollAnim float64
	elapsed    float64
}

// NewSession creates a session on the home screen. The high score is read
// from keeper, which may be nil.
func NewSession(settings Settings, rng Source, keeper core.ScoreKeeper) *Session {
	if settings.Ramp == nil {
		settings.Ramp = config.NewTimerRamp(config.DefaultClimbConfig().Difficulty)
	}
	s := &Session{
		settings:     settings,
		bottomOffset: settings.Height - settings.Ladder.Bottom,
		ladder:       NewLadder(settings.Ladder, rng),
		climber:      NewClimber(settings.Timing),
		background:   NewBackground(settings.Height, settings.Theme),
		phase:        PhaseHome,
	}
	s.placeClimber()
	s.SetKeeper(keeper)
	s.resetTimer()
	return s
}

// SetKeeper swaps the high score store and reloads the best score from it.
func (s *Session) SetKeeper(keeper core.ScoreKeeper) {
	s.keeper = keeper
	s.highScore = 0
	if keeper != nil {
		s.highScore = max(0, keeper.LoadHighScore())
	}
}

func (s *Session) placeClimber() {
	s.climber.SetBasePosition(s.settings.Width/2, s.ladder.Bottom()-climberLift)
}

func (s *Session) resetTimer() {
	s.timer.Max = s.settings.Ramp.Max(0)
	s.timer.Remain = s.timer.Max
}

// Start begins a new run. It is also used to restart after a game over.
func (s *Session) Start() {
	s.phase = PhasePlaying
	s.score = 0
	s.elapsed = 0
	s.scrollAnim = 0
	s.resetTimer()
	s.ladder.Reset()
	s.climber.Reset()
}

// HandleInput applies a reach toward side. Only valid while playing.
func (s *Session) HandleInput(side Side) {
	if s.phase != PhasePlaying {
		return
	}

	correct := s.ladder.CheckInput(side)
	s.climber.TriggerReach(side)

	if !correct {
		s.climber.TriggerFall()
		s.endGame()
		return
	}

	s.climber.TriggerPullUp()
	s.score++
	s.timer.Max = s.settings.Ramp.Max(s.score)
	s.timer.Remain = s.timer.Max
	s.ladder.OnSuccessfulClimb()
	s.scrollAnim = s.ladder.StepHeight()
}

// Update advances the session by dt milliseconds. After a game over only
// the climber keeps moving so the fall plays out.
func (s *Session) Update(dt float64) {
	if dt < 0 {
		dt = 0
	}

	switch s.phase {
	case PhasePlaying:
	case PhaseGameOver:
		s.climber.Update(dt)
		return
	default:
		return
	}
	s.elapsed += dt

	// A timeout ends the run but the frame still finishes.
	s.timer.Remain = core.ClampF(s.timer.Remain-dt, 0, s.timer.Max)
	if s.timer.Remain == 0 {
		s.climber.TriggerFall()
		s.endGame()
	}

	if s.scrollAnim > 0 {
		step := math.Min(s.scrollAnim, s.settings.MaxScrollSpeed*dt/1000)
		s.background.Scroll(step)
		s.ladder.Scroll(step)
		s.scrollAnim = math.Max(0, s.scrollAnim-step)
	}

	s.climber.Update(dt)
}

func (s *Session) endGame() {
	s.phase = PhaseGameOver
	if s.score > s.highScore {
		s.highScore = s.score
		if s.keeper != nil {
			s.keeper.SaveHighScore(s.highScore)
		}
	}
}

// GoHome returns from the game over screen to the home screen.
func (s *Session) GoHome() {
	if s.phase == PhaseGameOver {
		s.phase = PhaseHome
	}
}

// ToggleTheme switches the backdrop between day and night in any phase.
func (s *Session) ToggleTheme() {
	s.background.ToggleTheme()
}

// SetTheme forces the backdrop theme.
func (s *Session) SetTheme(t Theme) {
	s.background.SetTheme(t)
}

// Resize adapts the wall to a new pixel size. The ladder keeps its holds
// anchored to the bottom edge.
func (s *Session) Resize(width, height float64) {
	s.settings.Width = width
	s.settings.Height = height
	s.settings.Ladder.Bottom = height - s.bottomOffset
	s.ladder.SetBottom(s.settings.Ladder.Bottom)
	s.background.SetHeight(height)
	s.placeClimber()
}

// Phase returns the current session phase.
func (s *Session) Phase() Phase { return s.phase }

// Score returns the number of successful climbs in the current run.
func (s *Session) Score() int { return s.score }

// Climbs is an alias of Score kept for run records.
func (s *Session) Climbs() int { return s.score }

// HighScore returns the best score seen so far.
func (s *Session) HighScore() int { return s.highScore }

// Timer returns the countdown state.
func (s *Session) Timer() Timer { return s.timer }

// TimerFraction returns the remaining share of the countdown.
func (s *Session) TimerFraction() float64 { return s.timer.Fraction() }

// Pace returns how far the countdown has shrunk toward its floor, from 0 to 1.
func (s *Session) Pace() float64 { return s.settings.Ramp.Level(s.score) }

// ScrollRemaining returns the scroll distance still to animate.
func (s *Session) ScrollRemaining() float64 { return s.scrollAnim }

// Elapsed returns milliseconds played in the current run.
func (s *Session) Elapsed() float64 { return s.elapsed }

// Ladder returns the hold ladder.
func (s *Session) Ladder() *Ladder { return s.ladder }

// Climber returns the climber.
func (s *Session) Climber() *Climber { return s.climber }

// Background returns the parallax background.
func (s *Session) Background() *Background { return s.background }

// Settings returns the current settings.
func (s *Session) Settings() Settings { return s.settings }
