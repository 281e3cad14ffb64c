package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-climber/internal/core"
	"github.com/vovakirdan/tui-climber/internal/registry"
	"github.com/vovakirdan/tui-climber/internal/storage"
)

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for running a game.
//
// Key presses that map to game actions are applied immediately through
// registry.ActionHandler when the game supports it, so several presses
// between two ticks all count. The tick only advances time.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	clock      core.FrameClock
	inputFrame core.InputFrame
	gameState  core.GameState
	width      int
	height     int
	quitting   bool
	scoreSaved bool // Whether the current game over has been recorded
	lastRunID  string
}

// NewModel creates a new Bubble Tea model for the given game.
// store and logger may be nil.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.Default()
	}

	if ku, ok := game.(registry.KeeperUser); ok && store != nil {
		ku.SetKeeper(store.Keeper(game.ID(), logger))
	}

	m := Model{
		game:       game,
		store:      store,
		logger:     logger,
		config:     cfg,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
		width:      cfg.ScreenW,
		height:     cfg.ScreenH,
	}
	m.help.Width = cfg.ScreenW
	m.config.ScreenH = m.gameHeight()
	m.screen = core.NewScreen(m.config.ScreenW, m.config.ScreenH)
	return m
}

// gameHeight is the terminal height minus the help bar.
func (m Model) gameHeight() int {
	lines := 1
	if m.help.ShowAll {
		lines = len(m.keys.FullHelp()[0])
	}
	return max(1, m.height-lines)
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m.resizeGame(), nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m.resizeGame(), nil
	}

	action := m.keys.Action(msg)
	switch action {
	case core.ActionNone:
		return m, nil
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	}

	if h, ok := m.game.(registry.ActionHandler); ok {
		h.HandleAction(action)
		m.observe(m.game.State())
	} else {
		m.inputFrame.Set(action)
	}
	return m, nil
}

// resizeGame fits the game to the terminal, keeping the run going when the
// game supports it.
func (m Model) resizeGame() Model {
	m.config.ScreenW = m.width
	m.config.ScreenH = m.gameHeight()
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)

	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(m.config.ScreenW, m.config.ScreenH)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}
	return m
}

// handleTick advances the game by the time since the previous tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	m.inputFrame.Delta = m.clock.Tick(now)

	result := m.game.Step(m.inputFrame)
	m.observe(result.State)

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// observe takes a new game state and records the run the first time a game
// over is seen. Keys can end and restart a run between two ticks, so both
// paths report here.
func (m *Model) observe(state core.GameState) {
	m.gameState = state
	switch {
	case !state.GameOver:
		m.scoreSaved = false
	case !m.scoreSaved:
		m.recordRun()
		m.scoreSaved = true
	}
}

// recordRun stores the finished run. Failures are logged and ignored.
func (m *Model) recordRun() {
	if m.store == nil || m.gameState.Score <= 0 {
		return
	}
	id, err := m.store.SaveRun(storage.Run{
		GameID:   m.game.ID(),
		Score:    m.gameState.Score,
		Duration: m.gameState.Elapsed,
	})
	if err != nil {
		m.logger.Warn("Cannot record run", "game", m.game.ID(), "score", m.gameState.Score, "error", err)
		return
	}
	m.lastRunID = id
	m.logger.Debug("Run recorded", "run", id, "score", m.gameState.Score, "duration", m.gameState.Elapsed)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("Cannot save screenshot", "error", err)
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("Cannot save screenshot", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("Cannot save screenshot", "path", path, "error", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// State returns the game state as of the last update.
func (m Model) State() core.GameState {
	return m.gameState
}

// LastRunID returns the ID of the most recently recorded run, if any.
func (m Model) LastRunID() string {
	return m.lastRunID
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, store, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
