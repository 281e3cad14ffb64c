package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-climber/internal/config"
	"github.com/vovakirdan/tui-climber/internal/core"
	"github.com/vovakirdan/tui-climber/internal/storage"
)

// MenuChoice is what the player picked in the lobby.
type MenuChoice int

const (
	MenuChoiceNone MenuChoice = iota
	MenuChoicePlay
	MenuChoiceScores
	MenuChoiceQuit
)

// MenuItem is one line of the lobby.
type MenuItem struct {
	Title      string
	Hint       string
	Choice     MenuChoice
	Difficulty config.DifficultyPreset
}

// MenuResult contains the result of running the lobby.
type MenuResult struct {
	Choice     MenuChoice
	Difficulty config.DifficultyPreset
	Config     core.RuntimeConfig // May have been updated by resize
}

// defaultMenuItems lists the difficulties followed by the scoreboard and quit.
func defaultMenuItems() []MenuItem {
	return []MenuItem{
		{Title: "Climb", Hint: "3s countdown, shrinks every climb", Choice: MenuChoicePlay, Difficulty: config.DifficultyNormal},
		{Title: "Easy", Hint: "more time, gentle ramp", Choice: MenuChoicePlay, Difficulty: config.DifficultyEasy},
		{Title: "Hard", Hint: "less time, steep ramp", Choice: MenuChoicePlay, Difficulty: config.DifficultyHard},
		{Title: "Fixed", Hint: "the countdown never shrinks", Choice: MenuChoicePlay, Difficulty: config.DifficultyFixed},
		{Title: "High Scores", Choice: MenuChoiceScores},
		{Title: "Quit", Choice: MenuChoiceQuit},
	}
}

// MenuKeyMap defines the lobby key bindings.
type MenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Scores key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Scores, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultMenuKeyMap returns default lobby key bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select"),
		),
		Scores: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "scores"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

var (
	menuTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("180"))
	menuCurStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuHintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// MenuModel is the Bubble Tea model for the lobby.
type MenuModel struct {
	items    []MenuItem
	cursor   int
	width    int
	height   int
	best     int
	config   core.RuntimeConfig
	keys     MenuKeyMap
	selected *MenuItem
}

// NewMenuModel creates a new lobby. store may be nil; the best score is
// shown when it can be read.
func NewMenuModel(store *storage.Store, gameID string, cfg core.RuntimeConfig) MenuModel {
	m := MenuModel{
		items:  defaultMenuItems(),
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
		config: cfg,
		keys:   DefaultMenuKeyMap(),
	}
	if store != nil {
		if best, err := store.BestScore(gameID); err == nil {
			m.best = best
		}
	}
	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
	}
	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.selected = &MenuItem{Choice: MenuChoiceQuit}
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Scores):
		m.selected = &MenuItem{Choice: MenuChoiceScores}
		return m, tea.Quit

	case key.Matches(msg, m.keys.Select):
		selected := m.items[m.cursor]
		m.selected = &selected
		return m, tea.Quit
	}
	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.selected != nil {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("  W A L L   C L I M B E R  "), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(menuHintStyle.Render(fmt.Sprintf("Best climb: %d", m.best)), m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := "  " + item.Title
		if i == m.cursor {
			line = menuCurStyle.Render("> " + item.Title)
		}
		if item.Hint != "" {
			line += menuHintStyle.Render("  " + item.Hint)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(helpStyle.Render("↑/↓: Navigate  |  Enter: Select  |  Tab: Scores  |  Q: Quit"), m.width))
	b.WriteString("\n")
	return b.String()
}

// Result reports the choice. MenuChoiceNone means the menu is still open.
func (m MenuModel) Result() MenuResult {
	res := MenuResult{Config: m.config}
	if m.selected != nil {
		res.Choice = m.selected.Choice
		res.Difficulty = m.selected.Difficulty
	}
	return res
}

// RunMenu runs the lobby and returns the player's choice.
func RunMenu(store *storage.Store, gameID string, cfg core.RuntimeConfig) (MenuResult, error) {
	p := tea.NewProgram(NewMenuModel(store, gameID, cfg), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Choice: MenuChoiceQuit, Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Choice: MenuChoiceQuit, Config: cfg}, nil
	}
	res := m.Result()
	if res.Choice == MenuChoiceNone {
		res.Choice = MenuChoiceQuit
	}
	return res, nil
}
