package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-climber/internal/core"
	"github.com/vovakirdan/tui-climber/internal/games/climb"
	"github.com/vovakirdan/tui-climber/internal/storage"
)

func testStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func newTestModel(t *testing.T, store *storage.Store) (Model, *climb.Game) {
	t.Helper()
	game := climb.New()
	m := NewModel(game, store, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}, nil)
	m.Init()
	return m, game
}

func send(m Model, msg tea.Msg) Model {
	next, _ := m.Update(msg)
	return next.(Model)
}

func sideKey(side climb.Side) tea.KeyMsg {
	if side == climb.Left {
		return tea.KeyMsg{Type: tea.KeyLeft}
	}
	return tea.KeyMsg{Type: tea.KeyRight}
}

func wrongKey(side climb.Side) tea.KeyMsg {
	if side == climb.Left {
		return tea.KeyMsg{Type: tea.KeyRight}
	}
	return tea.KeyMsg{Type: tea.KeyLeft}
}

func TestKeyMapActions(t *testing.T) {
	keys := DefaultKeyMap()
	tests := []struct {
		msg  tea.KeyMsg
		want core.Action
	}{
		{tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}}, core.ActionLeft},
		{tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}}, core.ActionRight},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'t'}}, core.ActionToggleTheme},
		{tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}}, core.ActionRestart},
		{tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, core.ActionQuit},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}}, core.ActionNone},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'z'}}, core.ActionNone},
	}

	for _, tt := range tests {
		if got := keys.Action(tt.msg); got != tt.want {
			t.Errorf("Action(%q) = %v, want %v", tt.msg.String(), got, tt.want)
		}
	}
}

func TestModelKeysApplyImmediately(t *testing.T) {
	m, game := newTestModel(t, nil)

	m = send(m, tea.KeyMsg{Type: tea.KeyEnter})
	if game.Session().Phase() != climb.PhasePlaying {
		t.Fatalf("Enter should start the climb, phase %v", game.Session().Phase())
	}

	// Two presses before any tick both count.
	m = send(m, sideKey(game.Session().Ladder().NextSide()))
	m = send(m, sideKey(game.Session().Ladder().NextSide()))
	if got := m.State().Score; got != 2 {
		t.Errorf("Expected score 2 before any tick, got %d", got)
	}
}

func TestModelRecordsRunOnce(t *testing.T) {
	store := testStore(t)
	m, game := newTestModel(t, store)

	m = send(m, tea.KeyMsg{Type: tea.KeyEnter})
	m = send(m, sideKey(game.Session().Ladder().NextSide()))
	m = send(m, wrongKey(game.Session().Ladder().NextSide()))

	start := time.Now()
	m = send(m, TickMsg(start))
	m = send(m, TickMsg(start.Add(16*time.Millisecond)))

	if !m.State().GameOver {
		t.Fatal("Wrong reach should end the game")
	}
	if m.LastRunID() == "" {
		t.Fatal("Finished run should be recorded")
	}

	scores, err := store.TopScores("climb", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 || scores[0].Score != 1 || scores[0].RunID != m.LastRunID() {
		t.Errorf("Expected one run with score 1, got %+v", scores)
	}
	if best, _ := store.BestScore("climb"); best != 1 {
		t.Errorf("Keeper should persist best 1, got %d", best)
	}
}

func TestModelRecordsRunRestartedWithinFrame(t *testing.T) {
	store := testStore(t)
	m, game := newTestModel(t, store)

	start := time.Now()
	m = send(m, tea.KeyMsg{Type: tea.KeyEnter})
	m = send(m, TickMsg(start))
	for range 3 {
		m = send(m, sideKey(game.Session().Ladder().NextSide()))
	}

	// Fall and restart before the next tick.
	m = send(m, wrongKey(game.Session().Ladder().NextSide()))
	m = send(m, tea.KeyMsg{Type: tea.KeyEnter})
	m = send(m, TickMsg(start.Add(16*time.Millisecond)))

	if m.State().GameOver || game.Session().Phase() != climb.PhasePlaying {
		t.Fatal("Enter should have restarted the climb")
	}
	scores, err := store.TopScores("climb", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 || scores[0].Score != 3 {
		t.Errorf("Expected the finished run with score 3, got %+v", scores)
	}

	// The next game over is a new run.
	m = send(m, sideKey(game.Session().Ladder().NextSide()))
	m = send(m, wrongKey(game.Session().Ladder().NextSide()))
	m = send(m, TickMsg(start.Add(32*time.Millisecond)))
	if scores, _ := store.TopScores("climb", 10); len(scores) != 2 {
		t.Errorf("Expected 2 recorded runs, got %d", len(scores))
	}
}

func TestModelSkipsEmptyRuns(t *testing.T) {
	store := testStore(t)
	m, game := newTestModel(t, store)

	m = send(m, tea.KeyMsg{Type: tea.KeyEnter})
	m = send(m, wrongKey(game.Session().Ladder().NextSide()))
	m = send(m, TickMsg(time.Now()))

	if !m.State().GameOver {
		t.Fatal("Wrong reach should end the game")
	}
	if scores, _ := store.TopScores("climb", 10); len(scores) != 0 {
		t.Errorf("Zero-score runs should not be recorded, got %d", len(scores))
	}
}

func TestModelHelpToggleShrinksGame(t *testing.T) {
	m, _ := newTestModel(t, nil)
	if m.config.ScreenH != 23 {
		t.Fatalf("Expected game height 23 with short help, got %d", m.config.ScreenH)
	}

	m = send(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	if want := 24 - len(m.keys.FullHelp()[0]); m.config.ScreenH != want {
		t.Errorf("Expected game height %d with full help, got %d", want, m.config.ScreenH)
	}
}

func TestModelWindowResize(t *testing.T) {
	m, game := newTestModel(t, nil)
	m = send(m, tea.KeyMsg{Type: tea.KeyEnter})
	m = send(m, tea.WindowSizeMsg{Width: 100, Height: 40})

	if m.screen.Width() != 100 || m.screen.Height() != 39 {
		t.Errorf("Screen should follow the terminal, got %dx%d", m.screen.Width(), m.screen.Height())
	}
	if game.Session().Phase() != climb.PhasePlaying {
		t.Error("Resize should keep the climb going")
	}
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(t, nil)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("Quit should return a command")
	}
	if view := next.(Model).View(); view != "" {
		t.Errorf("Quitting model should render nothing, got %q", view)
	}
}

func TestModelView(t *testing.T) {
	m, _ := newTestModel(t, nil)
	view := m.View()
	if !strings.Contains(view, "WALL CLIMBER") {
		t.Errorf("Home screen should show the title, got:\n%s", view)
	}
}
