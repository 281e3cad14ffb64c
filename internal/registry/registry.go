// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the platform
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/agnivade/levenshtein"
	"github.com/vovakirdan/tui-climber/internal/core"
)

// Game is the core interface that all games must implement.
// Games contain pure logic with no external dependencies (especially no Bubble Tea).
// The platform handles input mapping, timing, and rendering.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "climb").
	// Used for CLI commands and score storage.
	ID() string

	// Title returns a human-readable name for display (e.g., "Wall Climber").
	Title() string

	// Reset initializes or resets the game state.
	// The RuntimeConfig provides screen dimensions and RNG seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one frame.
	// Input is abstracted to platform-level actions; the frame's Delta
	// carries the elapsed wall-clock time.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	Render(dst *core.Screen)

	// State returns the current game state (score, best, game over, idle).
	State() core.GameState
}

// ActionHandler is implemented by games that apply discrete actions as
// soon as they arrive instead of waiting for the next Step.
type ActionHandler interface {
	HandleAction(a core.Action)
}

// KeeperUser is implemented by games that persist their own best score.
type KeeperUser interface {
	SetKeeper(k core.ScoreKeeper)
}

// Resizer is implemented by games that can follow a terminal resize
// without a Reset.
type Resizer interface {
	Resize(width, height int)
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Typically called from a game's init() function.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new game by its ID.
// Returns an error if the game ID is not registered; the error names the
// closest registered ID when there is one.
func Create(id string) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		if s, found := Suggest(id); found {
			return nil, fmt.Errorf("registry: unknown game %q (did you mean %q?)", id, s)
		}
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return f(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

// Suggest returns the registered ID closest to id by edit distance, if it
// is close enough to be a likely typo.
func Suggest(id string) (string, bool) {
	mu.RLock()
	defer mu.RUnlock()

	id = strings.ToLower(strings.TrimSpace(id))
	if id == "" {
		return "", false
	}

	best, bestDist := "", -1
	for candidate := range factories {
		dist := levenshtein.ComputeDistance(id, candidate)
		if dist > levenshteinLimit(len(candidate)) {
			continue
		}
		if bestDist < 0 || dist < bestDist || (dist == bestDist && candidate < best) {
			best, bestDist = candidate, dist
		}
	}
	return best, bestDist >= 0
}

func levenshteinLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
