package storage

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-climber/internal/core"
)

// Keeper persists one game's best score in a Store. Storage errors are
// logged and degrade to a best score of 0.
type Keeper struct {
	store  *Store
	gameID string
	logger *log.Logger
}

var _ core.ScoreKeeper = (*Keeper)(nil)

// Keeper returns a score keeper for gameID. logger may be nil.
func (s *Store) Keeper(gameID string, logger *log.Logger) *Keeper {
	if logger == nil {
		logger = log.Default()
	}
	return &Keeper{store: s, gameID: gameID, logger: logger}
}

// LoadHighScore returns the stored best score, or 0 when it cannot be read.
func (k *Keeper) LoadHighScore() int {
	score, err := k.store.BestScore(k.gameID)
	if err != nil {
		k.logger.Warn("Cannot load best score", "game", k.gameID, "error", err)
		return 0
	}
	return score
}

// SaveHighScore stores score as the new best.
func (k *Keeper) SaveHighScore(score int) {
	if err := k.store.SetBestScore(k.gameID, score); err != nil {
		k.logger.Warn("Cannot save best score", "game", k.gameID, "score", score, "error", err)
	}
}
