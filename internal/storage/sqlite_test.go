package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenCreatesNestedDirs(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	store.SaveRun(Run{GameID: "climb", Score: 12})
	store.SetBestScore("climb", 12)
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("Reopen failed: %v", err)
	}
	defer store.Close()

	if high, _ := store.HighScore("climb"); high != 12 {
		t.Errorf("Expected run to survive reopen, high score %d", high)
	}
	if best, _ := store.BestScore("climb"); best != 12 {
		t.Errorf("Expected best to survive reopen, got %d", best)
	}
}

func TestStoreSaveRun(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveRun(Run{GameID: "climb", Score: 42, Duration: 95 * time.Second})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("Run ID %q is not a UUID: %v", id, err)
	}

	scores, err := store.TopScores("climb", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("Expected 1 run, got %d", len(scores))
	}
	e := scores[0]
	if e.RunID != id || e.Score != 42 || e.Duration != 95*time.Second {
		t.Errorf("Unexpected entry %+v", e)
	}
	if e.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
}

func TestStoreSaveRunKeepsGivenID(t *testing.T) {
	store := openTestStore(t)
	id := uuid.New().String()

	got, err := store.SaveRun(Run{ID: id, GameID: "climb", Score: 1})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if got != id {
		t.Errorf("Expected run ID %q, got %q", id, got)
	}

	if _, err := store.SaveRun(Run{ID: id, GameID: "climb", Score: 2}); err == nil {
		t.Error("Duplicate run IDs should be rejected")
	}
}

func TestStoreTopScores(t *testing.T) {
	store := openTestStore(t)

	for _, s := range []int{100, 50, 200, 500, 400} {
		if _, err := store.SaveRun(Run{GameID: "climb", Score: s}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}
	store.SaveRun(Run{GameID: "other", Score: 900})

	scores, err := store.TopScores("climb", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 200 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	all, err := store.AllScores("climb")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(all) != 5 {
		t.Errorf("Expected 5 climb scores, got %d", len(all))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("climb")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveRun(Run{GameID: "climb", Score: 100})
	store.SaveRun(Run{GameID: "climb", Score: 300})
	store.SaveRun(Run{GameID: "climb", Score: 200})

	if high, _ = store.HighScore("climb"); high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreBestScoreUpsert(t *testing.T) {
	store := openTestStore(t)

	if best, err := store.BestScore("climb"); err != nil || best != 0 {
		t.Fatalf("Missing best should be 0, got %d (%v)", best, err)
	}

	if err := store.SetBestScore("climb", 10); err != nil {
		t.Fatalf("SetBestScore() failed: %v", err)
	}
	if err := store.SetBestScore("climb", 7); err != nil {
		t.Fatalf("SetBestScore() failed: %v", err)
	}

	// Last write wins.
	if best, _ := store.BestScore("climb"); best != 7 {
		t.Errorf("Expected best 7, got %d", best)
	}
}

func TestStoreBestScoreNegativeDegrades(t *testing.T) {
	store := openTestStore(t)
	store.SetBestScore("climb", -5)

	if best, _ := store.BestScore("climb"); best != 0 {
		t.Errorf("Negative best should read as 0, got %d", best)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{GameID: "climb", Score: 100})
	store.SetBestScore("climb", 100)
	store.SaveRun(Run{GameID: "other", Score: 300})

	if err := store.ClearScores("climb"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if scores, _ := store.TopScores("climb", 10); len(scores) != 0 {
		t.Errorf("Expected 0 climb scores after clear, got %d", len(scores))
	}
	if best, _ := store.BestScore("climb"); best != 0 {
		t.Errorf("Expected best cleared, got %d", best)
	}
	if scores, _ := store.TopScores("other", 10); len(scores) != 1 {
		t.Error("Other games should not be affected by clearing climb")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("climb")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", empty)
	}

	store.SaveRun(Run{GameID: "climb", Score: 10, Duration: 2 * time.Second})
	store.SaveRun(Run{GameID: "climb", Score: 30, Duration: 3 * time.Second})

	stats, err := store.GetGameStats("climb")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 30 || stats.AvgScore != 20 {
		t.Errorf("Unexpected stats %+v", stats)
	}
	if stats.TotalTime != 5*time.Second {
		t.Errorf("Expected 5s total, got %v", stats.TotalTime)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}

func TestKeeperRoundTrip(t *testing.T) {
	store := openTestStore(t)
	k := store.Keeper("climb", nil)

	if got := k.LoadHighScore(); got != 0 {
		t.Errorf("Fresh keeper should load 0, got %d", got)
	}

	k.SaveHighScore(25)
	if got := k.LoadHighScore(); got != 25 {
		t.Errorf("Expected 25 after save, got %d", got)
	}

	if other := store.Keeper("other", nil).LoadHighScore(); other != 0 {
		t.Errorf("Keepers should be per game, got %d", other)
	}
}

func TestKeeperDegradesOnClosedStore(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	k := store.Keeper("climb", nil)
	store.Close()

	// Errors are logged, never surfaced.
	k.SaveHighScore(5)
	if got := k.LoadHighScore(); got != 0 {
		t.Errorf("Closed store should degrade to 0, got %d", got)
	}
}
