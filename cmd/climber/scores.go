package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-climber/internal/platform/tui"
	"github.com/vovakirdan/tui-climber/internal/registry"
	"github.com/vovakirdan/tui-climber/internal/storage"
)

var (
	flagInteractive bool
	flagLimit       int
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show recorded runs for a game",
	Long: `Display the best recorded runs for a game (default: climb).

Examples:
  climber scores
  climber scores --limit 25
  climber scores --limit 0     # every recorded run
  climber scores --clear
  climber scores -i`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Open the interactive scoreboard")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show (0 = all)")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every recorded run and the best score")
}

func runScores(cmd *cobra.Command, args []string) error {
	gameID, err := resolveGame(args)
	if err != nil {
		return err
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening scores database: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Printf("Cleared all scores for %s.\n", game.Title())
		return nil
	}

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		_, err := tui.RunScoreboard(store, gameID, width, height, logger)
		return err
	}

	var scores []storage.ScoreEntry
	if flagLimit == 0 {
		scores, err = store.AllScores(gameID)
	} else {
		scores, err = store.TopScores(gameID, flagLimit)
	}
	if err != nil {
		return fmt.Errorf("error retrieving scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n", game.Title())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No climbs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'climber play %s' to set the first score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-8s  %s\n", "Rank", "Climbs", "Time", "Date")
	fmt.Printf("  %-4s  %-8s  %-8s  %s\n", "----", "------", "----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-8d  %-8s  %s\n",
			i+1, entry.Score, entry.Duration.Round(100*time.Millisecond), entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	best, bestErr := store.BestScore(gameID)
	top, topErr := store.HighScore(gameID)
	if bestErr == nil && topErr == nil {
		fmt.Printf("Best: %d (best recorded run: %d)\n", max(best, top), top)
	}
	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Printf("Runs: %d  Average: %.1f  Time on the wall: %s\n",
			stats.GamesCount, stats.AvgScore, stats.TotalTime.Round(time.Second))
	}
	return nil
}
