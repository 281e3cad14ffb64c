package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-climber/internal/core"
	"github.com/vovakirdan/tui-climber/internal/games/climb"
	"github.com/vovakirdan/tui-climber/internal/platform/tui"
	"github.com/vovakirdan/tui-climber/internal/registry"
	"github.com/vovakirdan/tui-climber/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the climber with a lobby",
	Long: `Start in interactive lobby mode.

Pick a difficulty and climb. After a run ends and you quit the game,
you return to the lobby to play again or check the scoreboard.

Controls:
  Up/Down/j/k  - Navigate
  Enter/Space  - Select
  Tab          - High scores
  Q/Esc        - Quit

Examples:
  climber menu
  climber menu --fps 30
  climber menu --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	// Uses global flags from main.go (--fps, --seed, --db)
	rootCmd.AddCommand(menuCmd)
}

func runMenu(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		store = nil
	}
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	for {
		res, err := tui.RunMenu(store, defaultGame, cfg)
		if err != nil {
			return err
		}
		cfg = res.Config

		switch res.Choice {
		case tui.MenuChoiceScores:
			goBack, sbErr := tui.RunScoreboard(store, defaultGame, cfg.ScreenW, cfg.ScreenH, logger)
			if sbErr != nil {
				return sbErr
			}
			if !goBack {
				return nil
			}
			continue

		case tui.MenuChoicePlay:
			climb.SetDifficultyPreset(string(res.Difficulty))

			game, err := registry.Create(defaultGame)
			if err != nil {
				return err
			}

			runCfg := cfg
			if runCfg.Seed == 0 {
				runCfg.Seed = time.Now().UnixNano()
			}
			if err := tui.Run(game, store, runCfg, logger); err != nil {
				logger.Error("game exited with error", "error", err)
			}

		default:
			return nil
		}
	}
}
