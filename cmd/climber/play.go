package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-climber/internal/config"
	"github.com/vovakirdan/tui-climber/internal/core"
	"github.com/vovakirdan/tui-climber/internal/games/climb"
	"github.com/vovakirdan/tui-climber/internal/platform/tui"
	"github.com/vovakirdan/tui-climber/internal/registry"
	"github.com/vovakirdan/tui-climber/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagTheme      string
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Start climbing",
	Long: `Start playing. Without an argument this is Wall Climber.

Controls:
  ←/A/H      - Reach left
  →/D/L      - Reach right
  Enter      - Start / climb again
  R          - Restart (after a fall)
  Esc/B      - Back to the home screen
  T          - Toggle day/night
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Longer countdown that shrinks slowly
  normal - Config defaults (3s, minus 10ms per climb, floor 1s)
  hard   - Shorter countdown that shrinks quickly
  fixed  - The countdown never shrinks

Examples:
  climber play
  climber play --difficulty easy
  climber play --theme night
  climber play --config ./my-climb.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagTheme, "theme", "", "Theme: day, night or auto (default from config)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID, err := resolveGame(args)
	if err != nil {
		return err
	}

	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}
	if flagConfig != "" {
		if _, err := config.LoadClimb(flagConfig); err != nil {
			return err
		}
	}

	climb.SetConfigPath(flagConfig)
	climb.SetDifficultyPreset(flagDifficulty)
	climb.SetTheme(flagTheme)

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	// Continue without storage - the game still works
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		store = nil
	}

	runErr := tui.Run(game, store, cfg, logger)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		return fmt.Errorf("error running game: %w", runErr)
	}
	return nil
}
