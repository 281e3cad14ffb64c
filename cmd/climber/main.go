// climber is a wall-climbing arcade game for the terminal.
//
// Usage:
//
//	climber play [game]      - Play (default: climb)
//	climber menu             - Lobby with difficulty picker and scoreboard
//	climber list             - List available games
//	climber scores [game]    - Show recorded runs
//	climber serve            - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.arcade/scores.db)
//	--log-level <lvl>   - debug, info, warn or error (default: warn)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-climber/internal/registry"

	// Import games to register them
	_ "github.com/vovakirdan/tui-climber/internal/games/climb"
)

// defaultGame is played when no game is named.
const defaultGame = "climb"

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string

	logger *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "climber",
	Short: "Wall Climber - reach left or right before the timer runs out",
	Long: `Wall Climber is a terminal arcade game. Holds appear on the left or
right of the wall; reach for the right side before the countdown runs out.
A wrong reach or a timeout ends the climb, and the countdown shrinks as
your score grows.

Available commands:
  play     - Start climbing
  list     - Show all available games
  scores   - View recorded runs
  serve    - Start SSH server for remote play

Examples:
  climber play
  climber play --difficulty hard --theme night
  climber scores
  climber serve --ssh :2222`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
		}
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "climber",
			Level:           level,
		})
		return nil
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// resolveGame returns the game ID from args, or an error naming the closest
// registered ID.
func resolveGame(args []string) (string, error) {
	gameID := defaultGame
	if len(args) > 0 {
		gameID = args[0]
	}
	if registry.Exists(gameID) {
		return gameID, nil
	}
	if s, ok := registry.Suggest(gameID); ok {
		return "", fmt.Errorf("unknown game %q, did you mean %q?", gameID, s)
	}
	return "", fmt.Errorf("unknown game %q, run 'climber list' to see available games", gameID)
}
