package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-climber/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config [game]",
	Short: "Print the default config for a game",
	Long: `Prints the built-in YAML config for a game. Save it to a file,
edit it, and pass it back with 'climber play --config'.

Examples:
  climber config > climb.yaml
  climber play --config climb.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, args []string) error {
	gameID, err := resolveGame(args)
	if err != nil {
		return err
	}
	data := config.GetDefaultYAML(gameID)
	if data == nil {
		return fmt.Errorf("game %q has no config", gameID)
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
