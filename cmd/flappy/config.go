package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as YAML",
	Long: `Print the configuration the game would run with, after the config
search path, the difficulty preset and --store have been applied.

Save the output to ~/.flappy/configs/flappy.yaml to customise the game.

Examples:
  flappy config
  flappy config --difficulty easy > ~/.flappy/configs/flappy.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fatal("%v", err)
	}

	out, err := config.Marshal(cfg)
	if err != nil {
		fatal("%v", err)
	}
	os.Stdout.Write(out)
}
