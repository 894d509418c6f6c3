// flappy is a Flappy Bird-style arcade game for the terminal and the desktop.
//
// Usage:
//
//	flappy play      - Play in the terminal
//	flappy menu      - Pick a difficulty and play from a launcher menu
//	flappy window    - Play in a desktop window
//	flappy scores    - Show the best score and the score history
//	flappy config    - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible obstacles
//	--db <path>           - Set database path (default: ~/.flappy/scores.db)
//	--config <path>       - Custom config YAML
//	--difficulty <preset> - easy, normal or hard
//	--store <backend>     - Best-score store: sqlite, gdata or memory
//	--log-file <path>     - Write session logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagStore      string
	flagLogFile    string
)

// logger reports CLI warnings on stderr.
var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "flappy",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy - guide the bird through the pipes",
	Long: `Flappy is a single-screen arcade game: the bird falls under gravity
and you flap to pass through the gaps between pipes.

Available commands:
  play     - Play in the terminal
  menu     - Launcher menu with difficulty picker
  window   - Play in a desktop window
  scores   - View the best score and history
  config   - Print the effective configuration

Examples:
  flappy play
  flappy play --difficulty hard --seed 42
  flappy menu
  flappy window --scale 1.5
  flappy scores --interactive
  flappy config --config ./my-flappy.yaml`,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.flappy/scores.db", "Path to scores database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	pf.StringVar(&flagStore, "store", "", "Best-score store: sqlite, gdata, memory (default from config)")
	pf.StringVar(&flagLogFile, "log-file", "", "Write session logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// fatal prints an error and exits with status 1.
func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
