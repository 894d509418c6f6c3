package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/platform/window"
)

var flagScale float64

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open the game in a desktop window drawn at the logical playfield size.

Controls:
  Space/Up/W/Enter, click, touch  - Flap (also starts and restarts)
  R                               - Restart after game over
  P                               - Pause
  Q/Esc                           - Quit

Examples:
  flappy window
  flappy window --scale 1.5 --store gdata`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window scale relative to the playfield")
}

func runWindow(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fatal("%v", err)
	}

	st := openStores(cfg.Persistence)

	engine := flappy.NewEngine(cfg, seed(), flappy.WithStore(st.best))
	if storeErr := engine.StoreErr(); storeErr != nil {
		logger.Warn("best score could not be read, starting from 0", "err", storeErr)
	}

	opts := window.Options{
		Title:    "Flappy",
		Scale:    flagScale,
		TickRate: flagFPS,
		Logger:   logger,
	}
	if st.history != nil {
		opts.Store = st.history
	}

	runErr := window.Run(engine, opts)
	st.Close()

	if runErr != nil {
		fatal("running window: %v", runErr)
	}
}
