package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start the game in the terminal.

Controls:
  Space/Up/W/Enter, click  - Flap (also starts and restarts)
  R                        - Restart after game over
  P                        - Pause
  Ctrl+S                   - Save a text screenshot to ~/.flappy/screenshots
  Q/Ctrl+C                 - Quit

Difficulty presets:
  easy   - Wider gaps, slower pipes, sparser spawns
  normal - The reference tuning
  hard   - Narrower gaps, faster pipes, denser spawns

Examples:
  flappy play
  flappy play --difficulty hard
  flappy play --seed 42 --log-file ./flappy.log
  flappy play --config ./my-flappy.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fatal("%v", err)
	}

	st := openStores(cfg.Persistence)

	sessLog, closeLog, err := sessionLogger()
	if err != nil {
		logger.Warn("session log disabled", "err", err)
		sessLog, closeLog = nil, func() {}
	}

	width, height := terminalSize()
	runErr := playTerminal(cfg, width, height, st, sessLog)

	st.Close()
	closeLog()

	if runErr != nil {
		fatal("running game: %v", runErr)
	}
}

// terminalSize returns the size of stdout, or 80x24 when it is not a terminal.
func terminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return 80, 24
}

// playTerminal runs one terminal game until the player quits.
func playTerminal(cfg config.FlappyConfig, width, height int, st stores, sessLog *log.Logger) error {
	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     seed(),
	}

	hud := tui.NewHUD()
	game := flappy.New(cfg, flappy.WithStore(st.best), flappy.WithSink(hud))

	opts := tui.Options{HUD: hud, Logger: sessLog}
	if st.history != nil {
		opts.Store = st.history
	}

	err := tui.Run(game, rc, opts)
	if storeErr := game.Engine().StoreErr(); storeErr != nil {
		logger.Warn("best score could not be read, started from 0", "err", storeErr)
	}
	return err
}
