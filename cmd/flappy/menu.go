package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a difficulty and play, again and again",
	Long: `Start the launcher menu.

Pick a difficulty with the arrow keys and press Enter to play.
Quitting a game returns to the menu; Tab shows the scoreboard.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Play
  Tab          - Scores
  Q/Esc        - Quit

Examples:
  flappy menu
  flappy menu --store gdata`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func init() {
	rootCmd.AddCommand(menuCmd)
}

func runMenu(_ *cobra.Command, _ []string) {
	base, err := loadConfig()
	if err != nil {
		fatal("%v", err)
	}
	preset, _ := config.ParsePreset(flagDifficulty)

	st := openStores(base.Persistence)
	defer st.Close()

	sessLog, closeLog, err := sessionLogger()
	if err != nil {
		logger.Warn("session log disabled", "err", err)
		sessLog, closeLog = nil, func() {}
	}
	defer closeLog()

	width, height := terminalSize()

	for {
		best, _ := st.best.LoadBest()

		res, err := tui.RunMenu(preset, best, width, height)
		if err != nil {
			logger.Error("menu failed", "err", err)
			return
		}
		width, height = res.Width, res.Height

		switch {
		case res.Quit:
			return

		case res.WantsScoreboard:
			if err := showScoreboard(st, best, width, height); err != nil {
				logger.Error("scoreboard failed", "err", err)
				return
			}

		default:
			preset = res.Preset
			flagDifficulty = string(preset)
			cfg, err := loadConfig()
			if err != nil {
				logger.Error("cannot load config", "err", err)
				return
			}
			if err := playTerminal(cfg, width, height, st, sessLog); err != nil {
				logger.Error("game failed", "err", err)
				return
			}
		}
	}
}
