package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// gameID names the game in the score history.
const gameID = "flappy"

var (
	flagClear       bool
	flagInteractive bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best score and the score history",
	Long: `Display the best score and the top 10 finished sessions.

Examples:
  flappy scores
  flappy scores --interactive
  flappy scores --clear
  flappy scores --store gdata`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Erase the best score and the history")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse the history in a table")
}

func runScores(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fatal("%v", err)
	}

	st := openStores(cfg.Persistence)
	defer st.Close()

	if flagClear {
		if err := st.best.ClearBest(); err != nil {
			logger.Error("cannot clear best score", "err", err)
		}
		if st.history != nil {
			if err := st.history.ClearScores(gameID); err != nil {
				logger.Error("cannot clear score history", "err", err)
			}
		}
		fmt.Println("Scores cleared.")
		return
	}

	best, err := st.best.LoadBest()
	if err != nil {
		logger.Warn("cannot read best score", "err", err)
	}

	if flagInteractive {
		width, height := terminalSize()
		if err := showScoreboard(st, best, width, height); err != nil {
			logger.Error("scoreboard failed", "err", err)
		}
		return
	}

	if err := writeScores(os.Stdout, best, cfg.Persistence.Backend, st.history); err != nil {
		logger.Error("cannot retrieve scores", "err", err)
	}
}

// writeScores prints the best-score slot and, when a history is available,
// the best session on record and the top 10 sessions.
func writeScores(w io.Writer, best int, backend string, history *storage.Store) error {
	fmt.Fprintln(w, "High Scores - Flappy")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Best: %d (%s)\n", best, backend)

	if history == nil {
		return nil
	}

	recorded, err := history.HighScore(gameID)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Best in history: %d\n", recorded)

	scores, err := history.TopScores(gameID, 10)
	if err != nil {
		return err
	}

	fmt.Fprintln(w)
	if len(scores) == 0 {
		fmt.Fprintln(w, "No sessions recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play 'flappy play' to set the first high score!")
		return nil
	}

	fmt.Fprintf(w, "  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Fprintf(w, "  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Fprintf(w, "  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := history.GetGameStats(gameID); err == nil {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Sessions: %d  Average: %.1f\n", stats.GamesCount, stats.AvgScore)
	}
	return nil
}

// showScoreboard opens the interactive score table.
func showScoreboard(st stores, best, width, height int) error {
	var src tui.ScoreSource
	if st.history != nil {
		src = st.history
	}
	return tui.RunScoreboard(src, gameID, "Flappy", best, width, height)
}
