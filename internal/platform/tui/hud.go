package tui

import (
	"fmt"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

var (
	hudScoreStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	hudBestStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	hudFinalStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	hudPauseStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
)

// HUD holds the text shown above the playfield. The engine pushes values
// into it through ScoreChanged, HighScoreChanged and SessionEnded.
type HUD struct {
	mu       sync.Mutex
	score    int
	best     int
	final    int
	hasFinal bool
}

// NewHUD creates an empty HUD.
func NewHUD() *HUD {
	return &HUD{}
}

// ScoreChanged updates the current score. A new session hides the last
// final score once it starts counting from zero again.
func (h *HUD) ScoreChanged(score int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if score == 0 {
		h.hasFinal = false
	}
	h.score = score
}

// HighScoreChanged updates the best score.
func (h *HUD) HighScoreChanged(best int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.best = best
}

// SessionEnded records the final score of the session.
func (h *HUD) SessionEnded(final, best int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.final = final
	h.best = best
	h.hasFinal = true
}

// Score returns the current score.
func (h *HUD) Score() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.score
}

// Best returns the best score.
func (h *HUD) Best() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.best
}

// Final returns the last final score and whether a session has ended
// since the current one started.
func (h *HUD) Final() (int, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.final, h.hasFinal
}

// Line returns the plain HUD text.
func (h *HUD) Line(paused bool) string {
	h.mu.Lock()
	defer h.mu.Unlock()

	line := fmt.Sprintf("Score: %d  Best: %d", h.score, h.best)
	if h.hasFinal {
		line += fmt.Sprintf("  Final: %d", h.final)
	}
	if paused {
		line += "  PAUSED"
	}
	return line
}

// View returns the styled HUD line.
func (h *HUD) View(paused bool) string {
	h.mu.Lock()
	score, best, final, hasFinal := h.score, h.best, h.final, h.hasFinal
	h.mu.Unlock()

	out := hudScoreStyle.Render(fmt.Sprintf("Score: %d", score)) + "  " +
		hudBestStyle.Render(fmt.Sprintf("Best: %d", best))
	if hasFinal {
		out += "  " + hudFinalStyle.Render(fmt.Sprintf("Final: %d", final))
	}
	if paused {
		out += "  " + hudPauseStyle.Render(" PAUSED ")
	}
	return out
}
