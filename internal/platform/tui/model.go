package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// hudRows is the number of terminal rows below the playfield (HUD and help).
const hudRows = 2

// ScoreRecorder keeps the history of finished sessions.
type ScoreRecorder interface {
	SaveScore(gameID string, score int) (int64, error)
}

// Options configures the terminal driver.
type Options struct {
	Store  ScoreRecorder // optional score history
	HUD    *HUD          // optional; must be the sink the game reports to
	Logger *log.Logger   // optional; session events are discarded when nil
}

// Model is the Bubble Tea model that drives a game.
type Model struct {
	game       Game
	screen     *core.Screen
	store      ScoreRecorder
	hud        *HUD
	logger     *log.Logger
	keys       KeyMap
	help       help.Model
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	paused     bool
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
// cfg.ScreenW and cfg.ScreenH describe the whole terminal; the playfield
// gets everything except the HUD rows.
func NewModel(game Game, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	hud := opts.HUD
	if hud == nil {
		hud = NewHUD()
	}

	game.Reset(cfg)

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, playfieldRows(cfg.ScreenH)),
		store:      opts.Store,
		hud:        hud,
		logger:     logger,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
	}
}

func playfieldRows(termRows int) int {
	return core.Max(termRows-hudRows, 1)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.logger.Info("session started", "game", m.game.ID(), "seed", m.config.Seed)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if !m.paused && MapMouse(msg) == core.ActionPrimary {
			m.inputFrame.Set(core.ActionPrimary)
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input. Input is buffered in the frame and
// applied on the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "err", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	switch action := m.keys.MapKey(msg); action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionPause:
		m.paused = !m.paused
		m.inputFrame.Clear()
	case core.ActionPrimary, core.ActionRestart:
		if !m.paused {
			m.inputFrame.Set(action)
		}
	}

	return m, nil
}

// handleResize resizes the cell buffer. The playfield is in logical units,
// so the simulation carries on unchanged.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playfieldRows(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick advances the simulation by one step unless paused.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.paused {
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.inputFrame.Clear()

	if result.State.Started && !m.gameState.Started {
		m.logger.Debug("session running", "game", m.game.ID())
	}
	m.gameState = result.State

	if result.Ended {
		m.recordSession(result.State)
	}

	return m, tickCmd(m.config.TickRate)
}

// recordSession logs a finished session and appends it to the history.
func (m Model) recordSession(state core.GameState) {
	m.logger.Info("session ended", "game", m.game.ID(), "score", state.Score, "best", state.HighScore)
	if state.Score <= 0 || m.store == nil {
		return
	}
	if _, err := m.store.SaveScore(m.game.ID(), state.Score); err != nil {
		m.logger.Warn("cannot record score", "err", err)
	}
}

// saveScreenshot writes the current playfield as plain text
// to ~/.flappy/screenshots.
func (m Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("tui: cannot resolve home directory: %w", err)
	}
	dir := filepath.Join(home, ".flappy", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: cannot create %s: %w", dir, err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: cannot write screenshot: %w", err)
	}
	return path, nil
}

// Paused reports whether the driver is frozen.
func (m Model) Paused() bool {
	return m.paused
}

// State returns the last state reported by the game.
func (m Model) State() core.GameState {
	return m.gameState
}

// View renders the playfield, the HUD line and the help bar.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	return RenderScreen(m.screen) + "\n" +
		m.hud.View(m.paused) + "\n" +
		m.help.View(m.keys)
}

// Run starts the Bubble Tea program for the given game.
func Run(game Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
