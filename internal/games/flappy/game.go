// Package flappy implements a Flappy Bird-style game.
// The player controls an avatar that must pass through gaps between
// obstacle pairs by timing upward impulses against gravity.
//
// Simulation runs in logical playfield units (400x600 by default) and
// advances one fixed step per frame; renderers scale it to their surface.
package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Game adapts the Engine to the platform drivers: it turns input frames
// into engine events and renders into a cell screen.
type Game struct {
	cfg    config.FlappyConfig
	opts   []Option
	engine *Engine
}

// New creates a new game instance. Reset must be called before Step.
func New(cfg config.FlappyConfig, opts ...Option) *Game {
	return &Game{
		cfg:  cfg,
		opts: opts,
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "flappy"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Flappy"
}

// Reset builds a fresh engine in the Start phase.
// The best score is reloaded from the store.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.engine = NewEngine(g.cfg, rc.Seed, g.opts...)
}

// Step applies this frame's input and then advances one frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	before := g.engine.Phase()

	switch {
	case in.Has(core.ActionPrimary):
		g.engine.PrimaryAction()
	case in.Has(core.ActionRestart):
		g.engine.RequestRestart()
	}

	g.engine.Update()

	return core.StepResult{
		State: g.State(),
		Ended: before != PhaseEnded && g.engine.Phase() == PhaseEnded,
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	render(g.engine, dst)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	s := g.engine.Session()
	return core.GameState{
		Score:     s.Score,
		HighScore: g.engine.HighScore(),
		Started:   s.Phase != PhaseStart,
		GameOver:  s.Phase == PhaseEnded,
	}
}

// Engine exposes the underlying simulation.
func (g *Game) Engine() *Engine {
	return g.engine
}
