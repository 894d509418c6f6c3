package tui

import "github.com/vovakirdan/tui-flappy/internal/core"

// Game is what the terminal driver needs from a game: a fixed-step
// simulation fed with input frames and drawn onto a cell buffer.
type Game interface {
	// ID returns the identifier used for the score history.
	ID() string

	// Title returns the display name.
	Title() string

	// Reset starts over with the given runtime configuration.
	Reset(cfg core.RuntimeConfig)

	// Step applies one frame of input and advances the simulation one tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state. It must not change the state.
	Render(dst *core.Screen)

	// State returns a snapshot for the driver.
	State() core.GameState
}
