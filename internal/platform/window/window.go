// Package window is the ebiten driver: it steps the engine once per tick,
// reads keyboard, mouse and touch input and draws the playfield as a raster.
package window

import (
	"errors"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

// ScoreRecorder keeps the history of finished sessions.
type ScoreRecorder interface {
	SaveScore(gameID string, score int) (int64, error)
}

// Options configures the window driver.
type Options struct {
	Title    string
	Scale    float64 // window size relative to the logical playfield
	TickRate int     // ticks per second; 0 keeps the ebiten default
	Store    ScoreRecorder
	Logger   *log.Logger
}

// input is the set of actions polled for one tick.
type input struct {
	primary bool
	restart bool
	pause   bool
	quit    bool
}

// Game implements ebiten.Game on top of a flappy engine.
type Game struct {
	engine   *flappy.Engine
	store    ScoreRecorder
	logger   *log.Logger
	touchIDs []ebiten.TouchID
	sprite   *ebiten.Image
	paused   bool
}

// New wraps engine for the window driver. store may be nil.
func New(engine *flappy.Engine, store ScoreRecorder, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "window"})
	}
	return &Game{engine: engine, store: store, logger: logger}
}

// Update polls input and advances the simulation by one tick.
func (g *Game) Update() error {
	return g.step(g.pollInput())
}

// step applies one tick of input. Pause is a driver-level freeze: the
// engine is simply not stepped.
func (g *Game) step(in input) error {
	if in.quit {
		return ebiten.Termination
	}
	if in.pause {
		g.paused = !g.paused
	}
	if g.paused {
		return nil
	}

	switch {
	case in.primary:
		g.engine.PrimaryAction()
	case in.restart:
		g.engine.RequestRestart()
	}

	before := g.engine.Phase()
	g.engine.Update()
	if before == flappy.PhasePlaying && g.engine.Phase() == flappy.PhaseEnded {
		g.recordSession(g.engine.Session().Score)
	}
	return nil
}

func (g *Game) recordSession(score int) {
	g.logger.Info("session ended", "score", score, "best", g.engine.HighScore())
	if score <= 0 || g.store == nil {
		return
	}
	if _, err := g.store.SaveScore("flappy", score); err != nil {
		g.logger.Warn("cannot record score", "err", err)
	}
}

// pollInput maps keys, left clicks and new touches to actions.
func (g *Game) pollInput() input {
	g.touchIDs = inpututil.AppendJustPressedTouchIDs(g.touchIDs[:0])

	return input{
		primary: inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
			inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) ||
			inpututil.IsKeyJustPressed(ebiten.KeyW) ||
			inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
			inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) ||
			len(g.touchIDs) > 0,
		restart: inpututil.IsKeyJustPressed(ebiten.KeyR),
		pause:   inpututil.IsKeyJustPressed(ebiten.KeyP),
		quit:    inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape),
	}
}

// Layout keeps the logical playfield size; ebiten scales it to the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	pf := g.engine.Config().Playfield
	return int(pf.Width), int(pf.Height)
}

// Paused reports whether the driver is frozen.
func (g *Game) Paused() bool {
	return g.paused
}

// Run opens the window and blocks until it is closed.
func Run(engine *flappy.Engine, opts Options) error {
	g := New(engine, opts.Store, opts.Logger)

	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	pf := engine.Config().Playfield
	ebiten.SetWindowSize(int(pf.Width*scale), int(pf.Height*scale))
	ebiten.SetWindowTitle(opts.Title)
	if opts.TickRate > 0 {
		ebiten.SetTPS(opts.TickRate)
	}

	g.logger.Info("window opened", "width", pf.Width, "height", pf.Height, "scale", scale)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
