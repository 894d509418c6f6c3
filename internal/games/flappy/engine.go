package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
)

// ScoreStore persists the best score in a single named slot.
type ScoreStore interface {
	LoadBest() (int, error)
	SaveBest(score int) error
}

// Sink receives numeric display updates: the current score, the high score
// and the final score when a session ends.
type Sink interface {
	ScoreChanged(score int)
	HighScoreChanged(best int)
	SessionEnded(final, best int)
}

type nopSink struct{}

func (nopSink) ScoreChanged(int)      {}
func (nopSink) HighScoreChanged(int)  {}
func (nopSink) SessionEnded(int, int) {}

// Option configures an Engine.
type Option func(*Engine)

// WithStore sets where the best score is read from and written to.
func WithStore(s ScoreStore) Option {
	return func(e *Engine) {
		e.store = s
	}
}

// WithSink sets the receiver of score display updates.
func WithSink(s Sink) Option {
	return func(e *Engine) {
		if s != nil {
			e.sink = s
		}
	}
}

// Engine owns the avatar, the session phase, the score and, through the
// ObstacleManager, the obstacles. It advances exactly one fixed step per Update.
type Engine struct {
	cfg       config.FlappyConfig
	session   Session
	obstacles *ObstacleManager
	highScore int
	store     ScoreStore
	storeErr  error
	sink      Sink
}

// NewEngine creates an engine in the Start phase. The best score is read
// once from the store; a failed read counts as zero.
func NewEngine(cfg config.FlappyConfig, seed int64, opts ...Option) *Engine {
	cfg.Normalize()
	e := &Engine{
		cfg:       cfg,
		session:   newSession(cfg, PhaseStart),
		obstacles: NewObstacleManager(cfg.Playfield, cfg.Obstacles, seed),
		sink:      nopSink{},
	}
	for _, opt := range opts {
		opt(e)
	}

	if e.store != nil {
		best, err := e.store.LoadBest()
		if err != nil || best < 0 {
			best = 0
			e.storeErr = err
		}
		e.highScore = best
	}
	e.sink.HighScoreChanged(e.highScore)
	e.sink.ScoreChanged(0)

	return e
}

// Update advances the simulation by one frame. It does nothing unless Playing.
func (e *Engine) Update() {
	if e.session.Phase != PhasePlaying {
		return
	}
	s := &e.session

	s.Frame++
	s.Avatar.integrate(e.cfg.Physics)

	if s.Frame%e.cfg.Obstacles.SpawnInterval == 0 {
		e.obstacles.Spawn()
	}

	if passed := e.obstacles.Advance(e.cfg.Obstacles.Speed, s.Avatar.X); passed > 0 {
		s.Score += passed
		e.sink.ScoreChanged(s.Score)
	}

	if e.obstacles.Collides(s.Avatar.Rect()) || e.outOfBounds() {
		e.fire(TriggerCrash)
	}
}

// outOfBounds reports whether the avatar's bottom edge is below the ground
// line or its top edge is above the playfield.
func (e *Engine) outOfBounds() bool {
	a := e.session.Avatar
	return a.Y+a.H > e.cfg.Playfield.GroundY() || a.Y < 0
}

// PrimaryAction handles the one semantic input: start in Start, flap while
// Playing, restart once Ended.
func (e *Engine) PrimaryAction() {
	e.fire(TriggerPrimary)
}

// RequestRestart handles an explicit restart control. It only has an effect
// once the session has ended.
func (e *Engine) RequestRestart() {
	e.fire(TriggerRestart)
}

// fire applies a trigger through transition and performs its effects.
func (e *Engine) fire(t Trigger) {
	from := e.session.Phase
	to, ok := transition(from, t)
	if !ok {
		return
	}

	switch {
	case from == PhaseEnded:
		e.restart()
	case to == PhaseEnded:
		e.session.Phase = PhaseEnded
		e.endSession()
	default:
		e.session.Phase = to
		e.session.Avatar.flap(e.cfg.Physics)
	}
}

// restart starts a fresh session in Playing. The high score and the
// obstacle RNG stream carry over.
func (e *Engine) restart() {
	e.session = newSession(e.cfg, PhasePlaying)
	e.obstacles.Clear()
	e.sink.ScoreChanged(0)
}

// endSession folds the session score into the high score.
func (e *Engine) endSession() {
	score := e.session.Score
	if score > e.highScore {
		e.highScore = score
		if e.store != nil {
			e.storeErr = e.store.SaveBest(score)
		}
		e.sink.HighScoreChanged(e.highScore)
	}
	e.sink.SessionEnded(score, e.highScore)
}

// Phase returns the current session phase.
func (e *Engine) Phase() Phase {
	return e.session.Phase
}

// Session returns a snapshot of the current session.
func (e *Engine) Session() Session {
	return e.session
}

// Obstacles returns a snapshot of the live obstacles.
func (e *Engine) Obstacles() []Obstacle {
	return e.obstacles.Obstacles()
}

// HighScore returns the best score seen since persistence was last cleared.
func (e *Engine) HighScore() int {
	return e.highScore
}

// Config returns the constants the engine runs with.
func (e *Engine) Config() config.FlappyConfig {
	return e.cfg
}

// StoreErr returns the last error reported by the score store, if any.
func (e *Engine) StoreErr() error {
	return e.storeErr
}
