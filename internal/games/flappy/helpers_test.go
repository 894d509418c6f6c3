package flappy

import (
	"errors"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

// memStore is an in-memory ScoreStore that counts writes.
type memStore struct {
	best    int
	saves   int
	loadErr error
}

func (s *memStore) LoadBest() (int, error) {
	if s.loadErr != nil {
		return 0, s.loadErr
	}
	return s.best, nil
}

func (s *memStore) SaveBest(score int) error {
	s.saves++
	s.best = score
	return nil
}

var errBroken = errors.New("broken store")

// recordingSink keeps every update it receives.
type recordingSink struct {
	scores []int
	highs  []int
	ended  [][2]int
}

func (r *recordingSink) ScoreChanged(score int) { r.scores = append(r.scores, score) }
func (r *recordingSink) HighScoreChanged(b int) { r.highs = append(r.highs, b) }
func (r *recordingSink) SessionEnded(f, b int)  { r.ended = append(r.ended, [2]int{f, b}) }

// floatingConfig disables gravity and impulses so the avatar hovers at its
// start position, which makes obstacle timing easy to reason about.
func floatingConfig() config.FlappyConfig {
	cfg := config.DefaultFlappyConfig()
	cfg.Physics.Gravity = 0
	cfg.Physics.JumpImpulse = 0
	return cfg
}

// startedEngine returns an engine that has received its first input.
func startedEngine(cfg config.FlappyConfig, opts ...Option) *Engine {
	e := NewEngine(cfg, 1, opts...)
	e.PrimaryAction()
	return e
}

// crash ends the session by pushing the avatar below the ground.
func crash(e *Engine) {
	e.session.Avatar.Y = e.cfg.Playfield.Height
	e.Update()
}
