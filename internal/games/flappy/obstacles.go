package flappy

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Obstacle is a top and bottom segment pair with a gap between them.
type Obstacle struct {
	X            float64 // Left edge
	TopHeight    float64 // Top segment spans [0, TopHeight)
	BottomY      float64 // Bottom segment starts here: TopHeight + gap
	BottomHeight float64 // Bottom segment ends at the ground line
	Scored       bool    // Set once when the avatar passes it
}

// TopRect returns the collision rectangle of the top segment.
func (o Obstacle) TopRect(width float64) core.Rect {
	return core.NewRect(o.X, 0, width, o.TopHeight)
}

// BottomRect returns the collision rectangle of the bottom segment.
func (o Obstacle) BottomRect(width float64) core.Rect {
	return core.NewRect(o.X, o.BottomY, width, o.BottomHeight)
}

// ObstacleManager handles spawning, movement, scoring and removal of obstacles.
// Obstacles are kept in spawn order and never reorder.
type ObstacleManager struct {
	obstacles []Obstacle
	rng       *rand.Rand
	playfield config.FlappyPlayfield
	cfg       config.FlappyObstacles
}

// NewObstacleManager creates an obstacle manager with the given RNG seed.
func NewObstacleManager(playfield config.FlappyPlayfield, cfg config.FlappyObstacles, seed int64) *ObstacleManager {
	return &ObstacleManager{
		obstacles: make([]Obstacle, 0, 8),
		rng:       rand.New(rand.NewSource(seed)),
		playfield: playfield,
		cfg:       cfg,
	}
}

// Clear removes all obstacles. The RNG stream continues.
func (m *ObstacleManager) Clear() {
	m.obstacles = m.obstacles[:0]
}

// Spawn appends a new obstacle at the right edge of the playfield.
// The top height is uniform in [MinHeight, usable-Gap-MinHeight]. When the
// playfield is too small for that range, values are clamped so no segment
// has negative height and the ground is never covered.
func (m *ObstacleManager) Spawn() Obstacle {
	usable := math.Max(m.playfield.GroundY(), 0)
	gap := math.Min(m.cfg.Gap, usable)
	maxTop := usable - gap

	lo := math.Min(m.cfg.MinHeight, maxTop)
	hi := math.Max(maxTop-m.cfg.MinHeight, lo)

	top := lo + m.rng.Float64()*(hi-lo)
	bottomY := top + gap

	o := Obstacle{
		X:            m.playfield.Width,
		TopHeight:    top,
		BottomY:      bottomY,
		BottomHeight: usable - bottomY,
	}
	m.obstacles = append(m.obstacles, o)
	return o
}

// Advance moves every obstacle left by speed, marks the ones whose trailing
// edge is now left of avatarX as scored, and drops the ones fully off-screen.
// Returns the number of obstacles scored this frame.
func (m *ObstacleManager) Advance(speed, avatarX float64) int {
	width := m.cfg.Width
	scored := 0

	kept := m.obstacles[:0]
	for _, o := range m.obstacles {
		o.X -= speed

		if !o.Scored && o.X+width < avatarX {
			o.Scored = true
			scored++
		}

		if o.X+width < 0 {
			continue
		}
		kept = append(kept, o)
	}
	m.obstacles = kept

	return scored
}

// Collides reports whether r overlaps any segment of any live obstacle.
func (m *ObstacleManager) Collides(r core.Rect) bool {
	width := m.cfg.Width
	for _, o := range m.obstacles {
		if r.Overlaps(o.TopRect(width)) || r.Overlaps(o.BottomRect(width)) {
			return true
		}
	}
	return false
}

// Obstacles returns a copy of the live obstacles, oldest first.
func (m *ObstacleManager) Obstacles() []Obstacle {
	out := make([]Obstacle, len(m.obstacles))
	copy(out, m.obstacles)
	return out
}

// Len returns the number of live obstacles.
func (m *ObstacleManager) Len() int {
	return len(m.obstacles)
}
