package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Avatar is the player-controlled falling and flapping entity.
// X is fixed; Y and Velocity change every frame.
type Avatar struct {
	X, Y     float64
	W, H     float64
	Velocity float64 // Vertical, positive is down
	Rotation float64 // Display angle in degrees, derived from Velocity
}

func newAvatar(cfg config.FlappyAvatar) Avatar {
	return Avatar{
		X: cfg.X,
		Y: cfg.Y,
		W: cfg.Width,
		H: cfg.Height,
	}
}

// Rect returns the avatar's hitbox.
func (a Avatar) Rect() core.Rect {
	return core.NewRect(a.X, a.Y, a.W, a.H)
}

// integrate advances one frame with semi-implicit Euler.
func (a *Avatar) integrate(p config.FlappyPhysics) {
	a.Velocity += p.Gravity
	a.Y += a.Velocity
	a.Rotation = core.ClampF(a.Velocity*p.RotationFactor, p.MinRotation, p.MaxRotation)
}

// flap applies one upward impulse, replacing the current velocity.
func (a *Avatar) flap(p config.FlappyPhysics) {
	a.Velocity = p.JumpImpulse
}

// Session is everything that belongs to one play-through.
// A restart replaces the whole value rather than zeroing fields.
type Session struct {
	Phase  Phase
	Avatar Avatar
	Score  int
	Frame  int // Frames simulated while Playing
}

func newSession(cfg config.FlappyConfig, phase Phase) Session {
	return Session{
		Phase:  phase,
		Avatar: newAvatar(cfg.Avatar),
	}
}
