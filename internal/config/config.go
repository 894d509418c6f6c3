// Package config provides YAML-based game configuration loading and
// difficulty presets for the flappy arcade.
package config

// FlappyConfig contains all tunable constants for the game.
// Units are logical playfield units and frames; nothing is scaled by wall-clock time.
type FlappyConfig struct {
	Playfield   FlappyPlayfield   `yaml:"playfield"`
	Physics     FlappyPhysics     `yaml:"physics"`
	Obstacles   FlappyObstacles   `yaml:"obstacles"`
	Avatar      FlappyAvatar      `yaml:"avatar"`
	Persistence PersistenceConfig `yaml:"persistence"`
}

// FlappyPlayfield defines the logical surface the simulation runs on.
type FlappyPlayfield struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	GroundHeight float64 `yaml:"ground_height"`
}

// GroundY returns the y-coordinate of the top of the ground strip.
func (p FlappyPlayfield) GroundY() float64 {
	return p.Height - p.GroundHeight
}

// FlappyPhysics defines per-frame physics parameters.
type FlappyPhysics struct {
	Gravity        float64 `yaml:"gravity"`         // Added to velocity every frame
	JumpImpulse    float64 `yaml:"jump_impulse"`    // Velocity set on flap (negative = up)
	RotationFactor float64 `yaml:"rotation_factor"` // Degrees per unit of velocity
	MinRotation    float64 `yaml:"min_rotation"`
	MaxRotation    float64 `yaml:"max_rotation"`
}

// FlappyObstacles defines obstacle pair parameters.
type FlappyObstacles struct {
	Width         float64 `yaml:"width"`
	Gap           float64 `yaml:"gap"`
	Speed         float64 `yaml:"speed"`          // Units per frame
	SpawnInterval int     `yaml:"spawn_interval"` // Frames between spawns
	MinHeight     float64 `yaml:"min_height"`     // Minimum visible segment height
	CapOverhang   float64 `yaml:"cap_overhang"`   // Cosmetic only
	CapHeight     float64 `yaml:"cap_height"`     // Cosmetic only
}

// FlappyAvatar defines the avatar's initial placement and hitbox.
type FlappyAvatar struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PersistenceConfig selects where the best score is kept.
type PersistenceConfig struct {
	Backend string `yaml:"backend"` // "sqlite", "gdata" or "memory"
	Slot    string `yaml:"slot"`    // Name of the best-score slot
}

// Persistence backends.
const (
	BackendSQLite = "sqlite"
	BackendGdata  = "gdata"
	BackendMemory = "memory"
)

// Normalize replaces unusable values with defaults so that a partially
// written config file still produces a playable game.
func (c *FlappyConfig) Normalize() {
	def := DefaultFlappyConfig()

	if c.Playfield.Width <= 0 {
		c.Playfield.Width = def.Playfield.Width
	}
	if c.Playfield.Height <= 0 {
		c.Playfield.Height = def.Playfield.Height
	}
	if c.Playfield.GroundHeight <= 0 || c.Playfield.GroundHeight >= c.Playfield.Height {
		c.Playfield.GroundHeight = def.Playfield.GroundHeight
	}
	if c.Physics.MinRotation > c.Physics.MaxRotation {
		c.Physics.MinRotation, c.Physics.MaxRotation = c.Physics.MaxRotation, c.Physics.MinRotation
	}
	if c.Obstacles.Width <= 0 {
		c.Obstacles.Width = def.Obstacles.Width
	}
	if c.Obstacles.Gap <= 0 {
		c.Obstacles.Gap = def.Obstacles.Gap
	}
	if c.Obstacles.Speed <= 0 {
		c.Obstacles.Speed = def.Obstacles.Speed
	}
	if c.Obstacles.SpawnInterval < 1 {
		c.Obstacles.SpawnInterval = def.Obstacles.SpawnInterval
	}
	if c.Obstacles.MinHeight < 0 {
		c.Obstacles.MinHeight = 0
	}
	if c.Avatar.Width <= 0 {
		c.Avatar.Width = def.Avatar.Width
	}
	if c.Avatar.Height <= 0 {
		c.Avatar.Height = def.Avatar.Height
	}
	switch c.Persistence.Backend {
	case BackendSQLite, BackendGdata, BackendMemory:
	default:
		c.Persistence.Backend = def.Persistence.Backend
	}
	if c.Persistence.Slot == "" {
		c.Persistence.Slot = def.Persistence.Slot
	}
}
