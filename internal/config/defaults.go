package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the reference build configuration:
// a 400x600 playfield tuned for 60 frames per second.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Playfield: FlappyPlayfield{
			Width:        400,
			Height:       600,
			GroundHeight: 50,
		},
		Physics: FlappyPhysics{
			Gravity:        0.5,
			JumpImpulse:    -5,
			RotationFactor: 3,
			MinRotation:    -30,
			MaxRotation:    90,
		},
		Obstacles: FlappyObstacles{
			Width:         60,
			Gap:           150,
			Speed:         3,
			SpawnInterval: 90,
			MinHeight:     50,
			CapOverhang:   5,
			CapHeight:     30,
		},
		Avatar: FlappyAvatar{
			X:      80,
			Y:      250,
			Width:  30,
			Height: 30,
		},
		Persistence: PersistenceConfig{
			Backend: BackendSQLite,
			Slot:    "flappyHighScore",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}
