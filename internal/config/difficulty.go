package config

import "fmt"

// DifficultyPreset represents a named set of obstacle constants.
// Presets are applied once before a game starts; values stay constant
// for the whole session.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset validates a preset name. An empty name means normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch DifficultyPreset(name) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyHard:
		return DifficultyPreset(name), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", name)
	}
}

// ApplyFlappyPreset modifies the obstacle constants for a difficulty preset.
// Normal leaves the loaded configuration untouched.
func ApplyFlappyPreset(cfg *FlappyConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Obstacles.Gap *= 1.2
		cfg.Obstacles.Speed *= 0.8
		cfg.Obstacles.SpawnInterval += cfg.Obstacles.SpawnInterval / 9
	case DifficultyHard:
		cfg.Obstacles.Gap *= 0.85
		cfg.Obstacles.Speed *= 1.25
		cfg.Obstacles.SpawnInterval -= cfg.Obstacles.SpawnInterval / 9
	}
}
