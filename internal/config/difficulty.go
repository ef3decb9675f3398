package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a flag value into a preset. Empty means "use config as is".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// ApplyRoadPreset modifies the config based on a difficulty preset.
//
// easy and hard scale the starting speed and the ramp; fixed keeps the
// starting speed for the whole run.
func ApplyRoadPreset(cfg *RoadConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Road.BaseSpeed *= 0.75
		cfg.Difficulty.Acceleration = 1 + (cfg.Difficulty.Acceleration-1)/2
	case DifficultyHard:
		cfg.Road.BaseSpeed *= 1.25
		cfg.Difficulty.Acceleration = 1 + (cfg.Difficulty.Acceleration-1)*1.5
		if cfg.Session.Health > 3 {
			cfg.Session.Health = 3
		}
	case DifficultyFixed:
		cfg.Difficulty.Acceleration = 1.0
	}
}
