package config

import (
	_ "embed"
)

//go:embed defaults/road.yaml
var defaultRoadYAML []byte

// DefaultRoadConfig returns the built-in tuning.
func DefaultRoadConfig() RoadConfig {
	return RoadConfig{
		Player: PlayerConfig{
			Speed:     300,
			X:         -500,
			Scale:     0.8,
			BuffScale: 1.0,
			Tilt:      0.2,
			Width:     110,
			Height:    55,
		},
		Road: RoadScroll{
			BaseSpeed:  400,
			FastFactor: 1.25,
		},
		Difficulty: DifficultyConfig{
			Period:       5.0,
			Acceleration: 1.1,
		},
		Markers: MarkerConfig{
			Count:   10,
			StartX:  -600,
			Spacing: 150,
			WrapAt:  -675,
			WrapBy:  1500,
			Scale:   0.1,
		},
		Obstacles: SpawnConfig{
			Count:     3,
			MinX:      800,
			MaxX:      1600,
			MinY:      -300,
			MaxY:      300,
			RecycleAt: -800,
			Width:     64,
			Height:    64,
		},
		Collectibles: SpawnConfig{
			Count:     4,
			MinX:      800,
			MaxX:      3200,
			MinY:      -300,
			MaxY:      300,
			RecycleAt: -800,
			Width:     40,
			Height:    40,
		},
		Buff: BuffConfig{
			InvulnerableDuration: 10,
			SlowDuration:         10,
			SlowMultiplier:       0.5,
			Width:                40,
			Height:               40,
		},
		Track: TrackConfig{
			HalfHeight: 360,
		},
		Session: SessionConfig{
			Health: 5,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultRoadYAML
}
