// Package config provides YAML-based tuning for the road game: speeds,
// spawn bands, timer durations and difficulty presets.
package config

import "time"

// RoadConfig contains all tuning for the road game.
type RoadConfig struct {
	Player       PlayerConfig     `yaml:"player"`
	Road         RoadScroll       `yaml:"road"`
	Difficulty   DifficultyConfig `yaml:"difficulty"`
	Markers      MarkerConfig     `yaml:"markers"`
	Obstacles    SpawnConfig      `yaml:"obstacles"`
	Collectibles SpawnConfig      `yaml:"collectibles"`
	Buff         BuffConfig       `yaml:"buff"`
	Track        TrackConfig      `yaml:"track"`
	Session      SessionConfig    `yaml:"session"`
}

// PlayerConfig defines the player car.
type PlayerConfig struct {
	Speed     float64 `yaml:"speed"`      // Vertical speed in units per second
	X         float64 `yaml:"x"`          // Fixed horizontal position
	Scale     float64 `yaml:"scale"`      // Normal visual scale
	BuffScale float64 `yaml:"buff_scale"` // Scale while invulnerable
	Tilt      float64 `yaml:"tilt"`       // Rotation per unit of steering direction (radians)
	Width     float64 `yaml:"width"`      // Collider width at scale 1.0
	Height    float64 `yaml:"height"`     // Collider height at scale 1.0
}

// RoadScroll defines how fast the world moves towards the player.
type RoadScroll struct {
	BaseSpeed  float64 `yaml:"base_speed"`  // Units per second at session start
	FastFactor float64 `yaml:"fast_factor"` // Speed factor for collectibles and the buff
}

// DifficultyConfig defines the periodic speed ramp.
type DifficultyConfig struct {
	Period       float64 `yaml:"period"`       // Seconds between speed-ups
	Acceleration float64 `yaml:"acceleration"` // Multiplier applied on every speed-up
}

// MarkerConfig defines the decorative road markers.
type MarkerConfig struct {
	Count   int     `yaml:"count"`
	StartX  float64 `yaml:"start_x"`
	Spacing float64 `yaml:"spacing"`
	WrapAt  float64 `yaml:"wrap_at"` // Markers left of this x wrap around
	WrapBy  float64 `yaml:"wrap_by"` // Distance added on wrap
	Scale   float64 `yaml:"scale"`
}

// SpawnConfig defines a recycled entity category and its spawn band.
type SpawnConfig struct {
	Count     int     `yaml:"count"`
	MinX      float64 `yaml:"min_x"`
	MaxX      float64 `yaml:"max_x"`
	MinY      float64 `yaml:"min_y"`
	MaxY      float64 `yaml:"max_y"`
	RecycleAt float64 `yaml:"recycle_at"` // Entities left of this x are respawned
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
}

// BuffConfig defines the power-up item. It spawns in the collectibles band.
type BuffConfig struct {
	InvulnerableDuration float64 `yaml:"invulnerable_duration"` // Seconds
	SlowDuration         float64 `yaml:"slow_duration"`         // Seconds
	SlowMultiplier       float64 `yaml:"slow_multiplier"`
	Width                float64 `yaml:"width"`
	Height               float64 `yaml:"height"`
}

// TrackConfig defines the playable area.
type TrackConfig struct {
	HalfHeight float64 `yaml:"half_height"` // Leaving |y| <= half_height ends the run
}

// MaxHealth is the most health a run may start with.
const MaxHealth = 5

// SessionConfig defines per-session starting values.
type SessionConfig struct {
	Health int `yaml:"health"`
}

// seconds converts a YAML float of seconds into a duration.
func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

// DifficultyPeriod returns the speed-up period.
func (c RoadConfig) DifficultyPeriod() time.Duration {
	return seconds(c.Difficulty.Period)
}

// InvulnerableDuration returns how long the invulnerability buff lasts.
func (c RoadConfig) InvulnerableDuration() time.Duration {
	return seconds(c.Buff.InvulnerableDuration)
}

// SlowDuration returns how long the slow-mode buff lasts.
func (c RoadConfig) SlowDuration() time.Duration {
	return seconds(c.Buff.SlowDuration)
}
