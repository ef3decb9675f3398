package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadRoad loads the road game configuration.
// Search order: customPath -> ~/.roadrush/configs/road.yaml -> ./configs/road.yaml -> embedded default
func LoadRoad(customPath string) (RoadConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return RoadConfig{}, fmt.Errorf("config: cannot read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return RoadConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then the local configs directory
	candidates := []string{userConfigPath("road.yaml"), filepath.Join("configs", "road.yaml")}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultRoadYAML)
	if err != nil {
		return DefaultRoadConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes a YAML document on top of the defaults and validates it.
// Fields missing from the document keep their default values.
func Parse(data []byte) (RoadConfig, error) {
	cfg := DefaultRoadConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return RoadConfig{}, fmt.Errorf("cannot parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return RoadConfig{}, err
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func Marshal(cfg RoadConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode: %w", err)
	}
	return data, nil
}

// Validate reports every value that would make the game unplayable.
func (c RoadConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Player.Speed > 0, "player.speed must be positive, got %v", c.Player.Speed)
	check(c.Player.Scale > 0 && c.Player.BuffScale > 0, "player scales must be positive")
	check(c.Road.BaseSpeed > 0, "road.base_speed must be positive, got %v", c.Road.BaseSpeed)
	check(c.Road.FastFactor > 0, "road.fast_factor must be positive, got %v", c.Road.FastFactor)
	check(c.Difficulty.Period > 0, "difficulty.period must be positive, got %v", c.Difficulty.Period)
	check(c.Difficulty.Acceleration >= 1, "difficulty.acceleration must be at least 1, got %v", c.Difficulty.Acceleration)
	check(c.Markers.Count > 0, "markers.count must be positive, got %d", c.Markers.Count)
	check(c.Markers.WrapBy > 0, "markers.wrap_by must be positive, got %v", c.Markers.WrapBy)
	check(c.Buff.SlowMultiplier > 0 && c.Buff.SlowMultiplier <= 1,
		"buff.slow_multiplier must be in (0, 1], got %v", c.Buff.SlowMultiplier)
	check(c.Buff.InvulnerableDuration > 0, "buff.invulnerable_duration must be positive")
	check(c.Buff.SlowDuration > 0, "buff.slow_duration must be positive")
	check(c.Track.HalfHeight > 0, "track.half_height must be positive, got %v", c.Track.HalfHeight)
	check(c.Session.Health >= 1 && c.Session.Health <= MaxHealth,
		"session.health must be in [1, %d], got %d", MaxHealth, c.Session.Health)

	bands := []struct {
		name string
		s    SpawnConfig
	}{{"obstacles", c.Obstacles}, {"collectibles", c.Collectibles}}
	for _, b := range bands {
		name, s := b.name, b.s
		check(s.Count > 0, "%s.count must be positive, got %d", name, s.Count)
		check(s.MaxX > s.MinX, "%s: max_x must be greater than min_x", name)
		check(s.MaxY > s.MinY, "%s: max_y must be greater than min_y", name)
		check(s.RecycleAt < s.MinX, "%s: recycle_at must be left of min_x", name)
	}

	return errors.Join(errs...)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".roadrush", "configs", filename)
}
