package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchBuiltin(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(default yaml) failed: %v", err)
	}
	if cfg != DefaultRoadConfig() {
		t.Errorf("embedded road.yaml differs from DefaultRoadConfig():\n%+v\n%+v", cfg, DefaultRoadConfig())
	}
}

func TestDefaultTuning(t *testing.T) {
	cfg := DefaultRoadConfig()

	if cfg.Road.BaseSpeed != 400 {
		t.Errorf("base speed = %v, expected 400", cfg.Road.BaseSpeed)
	}
	if cfg.DifficultyPeriod() != 5*time.Second {
		t.Errorf("difficulty period = %v, expected 5s", cfg.DifficultyPeriod())
	}
	if cfg.InvulnerableDuration() != 10*time.Second || cfg.SlowDuration() != 10*time.Second {
		t.Error("buff durations should default to 10s")
	}
	if cfg.Session.Health != 5 {
		t.Errorf("health = %d, expected 5", cfg.Session.Health)
	}
}

func TestParsePartialKeepsDefaults(t *testing.T) {
	cfg, err := Parse([]byte("road:\n  base_speed: 250\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cfg.Road.BaseSpeed != 250 {
		t.Errorf("base speed = %v, expected 250", cfg.Road.BaseSpeed)
	}
	if cfg.Road.FastFactor != 1.25 {
		t.Errorf("fast factor should keep default, got %v", cfg.Road.FastFactor)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*RoadConfig)
		want   string
	}{
		{"zero period", func(c *RoadConfig) { c.Difficulty.Period = 0 }, "difficulty.period"},
		{"decelerating", func(c *RoadConfig) { c.Difficulty.Acceleration = 0.9 }, "difficulty.acceleration"},
		{"slow multiplier", func(c *RoadConfig) { c.Buff.SlowMultiplier = 2 }, "buff.slow_multiplier"},
		{"empty band", func(c *RoadConfig) { c.Obstacles.MaxX = c.Obstacles.MinX }, "obstacles: max_x"},
		{"no collectibles", func(c *RoadConfig) { c.Collectibles.Count = 0 }, "collectibles.count"},
		{"no health", func(c *RoadConfig) { c.Session.Health = 0 }, "session.health"},
		{"too much health", func(c *RoadConfig) { c.Session.Health = MaxHealth + 4 }, "session.health"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultRoadConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q does not mention %q", err, tc.want)
			}
		})
	}

	if err := DefaultRoadConfig().Validate(); err != nil {
		t.Errorf("defaults should validate, got %v", err)
	}
}

func TestParseRejectsExcessHealth(t *testing.T) {
	if _, err := Parse([]byte("session:\n  health: 9\n")); err == nil {
		t.Fatal("expected health 9 to be rejected")
	}
}

func TestLoadRoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "road.yaml")
	if err := os.WriteFile(path, []byte("difficulty:\n  acceleration: 1.2\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadRoad(path)
	if err != nil {
		t.Fatalf("LoadRoad failed: %v", err)
	}
	if cfg.Difficulty.Acceleration != 1.2 {
		t.Errorf("acceleration = %v, expected 1.2", cfg.Difficulty.Acceleration)
	}

	if _, err := LoadRoad(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("session:\n  health: -1\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadRoad(bad); err == nil {
		t.Error("expected validation error for negative health")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(DefaultRoadConfig())
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cfg != DefaultRoadConfig() {
		t.Error("marshalled config should parse back to the defaults")
	}
}

func TestApplyRoadPreset(t *testing.T) {
	base := DefaultRoadConfig()

	fixed := base
	ApplyRoadPreset(&fixed, DifficultyFixed)
	if fixed.Difficulty.Acceleration != 1.0 {
		t.Errorf("fixed preset acceleration = %v, expected 1.0", fixed.Difficulty.Acceleration)
	}

	easy := base
	ApplyRoadPreset(&easy, DifficultyEasy)
	if easy.Road.BaseSpeed >= base.Road.BaseSpeed || easy.Difficulty.Acceleration >= base.Difficulty.Acceleration {
		t.Error("easy preset should lower speed and ramp")
	}

	hard := base
	ApplyRoadPreset(&hard, DifficultyHard)
	if hard.Road.BaseSpeed <= base.Road.BaseSpeed || hard.Session.Health != 3 {
		t.Error("hard preset should raise speed and cap health at 3")
	}
	for _, c := range []RoadConfig{fixed, easy, hard} {
		if err := c.Validate(); err != nil {
			t.Errorf("preset produced invalid config: %v", err)
		}
	}

	normal := base
	ApplyRoadPreset(&normal, DifficultyNormal)
	if normal != base {
		t.Error("normal preset should not change the config")
	}
}

func TestParsePreset(t *testing.T) {
	for _, s := range []string{"", "easy", "normal", "hard", "fixed"} {
		if _, err := ParsePreset(s); err != nil {
			t.Errorf("ParsePreset(%q) failed: %v", s, err)
		}
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("expected error for unknown preset")
	}
}
