package road

import (
	"github.com/vovakirdan/roadrush/internal/config"
	"github.com/vovakirdan/roadrush/internal/engine"
)

// Session is the mutable state of one run. It is owned by Game and only
// changed from Game.Update.
type Session struct {
	Paused    bool
	Health    int
	Score     int
	Lost      bool
	RoadSpeed float64

	Difficulty      engine.Timer // repeating; each firing speeds the road up
	Invulnerability engine.Timer // one-shot; running while the player is invulnerable
	Invulnerable    bool
	Slow            engine.Timer // one-shot; running while slow mode is active
	SpeedMultiplier float64
}

// newSession returns the state every run starts from.
func newSession(cfg config.RoadConfig) Session {
	return Session{
		Health:          cfg.Session.Health,
		RoadSpeed:       cfg.Road.BaseSpeed,
		Difficulty:      engine.NewTimer(cfg.DifficultyPeriod(), engine.Repeating),
		SpeedMultiplier: 1.0,
	}
}

// effectiveSpeed is the scroll speed of a category with the given factor.
func (s *Session) effectiveSpeed(factor float64) float64 {
	return s.RoadSpeed * factor * s.SpeedMultiplier
}
