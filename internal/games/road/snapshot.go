package road

// Snapshot captures the observable session state for tests and replays.
type Snapshot struct {
	Score           int
	Health          int
	Lost            bool
	Paused          bool
	Invulnerable    bool
	RoadSpeed       float64
	SpeedMultiplier float64
	PlayerY         float64
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	s := g.session
	snap := Snapshot{
		Score:           s.Score,
		Health:          s.Health,
		Lost:            s.Lost,
		Paused:          s.Paused,
		Invulnerable:    s.Invulnerable,
		RoadSpeed:       s.RoadSpeed,
		SpeedMultiplier: s.SpeedMultiplier,
	}
	if g.ents.player != nil {
		snap.PlayerY = g.ents.player.Translation.Y
	}
	return snap
}
