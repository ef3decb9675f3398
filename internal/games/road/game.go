// Package road implements Road Rush, a single-lane dodging game: the player
// car steers up and down to avoid obstacles and pick up coins while the road
// keeps getting faster, until health runs out.
package road

import (
	"fmt"

	"github.com/vovakirdan/roadrush/internal/config"
	"github.com/vovakirdan/roadrush/internal/core"
	"github.com/vovakirdan/roadrush/internal/engine"
)

// ID is the identifier used for score storage.
const ID = "road"

// Title is the display name of the game.
const Title = "Road Rush"

// Game owns the session state and the handles of every world entity.
type Game struct {
	cfg     config.RoadConfig
	rng     RandomSource
	session Session
	ents    entities
	music   bool // background music is playing
}

// New creates a game with the given tuning and random source.
// Call Setup before the first Update.
func New(cfg config.RoadConfig, rng RandomSource) *Game {
	return &Game{
		cfg:     cfg,
		rng:     rng,
		session: newSession(cfg),
	}
}

// Setup creates all entities and text labels in w and starts the music.
func (g *Game) Setup(w *engine.World, audio engine.Audio) {
	g.ents = spawn(w, g.cfg, g.rng)
	audio.PlayMusic(engine.MusicWhimsicalPopsicle, 0.2)
	g.music = true
}

// Update advances the game by one frame.
func (g *Game) Update(f *engine.Frame) {
	g.handleInput(f)
	if g.session.Paused || g.session.Lost {
		return
	}

	g.advanceTimers(f)
	g.movePlayer(f)
	g.scroll(f)
	g.refreshReadouts()
	g.resolveCollisions(f)
	g.checkLoss(f)
}

// handleInput drains key events: pause toggles, restart always resets.
func (g *Game) handleInput(f *engine.Frame) {
	for _, ev := range f.KeyEvents {
		if ev.State != engine.Pressed {
			continue
		}
		switch ev.Action {
		case core.ActionPause:
			g.session.Paused = !g.session.Paused
		case core.ActionRestart:
			g.restart(f)
		}
	}
}

// restart resets the session. Entities keep their current positions.
func (g *Game) restart(f *engine.Frame) {
	g.session = newSession(g.cfg)
	g.ents.player.Scale = g.cfg.Player.Scale
	g.ents.speed.Value = speedText(g.session.RoadSpeed)
	g.refreshReadouts()
	f.World.RemoveText(labelGameOver)
	if !g.music {
		f.Audio.PlayMusic(engine.MusicWhimsicalPopsicle, 0.2)
		g.music = true
	}
}

// advanceTimers ticks the three session timers and applies their expiry effects.
func (g *Game) advanceTimers(f *engine.Frame) {
	s := &g.session

	if fired := s.Difficulty.Tick(f.Delta); fired > 0 {
		for i := 0; i < fired; i++ {
			s.RoadSpeed *= g.cfg.Difficulty.Acceleration
		}
		g.ents.speed.Value = speedText(s.RoadSpeed)
	}

	if s.Invulnerability.Tick(f.Delta) > 0 {
		g.ents.player.Scale = g.cfg.Player.Scale
		s.Invulnerable = false
	}

	if s.Slow.Tick(f.Delta) > 0 {
		s.SpeedMultiplier = 1.0
	}
}

// movePlayer steers the player from the held keys and enforces the track bounds.
func (g *Game) movePlayer(f *engine.Frame) {
	direction := 0.0
	if f.Keys.Pressed(core.ActionUp) {
		direction++
	}
	if f.Keys.Pressed(core.ActionDown) {
		direction--
	}

	p := g.ents.player
	p.Translation.Y += direction * g.cfg.Player.Speed * f.DeltaF
	p.Rotation = direction * g.cfg.Player.Tilt

	half := g.cfg.Track.HalfHeight
	if p.Translation.Y < -half || p.Translation.Y > half {
		g.session.Health = 0
	}
}

// scroll moves every scrolling entity left and recycles the ones that left the track.
func (g *Game) scroll(f *engine.Frame) {
	s := &g.session
	base := s.effectiveSpeed(1.0) * f.DeltaF
	fast := s.effectiveSpeed(g.cfg.Road.FastFactor) * f.DeltaF

	for _, m := range g.ents.markers {
		m.Translation.X -= base
		if m.Translation.X < g.cfg.Markers.WrapAt {
			m.Translation.X += g.cfg.Markers.WrapBy
		}
	}

	for _, o := range g.ents.obstacles {
		o.Translation.X -= base
		if o.Translation.X < g.cfg.Obstacles.RecycleAt {
			o.Translation = randomIn(g.rng, g.cfg.Obstacles)
		}
	}

	for _, c := range g.ents.collectibles {
		c.Translation.X -= fast
		if c.Translation.X < g.cfg.Collectibles.RecycleAt {
			c.Translation = randomIn(g.rng, g.cfg.Collectibles)
		}
	}

	b := g.ents.buff
	b.Translation.X -= fast
	if b.Translation.X < g.cfg.Collectibles.RecycleAt {
		b.Translation = randomIn(g.rng, g.cfg.Collectibles)
	}
}

func (g *Game) refreshReadouts() {
	g.ents.score.Value = fmt.Sprintf("Score: %d", g.session.Score)
	g.ents.health.Value = fmt.Sprintf("Health: %d", g.session.Health)
}

// resolveCollisions applies every begin-of-overlap event involving the player,
// in delivery order, against the live session state.
func (g *Game) resolveCollisions(f *engine.Frame) {
	player := g.ents.player.Label
	s := &g.session

	for _, ev := range f.Collisions {
		if ev.State.IsEnd() {
			continue
		}
		other, ok := ev.Pair.Other(player)
		if !ok {
			continue
		}

		ref, known := g.ents.byLabel[other]
		switch {
		case known && ref.Kind == KindBuff:
			g.applyBuff()
		case known && ref.Kind == KindCollectible:
			g.ents.collectibles[ref.Index].Translation = randomIn(g.rng, g.cfg.Collectibles)
			s.Score++
		default:
			if !s.Invulnerable && s.Health > 0 {
				s.Health--
				f.Audio.PlaySFX(engine.SfxImpact, 1.0)
			}
		}
	}
}

// applyBuff rolls the buff outcome: invulnerability or slow mode, with equal odds.
func (g *Game) applyBuff() {
	s := &g.session
	if between(g.rng, 0, 2) > 1.0 {
		s.Invulnerability.Start(g.cfg.InvulnerableDuration())
		s.Invulnerable = true
		g.ents.player.Scale = g.cfg.Player.BuffScale
	} else {
		s.Slow.Start(g.cfg.SlowDuration())
		s.SpeedMultiplier = g.cfg.Buff.SlowMultiplier
	}
	g.ents.buff.Translation = randomIn(g.rng, g.cfg.Collectibles)
}

// checkLoss ends the run once health is gone. Lost frames return early from
// Update, so this fires once per loss.
func (g *Game) checkLoss(f *engine.Frame) {
	if g.session.Health != 0 {
		return
	}
	g.session.Lost = true
	g.refreshReadouts()

	over := f.World.AddText(labelGameOver, "Game Over")
	over.FontSize = 128
	f.Audio.StopMusic()
	g.music = false
	f.Audio.PlaySFX(engine.SfxJingle, 1.0)
}

// State returns the session summary used by the platform.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:  g.session.Score,
		Health: g.session.Health,
		Speed:  g.session.effectiveSpeed(1.0),
		Lost:   g.session.Lost,
		Paused: g.session.Paused,
	}
}

// Session returns a copy of the current session state.
func (g *Game) Session() Session {
	return g.session
}
