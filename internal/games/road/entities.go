package road

import (
	"fmt"
	"math"

	"github.com/vovakirdan/roadrush/internal/config"
	"github.com/vovakirdan/roadrush/internal/core"
	"github.com/vovakirdan/roadrush/internal/engine"
)

// Kind is the category of a world entity. It is assigned at creation and
// never derived from the entity label.
type Kind int

const (
	KindPlayer Kind = iota
	KindRoadMarker
	KindObstacle
	KindCollectible
	KindBuff
)

// String returns the label prefix of the kind.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindRoadMarker:
		return "marker"
	case KindObstacle:
		return "obstacle"
	case KindCollectible:
		return "coin"
	case KindBuff:
		return "buff"
	default:
		return "unknown"
	}
}

// EntityRef identifies one entity by category and index within it.
type EntityRef struct {
	Kind  Kind
	Index int
}

// Label returns the engine label for the entity. Player and buff are unique
// and carry no index.
func (r EntityRef) Label() string {
	if r.Kind == KindPlayer || r.Kind == KindBuff {
		return r.Kind.String()
	}
	return fmt.Sprintf("%s%d", r.Kind, r.Index)
}

// Text label names used at the engine boundary.
const (
	labelScore    = "score_message"
	labelHealth   = "health_message"
	labelSpeed    = "speed_message"
	labelGameOver = "game_over"
)

// RandomSource supplies uniform values in [0, 1). *rand.Rand satisfies it.
type RandomSource interface {
	Float64() float64
}

// between draws a uniform value in [lo, hi).
func between(rng RandomSource, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// entities holds the handles resolved once at setup.
type entities struct {
	player       *engine.Sprite
	markers      []*engine.Sprite
	obstacles    []*engine.Sprite
	collectibles []*engine.Sprite
	buff         *engine.Sprite

	score  *engine.Text
	health *engine.Text
	speed  *engine.Text

	byLabel map[string]EntityRef
}

// spawn creates every entity in w and resolves the handles.
func spawn(w *engine.World, cfg config.RoadConfig, rng RandomSource) entities {
	e := entities{byLabel: make(map[string]EntityRef)}
	add := func(ref EntityRef, width, height float64) *engine.Sprite {
		label := ref.Label()
		e.byLabel[label] = ref
		return w.AddSprite(label, core.Vec2{X: width, Y: height})
	}

	e.player = add(EntityRef{Kind: KindPlayer}, cfg.Player.Width, cfg.Player.Height)
	e.player.Scale = cfg.Player.Scale
	e.player.Translation.X = cfg.Player.X
	e.player.Layer = 10
	e.player.Collision = true

	for i := 0; i < cfg.Markers.Count; i++ {
		m := add(EntityRef{Kind: KindRoadMarker, Index: i}, 600, 120)
		m.Scale = cfg.Markers.Scale
		m.Translation.X = cfg.Markers.StartX + cfg.Markers.Spacing*float64(i)
		e.markers = append(e.markers, m)
	}

	for i := 0; i < cfg.Obstacles.Count; i++ {
		o := add(EntityRef{Kind: KindObstacle, Index: i}, cfg.Obstacles.Width, cfg.Obstacles.Height)
		o.Rotation = math.Pi / 2
		o.Layer = 5
		o.Collision = true
		o.Translation = randomIn(rng, cfg.Obstacles)
		e.obstacles = append(e.obstacles, o)
	}

	for i := 0; i < cfg.Collectibles.Count; i++ {
		c := add(EntityRef{Kind: KindCollectible, Index: i}, cfg.Collectibles.Width, cfg.Collectibles.Height)
		c.Layer = 5
		c.Collision = true
		c.Translation = randomIn(rng, cfg.Collectibles)
		e.collectibles = append(e.collectibles, c)
	}

	e.buff = add(EntityRef{Kind: KindBuff}, cfg.Buff.Width, cfg.Buff.Height)
	e.buff.Collision = true
	e.buff.Translation = randomIn(rng, cfg.Collectibles)

	e.health = w.AddText(labelHealth, fmt.Sprintf("Health: %d", cfg.Session.Health))
	e.health.Translation = core.Vec2{X: 550, Y: 320}
	e.speed = w.AddText(labelSpeed, speedText(cfg.Road.BaseSpeed))
	e.speed.Translation = core.Vec2{X: -550, Y: 320}
	e.score = w.AddText(labelScore, "Score: 0")
	e.score.Translation = core.Vec2{X: -550, Y: 270}

	return e
}

// randomIn draws a position inside the spawn band.
func randomIn(rng RandomSource, band config.SpawnConfig) core.Vec2 {
	return core.Vec2{
		X: between(rng, band.MinX, band.MaxX),
		Y: between(rng, band.MinY, band.MaxY),
	}
}

func speedText(speed float64) string {
	return fmt.Sprintf("Speed: %.1f", speed)
}
