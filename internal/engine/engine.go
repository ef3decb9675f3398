package engine

import (
	"time"

	"github.com/vovakirdan/roadrush/internal/core"
)

// Input is what the platform collects between two frames.
type Input struct {
	Delta     time.Duration
	KeyEvents []KeyEvent
	Held      core.KeyState
}

// Frame is handed to the game logic once per rendered frame.
type Frame struct {
	Delta      time.Duration
	DeltaF     float64 // Delta in seconds
	KeyEvents  []KeyEvent
	Collisions []CollisionEvent
	Keys       core.KeyState
	World      *World
	Audio      Audio
}

// Logic is the per-frame update routine driven by the engine.
type Logic interface {
	Update(f *Frame)
}

// Engine binds a world, its collision detector and an audio sink.
type Engine struct {
	World    *World
	Audio    Audio
	detector *Detector
	frames   uint64
}

// New creates an engine with an empty world. A nil audio sink is replaced by NopAudio.
func New(audio Audio) *Engine {
	if audio == nil {
		audio = NopAudio{}
	}
	return &Engine{
		World:    NewWorld(),
		Audio:    audio,
		detector: NewDetector(),
	}
}

// Step runs collision detection on the current positions and then the logic.
func (e *Engine) Step(in Input, logic Logic) {
	f := Frame{
		Delta:      in.Delta,
		DeltaF:     in.Delta.Seconds(),
		KeyEvents:  in.KeyEvents,
		Collisions: e.detector.Detect(e.World),
		Keys:       in.Held,
		World:      e.World,
		Audio:      e.Audio,
	}
	logic.Update(&f)
	e.frames++
}

// Frames returns the number of frames stepped so far.
func (e *Engine) Frames() uint64 {
	return e.frames
}
