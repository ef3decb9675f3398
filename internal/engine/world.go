// Package engine is the small runtime the road game runs on: a registry of
// named sprites and text labels, frame timers, overlap detection between
// collidable sprites, and the audio interface.
package engine

import (
	"fmt"

	"github.com/vovakirdan/roadrush/internal/core"
)

// Sprite is a positioned visual object addressed by a unique label.
type Sprite struct {
	Label       string
	Translation core.Vec2
	Rotation    float64 // radians
	Scale       float64
	Layer       float64
	Collision   bool
	Size        core.Vec2 // collider size at scale 1.0
}

// Box returns the world-space collider of the sprite.
func (s *Sprite) Box() core.Box {
	return core.NewBox(s.Translation, s.Size.X*s.Scale, s.Size.Y*s.Scale)
}

// Text is a text label rendered at a world position.
type Text struct {
	Label       string
	Value       string
	Translation core.Vec2
	FontSize    float64
}

// World owns every sprite and text label. Iteration order is insertion order.
type World struct {
	sprites   []*Sprite
	spriteIdx map[string]int
	texts     []*Text
	textIdx   map[string]int
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{
		spriteIdx: make(map[string]int),
		textIdx:   make(map[string]int),
	}
}

// AddSprite creates a sprite with scale 1.0, replacing any sprite with the same label.
func (w *World) AddSprite(label string, size core.Vec2) *Sprite {
	s := &Sprite{Label: label, Scale: 1.0, Size: size}
	if i, ok := w.spriteIdx[label]; ok {
		w.sprites[i] = s
		return s
	}
	w.spriteIdx[label] = len(w.sprites)
	w.sprites = append(w.sprites, s)
	return s
}

// Sprite returns the sprite with the given label.
// An unknown label means the world and its users are out of sync, so it panics.
func (w *World) Sprite(label string) *Sprite {
	i, ok := w.spriteIdx[label]
	if !ok {
		panic(fmt.Sprintf("engine: unknown sprite %q", label))
	}
	return w.sprites[i]
}

// Sprites returns all sprites in insertion order.
func (w *World) Sprites() []*Sprite {
	return w.sprites
}

// AddText creates a text label, replacing any label with the same name.
func (w *World) AddText(label, value string) *Text {
	t := &Text{Label: label, Value: value, FontSize: 30}
	if i, ok := w.textIdx[label]; ok {
		w.texts[i] = t
		return t
	}
	w.textIdx[label] = len(w.texts)
	w.texts = append(w.texts, t)
	return t
}

// Text returns the text label with the given name. Panics if it does not exist.
func (w *World) Text(label string) *Text {
	i, ok := w.textIdx[label]
	if !ok {
		panic(fmt.Sprintf("engine: unknown text %q", label))
	}
	return w.texts[i]
}

// HasText reports whether a text label exists.
func (w *World) HasText(label string) bool {
	_, ok := w.textIdx[label]
	return ok
}

// RemoveText deletes a text label. Returns false if it did not exist.
func (w *World) RemoveText(label string) bool {
	i, ok := w.textIdx[label]
	if !ok {
		return false
	}
	w.texts = append(w.texts[:i], w.texts[i+1:]...)
	delete(w.textIdx, label)
	for j := i; j < len(w.texts); j++ {
		w.textIdx[w.texts[j].Label] = j
	}
	return true
}

// Texts returns all text labels in insertion order.
func (w *World) Texts() []*Text {
	return w.texts
}
