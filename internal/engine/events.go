package engine

import "github.com/vovakirdan/roadrush/internal/core"

// ButtonState is the transition carried by a key event.
type ButtonState int

const (
	Pressed ButtonState = iota
	Released
)

// KeyEvent is a single key transition delivered to the frame.
type KeyEvent struct {
	Action core.Action `msgpack:"a"`
	State  ButtonState `msgpack:"s"`
}

// Press is shorthand for a pressed KeyEvent.
func Press(a core.Action) KeyEvent {
	return KeyEvent{Action: a, State: Pressed}
}

// CollisionState distinguishes the start of an overlap from its end.
type CollisionState int

const (
	CollisionBegin CollisionState = iota
	CollisionEnd
)

// IsEnd reports whether the event marks two sprites separating.
func (s CollisionState) IsEnd() bool {
	return s == CollisionEnd
}

// CollisionPair holds the labels of two overlapping sprites.
type CollisionPair [2]string

// Other returns the participant that is not label.
func (p CollisionPair) Other(label string) (string, bool) {
	switch label {
	case p[0]:
		return p[1], true
	case p[1]:
		return p[0], true
	}
	return "", false
}

// CollisionEvent reports a change in overlap between two collidable sprites.
type CollisionEvent struct {
	State CollisionState
	Pair  CollisionPair
}
