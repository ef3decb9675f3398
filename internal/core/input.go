package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow - steer up
	ActionDown           // S, Down arrow - steer down
	ActionPause          // P, Escape - pause/unpause game
	ActionRestart        // N, R - start a new session
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// KeyState is the set of actions whose keys are currently held down.
// Unlike key events it is polled continuously, once per frame.
type KeyState struct {
	held map[Action]bool
}

// NewKeyState creates an empty key state.
func NewKeyState(actions ...Action) KeyState {
	ks := KeyState{held: make(map[Action]bool)}
	for _, a := range actions {
		ks.Set(a)
	}
	return ks
}

// Set marks an action as held.
func (k *KeyState) Set(a Action) {
	if k.held == nil {
		k.held = make(map[Action]bool)
	}
	k.held[a] = true
}

// Pressed returns true if the given action is held.
func (k KeyState) Pressed(a Action) bool {
	if k.held == nil {
		return false
	}
	return k.held[a]
}

// Actions returns the held actions in ascending order.
func (k KeyState) Actions() []Action {
	out := make([]Action, 0, len(k.held))
	for a := ActionUp; a <= ActionQuit; a++ {
		if k.held[a] {
			out = append(out, a)
		}
	}
	return out
}
