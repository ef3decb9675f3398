package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/roadrush/internal/core"
)

// DefaultHoldWindow is how long a movement key counts as held after its last
// press or auto-repeat. Terminals report presses only, never releases.
const DefaultHoldWindow = 180 * time.Millisecond

// GameKeyMap defines the key bindings for the game screen.
type GameKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Pause   key.Binding
	Restart key.Binding
	Quit    key.Binding
	Help    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Pause, k.Restart, k.Quit, k.Help}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Pause, k.Restart},
		{k.Help, k.Quit},
	}
}

// DefaultGameKeyMap returns default key bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("up/w", "steer up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("down/s", "steer down"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p/esc", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("n", "r"),
			key.WithHelp("n/r", "restart"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys GameKeyMap
}

// NewKeyMapper creates a new key mapper with the given bindings.
func NewKeyMapper(keys GameKeyMap) *KeyMapper {
	return &KeyMapper{keys: keys}
}

// MapKey translates a key message to an action. Unbound keys map to ActionNone.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, km.keys.Quit):
		return core.ActionQuit
	case key.Matches(msg, km.keys.Up):
		return core.ActionUp
	case key.Matches(msg, km.keys.Down):
		return core.ActionDown
	case key.Matches(msg, km.keys.Pause):
		return core.ActionPause
	case key.Matches(msg, km.keys.Restart):
		return core.ActionRestart
	}
	return core.ActionNone
}

// holdTracker turns key presses into a held-key state.
// A movement key stays held until the window passes without a repeat, or
// until the opposite direction is pressed.
type holdTracker struct {
	window   time.Duration
	lastSeen map[core.Action]time.Time
}

func newHoldTracker(window time.Duration) *holdTracker {
	if window <= 0 {
		window = DefaultHoldWindow
	}
	return &holdTracker{
		window:   window,
		lastSeen: make(map[core.Action]time.Time),
	}
}

// press records a press of a movement action at now.
func (h *holdTracker) press(a core.Action, now time.Time) {
	switch a {
	case core.ActionUp:
		delete(h.lastSeen, core.ActionDown)
	case core.ActionDown:
		delete(h.lastSeen, core.ActionUp)
	default:
		return
	}
	h.lastSeen[a] = now
}

// held returns the actions still held at now.
func (h *holdTracker) held(now time.Time) core.KeyState {
	ks := core.NewKeyState()
	for a, t := range h.lastSeen {
		if now.Sub(t) <= h.window {
			ks.Set(a)
		} else {
			delete(h.lastSeen, a)
		}
	}
	return ks
}

// release forgets every held key.
func (h *holdTracker) release() {
	clear(h.lastSeen)
}
