// Package tui provides the Bubble Tea front end for Road Rush: the frame
// driver, key handling, rendering, the scoreboard and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxFrameDelta caps the delta of a single frame so a stalled terminal
// does not teleport the road forward.
const maxFrameDelta = 250 * time.Millisecond

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameDelta returns the elapsed time between two ticks, clamped to
// [0, maxFrameDelta]. The first frame uses one nominal interval.
func frameDelta(prev, now time.Time, tickRate int) time.Duration {
	if prev.IsZero() {
		return time.Second / time.Duration(tickRate)
	}
	d := now.Sub(prev)
	if d < 0 {
		return 0
	}
	if d > maxFrameDelta {
		return maxFrameDelta
	}
	return d
}
