package engine

import "time"

// TimerMode selects whether a timer stops after firing or keeps cycling.
type TimerMode int

const (
	Once TimerMode = iota
	Repeating
)

// Timer accumulates frame deltas and fires when its duration elapses.
// Durations are integer nanoseconds, so many small deltas that sum to the
// duration fire exactly like one large delta.
type Timer struct {
	duration time.Duration
	elapsed  time.Duration
	mode     TimerMode
	running  bool
}

// NewTimer creates a running timer.
func NewTimer(d time.Duration, mode TimerMode) Timer {
	return Timer{duration: d, mode: mode, running: true}
}

// Start (re)starts the timer from zero with the given duration.
func (t *Timer) Start(d time.Duration) {
	t.duration = d
	t.elapsed = 0
	t.running = true
}

// Running reports whether the timer is counting.
func (t Timer) Running() bool {
	return t.running
}

// Remaining returns the time left until the next firing, or zero when stopped.
func (t Timer) Remaining() time.Duration {
	if !t.running {
		return 0
	}
	return t.duration - t.elapsed
}

// Tick advances the timer by delta and returns how many times it fired.
// A one-shot timer fires at most once and then stops.
func (t *Timer) Tick(delta time.Duration) int {
	if !t.running || delta < 0 {
		return 0
	}
	t.elapsed += delta

	if t.mode == Once {
		if t.elapsed >= t.duration {
			t.elapsed = 0
			t.running = false
			return 1
		}
		return 0
	}

	if t.duration <= 0 {
		return 0
	}
	fired := int(t.elapsed / t.duration)
	t.elapsed %= t.duration
	return fired
}
