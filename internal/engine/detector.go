package engine

import "sort"

// Detector tracks which collidable sprite pairs overlap and turns changes
// into begin/end events.
type Detector struct {
	active map[CollisionPair]bool
}

// NewDetector creates a detector with no active overlaps.
func NewDetector() *Detector {
	return &Detector{active: make(map[CollisionPair]bool)}
}

// Detect compares current sprite positions with the previous call and returns
// the resulting events. Pairs are visited in sprite insertion order, so the
// output is deterministic for a given world.
func (d *Detector) Detect(w *World) []CollisionEvent {
	var events []CollisionEvent
	seen := make(map[CollisionPair]bool, len(d.active))

	sprites := w.Sprites()
	for i := 0; i < len(sprites); i++ {
		a := sprites[i]
		for j := i + 1; j < len(sprites); j++ {
			b := sprites[j]
			pair := CollisionPair{a.Label, b.Label}
			overlapping := a.Collision && b.Collision && a.Box().Intersects(b.Box())
			seen[pair] = true

			switch {
			case overlapping && !d.active[pair]:
				d.active[pair] = true
				events = append(events, CollisionEvent{State: CollisionBegin, Pair: pair})
			case !overlapping && d.active[pair]:
				delete(d.active, pair)
				events = append(events, CollisionEvent{State: CollisionEnd, Pair: pair})
			}
		}
	}

	// Pairs whose sprites were replaced or removed since the last call.
	var stale []CollisionPair
	for pair := range d.active {
		if !seen[pair] {
			stale = append(stale, pair)
		}
	}
	sort.Slice(stale, func(i, j int) bool {
		if stale[i][0] != stale[j][0] {
			return stale[i][0] < stale[j][0]
		}
		return stale[i][1] < stale[j][1]
	})
	for _, pair := range stale {
		delete(d.active, pair)
		events = append(events, CollisionEvent{State: CollisionEnd, Pair: pair})
	}

	return events
}
