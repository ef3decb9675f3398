package core

import "testing"

func TestBoxIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Box
		expected bool
	}{
		{
			name:     "overlapping boxes",
			a:        NewBox(Vec2{0, 0}, 10, 10),
			b:        NewBox(Vec2{5, 5}, 10, 10),
			expected: true,
		},
		{
			name:     "separated horizontally",
			a:        NewBox(Vec2{0, 0}, 10, 10),
			b:        NewBox(Vec2{20, 0}, 10, 10),
			expected: false,
		},
		{
			name:     "separated vertically",
			a:        NewBox(Vec2{0, 0}, 10, 10),
			b:        NewBox(Vec2{0, -20}, 10, 10),
			expected: false,
		},
		{
			name:     "touching edges (no overlap)",
			a:        NewBox(Vec2{0, 0}, 10, 10),
			b:        NewBox(Vec2{10, 0}, 10, 10),
			expected: false,
		},
		{
			name:     "contained box",
			a:        NewBox(Vec2{0, 0}, 40, 40),
			b:        NewBox(Vec2{3, -3}, 4, 4),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestKeyState(t *testing.T) {
	ks := NewKeyState(ActionDown, ActionUp)

	if !ks.Pressed(ActionUp) || !ks.Pressed(ActionDown) {
		t.Fatal("expected up and down to be held")
	}
	if ks.Pressed(ActionPause) {
		t.Error("pause should not be held")
	}

	got := ks.Actions()
	if len(got) != 2 || got[0] != ActionUp || got[1] != ActionDown {
		t.Errorf("Actions() = %v, expected [Up Down]", got)
	}

	ks.Set(ActionPause)
	if !ks.Pressed(ActionPause) {
		t.Error("Set should hold pause")
	}

	var zero KeyState
	if zero.Pressed(ActionUp) {
		t.Error("zero KeyState should report nothing held")
	}
}
