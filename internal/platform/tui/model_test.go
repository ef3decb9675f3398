package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/roadrush/internal/config"
	"github.com/vovakirdan/roadrush/internal/core"
	"github.com/vovakirdan/roadrush/internal/engine"
	"github.com/vovakirdan/roadrush/internal/games/road"
	"github.com/vovakirdan/roadrush/internal/storage"
)

type countingRecorder struct {
	frames []engine.Input
}

func (r *countingRecorder) Record(in engine.Input) { r.frames = append(r.frames, in) }

// testDriver feeds a model with key presses and ticks on a fake clock.
type testDriver struct {
	t   *testing.T
	m   Model
	now time.Time
}

func newDriver(t *testing.T, opts Options) *testDriver {
	t.Helper()
	if opts.Runtime.TickRate == 0 {
		opts.Runtime = core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
	}
	d := &testDriver{t: t, now: time.Unix(1000, 0)}
	d.m = NewModel(opts)
	d.m.clock = func() time.Time { return d.now }
	return d
}

func (d *testDriver) send(msg tea.Msg) tea.Cmd {
	next, cmd := d.m.Update(msg)
	m, ok := next.(Model)
	require.True(d.t, ok)
	d.m = m
	return cmd
}

func (d *testDriver) tick(step time.Duration) {
	d.now = d.now.Add(step)
	d.send(TickMsg(d.now))
}

func TestModelSteersWhileKeyRepeats(t *testing.T) {
	d := newDriver(t, Options{Config: config.DefaultRoadConfig()})

	// Auto-repeat every 50ms keeps the key held.
	for i := 0; i < 4; i++ {
		d.send(runeKey("w"))
		d.tick(50 * time.Millisecond)
	}
	y := d.m.game.Snapshot().PlayerY
	assert.Greater(t, y, 0.0)

	// Without repeats the key is released after the hold window.
	d.tick(100 * time.Millisecond)
	d.tick(100 * time.Millisecond)
	d.tick(100 * time.Millisecond)
	settled := d.m.game.Snapshot().PlayerY
	d.tick(100 * time.Millisecond)
	assert.Equal(t, settled, d.m.game.Snapshot().PlayerY)
}

func TestModelPauseToggle(t *testing.T) {
	d := newDriver(t, Options{Config: config.DefaultRoadConfig()})

	d.send(runeKey("p"))
	d.tick(16 * time.Millisecond)
	assert.True(t, d.m.State().Paused)

	d.send(tea.KeyMsg{Type: tea.KeyEsc})
	d.tick(16 * time.Millisecond)
	assert.False(t, d.m.State().Paused)
}

func TestModelQuit(t *testing.T) {
	d := newDriver(t, Options{Config: config.DefaultRoadConfig()})

	cmd := d.send(runeKey("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, d.m.View())
}

// coinsOnPlayer spawns the collectibles right on top of the player so a
// run scores immediately.
func coinsOnPlayer() config.RoadConfig {
	cfg := config.DefaultRoadConfig()
	cfg.Collectibles.MinX = -520
	cfg.Collectibles.MaxX = -480
	cfg.Collectibles.MinY = -10
	cfg.Collectibles.MaxY = 10
	return cfg
}

func TestModelSavesScoreOncePerRun(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	defer store.Close()

	rec := &countingRecorder{}
	d := newDriver(t, Options{Config: coinsOnPlayer(), Store: store, Recorder: rec})

	ticks := 0
	for !d.m.State().Lost {
		require.Less(t, ticks, 100, "player never left the track")
		d.send(runeKey("w"))
		d.tick(100 * time.Millisecond)
		ticks++
	}
	score := d.m.State().Score
	require.Greater(t, score, 0)

	for i := 0; i < 5; i++ {
		d.tick(100 * time.Millisecond)
	}

	scores, err := store.TopScores(road.ID, 10)
	require.NoError(t, err)
	require.Len(t, scores, 1)
	assert.Equal(t, score, scores[0].Score)
	assert.Equal(t, d.m.RunID(), scores[0].RunID)
	assert.Len(t, rec.frames, ticks+5)

	first := d.m.RunID()
	d.send(runeKey("n"))
	d.tick(100 * time.Millisecond)
	assert.NotEqual(t, first, d.m.RunID())
	assert.Len(t, rec.frames[len(rec.frames)-1].KeyEvents, 1)
}

func TestModelViewIncludesHelp(t *testing.T) {
	d := newDriver(t, Options{Config: config.DefaultRoadConfig()})
	d.send(tea.WindowSizeMsg{Width: 100, Height: 30})
	d.tick(16 * time.Millisecond)

	view := d.m.View()
	assert.Contains(t, view, "Health: 5")
	assert.Contains(t, view, "steer up")
	assert.Len(t, strings.Split(view, "\n"), 30)
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(20, 2)
	s.DrawTextColored(0, 0, "abc", core.ColorRed)
	s.DrawText(5, 1, "xyz")

	out := RenderScreen(s)
	assert.Contains(t, out, "abc")
	assert.Contains(t, out, "xyz")
	assert.Len(t, strings.Split(out, "\n"), 2)
}
