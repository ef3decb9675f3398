package replay

import (
	"bytes"
	"errors"
	"math/rand"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/vovakirdan/roadrush/internal/config"
	"github.com/vovakirdan/roadrush/internal/core"
	"github.com/vovakirdan/roadrush/internal/engine"
	"github.com/vovakirdan/roadrush/internal/games/road"
)

const frame = time.Second / 60

// script returns the input of frame i: steer up in bursts, pause once and
// restart once, so the run exercises every kind of input.
func script(i int) engine.Input {
	in := engine.Input{Delta: frame, Held: core.NewKeyState()}
	switch {
	case i == 30 || i == 40:
		in.KeyEvents = []engine.KeyEvent{engine.Press(core.ActionPause)}
	case i == 200:
		in.KeyEvents = []engine.KeyEvent{engine.Press(core.ActionRestart)}
	}
	if (i/45)%2 == 0 {
		in.Held.Set(core.ActionUp)
	} else {
		in.Held.Set(core.ActionDown)
	}
	return in
}

// live plays the script directly and records it into buf.
func live(t *testing.T, buf *bytes.Buffer, seed int64, frames int) road.Snapshot {
	t.Helper()
	cfg := config.DefaultRoadConfig()

	rec, err := NewRecorder(buf, Header{RunID: uuid.NewString(), Seed: seed, Config: cfg})
	require.NoError(t, err)

	eng := engine.New(nil)
	game := road.New(cfg, rand.New(rand.NewSource(seed)))
	game.Setup(eng.World, eng.Audio)

	for i := 0; i < frames; i++ {
		in := script(i)
		rec.Record(in)
		eng.Step(in, game)
	}
	require.NoError(t, rec.Close())
	require.Zero(t, rec.Dropped())
	return game.Snapshot()
}

func TestPlayReproducesLiveRun(t *testing.T) {
	var buf bytes.Buffer
	want := live(t, &buf, 42, 900)

	var last road.Snapshot
	res, err := Play(bytes.NewReader(buf.Bytes()), Options{
		OnFrame: func(_ int, snap road.Snapshot) { last = snap },
	})
	require.NoError(t, err)

	assert.Equal(t, 900, res.Frames)
	assert.Equal(t, int64(42), res.Seed)
	assert.Equal(t, want.Score, res.Score)
	assert.Equal(t, want.Health, res.Health)
	assert.Equal(t, want.Lost, res.Lost)
	assert.Equal(t, want, last)
}

func TestPlayIsRepeatable(t *testing.T) {
	var buf bytes.Buffer
	live(t, &buf, 7, 600)

	a, err := Play(bytes.NewReader(buf.Bytes()), Options{})
	require.NoError(t, err)
	b, err := Play(bytes.NewReader(buf.Bytes()), Options{})
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestPlayMaxFrames(t *testing.T) {
	var buf bytes.Buffer
	live(t, &buf, 1, 120)

	res, err := Play(bytes.NewReader(buf.Bytes()), Options{MaxFrames: 50})
	require.NoError(t, err)
	assert.Equal(t, 50, res.Frames)
}

func TestPlayRendersLastFrame(t *testing.T) {
	var buf bytes.Buffer
	live(t, &buf, 3, 60)

	screen := core.NewScreen(80, 24)
	_, err := Play(bytes.NewReader(buf.Bytes()), Options{Screen: screen})
	require.NoError(t, err)

	out := screen.String()
	assert.Contains(t, out, "Score:")
	assert.Contains(t, out, "Health:")
}

func TestPlayRejectsOutOfRangeHealth(t *testing.T) {
	cfg := config.DefaultRoadConfig()
	cfg.Session.Health = 9

	var buf bytes.Buffer
	rec, err := NewRecorder(&buf, Header{RunID: uuid.NewString(), Seed: 1, Config: cfg})
	require.NoError(t, err)
	require.NoError(t, rec.Close())

	_, err = Play(&buf, Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "session.health")
}

func TestRecorderFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs", "run.rrr")
	cfg := config.DefaultRoadConfig()

	rec, err := Create(path, Header{RunID: "abc", Seed: 3, Config: cfg})
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		rec.Record(script(i))
	}
	require.NoError(t, rec.Close())
	require.NoError(t, rec.Close(), "closing twice is harmless")

	// Frames recorded after Close are ignored.
	rec.Record(script(10))

	res, err := PlayFile(path, Options{})
	require.NoError(t, err)
	assert.Equal(t, "abc", res.RunID)
	assert.Equal(t, 10, res.Frames)
}

func TestReaderRejectsUnknownVersion(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, msgpack.NewEncoder(&buf).Encode(&Header{Version: 99}))

	_, err := NewReader(&buf)
	assert.True(t, errors.Is(err, ErrVersion))
}

func TestReaderDetectsGaps(t *testing.T) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	require.NoError(t, enc.Encode(&Header{Version: Version, Config: config.DefaultRoadConfig()}))
	require.NoError(t, enc.Encode(&FrameRecord{Seq: 0, Delta: frame}))
	require.NoError(t, enc.Encode(&FrameRecord{Seq: 2, Delta: frame}))

	res, err := Play(&buf, Options{})
	assert.True(t, errors.Is(err, ErrGap))
	assert.Equal(t, 1, res.Frames)
}

func TestFrameRecordKeepsHeldKeys(t *testing.T) {
	in := engine.Input{
		Delta:     frame,
		KeyEvents: []engine.KeyEvent{engine.Press(core.ActionRestart)},
		Held:      core.NewKeyState(core.ActionDown, core.ActionUp),
	}

	rec := newFrameRecord(5, in)
	assert.Equal(t, []core.Action{core.ActionUp, core.ActionDown}, rec.Held)

	back := rec.Input()
	assert.Equal(t, in.Delta, back.Delta)
	assert.Equal(t, in.KeyEvents, back.KeyEvents)
	assert.True(t, back.Held.Pressed(core.ActionUp))
	assert.True(t, back.Held.Pressed(core.ActionDown))
}
