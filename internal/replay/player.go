package replay

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/vovakirdan/roadrush/internal/core"
	"github.com/vovakirdan/roadrush/internal/engine"
	"github.com/vovakirdan/roadrush/internal/games/road"
)

// Reader decodes a replay stream.
type Reader struct {
	Header Header

	dec  *msgpack.Decoder
	next uint64
}

// NewReader reads and checks the stream header.
func NewReader(r io.Reader) (*Reader, error) {
	dec := msgpack.NewDecoder(bufio.NewReader(r))

	var h Header
	if err := dec.Decode(&h); err != nil {
		return nil, fmt.Errorf("replay: cannot read header: %w", err)
	}
	if h.Version != Version {
		return nil, fmt.Errorf("%w: %d", ErrVersion, h.Version)
	}
	return &Reader{Header: h, dec: dec}, nil
}

// Next returns the next frame, or io.EOF at the end of the stream.
func (r *Reader) Next() (FrameRecord, error) {
	var rec FrameRecord
	if err := r.dec.Decode(&rec); err != nil {
		if errors.Is(err, io.EOF) {
			return rec, io.EOF
		}
		return rec, fmt.Errorf("replay: cannot read frame %d: %w", r.next, err)
	}
	if rec.Seq != r.next {
		return rec, fmt.Errorf("%w: expected frame %d, got %d", ErrGap, r.next, rec.Seq)
	}
	r.next++
	return rec, nil
}

// Options control headless playback.
type Options struct {
	// MaxFrames stops playback early when positive.
	MaxFrames int
	// Audio receives the game's sound cues. Nil discards them.
	Audio engine.Audio
	// OnFrame, if set, is called after every simulated frame.
	OnFrame func(frame int, snap road.Snapshot)
	// Screen, if set, receives the last simulated frame.
	Screen *core.Screen
}

// Result is the outcome of a replayed run.
type Result struct {
	RunID  string
	Seed   int64
	Frames int
	Score  int
	Health int
	Lost   bool
}

// Play re-simulates a recorded run without a terminal.
func Play(r io.Reader, opts Options) (Result, error) {
	rd, err := NewReader(r)
	if err != nil {
		return Result{}, err
	}

	h := rd.Header
	if err := h.Config.Validate(); err != nil {
		return Result{}, fmt.Errorf("replay: recorded config: %w", err)
	}

	eng := engine.New(opts.Audio)
	game := road.New(h.Config, rand.New(rand.NewSource(h.Seed)))
	game.Setup(eng.World, eng.Audio)

	res := Result{RunID: h.RunID, Seed: h.Seed}
	for opts.MaxFrames <= 0 || res.Frames < opts.MaxFrames {
		rec, err := rd.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return res, err
		}

		eng.Step(rec.Input(), game)
		res.Frames = int(eng.Frames())
		if opts.OnFrame != nil {
			opts.OnFrame(res.Frames, game.Snapshot())
		}
	}

	if opts.Screen != nil {
		game.Render(eng.World, opts.Screen)
	}

	st := game.State()
	res.Score = st.Score
	res.Health = st.Health
	res.Lost = st.Lost
	return res, nil
}

// PlayFile replays the stream stored at path.
func PlayFile(path string, opts Options) (Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return Result{}, fmt.Errorf("replay: cannot open %s: %w", path, err)
	}
	defer f.Close()
	return Play(f, opts)
}
