// Package replay records the inputs of a run to a msgpack stream and plays
// them back headlessly. A run is fully determined by its seed, its tuning
// and the per-frame inputs, so replaying the stream reproduces the score.
package replay

import (
	"errors"
	"time"

	"github.com/vovakirdan/roadrush/internal/config"
	"github.com/vovakirdan/roadrush/internal/core"
	"github.com/vovakirdan/roadrush/internal/engine"
)

// Version is the stream format version written to every header.
const Version = 1

var (
	// ErrVersion is returned for streams written by an unknown format version.
	ErrVersion = errors.New("replay: unsupported version")
	// ErrGap is returned when frames are missing from the stream.
	ErrGap = errors.New("replay: missing frames")
)

// Header opens every replay stream.
type Header struct {
	Version   int               `msgpack:"v"`
	RunID     string            `msgpack:"run"`
	Seed      int64             `msgpack:"seed"`
	Config    config.RoadConfig `msgpack:"cfg"`
	CreatedAt time.Time         `msgpack:"at"`
}

// FrameRecord is the input of one frame.
type FrameRecord struct {
	Seq       uint64            `msgpack:"n"`
	Delta     time.Duration     `msgpack:"d"`
	KeyEvents []engine.KeyEvent `msgpack:"k,omitempty"`
	Held      []core.Action     `msgpack:"h,omitempty"`
}

// Input rebuilds the engine input the frame was recorded from.
func (r FrameRecord) Input() engine.Input {
	return engine.Input{
		Delta:     r.Delta,
		KeyEvents: r.KeyEvents,
		Held:      core.NewKeyState(r.Held...),
	}
}

func newFrameRecord(seq uint64, in engine.Input) FrameRecord {
	rec := FrameRecord{
		Seq:   seq,
		Delta: in.Delta,
		Held:  in.Held.Actions(),
	}
	if len(in.KeyEvents) > 0 {
		rec.KeyEvents = append([]engine.KeyEvent(nil), in.KeyEvents...)
	}
	return rec
}
