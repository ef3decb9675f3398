package replay

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/vovakirdan/roadrush/internal/engine"
)

// queueSize is the number of frames buffered ahead of the writer.
const queueSize = 4096

// Recorder streams frame inputs to a writer from a background goroutine so
// the frame loop never waits on disk. When the queue is full frames are
// dropped and counted; a stream with dropped frames fails to replay with ErrGap.
type Recorder struct {
	closer io.Closer
	buf    *bufio.Writer
	enc    *msgpack.Encoder

	frames  chan FrameRecord
	wg      sync.WaitGroup
	mu      sync.Mutex
	closed  bool
	seq     uint64
	dropped atomic.Uint64
	err     error // first write error, set by writeLoop
}

// Create opens path (creating parent directories) and starts recording.
func Create(path string, h Header) (*Recorder, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("replay: cannot create directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("replay: cannot create file: %w", err)
	}
	r, err := NewRecorder(f, h)
	if err != nil {
		f.Close()
		return nil, err
	}
	r.closer = f
	return r, nil
}

// NewRecorder writes the header to w and starts the background writer.
func NewRecorder(w io.Writer, h Header) (*Recorder, error) {
	h.Version = Version
	buf := bufio.NewWriter(w)
	enc := msgpack.NewEncoder(buf)
	if err := enc.Encode(&h); err != nil {
		return nil, fmt.Errorf("replay: cannot write header: %w", err)
	}

	r := &Recorder{
		buf:    buf,
		enc:    enc,
		frames: make(chan FrameRecord, queueSize),
	}
	r.wg.Add(1)
	go r.writeLoop()
	return r, nil
}

// Record queues the input of one frame. It never blocks.
func (r *Recorder) Record(in engine.Input) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}

	rec := newFrameRecord(r.seq, in)
	r.seq++
	select {
	case r.frames <- rec:
	default:
		r.dropped.Add(1)
	}
}

// Dropped returns the number of frames lost to a full queue.
func (r *Recorder) Dropped() uint64 {
	return r.dropped.Load()
}

// Close drains the queue, flushes the stream and closes the file if the
// recorder owns one. It returns the first write error.
func (r *Recorder) Close() error {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return r.err
	}
	r.closed = true
	close(r.frames)
	r.mu.Unlock()

	r.wg.Wait()
	if err := r.buf.Flush(); err != nil && r.err == nil {
		r.err = fmt.Errorf("replay: cannot flush: %w", err)
	}
	if r.closer != nil {
		if err := r.closer.Close(); err != nil && r.err == nil {
			r.err = fmt.Errorf("replay: cannot close file: %w", err)
		}
	}
	return r.err
}

func (r *Recorder) writeLoop() {
	defer r.wg.Done()

	for rec := range r.frames {
		if r.err != nil {
			continue
		}
		if err := r.enc.Encode(&rec); err != nil {
			r.err = fmt.Errorf("replay: cannot write frame %d: %w", rec.Seq, err)
		}
	}
}
