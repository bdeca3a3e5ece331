// Package stream provides a minimal driver over the push-based codec
// protocol: a Writer that feeds caller data through a codec in fixed-size
// output chunks and forwards the compressed bytes to an io.Writer.
package stream

import (
	"errors"
	"io"

	"github.com/iamNilotpal/zstream/internal/core/domain"
	"github.com/iamNilotpal/zstream/internal/core/ports"
	zerrors "github.com/iamNilotpal/zstream/pkg/errors"
	"github.com/iamNilotpal/zstream/pkg/pool"
)

var (
	// ErrWriterClosed indicates a write against a closed writer.
	ErrWriterClosed = errors.New("stream: writer is closed")
)

const (
	// DefaultBufferSize is the output chunk size used when options don't
	// specify one.
	DefaultBufferSize = 32 * 1024

	// MinBufferSize bounds how small an output chunk callers may request.
	MinBufferSize = 512
)

// Options configures a stream writer.
type Options struct {
	// BufferSize sets the length of the pooled output buffers handed to
	// the codec per Process call. If 0, DefaultBufferSize is used.
	BufferSize int
}

// Writer drives a codec against a destination writer. The codec is
// initialized lazily on first write, so constructing a Writer allocates
// no engine state, and Finalize is guaranteed on Close regardless of how
// the stream ended.
//
// A Writer is single-owner: callers serialize Write and Close.
type Writer struct {
	dst     io.Writer
	codec   ports.Codec
	pool    *pool.BufferPool
	started bool  // Codec has been initialized and reset.
	closed  bool  // Close has run; further writes are rejected.
	err     error // First failure; sticky until Close.
}

// NewWriter creates a writer that compresses everything written to it
// through codec and forwards the result to dst. nil options select the
// defaults.
func NewWriter(dst io.Writer, codec ports.Codec, opts *Options) *Writer {
	size := DefaultBufferSize
	if opts != nil && opts.BufferSize > 0 {
		size = opts.BufferSize
		if size < MinBufferSize {
			size = MinBufferSize
		}
	}

	return &Writer{
		dst:   dst,
		codec: codec,
		pool:  pool.NewBufferPool(size),
	}
}

// Write compresses p, forwarding produced chunks to the destination.
// Implements io.Writer.
func (w *Writer) Write(p []byte) (int, error) {
	if w.err != nil {
		return 0, w.err
	}
	if w.closed {
		return 0, ErrWriterClosed
	}

	if err := w.start(); err != nil {
		return 0, w.fail(err)
	}

	total := 0
	for len(p) > 0 {
		consumed, err := w.processChunk(p)
		if err != nil {
			return total, w.fail(err)
		}

		if consumed == 0 {
			// The engine accepted nothing into a fresh buffer; treat it
			// as stalled rather than spinning.
			code := domain.CodeBufError
			return total, w.fail(zerrors.NewEngineError("write", int(code), code.Message()))
		}

		p = p[consumed:]
		total += consumed
	}

	return total, nil
}

// Close drains the codec's buffered tail, writes the stream terminator
// and releases the engine. Safe to call more than once; only the first
// call does work.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true

	err := w.finish()

	// Finalize runs on every path so engine state is never leaked, even
	// when the stream failed mid-flight.
	if ferr := w.codec.Finalize(); err == nil {
		err = ferr
	}
	return err
}

// start initializes the codec on first use.
func (w *Writer) start() error {
	if w.started {
		return nil
	}
	if err := w.codec.Initialize(); err != nil {
		return err
	}
	if err := w.codec.Startproc(); err != nil {
		return err
	}
	w.started = true
	return nil
}

// processChunk runs one Process call against a pooled output buffer and
// forwards whatever was produced.
func (w *Writer) processChunk(p []byte) (int, error) {
	out := w.pool.Get()
	defer w.pool.Put(out)

	consumed, produced, _, err := w.codec.Process(p, out)
	if err != nil {
		return 0, err
	}

	if produced > 0 {
		if _, werr := w.dst.Write(out[:produced]); werr != nil {
			return consumed, werr
		}
	}
	return consumed, nil
}

// finish flushes the engine's buffered data and terminator by feeding
// empty input until the codec reports end of stream.
func (w *Writer) finish() error {
	if w.err != nil {
		return w.err
	}

	// An empty stream still gets valid container framing.
	if err := w.start(); err != nil {
		return err
	}

	for {
		out := w.pool.Get()
		_, produced, status, err := w.codec.Process(nil, out)
		if err != nil {
			w.pool.Put(out)
			return err
		}

		if produced > 0 {
			if _, werr := w.dst.Write(out[:produced]); werr != nil {
				w.pool.Put(out)
				return werr
			}
		}
		w.pool.Put(out)

		if status == domain.StatusEnd {
			return nil
		}
	}
}

// fail records the first error and returns it.
func (w *Writer) fail(err error) error {
	if w.err == nil {
		w.err = err
	}
	return err
}
