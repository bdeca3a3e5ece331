// Package engine provides a pure-Go deflate engine behind the DeflateEngine
// port. It follows z_stream conventions: callers bind non-owning input and
// output cursors, step the engine, and read back how far the cursors moved.
// The deflate body is produced by the flate compressor; container framing
// (gzip or zlib) is written by the engine itself so that the raw windowbits
// encoding fully determines the on-wire format.
package engine

import (
	"bytes"
	"hash"
	"hash/adler32"
	"hash/crc32"

	"github.com/klauspost/compress/flate"

	"github.com/iamNilotpal/zstream/internal/core/domain"
	"github.com/iamNilotpal/zstream/internal/core/ports"
)

// container is the envelope selected by the raw windowbits encoding.
type container uint8

const (
	containerRaw container = iota
	containerZlib
	containerGzip
)

// Engine implements ports.DeflateEngine. One Engine drives exactly one
// logical stream at a time; the embedding codec serializes access.
type Engine struct {
	in  []byte // Input cursor, bound per step.
	out []byte // Output cursor, bound per step.

	// Per-stream state. nil marks an uninitialized or released engine;
	// this is the presence flag teardown checks before calling End.
	state *state
}

// state holds the engine's internal per-stream memory.
type state struct {
	level      int
	windowBits int
	container  container

	fw      *flate.Writer // Compresses the deflate body into pending.
	pending bytes.Buffer  // Output staged ahead of the caller's buffer.
	digest  hash.Hash32   // CRC32 (gzip) or Adler-32 (zlib); nil for raw.
	isize   uint32        // Total input bytes, for the gzip trailer.

	headerWritten bool
	closed        bool // Final block and trailer are staged in pending.
}

// New returns an engine with no allocated state. Init must be called
// before the first step.
func New() *Engine {
	return &Engine{}
}

var _ ports.DeflateEngine = (*Engine)(nil)

// Init allocates fresh stream state. The raw windowBits encoding selects
// the container: values above 15 mean gzip with windowBits-16 history
// bits, negative values mean raw deflate with -windowBits history bits,
// and values in 8..15 mean zlib.
func (e *Engine) Init(level, windowBits int) domain.EngineCode {
	if e.state != nil {
		return domain.CodeStreamError
	}

	ctr, bits := decodeWindowBits(windowBits)
	if bits < 8 || bits > 15 {
		return domain.CodeStreamError
	}
	if level < flate.DefaultCompression || level > flate.BestCompression {
		return domain.CodeStreamError
	}

	st := &state{level: level, windowBits: bits, container: ctr}

	fw, err := flate.NewWriter(&st.pending, level)
	if err != nil {
		return domain.CodeStreamError
	}

	st.fw = fw
	st.resetDigest()
	e.state = st
	return domain.CodeOK
}

// Reset rewinds existing state for a new stream, reusing the compressor's
// allocations.
func (e *Engine) Reset() domain.EngineCode {
	st := e.state
	if st == nil {
		return domain.CodeStreamError
	}

	st.pending.Reset()
	st.fw.Reset(&st.pending)
	st.resetDigest()
	st.isize = 0
	st.headerWritten = false
	st.closed = false
	return domain.CodeOK
}

// Step runs one compression step. Input is consumed into the compressor,
// staged output is drained into the output cursor, and with FlushFinish
// the final block and trailer are emitted. CodeStreamEnd is returned once
// the terminator has fully left the staging buffer.
func (e *Engine) Step(mode domain.FlushMode) domain.EngineCode {
	st := e.state
	if st == nil {
		return domain.CodeStreamError
	}

	// Input after the stream terminator is caller misuse.
	if st.closed && len(e.in) > 0 {
		return domain.CodeStreamError
	}

	// A starved output buffer is not an error; the caller supplies a
	// fresh one and steps again.
	if len(e.out) == 0 {
		return domain.CodeOK
	}

	if !st.headerWritten {
		st.writeHeader()
		st.headerWritten = true
	}

	if len(e.in) > 0 {
		// Writes into an in-memory buffer cannot fail, but the flate
		// writer reports errors and the translation stays in place.
		if _, err := st.fw.Write(e.in); err != nil {
			return domain.CodeStreamError
		}
		if st.digest != nil {
			st.digest.Write(e.in)
		}
		st.isize += uint32(len(e.in))
		e.in = e.in[len(e.in):]
	}

	if mode == domain.FlushFinish && !st.closed {
		if err := st.fw.Close(); err != nil {
			return domain.CodeStreamError
		}
		st.writeTrailer()
		st.closed = true
	}

	n, _ := st.pending.Read(e.out)
	e.out = e.out[n:]

	if st.closed && st.pending.Len() == 0 {
		return domain.CodeStreamEnd
	}
	return domain.CodeOK
}

// End releases stream state. State is dropped even when the stream is
// abandoned mid-flight, so a second End reports CodeStreamError rather
// than double-freeing.
func (e *Engine) End() domain.EngineCode {
	if e.state == nil {
		return domain.CodeStreamError
	}

	e.state = nil
	e.in, e.out = nil, nil
	return domain.CodeOK
}

// SetInput binds the input cursor. The engine never retains p beyond the
// next Step.
func (e *Engine) SetInput(p []byte) { e.in = p }

// SetOutput binds the output cursor.
func (e *Engine) SetOutput(p []byte) { e.out = p }

// AvailIn returns the number of unconsumed input bytes.
func (e *Engine) AvailIn() int { return len(e.in) }

// AvailOut returns the remaining output space in bytes.
func (e *Engine) AvailOut() int { return len(e.out) }

// Initialized reports whether stream state is present.
func (e *Engine) Initialized() bool { return e.state != nil }

// decodeWindowBits splits the raw windowbits encoding into a container
// tag and plain history bits.
func decodeWindowBits(raw int) (container, int) {
	switch {
	case raw < 0:
		return containerRaw, -raw
	case raw > 15:
		return containerGzip, raw - 16
	default:
		return containerZlib, raw
	}
}

func (st *state) resetDigest() {
	switch st.container {
	case containerGzip:
		st.digest = crc32.NewIEEE()
	case containerZlib:
		st.digest = adler32.New()
	default:
		st.digest = nil
	}
}
