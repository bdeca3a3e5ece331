// Package codec adapts a stateful deflate engine to a uniform push-based
// transcoding protocol: hand it an input buffer and an output buffer, it
// advances the engine and reports how many bytes were consumed and
// produced plus whether the stream has ended. The gzip, zlib and
// raw-deflate variants share this one adapter and differ only in how
// their window size is encoded for the engine.
package codec

import (
	"github.com/iamNilotpal/zstream/internal/adapters/engine"
	"github.com/iamNilotpal/zstream/internal/core/domain"
	"github.com/iamNilotpal/zstream/internal/core/ports"
	zerrors "github.com/iamNilotpal/zstream/pkg/errors"
)

// Offset added to windowBits to select the gzip container in the raw
// encoding; negation selects raw deflate, and plain values select zlib.
const gzipWindowBitsOffset = 16

// Codec owns one deflate engine and translates its status codes into the
// driver-facing protocol. A codec drives exactly one logical stream at a
// time; callers serialize access to a given instance.
type Codec struct {
	format     domain.Format       // Container format this codec produces.
	level      int                 // Validated compression level.
	windowBits int                 // Validated history window size, in bits.
	rawBits    int                 // Encoded windowbits handed to the engine.
	engine     ports.DeflateEngine // Exclusively owned engine, allocated lazily at Initialize.
}

var _ ports.Codec = (*Codec)(nil)

// newCodec validates options and computes the raw windowbits encoding for
// the given format. No engine state is allocated here; construction is
// pure validation plus encoding.
func newCodec(format domain.Format, opts *domain.CodecOptions) (*Codec, error) {
	opts = prepareDefaults(opts)
	if err := Validate(opts); err != nil {
		return nil, err
	}

	rawBits := opts.WindowBits
	switch format {
	case domain.FormatGzip:
		rawBits += gzipWindowBitsOffset
	case domain.FormatRawDeflate:
		rawBits = -rawBits
	}

	return &Codec{
		format:     format,
		level:      opts.Level,
		windowBits: opts.WindowBits,
		rawBits:    rawBits,
		engine:     engine.New(),
	}, nil
}

// Initialize acquires engine state for a new stream. Called exactly once
// per stream, before the first Process call; the driver guarantees this.
func (c *Codec) Initialize() error {
	if code := c.engine.Init(c.level, c.rawBits); code != domain.CodeOK {
		return zerrors.NewEngineError("initialize", int(code), code.Message())
	}
	return nil
}

// Startproc resets the engine at the start of a processing phase,
// separating "engine state exists" from "engine is ready for fresh
// input". This lets one codec be reset and reused instead of torn down
// and rebuilt, since engine allocation is the expensive part.
func (c *Codec) Startproc() error {
	if code := c.engine.Reset(); code != domain.CodeOK {
		return zerrors.NewEngineError("startproc", int(code), code.Message())
	}
	return nil
}

// Process compresses as much of in as fits into out.
//
// A non-empty input requests no flush, letting the engine buffer
// internally; an empty input requests finish, forcing out all buffered
// data followed by the stream terminator. An empty input with a large
// output buffer is therefore the normal "flush tail" call at end of
// stream, and a full output buffer with input remaining simply reports
// (0, 0, StatusOK) so the driver supplies a fresh buffer and calls again.
func (c *Codec) Process(in, out []byte) (int, int, domain.Status, error) {
	c.engine.SetInput(in)
	c.engine.SetOutput(out)

	mode := domain.FlushNone
	if len(in) == 0 {
		mode = domain.FlushFinish
	}

	code := c.engine.Step(mode)
	consumed := len(in) - c.engine.AvailIn()
	produced := len(out) - c.engine.AvailOut()

	switch code {
	case domain.CodeOK:
		return consumed, produced, domain.StatusOK, nil
	case domain.CodeStreamEnd:
		return consumed, produced, domain.StatusEnd, nil
	default:
		return 0, 0, 0, zerrors.NewEngineError("process", int(code), code.Message())
	}
}

// Finalize releases engine state exactly once. Calling it on an
// already-released codec is a no-op, never an error: teardown may run
// both explicitly and from deferred cleanup, and double invocation must
// be safe. The engine is treated as released even when release fails.
func (c *Codec) Finalize() error {
	if !c.engine.Initialized() {
		return nil
	}
	if code := c.engine.End(); code != domain.CodeOK {
		return zerrors.NewEngineError("finalize", int(code), code.Message())
	}
	return nil
}

// Format returns the container format this codec produces.
func (c *Codec) Format() domain.Format { return c.format }

// Level returns the validated compression level.
func (c *Codec) Level() int { return c.level }

// WindowBits returns the validated history window size in bits.
func (c *Codec) WindowBits() int { return c.windowBits }

// RawWindowBits returns the encoded windowbits value handed to the
// engine: windowBits+16 for gzip, windowBits for zlib, -windowBits for
// raw deflate.
func (c *Codec) RawWindowBits() int { return c.rawBits }
