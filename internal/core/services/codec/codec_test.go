package codec

import (
	"bytes"
	"io"
	"math/rand"
	"testing"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iamNilotpal/zstream/internal/core/domain"
	zerrors "github.com/iamNilotpal/zstream/pkg/errors"
)

type constructor func(*domain.CodecOptions) (*Codec, error)

var constructors = map[string]constructor{
	"gzip":    NewGzip,
	"zlib":    NewZlib,
	"deflate": NewDeflate,
}

// compressAll drives a fresh stream through the codec with output buffers
// of bufSize, returning the concatenated compressed bytes.
func compressAll(t *testing.T, c *Codec, data []byte, bufSize int) []byte {
	t.Helper()

	var compressed bytes.Buffer
	out := make([]byte, bufSize)

	in := data
	for len(in) > 0 {
		consumed, produced, status, err := c.Process(in, out)
		require.NoError(t, err)
		require.Equal(t, domain.StatusOK, status)
		compressed.Write(out[:produced])
		in = in[consumed:]
	}

	for {
		consumed, produced, status, err := c.Process(nil, out)
		require.NoError(t, err)
		require.Zero(t, consumed)
		compressed.Write(out[:produced])
		if status == domain.StatusEnd {
			break
		}
	}

	return compressed.Bytes()
}

// decompress decodes data with the reader matching the codec's format.
func decompress(t *testing.T, format domain.Format, data []byte) []byte {
	t.Helper()

	var r io.ReadCloser
	var err error

	switch format {
	case domain.FormatGzip:
		r, err = gzip.NewReader(bytes.NewReader(data))
	case domain.FormatZlib:
		r, err = zlib.NewReader(bytes.NewReader(data))
	default:
		r = flate.NewReader(bytes.NewReader(data))
	}
	require.NoError(t, err)
	defer r.Close()

	plain, err := io.ReadAll(r)
	require.NoError(t, err)
	return plain
}

func TestRawWindowBitsEncoding(t *testing.T) {
	for wb := MinWindowBits; wb <= MaxWindowBits; wb++ {
		opts := &domain.CodecOptions{Level: 6, WindowBits: wb}

		gz, err := NewGzip(opts)
		require.NoError(t, err)
		assert.Equal(t, wb+16, gz.RawWindowBits())

		zl, err := NewZlib(opts)
		require.NoError(t, err)
		assert.Equal(t, wb, zl.RawWindowBits())

		df, err := NewDeflate(opts)
		require.NoError(t, err)
		assert.Equal(t, -wb, df.RawWindowBits())
	}
}

func TestConstructDefaults(t *testing.T) {
	for name, construct := range constructors {
		t.Run(name, func(t *testing.T) {
			c, err := construct(nil)
			require.NoError(t, err)
			assert.Equal(t, DefaultCompression, c.Level())
			assert.Equal(t, DefaultWindowBits, c.WindowBits())
		})
	}

	// Zero windowBits means unset; zero level means store-only.
	c, err := NewGzip(&domain.CodecOptions{Level: NoCompression})
	require.NoError(t, err)
	assert.Equal(t, NoCompression, c.Level())
	assert.Equal(t, DefaultWindowBits, c.WindowBits())
}

func TestConstructValidation(t *testing.T) {
	cases := []struct {
		name  string
		opts  *domain.CodecOptions
		field string
	}{
		{"level too low", &domain.CodecOptions{Level: -2, WindowBits: 15}, "level"},
		{"level too high", &domain.CodecOptions{Level: 10, WindowBits: 15}, "level"},
		{"window too small", &domain.CodecOptions{Level: 6, WindowBits: 7}, "windowBits"},
		{"window too large", &domain.CodecOptions{Level: 6, WindowBits: 16}, "windowBits"},
	}

	for name, construct := range constructors {
		for _, tc := range cases {
			t.Run(name+"/"+tc.name, func(t *testing.T) {
				c, err := construct(tc.opts)
				require.Error(t, err)
				assert.Nil(t, c)
				require.True(t, zerrors.IsValidationError(err))
				assert.Equal(t, tc.field, zerrors.AsValidationError(err).Field)
			})
		}
	}
}

func TestConstructAllocatesNoEngineState(t *testing.T) {
	c, err := NewGzip(nil)
	require.NoError(t, err)

	// The engine handle exists but holds no state until Initialize.
	assert.False(t, c.engine.Initialized())

	require.NoError(t, c.Initialize())
	assert.True(t, c.engine.Initialized())
	require.NoError(t, c.Finalize())
}

func TestRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	data := make([]byte, 64*1024)
	for i := range data {
		// Mildly compressible pseudo-random bytes.
		data[i] = byte(rng.Intn(32))
	}

	for name, construct := range constructors {
		t.Run(name, func(t *testing.T) {
			c, err := construct(&domain.CodecOptions{Level: 6, WindowBits: 15})
			require.NoError(t, err)
			require.NoError(t, c.Initialize())
			defer c.Finalize()
			require.NoError(t, c.Startproc())

			compressed := compressAll(t, c, data, 8*1024)
			assert.Equal(t, data, decompress(t, c.Format(), compressed))
		})
	}
}

func TestEmptyInputFinish(t *testing.T) {
	for name, construct := range constructors {
		t.Run(name, func(t *testing.T) {
			c, err := construct(nil)
			require.NoError(t, err)
			require.NoError(t, c.Initialize())
			defer c.Finalize()
			require.NoError(t, c.Startproc())

			out := make([]byte, 256)
			consumed, produced, status, err := c.Process(nil, out)
			require.NoError(t, err)
			assert.Zero(t, consumed)
			assert.Equal(t, domain.StatusEnd, status)

			// The produced bytes form a complete, empty stream.
			assert.Empty(t, decompress(t, c.Format(), out[:produced]))
		})
	}
}

func TestStarvedOutput(t *testing.T) {
	c, err := NewGzip(&domain.CodecOptions{Level: BestSpeed, WindowBits: 15})
	require.NoError(t, err)
	require.NoError(t, c.Initialize())
	defer c.Finalize()
	require.NoError(t, c.Startproc())

	data := bytes.Repeat([]byte("starved output buffers are not errors "), 64)

	// Zero output space with input remaining reports no progress and no
	// error.
	consumed, produced, status, err := c.Process(data, nil)
	require.NoError(t, err)
	assert.Zero(t, consumed)
	assert.Zero(t, produced)
	assert.Equal(t, domain.StatusOK, status)

	// A fresh output buffer with the same input makes forward progress.
	out := make([]byte, 4096)
	consumed, _, status, err = c.Process(data, out)
	require.NoError(t, err)
	assert.Positive(t, consumed)
	assert.Equal(t, domain.StatusOK, status)
}

func TestFinalizeIdempotent(t *testing.T) {
	c, err := NewZlib(nil)
	require.NoError(t, err)
	require.NoError(t, c.Initialize())

	require.NoError(t, c.Finalize())
	assert.False(t, c.engine.Initialized())

	// Double release is a no-op, not an error.
	require.NoError(t, c.Finalize())
	assert.False(t, c.engine.Initialized())
}

func TestFinalizeBeforeInitialize(t *testing.T) {
	c, err := NewDeflate(nil)
	require.NoError(t, err)
	require.NoError(t, c.Finalize())
}

func TestGzipLargeRepetitiveInput(t *testing.T) {
	c, err := NewGzip(&domain.CodecOptions{Level: 6, WindowBits: 15})
	require.NoError(t, err)
	require.NoError(t, c.Initialize())
	defer c.Finalize()
	require.NoError(t, c.Startproc())

	data := bytes.Repeat([]byte("abcdefghij"), 10_000)
	require.Len(t, data, 100_000)

	compressed := compressAll(t, c, data, 4096)
	assert.Less(t, len(compressed), len(data))
	assert.Equal(t, data, decompress(t, domain.FormatGzip, compressed))
}

func TestRawDeflateHasNoContainerMagic(t *testing.T) {
	c, err := NewDeflate(nil)
	require.NoError(t, err)
	require.NoError(t, c.Initialize())
	defer c.Finalize()
	require.NoError(t, c.Startproc())

	compressed := compressAll(t, c, []byte("no envelope around this stream"), 4096)
	require.GreaterOrEqual(t, len(compressed), 2)

	assert.False(t, compressed[0] == 0x1f && compressed[1] == 0x8b, "found gzip magic")
	assert.False(t, compressed[0] == 0x78, "found zlib header byte")
}

func TestStartprocReuse(t *testing.T) {
	c, err := NewZlib(&domain.CodecOptions{Level: 6, WindowBits: 15})
	require.NoError(t, err)
	require.NoError(t, c.Initialize())
	defer c.Finalize()

	first := []byte("first logical stream through this codec")
	second := []byte("second stream after a reset, same engine state")

	require.NoError(t, c.Startproc())
	compressed := compressAll(t, c, first, 4096)
	assert.Equal(t, first, decompress(t, domain.FormatZlib, compressed))

	// Reset-and-reuse instead of teardown-and-rebuild.
	require.NoError(t, c.Startproc())
	compressed = compressAll(t, c, second, 4096)
	assert.Equal(t, second, decompress(t, domain.FormatZlib, compressed))
}

// failingEngine reports a fixed code from every primitive, for exercising
// error translation.
type failingEngine struct {
	code domain.EngineCode
}

func (f *failingEngine) Init(level, windowBits int) domain.EngineCode { return f.code }
func (f *failingEngine) Reset() domain.EngineCode                     { return f.code }
func (f *failingEngine) Step(mode domain.FlushMode) domain.EngineCode { return f.code }
func (f *failingEngine) End() domain.EngineCode                       { return f.code }
func (f *failingEngine) SetInput(p []byte)                            {}
func (f *failingEngine) SetOutput(p []byte)                           {}
func (f *failingEngine) AvailIn() int                                 { return 0 }
func (f *failingEngine) AvailOut() int                                { return 0 }
func (f *failingEngine) Initialized() bool                            { return true }

func TestEngineErrorTranslation(t *testing.T) {
	c, err := NewGzip(nil)
	require.NoError(t, err)
	c.engine = &failingEngine{code: domain.CodeMemError}

	for name, call := range map[string]func() error{
		"initialize": c.Initialize,
		"startproc":  c.Startproc,
		"finalize":   c.Finalize,
	} {
		t.Run(name, func(t *testing.T) {
			err := call()
			require.Error(t, err)
			require.True(t, zerrors.IsEngineError(err))

			ee := zerrors.AsEngineError(err)
			assert.Equal(t, name, ee.Op)
			assert.Equal(t, int(domain.CodeMemError), ee.Code)
			assert.Equal(t, domain.CodeMemError.Message(), ee.Message)
		})
	}

	t.Run("process", func(t *testing.T) {
		consumed, produced, _, err := c.Process([]byte("x"), make([]byte, 16))
		require.Error(t, err)
		assert.Zero(t, consumed)
		assert.Zero(t, produced)
		require.True(t, zerrors.IsEngineError(err))
		assert.Equal(t, "process", zerrors.AsEngineError(err).Op)
	})
}
