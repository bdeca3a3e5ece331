package domain

// FlushMode directs the engine's output policy for a single step.
type FlushMode uint8

const (
	// FlushNone lets the engine buffer input internally, emitting output
	// only as block boundaries and output space allow.
	FlushNone FlushMode = iota

	// FlushFinish signals end of input, forcing the engine to emit all
	// buffered data followed by the stream terminator.
	FlushFinish
)

// EngineCode is the status code returned by every engine primitive.
// The code set mirrors the classic zlib return values so that engine
// implementations backed by a native library can pass codes through
// untranslated.
type EngineCode int

const (
	// CodeOK indicates the primitive made normal progress.
	CodeOK EngineCode = 0

	// CodeStreamEnd indicates the stream terminator has been fully emitted.
	CodeStreamEnd EngineCode = 1

	// CodeStreamError indicates inconsistent stream state or invalid
	// parameters, usually caller misuse.
	CodeStreamError EngineCode = -2

	// CodeDataError indicates corrupted or unusable stream data.
	CodeDataError EngineCode = -3

	// CodeMemError indicates the engine could not allocate internal state.
	CodeMemError EngineCode = -4

	// CodeBufError indicates no progress was possible with the supplied
	// buffers.
	CodeBufError EngineCode = -5
)

// Message returns the engine-supplied text for the code, used when
// translating a non-success code into an error.
func (c EngineCode) Message() string {
	switch c {
	case CodeOK:
		return "ok"
	case CodeStreamEnd:
		return "stream end"
	case CodeStreamError:
		return "stream error"
	case CodeDataError:
		return "data error"
	case CodeMemError:
		return "insufficient memory"
	case CodeBufError:
		return "buffer error"
	default:
		return "unknown error"
	}
}
