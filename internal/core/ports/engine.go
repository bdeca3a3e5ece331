package ports

import "github.com/iamNilotpal/zstream/internal/core/domain"

// DeflateEngine is the stateful compression primitive the codec adapter
// drives. The interface is modeled on a native z_stream: non-owning input
// and output cursors are bound before each step, and every primitive
// reports an EngineCode rather than an error so that implementations can
// pass native status codes through unchanged.
//
// An engine is single-owner and single-threaded; callers serialize access
// to a given instance.
type DeflateEngine interface {
	// Init allocates internal state for a new stream using the given
	// compression level and raw windowbits encoding (sign/offset selects
	// the container format). Calling Init on an engine that already holds
	// state is an error.
	Init(level, windowBits int) domain.EngineCode

	// Reset rewinds existing state so the engine can produce a fresh
	// stream without reallocating.
	Reset() domain.EngineCode

	// Step runs one compression step against the bound cursors, advancing
	// them by however much was consumed and produced.
	Step(mode domain.FlushMode) domain.EngineCode

	// End releases internal state. The engine is unusable afterwards until
	// Init is called again. State is dropped even on failure.
	End() domain.EngineCode

	// SetInput binds the input cursor to a caller-owned buffer.
	// The engine never retains the buffer beyond the next Step.
	SetInput(p []byte)

	// SetOutput binds the output cursor to a caller-owned buffer.
	SetOutput(p []byte)

	// AvailIn returns the number of unconsumed input bytes.
	AvailIn() int

	// AvailOut returns the remaining output space in bytes.
	AvailOut() int

	// Initialized reports whether internal state is present. Used to
	// detect an already-released engine during teardown.
	Initialized() bool
}
