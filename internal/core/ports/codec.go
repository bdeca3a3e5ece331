package ports

import "github.com/iamNilotpal/zstream/internal/core/domain"

// Codec is the push-based transcoding surface a streaming driver consumes.
// This allows us to swap codec implementations without changing driver logic.
type Codec interface {
	// Initialize acquires engine state. Called exactly once per stream,
	// before the first Process call.
	Initialize() error

	// Startproc confirms the engine is ready to accept fresh input,
	// resetting any prior stream state. Called at the start of each
	// processing phase.
	Startproc() error

	// Process compresses as much of in as fits into out.
	// Returns the number of bytes consumed and produced plus a status:
	// StatusOK means more calls are expected, StatusEnd means the stream
	// terminator has been emitted.
	Process(in, out []byte) (consumed, produced int, status domain.Status, err error)

	// Finalize releases engine state. Safe to call more than once.
	Finalize() error

	// Format returns the container format this codec produces.
	Format() domain.Format
}
