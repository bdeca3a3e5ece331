package codec

import "github.com/iamNilotpal/zstream/internal/core/domain"

// Compression levels, mirroring the engine's level range.
const (
	NoCompression      = 0  // Store input without compressing.
	BestSpeed          = 1  // Fastest compression, lowest ratio.
	BestCompression    = 9  // Best ratio, highest CPU usage.
	DefaultCompression = -1 // Engine default, roughly equivalent to 6.
)

// Window size bounds. The window is the sliding history buffer used for
// back-reference matching, sized as a power of two.
const (
	MinWindowBits     = 8  // 256 byte window.
	MaxWindowBits     = 15 // 32 KiB window.
	DefaultWindowBits = MaxWindowBits
)

// Returns codec options initialized with recommended default values.
func DefaultOptions() *domain.CodecOptions {
	return &domain.CodecOptions{
		Level:      DefaultCompression,
		WindowBits: DefaultWindowBits,
	}
}

func prepareDefaults(opts *domain.CodecOptions) *domain.CodecOptions {
	if opts == nil {
		return DefaultOptions()
	}

	// 0 is outside the valid windowBits range, so the zero value safely
	// means "unset". Level 0 is a valid setting (store only) and is
	// taken literally.
	if opts.WindowBits == 0 {
		opts.WindowBits = DefaultWindowBits
	}

	return opts
}
