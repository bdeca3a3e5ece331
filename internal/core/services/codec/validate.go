package codec

import (
	"fmt"

	"github.com/iamNilotpal/zstream/internal/core/domain"
	zerrors "github.com/iamNilotpal/zstream/pkg/errors"
)

// Validate checks codec options against their documented ranges and
// returns a ValidationError for the first field outside its bounds.
func Validate(opts *domain.CodecOptions) error {
	if opts.Level < DefaultCompression || opts.Level > BestCompression {
		return zerrors.NewValidationError(
			"level", opts.Level,
			fmt.Errorf("compression level must be between %d and %d, got %d", DefaultCompression, BestCompression, opts.Level),
		)
	}

	if opts.WindowBits < MinWindowBits || opts.WindowBits > MaxWindowBits {
		return zerrors.NewValidationError(
			"windowBits", opts.WindowBits,
			fmt.Errorf("window bits must be between %d and %d, got %d", MinWindowBits, MaxWindowBits, opts.WindowBits),
		)
	}

	return nil
}
