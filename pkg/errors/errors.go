package errors

import (
	"errors"
	"fmt"
)

// EngineError represents a non-success status reported by the native-style
// compression engine. It carries the raw status code alongside the
// engine-supplied message so callers can log or branch on the exact
// failure without parsing text.
//
// Engine errors are never retried by the codec itself: a non-success code
// indicates either caller misuse (corrupted stream state) or an
// unrecoverable engine fault, and both need to surface.
type EngineError struct {
	Op      string // Operation during which the engine failed (initialize, startproc, process, finalize).
	Code    int    // Raw engine status code.
	Message string // Engine-supplied message text for the code.
}

// NewEngineError creates a new EngineError instance.
func NewEngineError(op string, code int, message string) *EngineError {
	return &EngineError{
		Op:      op,
		Code:    code,
		Message: message,
	}
}

// Error implements the error interface for EngineError.
func (e *EngineError) Error() string {
	return fmt.Sprintf("[engine] %s: %s (%d)", e.Op, e.Message, e.Code)
}

// IsEngineError checks if a given error is of type EngineError.
func IsEngineError(err error) bool {
	var ee *EngineError
	return errors.As(err, &ee)
}

// AsEngineError attempts to extract an EngineError from a given error.
func AsEngineError(err error) *EngineError {
	var ee *EngineError
	if errors.As(err, &ee) {
		return ee
	}
	return nil
}
