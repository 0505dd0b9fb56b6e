package vec

import (
	"errors"
	"fmt"
)

// Error kinds returned by vector operations. Specific failures wrap one of
// these, so callers can match either the exact error or its kind with
// errors.Is.
var (
	ErrNilReference     = errors.New("vec: nil reference")
	ErrInvalidHandle    = errors.New("vec: invalid or destroyed handle")
	ErrIndexOutOfBounds = errors.New("vec: index out of bounds")
	ErrInvalidOperation = errors.New("vec: invalid operation")
	ErrSizeMismatch     = errors.New("vec: element size mismatch")
	ErrCapacityExceeded = errors.New("vec: maximum capacity exceeded")
	ErrOutOfMemory      = errors.New("vec: allocation failed")
)

// Operation-specific failures. Each wraps ErrInvalidOperation, the kind they
// all shared before being split out.
var (
	ErrInvalidSize  = fmt.Errorf("%w: element size out of range", ErrInvalidOperation)
	ErrInvalidRange = fmt.Errorf("%w: capacity out of range", ErrInvalidOperation)
	ErrEmptyVector  = fmt.Errorf("%w: vector is empty", ErrInvalidOperation)
	ErrSameVector   = fmt.Errorf("%w: source and destination are the same vector", ErrInvalidOperation)
)

func errIndex(idx, length int) error {
	return fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfBounds, idx, length)
}

func errValueSize(got, want int) error {
	return fmt.Errorf("%w: got %d bytes, element size is %d", ErrSizeMismatch, got, want)
}

// ErrorMessage returns the printable name of the error kind err belongs to.
// The second return is false when err is not a vector error.
func ErrorMessage(err error) (string, bool) {
	switch {
	case err == nil:
		return "ok", true
	case errors.Is(err, ErrNilReference):
		return "nil reference", true
	case errors.Is(err, ErrInvalidHandle):
		return "invalid handle", true
	case errors.Is(err, ErrIndexOutOfBounds):
		return "index out of bounds", true
	case errors.Is(err, ErrSizeMismatch):
		return "element size mismatch", true
	case errors.Is(err, ErrCapacityExceeded):
		return "maximum capacity exceeded", true
	case errors.Is(err, ErrOutOfMemory):
		return "allocation failed", true
	case errors.Is(err, ErrInvalidOperation):
		return "invalid operation", true
	}
	return "", false
}
