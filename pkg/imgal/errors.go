package imgal

import (
	"fmt"

	"github.com/imgal/imgal-go/internal/native"
)

// The bridge error taxonomy, re-exported so callers never import
// internal/native. Initialization errors (ResourceMissing, IOFailure,
// LoadFailure, SymbolNotFound) are raised once and cached for the process
// lifetime; per-call errors (SignatureMismatch, NativeCallFailure) are
// local to the failing call.
var (
	ErrResourceMissing     = native.ErrResourceMissing
	ErrIOFailure           = native.ErrIOFailure
	ErrLoadFailure         = native.ErrLoadFailure
	ErrSymbolNotFound      = native.ErrSymbolNotFound
	ErrSignatureMismatch   = native.ErrSignatureMismatch
	ErrNativeCallFailure   = native.ErrNativeCallFailure
	ErrUnsupportedPlatform = native.ErrUnsupportedPlatform
)

// Error wraps an underlying bridge error with the public operation that
// triggered it.
type Error struct {
	Op  string // Operation that failed
	Err error  // Underlying error
}

func (e *Error) Error() string {
	return fmt.Sprintf("imgal.%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// OpError wraps err with the operation name. Subpackages use it so all
// public failures share one shape. Returns nil for a nil err.
func OpError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Op: op, Err: err}
}
