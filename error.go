package rollz

import (
	"errors"
	"fmt"
)

// Sentinel errors classifying invalid arguments. All are detected before any
// boundary scan begins; a failed call performs no partial work.
var (
	// ErrNegativeLength reports a negative sequence length.
	ErrNegativeLength = errors.New("negative sequence length")

	// ErrNegativeWindow reports a negative window size.
	ErrNegativeWindow = errors.New("negative window size")

	// ErrKeyLength reports an ordering key whose length does not match the
	// sequence length.
	ErrKeyLength = errors.New("ordering key length does not match sequence length")
)

// BoundsError represents an invalid-argument failure from a bounds provider.
// It identifies which provider rejected the call and wraps the sentinel
// describing why, enabling errors.Is classification by callers.
type BoundsError struct {
	// Provider identifies which bounds provider rejected the call.
	Provider string

	// Err is the underlying sentinel error.
	Err error
}

// newBoundsError creates a BoundsError for the named provider.
func newBoundsError(provider string, err error) *BoundsError {
	return &BoundsError{
		Provider: provider,
		Err:      err,
	}
}

// Error implements the error interface.
func (e *BoundsError) Error() string {
	return fmt.Sprintf("rollz[%s]: %v", e.Provider, e.Err)
}

// Unwrap returns the underlying sentinel, enabling error wrapping chains.
func (e *BoundsError) Unwrap() error {
	return e.Err
}
