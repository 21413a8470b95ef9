package errs

import (
	"errors"
	"fmt"
)

// ErrConflict is the sentinel for a concurrent write that lost a race. Callers may retry.
var ErrConflict = errors.New("conflict")

// ConflictError names the resource whose uniqueness constraint tripped.
type ConflictError struct {
	Resource string
	Cause    error
}

func NewConflictError(resource string) *ConflictError {
	return &ConflictError{Resource: resource}
}

func NewConflictErrorWithCause(resource string, cause error) *ConflictError {
	return &ConflictError{Resource: resource, Cause: cause}
}

func (e *ConflictError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrConflict, e.Resource, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrConflict, e.Resource)
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}
