package errs

import (
	"errors"
	"fmt"
)

// ErrAccessDenied is the sentinel for a caller that does not own the target route plan.
var ErrAccessDenied = errors.New("access denied")

// AccessDeniedError names the resource the caller tried to act on.
type AccessDeniedError struct {
	Resource string
	ID       any
}

func NewAccessDeniedError(resource string, id any) *AccessDeniedError {
	return &AccessDeniedError{Resource: resource, ID: id}
}

func (e *AccessDeniedError) Error() string {
	return fmt.Sprintf("%s: %s %s", ErrAccessDenied, e.Resource, sanitize(e.ID))
}

func (e *AccessDeniedError) Unwrap() error {
	return ErrAccessDenied
}
