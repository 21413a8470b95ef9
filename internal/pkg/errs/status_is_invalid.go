package errs

import (
	"errors"
	"fmt"
)

// ErrStatusIsInvalid is the sentinel for a status outside an entity kind's vocabulary
// or a transition refused by the active policy.
var ErrStatusIsInvalid = errors.New("status is invalid")

// StatusIsInvalidError names the entity kind and the rejected status value.
type StatusIsInvalidError struct {
	Kind   string
	Status string
	Cause  error
}

func NewStatusIsInvalidError(kind, status string) *StatusIsInvalidError {
	return &StatusIsInvalidError{Kind: kind, Status: status}
}

func NewStatusIsInvalidErrorWithCause(kind, status string, cause error) *StatusIsInvalidError {
	return &StatusIsInvalidError{Kind: kind, Status: status, Cause: cause}
}

func (e *StatusIsInvalidError) Error() string {
	msg := fmt.Sprintf("%s: %q for %s", ErrStatusIsInvalid, sanitize(e.Status), e.Kind)
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %v)", msg, e.Cause)
	}
	return msg
}

func (e *StatusIsInvalidError) Unwrap() error {
	return ErrStatusIsInvalid
}
