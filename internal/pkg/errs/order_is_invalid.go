package errs

import (
	"errors"
	"fmt"
)

// ErrOrderIsInvalid is the sentinel for a requested point position that cannot be
// normalized into a unique ordering.
var ErrOrderIsInvalid = errors.New("order is invalid")

// OrderIsInvalidError carries the position that was requested.
type OrderIsInvalidError struct {
	Order int
	Cause error
}

func NewOrderIsInvalidError(order int) *OrderIsInvalidError {
	return &OrderIsInvalidError{Order: order}
}

func NewOrderIsInvalidErrorWithCause(order int, cause error) *OrderIsInvalidError {
	return &OrderIsInvalidError{Order: order, Cause: cause}
}

func (e *OrderIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %d (cause: %v)", ErrOrderIsInvalid, e.Order, e.Cause)
	}
	return fmt.Sprintf("%s: %d", ErrOrderIsInvalid, e.Order)
}

func (e *OrderIsInvalidError) Unwrap() error {
	return ErrOrderIsInvalid
}
