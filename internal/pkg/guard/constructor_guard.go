// Package guard marks values that were built by their constructor, so a zero value
// of a command, query or value object fails validation instead of slipping through.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate on a zero guard when the caller
// passes no specific error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in types that must only be created by a constructor.
//
// Example:
//
//	var ErrTimelineQueryIsNotConstructed = errors.New("GetTimelineQuery must be created via NewGetTimelineQuery")
//
//	type GetTimelineQuery struct {
//	    routePlanID kernel.UUID
//	    guard       guard.ConstructorGuard
//	}
//
//	func (q GetTimelineQuery) Validate() error {
//	    return q.guard.Validate(ErrTimelineQueryIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard that passes validation.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value, and nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
