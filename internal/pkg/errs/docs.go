// Package errs provides the typed errors shared by the route tracking core.
//
// Every error type pairs a sentinel with a struct carrying details, so callers
// branch with errors.Is and the transport maps sentinels to response codes:
//   - ObjectNotFoundError (ErrObjectNotFound): missing plan, point, loading or reference
//   - StatusIsInvalidError (ErrStatusIsInvalid): status outside an entity kind's vocabulary
//   - OrderIsInvalidError (ErrOrderIsInvalid): position that cannot be normalized
//   - ConflictError (ErrConflict): a concurrent write lost a uniqueness race
//   - AccessDeniedError (ErrAccessDenied): ownership predicate refused the caller
//   - ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError: input validation
//
// Constructors come in two flavours, with and without a cause. Unwrap returns the
// sentinel, never the cause.
package errs
