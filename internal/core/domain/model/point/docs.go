// Package point contains the RoutePoint entity: one stop in a vehicle's daily route.
//
// A point's position inside its plan (Order) is owned by the order index and only
// changes through SetOrder. Its status, arrival, departure and duration change
// only through ApplyStatus, which the status ledger calls in the same transaction
// that appends the ledger entry.
package point
