// Package plan contains the RoutePlan aggregate: one vehicle's worklist for one
// calendar date.
//
// A plan owns its points and loadings by reference only. The core never mutates
// a plan except for its lifecycle and its start/end window, which are derived
// from the progress of its points and loadings.
//
// Lifecycle transitions:
//
//	Planned ──> InProgress ──> Completed
//
// Completed is final.
package plan
