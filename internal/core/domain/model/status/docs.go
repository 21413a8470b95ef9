// Package status defines the canonical status vocabulary shared by route points and
// loadings, and binds each value to the entity kind that accepted it.
//
// Route points recognize planned, en_route, arrived, completed and skipped.
// Loadings recognize the whole vocabulary, including loading and loading_completed.
// A Tagged value can only be obtained through a kind-aware constructor, so a
// loading-only status can never reach a route point.
//
// Which status may follow which is decided by a TransitionPolicy. Permissive
// accepts every transition; Monotonic only lets a lifecycle move forward.
package status
