package kernel

import "time"

// DateOf drops the clock part of t, keeping the calendar day in t's location,
// and returns it as midnight UTC. Route plans are keyed by this value.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
