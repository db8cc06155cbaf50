// Package quota implements a trailing-window event counter, used for rules of
// the form "at most N qualifying events within the last D days".
package quota

import "time"

// Window is a rolling quota: Limit events within the trailing Span.
type Window struct {
	Limit int
	Span  time.Duration
}

// CountRecent returns how many of the given event times fall inside the
// trailing window ending at now.
func (w Window) CountRecent(now time.Time, events []time.Time) int {
	cutoff := now.Add(-w.Span)
	n := 0
	for _, ts := range events {
		if ts.After(cutoff) && !ts.After(now) {
			n++
		}
	}
	return n
}

// Allows reports whether one more event may occur at now given the history.
func (w Window) Allows(now time.Time, events []time.Time) bool {
	return w.CountRecent(now, events) < w.Limit
}
