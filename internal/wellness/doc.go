// Package wellness holds the local state of each wellness view and the values
// derived from it. Components are plain structs mutated by their methods; a
// method whose precondition fails leaves the state untouched and reports
// false instead of returning an error.
package wellness

import "time"

// Clock returns the current time. Components take one so tests can pin it.
type Clock func() time.Time

func clockOrNow(c Clock) Clock {
	if c == nil {
		return time.Now
	}
	return c
}
