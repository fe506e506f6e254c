package picker

import "time"

// Clock abstracts time.Now() to allow deterministic testing.
// The picker uses it to seed the selection when no initial instant is given.
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the standard time package.
type RealClock struct{}

// Now returns the current local time.
func (RealClock) Now() time.Time {
	return time.Now()
}
