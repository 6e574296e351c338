package kernel

import "time"

// Clock is the single source of "now" for id synthesis, display-tag fallback references
// and urgency computation.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the system time in the restaurant's location.
type SystemClock struct {
	location *time.Location
}

func NewSystemClock(location *time.Location) SystemClock {
	if location == nil {
		location = time.Local
	}
	return SystemClock{location: location}
}

func (c SystemClock) Now() time.Time {
	return time.Now().In(c.location)
}

// FixedClock always returns the same instant.
type FixedClock struct {
	At time.Time
}

func (c FixedClock) Now() time.Time {
	return c.At
}
