package datemath

import (
	"fmt"
	"time"
)

// Clock supplies the current time in a fixed location.
type Clock struct {
	location *time.Location
	now      func() time.Time
}

// NewClock creates a clock for the given IANA timezone string.
// e.g. "Asia/Ho_Chi_Minh". An empty timezone means the host's local zone.
func NewClock(timezone string) (*Clock, error) {
	if timezone == "" {
		return &Clock{location: time.Local, now: time.Now}, nil
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Clock{location: loc, now: time.Now}, nil
}

// SystemClock returns a clock in the host's local zone.
func SystemClock() *Clock {
	return &Clock{location: time.Local, now: time.Now}
}

// FixedClock always reports t. Used by tests and batch replays.
func FixedClock(t time.Time) *Clock {
	return &Clock{location: t.Location(), now: func() time.Time { return t }}
}

// Now returns the current time in the clock's location.
func (c *Clock) Now() time.Time {
	return c.now().In(c.location)
}

// Location returns the clock's location.
func (c *Clock) Location() *time.Location {
	return c.location
}
