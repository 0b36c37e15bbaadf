package clock

import "time"

// Clock supplies the current date to derived computations so they stay
// deterministic under test. Production code uses System; tests use Fixed.
type Clock interface {
	Now() time.Time
}

// System reads the wall clock.
type System struct{}

func (System) Now() time.Time { return time.Now() }

// Fixed always reports the same instant.
type Fixed struct {
	T time.Time
}

func (f Fixed) Now() time.Time { return f.T }

// FixedAt is a convenience constructor for a Fixed clock at the given
// UTC calendar date.
func FixedAt(year int, month time.Month, day int) Fixed {
	return Fixed{T: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}
