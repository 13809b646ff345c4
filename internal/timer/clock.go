package timer

import "time"

// Clock provides the current time. Tests substitute a FixedClock.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the local wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// FixedClock always returns At.
type FixedClock struct {
	At time.Time
}

func (c *FixedClock) Now() time.Time {
	return c.At
}

// Advance moves the clock forward by d.
func (c *FixedClock) Advance(d time.Duration) {
	c.At = c.At.Add(d)
}

// FormatHHMM renders t as local "HH:MM".
func FormatHHMM(t time.Time) string {
	return t.Local().Format("15:04")
}
