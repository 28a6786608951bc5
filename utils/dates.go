package utils

import (
	"time"
)

// DateLayout is the calendar date key used across the API: YYYY-MM-DD.
const DateLayout = "2006-01-02"

// FormatDate renders the calendar date of t, ignoring its time of day.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate parses a YYYY-MM-DD key as a UTC midnight.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// Clock returns the current time; services take one so tests can pin "today".
type Clock func() time.Time

// FixedClock always reports t.
func FixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}
