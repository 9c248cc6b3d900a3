// utils/dates.go
package utils

import (
	"fmt"
	"time"
)

const (
	// DateLayout is the wire format for appointment dates.
	DateLayout = "2006-01-02"
	// TimeOfDayLayout is the wire format for appointment start/end times.
	TimeOfDayLayout = "15:04"
)

func BeginningOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

func DaysBetween(start, end time.Time) int {
	start = BeginningOfDay(start)
	end = BeginningOfDay(end)
	return int(end.Sub(start).Hours() / 24)
}

// ParseTimeOfDay parses an "HH:MM" clock value onto a fixed anchor date so
// minute arithmetic rolls hours correctly. "HH:MM:SS" is accepted too since
// time columns scan back with seconds.
func ParseTimeOfDay(value string) (time.Time, error) {
	if t, err := time.Parse(TimeOfDayLayout, value); err == nil {
		return anchorTimeOfDay(t), nil
	}
	t, err := time.Parse("15:04:05", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time of day %q: expected HH:MM", value)
	}
	return anchorTimeOfDay(t), nil
}

// FormatTimeOfDay renders a time-of-day back to "HH:MM".
func FormatTimeOfDay(t time.Time) string {
	return t.Format(TimeOfDayLayout)
}

// Arbitrary fixed date; only the clock component of the result matters.
func anchorTimeOfDay(t time.Time) time.Time {
	return time.Date(2000, time.January, 1, t.Hour(), t.Minute(), t.Second(), 0, time.UTC)
}
