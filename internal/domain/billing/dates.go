package billing

import (
	"strconv"
	"strings"
	"time"
)

// ParseFlexibleDate parses the two date shapes accepted at the service
// boundary: the user-facing DD/MM/YYYY form and system-facing ISO
// YYYY-MM-DD (optionally followed by a T time portion, which is discarded).
//
// The slash form is tried first; on failure the value is re-read as ISO.
// Zero day/month/year components are rejected, and so are out-of-range ones
// (month outside 1..12, day beyond the month's length). The result is
// normalized to local noon so that later year/month comparisons cannot drift
// across a day boundary.
//
// A false ok means the input is not a date in either shape; callers treat
// that as invalid user input, never as a system fault.
func ParseFlexibleDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}

	if parts := strings.Split(value, "/"); len(parts) == 3 {
		if d, ok := buildDate(parts[2], parts[1], parts[0]); ok {
			return d, true
		}
	}

	datePart, _, _ := strings.Cut(value, "T")
	if parts := strings.Split(datePart, "-"); len(parts) == 3 {
		if d, ok := buildDate(parts[0], parts[1], parts[2]); ok {
			return d, true
		}
	}

	return time.Time{}, false
}

func buildDate(yearStr, monthStr, dayStr string) (time.Time, bool) {
	year, errY := strconv.Atoi(strings.TrimSpace(yearStr))
	month, errM := strconv.Atoi(strings.TrimSpace(monthStr))
	day, errD := strconv.Atoi(strings.TrimSpace(dayStr))
	if errY != nil || errM != nil || errD != nil {
		return time.Time{}, false
	}
	if year <= 0 || month <= 0 || day <= 0 {
		return time.Time{}, false
	}
	if month > 12 || day > DaysInMonth(year, time.Month(month)) {
		return time.Time{}, false
	}
	return AtNoon(year, time.Month(month), day), true
}

// AtNoon builds a local-noon instant for the given calendar day.
func AtNoon(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 12, 0, 0, 0, time.Local)
}

// DaysInMonth returns the number of days in the given month.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 12, 0, 0, 0, time.UTC).Day()
}

// SameBucket reports whether two instants fall in the same calendar
// year/month pair.
func SameBucket(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}
