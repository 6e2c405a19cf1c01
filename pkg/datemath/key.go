package datemath

import (
	"errors"
	"fmt"
	"time"
)

// KeyLayout is the layout of a date key: one local calendar day.
const KeyLayout = "2006-01-02"

var (
	ErrInvalidKey    = errors.New("invalid date key")
	ErrInvalidClock  = errors.New("invalid time of day")
	ErrUnknownPhrase = errors.New("unknown date phrase")
)

// Key formats t as a date key using t's own location.
func Key(t time.Time) string {
	return t.Format(KeyLayout)
}

// KeyOf builds the date key for a calendar day. Out-of-range values are
// normalized the way time.Date does (month 13 is January of next year).
func KeyOf(year int, month time.Month, day int) string {
	return Key(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// ParseKey parses a date key into midnight of that day in loc.
func ParseKey(key string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	t, err := time.ParseInLocation(KeyLayout, key, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return t, nil
}

// ValidKey reports whether key is a well-formed date key.
func ValidKey(key string) bool {
	_, err := time.Parse(KeyLayout, key)
	return err == nil
}

// AddDays shifts a date key by n calendar days.
func AddDays(key string, n int) (string, error) {
	t, err := time.Parse(KeyLayout, key)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return Key(t.AddDate(0, 0, n)), nil
}

// DaysIn returns the number of days in the given month.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// FirstWeekday returns the weekday of the 1st of the month (Sunday == 0).
func FirstWeekday(year int, month time.Month) time.Weekday {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Weekday()
}

// AddMonths moves (year, month) by delta months across year boundaries.
func AddMonths(year int, month time.Month, delta int) (int, time.Month) {
	t := time.Date(year, month+time.Month(delta), 1, 0, 0, 0, 0, time.UTC)
	return t.Year(), t.Month()
}

// ParseClock parses an "HH:MM" time of day.
func ParseClock(clock string) (hour, minute int, err error) {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidClock, clock)
	}
	return t.Hour(), t.Minute(), nil
}

// FormatClock renders a time of day as zero-padded "HH:MM".
func FormatClock(hour, minute int) string {
	return fmt.Sprintf("%02d:%02d", hour, minute)
}
