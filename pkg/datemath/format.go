package datemath

import (
	"fmt"
	"time"
)

// FormatEventDate renders an event's day and optional time for display,
// e.g. "Fri, Mar 1" or "Fri, Mar 1 at 2:30 PM". An unparseable key is
// returned unchanged.
func FormatEventDate(key, clock string) string {
	t, err := time.Parse(KeyLayout, key)
	if err != nil {
		return key
	}
	out := t.Format("Mon, Jan 2")
	if clock == "" {
		return out
	}
	h, m, err := ParseClock(clock)
	if err != nil {
		return out
	}
	at := time.Date(2000, 1, 1, h, m, 0, 0, time.UTC)
	return fmt.Sprintf("%s at %s", out, at.Format("3:04 PM"))
}

// MonthTitle renders "March 2024".
func MonthTitle(year int, month time.Month) string {
	return fmt.Sprintf("%s %d", month.String(), year)
}

// LongDate renders "Friday, March 1, 2024".
func LongDate(t time.Time) string {
	return t.Format("Monday, January 2, 2006")
}
