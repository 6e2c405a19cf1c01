package event

import (
	"slices"
	"strings"

	"calendar-pro/internal/model"
	"calendar-pro/pkg/datemath"
)

// EventsForDate returns the events whose date equals key, in insertion order.
func EventsForDate(events []model.Event, key string) []model.Event {
	var out []model.Event
	for _, e := range events {
		if e.Date == key {
			out = append(out, e)
		}
	}
	return out
}

// UpcomingEvents returns events dated within [today, today+windowDays],
// sorted by date. Events on the same day keep insertion order and
// events with malformed dates are skipped.
func UpcomingEvents(events []model.Event, today string, windowDays int) []model.Event {
	if windowDays < 0 {
		windowDays = 0
	}
	end, err := datemath.AddDays(today, windowDays)
	if err != nil {
		return nil
	}

	var out []model.Event
	for _, e := range events {
		if !datemath.ValidKey(e.Date) {
			continue
		}
		// Date keys are zero padded so lexical order is calendar order.
		if e.Date >= today && e.Date <= end {
			out = append(out, e)
		}
	}
	slices.SortStableFunc(out, func(a, b model.Event) int {
		return strings.Compare(a.Date, b.Date)
	})
	return out
}

// Search matches query case-insensitively against title and description.
// A blank query matches nothing.
func Search(events []model.Event, query string) SearchOutput {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return SearchOutput{}
	}

	var out SearchOutput
	seen := make(map[string]bool)
	for _, e := range events {
		if !strings.Contains(strings.ToLower(e.Title), q) &&
			!strings.Contains(strings.ToLower(e.Description), q) {
			continue
		}
		out.Events = append(out.Events, e)
		if !seen[e.Date] {
			seen[e.Date] = true
			out.Dates = append(out.Dates, e.Date)
		}
	}
	return out
}
