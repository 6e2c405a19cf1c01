package event_test

import (
	"testing"

	"calendar-pro/internal/event"
	"calendar-pro/internal/model"
)

func ids(events []model.Event) []string {
	out := make([]string, len(events))
	for i, e := range events {
		out[i] = e.ID
	}
	return out
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestEventsForDate(t *testing.T) {
	events := []model.Event{
		{ID: "1", Date: "2024-03-01"},
		{ID: "2", Date: "2024-03-02"},
		{ID: "3", Date: "2024-03-01"},
		{ID: "4", Date: "2024-3-1"},
	}

	got := ids(event.EventsForDate(events, "2024-03-01"))
	if !equal(got, []string{"1", "3"}) {
		t.Errorf("expected [1 3], got %v", got)
	}
	if got := event.EventsForDate(events, "2024-04-01"); len(got) != 0 {
		t.Errorf("expected no events, got %v", ids(got))
	}
}

func TestUpcomingEvents(t *testing.T) {
	events := []model.Event{
		{ID: "late", Date: "2024-03-08"},
		{ID: "past", Date: "2024-02-29"},
		{ID: "today-b", Date: "2024-03-01", Time: "18:00"},
		{ID: "mid", Date: "2024-03-04"},
		{ID: "today-a", Date: "2024-03-01", Time: "08:00"},
		{ID: "beyond", Date: "2024-03-09"},
		{ID: "broken", Date: "soon"},
	}

	tests := []struct {
		name   string
		window int
		want   []string
	}{
		{name: "seven day window is inclusive", window: 7, want: []string{"today-b", "today-a", "mid", "late"}},
		{name: "zero window keeps today", window: 0, want: []string{"today-b", "today-a"}},
		{name: "negative window acts as zero", window: -3, want: []string{"today-b", "today-a"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(event.UpcomingEvents(events, "2024-03-01", tt.window))
			if !equal(got, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestUpcomingEventsAcrossYear(t *testing.T) {
	events := []model.Event{
		{ID: "jan", Date: "2025-01-02"},
		{ID: "dec", Date: "2024-12-31"},
	}
	got := ids(event.UpcomingEvents(events, "2024-12-30", 7))
	if !equal(got, []string{"dec", "jan"}) {
		t.Errorf("expected [dec jan], got %v", got)
	}
}

func TestSearch(t *testing.T) {
	events := []model.Event{
		{ID: "1", Title: "Team Meeting", Date: "2024-03-01"},
		{ID: "2", Title: "Lunch", Description: "meeting with Ana", Date: "2024-03-05"},
		{ID: "3", Title: "Gym", Date: "2024-03-01"},
		{ID: "4", Title: "Meeting notes", Date: "2024-03-01"},
	}

	out := event.Search(events, "  MEET ")
	if !equal(ids(out.Events), []string{"1", "2", "4"}) {
		t.Errorf("unexpected matches %v", ids(out.Events))
	}
	if !equal(out.Dates, []string{"2024-03-01", "2024-03-05"}) {
		t.Errorf("unexpected dates %v", out.Dates)
	}

	blank := event.Search(events, "   ")
	if len(blank.Events) != 0 || len(blank.Dates) != 0 {
		t.Error("blank query should match nothing")
	}
}
