package usecase

import (
	"context"

	"calendar-pro/internal/event"
	"calendar-pro/pkg/datemath"
)

// List returns every event, or only the events of input.Date when set.
func (uc *implUseCase) List(ctx context.Context, input event.ListInput) (event.ListOutput, error) {
	events := uc.repo.Events()
	if input.Date == "" {
		return event.ListOutput{Events: events}, nil
	}
	if !datemath.ValidKey(input.Date) {
		return event.ListOutput{}, event.ErrInvalidDate
	}
	return event.ListOutput{Events: event.EventsForDate(events, input.Date)}, nil
}

// Upcoming returns the events of the next input.Days days with display labels.
func (uc *implUseCase) Upcoming(ctx context.Context, input event.UpcomingInput) (event.UpcomingOutput, error) {
	days := input.Days
	if days < 0 {
		days = uc.upcomingDays
	}

	today := uc.dateMath.Today(uc.repo.Now())
	events := event.UpcomingEvents(uc.repo.Events(), today, days)

	items := make([]event.UpcomingItem, len(events))
	for i, e := range events {
		items[i] = event.UpcomingItem{Event: e, When: datemath.FormatEventDate(e.Date, e.Time)}
	}
	return event.UpcomingOutput{Items: items, Days: days}, nil
}

// Search matches events by title or description.
func (uc *implUseCase) Search(ctx context.Context, input event.SearchInput) (event.SearchOutput, error) {
	return event.Search(uc.repo.Events(), input.Query), nil
}
