package event

import "calendar-pro/internal/model"

// --- UseCase Inputs ---

type CreateInput struct {
	Title       string
	Date        string // date key or a phrase such as "tomorrow"
	Time        string
	Description string
	Category    string
}

type ListInput struct {
	Date string // empty lists every event
}

type UpcomingInput struct {
	Days int // negative falls back to the configured window
}

type SearchInput struct {
	Query string
}

// --- UseCase Outputs ---

type CreateOutput struct {
	Event model.Event
}

type ListOutput struct {
	Events []model.Event
}

// UpcomingItem pairs an event with its display label ("Fri, Mar 1 at 2:30 PM").
type UpcomingItem struct {
	Event model.Event
	When  string
}

type UpcomingOutput struct {
	Items []UpcomingItem
	Days  int
}

type SearchOutput struct {
	Events []model.Event
	Dates  []string // distinct dates of the matches, first-seen order
}
