package gcalendar

import "time"

// CreateEventRequest is the input for creating a Google Calendar event.
// When AllDay is set only the date part of StartTime and EndTime is sent;
// EndTime is exclusive, so a one-day event ends on the next day.
type CreateEventRequest struct {
	CalendarID  string
	Summary     string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	AllDay      bool
	Timezone    string // IANA name, e.g. "Europe/Berlin"
}

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID          string
	Summary     string
	Description string
	HtmlLink    string
	StartTime   time.Time
	EndTime     time.Time
	AllDay      bool
}
