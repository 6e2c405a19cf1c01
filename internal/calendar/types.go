package calendar

import (
	"time"

	"calendar-pro/internal/model"
)

// Navigation actions.
const (
	ActionPrev   = "prev"
	ActionNext   = "next"
	ActionToday  = "today"
	ActionSelect = "select"
)

// DayCell is a grid cell annotated with its events.
type DayCell struct {
	Cell
	Events      []model.Event // at most the configured number of visible events
	Overflow    int
	HasEvents   bool
	Highlighted bool
}

// MonthInput selects the month to render. Zero Year or Month falls back to
// the current view.
type MonthInput struct {
	Year  int
	Month time.Month
	Query string
}

type MonthOutput struct {
	Year         int
	Month        time.Month
	Title        string
	SelectedDate string
	Today        string
	Cells        []DayCell
}

type NavigateInput struct {
	Action string
	Date   string // used by ActionSelect
}

type NavigateOutput struct {
	View  model.View
	Title string
}

type StatsOutput struct {
	Events         int
	Tasks          int
	Completed      int
	CompletionRate int
}
