package http

import (
	"time"

	"calendar-pro/internal/calendar"
)

type monthReq struct {
	Year  int    `form:"year"`
	Month int    `form:"month" binding:"omitempty,min=1,max=12"`
	Query string `form:"q"`
}

func (r monthReq) toInput() calendar.MonthInput {
	return calendar.MonthInput{Year: r.Year, Month: time.Month(r.Month), Query: r.Query}
}

type navigateReq struct {
	Action string `json:"action" binding:"required,oneof=prev next today select"`
	Date   string `json:"date"`
}

func (r navigateReq) toInput() calendar.NavigateInput {
	return calendar.NavigateInput{Action: r.Action, Date: r.Date}
}

type eventBriefResp struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Time     string `json:"time,omitempty"`
	Category string `json:"category"`
}

type cellResp struct {
	Key         string           `json:"key"`
	Day         int              `json:"day"`
	Position    string           `json:"position"`
	IsToday     bool             `json:"is_today"`
	HasEvents   bool             `json:"has_events"`
	Highlighted bool             `json:"highlighted"`
	Events      []eventBriefResp `json:"events"`
	Overflow    int              `json:"overflow"`
}

type monthResp struct {
	Year         int        `json:"year"`
	Month        int        `json:"month"`
	Title        string     `json:"title"`
	Today        string     `json:"today"`
	SelectedDate string     `json:"selected_date,omitempty"`
	Weekdays     []string   `json:"weekdays"`
	Cells        []cellResp `json:"cells"`
}

var weekdays = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

func (h *handler) newMonthResp(out calendar.MonthOutput) monthResp {
	cells := make([]cellResp, len(out.Cells))
	for i, c := range out.Cells {
		events := make([]eventBriefResp, len(c.Events))
		for j, e := range c.Events {
			events[j] = eventBriefResp{ID: e.ID, Title: e.Title, Time: e.Time, Category: string(e.Category)}
		}
		cells[i] = cellResp{
			Key:         c.Key,
			Day:         c.Day,
			Position:    string(c.Position),
			IsToday:     c.IsToday,
			HasEvents:   c.HasEvents,
			Highlighted: c.Highlighted,
			Events:      events,
			Overflow:    c.Overflow,
		}
	}
	return monthResp{
		Year:         out.Year,
		Month:        int(out.Month),
		Title:        out.Title,
		Today:        out.Today,
		SelectedDate: out.SelectedDate,
		Weekdays:     weekdays,
		Cells:        cells,
	}
}

type navigateResp struct {
	Year         int    `json:"year"`
	Month        int    `json:"month"`
	Title        string `json:"title"`
	SelectedDate string `json:"selected_date,omitempty"`
}

func (h *handler) newNavigateResp(out calendar.NavigateOutput) navigateResp {
	return navigateResp{
		Year:         out.View.Year,
		Month:        int(out.View.Month),
		Title:        out.Title,
		SelectedDate: out.View.SelectedDate,
	}
}

type statsResp struct {
	Events         int `json:"events"`
	Tasks          int `json:"tasks"`
	Completed      int `json:"completed"`
	CompletionRate int `json:"completion_rate"`
}

func (h *handler) newStatsResp(out calendar.StatsOutput) statsResp {
	return statsResp(out)
}
