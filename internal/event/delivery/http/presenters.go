package http

import (
	"calendar-pro/internal/event"
	"calendar-pro/internal/model"
)

// --- Request DTOs ---

type createReq struct {
	Title       string `json:"title"       binding:"required,max=255"`
	Date        string `json:"date"        binding:"required"`
	Time        string `json:"time"`
	Description string `json:"description" binding:"max=2000"`
	Category    string `json:"category"`
}

func (r createReq) toInput() event.CreateInput {
	return event.CreateInput{
		Title:       r.Title,
		Date:        r.Date,
		Time:        r.Time,
		Description: r.Description,
		Category:    r.Category,
	}
}

type listReq struct {
	Date string `form:"date"`
}

type upcomingReq struct {
	Days *int `form:"days"`
}

func (r upcomingReq) toInput() event.UpcomingInput {
	if r.Days == nil {
		return event.UpcomingInput{Days: -1}
	}
	days := *r.Days
	if days < 0 {
		days = 0
	}
	return event.UpcomingInput{Days: days}
}

type searchReq struct {
	Query string `form:"q"`
}

// --- Response DTOs ---

type eventResp struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Date        string `json:"date"`
	Time        string `json:"time,omitempty"`
	Description string `json:"description"`
	Category    string `json:"category"`
	CreatedAt   string `json:"created_at"`
}

func newEventResp(e model.Event) eventResp {
	return eventResp{
		ID:          e.ID,
		Title:       e.Title,
		Date:        e.Date,
		Time:        e.Time,
		Description: e.Description,
		Category:    string(e.Category),
		CreatedAt:   e.CreatedAt,
	}
}

func newEventResps(events []model.Event) []eventResp {
	out := make([]eventResp, len(events))
	for i, e := range events {
		out[i] = newEventResp(e)
	}
	return out
}

type createResp struct {
	Event eventResp `json:"event"`
}

type listResp struct {
	Events []eventResp `json:"events"`
	Total  int         `json:"total"`
}

func (h *handler) newListResp(out event.ListOutput) listResp {
	return listResp{Events: newEventResps(out.Events), Total: len(out.Events)}
}

type upcomingItemResp struct {
	eventResp
	When string `json:"when"`
}

type upcomingResp struct {
	Days   int                `json:"days"`
	Events []upcomingItemResp `json:"events"`
}

func (h *handler) newUpcomingResp(out event.UpcomingOutput) upcomingResp {
	items := make([]upcomingItemResp, len(out.Items))
	for i, it := range out.Items {
		items[i] = upcomingItemResp{eventResp: newEventResp(it.Event), When: it.When}
	}
	return upcomingResp{Days: out.Days, Events: items}
}

type searchResp struct {
	Events []eventResp `json:"events"`
	Dates  []string    `json:"dates"`
}

func (h *handler) newSearchResp(out event.SearchOutput) searchResp {
	dates := out.Dates
	if dates == nil {
		dates = []string{}
	}
	return searchResp{Events: newEventResps(out.Events), Dates: dates}
}
