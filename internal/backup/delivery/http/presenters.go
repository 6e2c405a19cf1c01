package http

import "calendar-pro/internal/backup"

type publishReq struct {
	WindowDays int `json:"window_days" binding:"omitempty,min=0,max=366"`
}

func (r publishReq) toInput() backup.PublishInput {
	return backup.PublishInput{WindowDays: r.WindowDays}
}

type importResp struct {
	EventsReplaced bool `json:"events_replaced"`
	TasksReplaced  bool `json:"tasks_replaced"`
	Events         int  `json:"events"`
	Tasks          int  `json:"tasks"`
}

func (h *handler) newImportResp(o backup.ImportOutput) importResp {
	return importResp{
		EventsReplaced: o.EventsReplaced,
		TasksReplaced:  o.TasksReplaced,
		Events:         o.Events,
		Tasks:          o.Tasks,
	}
}

type importICSResp struct {
	Added   int `json:"added"`
	Skipped int `json:"skipped"`
}

type publishResp struct {
	Published int      `json:"published"`
	Failed    int      `json:"failed"`
	Links     []string `json:"links"`
}

func (h *handler) newPublishResp(o backup.PublishOutput) publishResp {
	links := o.Links
	if links == nil {
		links = []string{}
	}
	return publishResp{Published: o.Published, Failed: o.Failed, Links: links}
}
