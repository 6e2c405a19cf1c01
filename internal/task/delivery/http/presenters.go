package http

import (
	"calendar-pro/internal/model"
	"calendar-pro/internal/task"
)

type createReq struct {
	Title    string `json:"title"    binding:"required,max=255"`
	Priority string `json:"priority" binding:"omitempty,oneof=low medium high LOW MEDIUM HIGH"`
	DueDate  string `json:"due_date"`
}

func (r createReq) toInput() task.CreateInput {
	return task.CreateInput{
		Title:    r.Title,
		Priority: r.Priority,
		DueDate:  r.DueDate,
	}
}

type taskResp struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Priority  string `json:"priority"`
	DueDate   string `json:"due_date,omitempty"`
	Completed bool   `json:"completed"`
	CreatedAt string `json:"created_at"`
}

func newTaskResp(t model.Task) taskResp {
	return taskResp{
		ID:        t.ID,
		Title:     t.Title,
		Priority:  string(t.Priority),
		DueDate:   t.DueDate,
		Completed: t.Completed,
		CreatedAt: t.CreatedAt,
	}
}

func newTaskResps(tasks []model.Task) []taskResp {
	out := make([]taskResp, len(tasks))
	for i, t := range tasks {
		out[i] = newTaskResp(t)
	}
	return out
}

type taskItemResp struct {
	Task taskResp `json:"task"`
}

type listResp struct {
	Tasks []taskResp `json:"tasks"`
	Total int        `json:"total"`
}

func (h *handler) newListResp(out task.ListOutput) listResp {
	return listResp{Tasks: newTaskResps(out.Tasks), Total: len(out.Tasks)}
}

type pendingResp struct {
	Tasks     []taskResp `json:"tasks"`
	Remaining int        `json:"remaining"`
}

func (h *handler) newPendingResp(out task.PendingOutput) pendingResp {
	return pendingResp{Tasks: newTaskResps(out.Tasks), Remaining: out.Remaining}
}
