package task

import "calendar-pro/internal/model"

// CreateInput is the input for creating a task.
type CreateInput struct {
	Title    string
	Priority string
	DueDate  string // date key, a phrase such as "next friday", or ""
}

type CreateOutput struct {
	Task model.Task
}

type ListOutput struct {
	Tasks []model.Task
}

// PendingOutput is the sidebar list plus the number of incomplete tasks
// that did not fit.
type PendingOutput struct {
	Tasks     []model.Task
	Remaining int
}

type ToggleOutput struct {
	Task model.Task
}
