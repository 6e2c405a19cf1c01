package model

// Priority of a task.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// DefaultPriority applies when the caller leaves the priority empty.
const DefaultPriority = PriorityMedium

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Task is a to-do item. Completion is the only field mutated after creation.
type Task struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Priority  Priority `json:"priority"`
	DueDate   string   `json:"dueDate"` // YYYY-MM-DD or ""
	Completed bool     `json:"completed"`
	CreatedAt string   `json:"createdAt"`
}
