package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrEmptyTitle      = errors.New("task title is empty")
	ErrInvalidPriority = errors.New("invalid task priority")
	ErrInvalidDueDate  = errors.New("invalid task due date")
	ErrTaskNotFound    = errors.New("task not found")
)
