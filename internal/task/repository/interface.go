package repository

import (
	"context"
	"time"

	"calendar-pro/internal/model"
)

// Repository is the task collection of the application store.
type Repository interface {
	Tasks() []model.Task
	AddTask(ctx context.Context, t model.Task) model.Task
	ToggleTask(ctx context.Context, id string) (model.Task, error)
	DeleteTask(ctx context.Context, id string) error
	Now() time.Time
}
