package repository

import (
	"context"
	"time"

	"calendar-pro/internal/model"
)

// Repository is the bulk side of the application store.
type Repository interface {
	Events() []model.Event
	Tasks() []model.Task
	Replace(ctx context.Context, events *[]model.Event, tasks *[]model.Task)
	AppendEvents(ctx context.Context, events []model.Event) []model.Event
	Now() time.Time
}
