package repository

import (
	"context"
	"time"

	"calendar-pro/internal/model"
)

// Repository is the event collection of the application store.
type Repository interface {
	Events() []model.Event
	AddEvent(ctx context.Context, e model.Event) model.Event
	DeleteEvent(ctx context.Context, id string) error
	Now() time.Time
}
