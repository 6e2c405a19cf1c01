package repository

import (
	"time"

	"calendar-pro/internal/model"
)

// Repository is the read side of the store plus the view state.
type Repository interface {
	Events() []model.Event
	Tasks() []model.Task
	View() model.View
	SetView(v model.View)
	Now() time.Time
}
