package repository

import (
	"context"

	"calendar-pro/internal/model"
)

type Repository interface {
	Theme() model.Theme
	ToggleTheme(ctx context.Context) model.Theme
	MarkVisited(ctx context.Context) bool
}
