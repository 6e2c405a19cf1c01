package usecase

import (
	"calendar-pro/internal/notify"
	"calendar-pro/internal/task"
	"calendar-pro/internal/task/repository"
	"calendar-pro/pkg/datemath"
	pkgLog "calendar-pro/pkg/log"
)

const defaultPendingLimit = 5

type implUseCase struct {
	l            pkgLog.Logger
	repo         repository.Repository
	notifier     notify.Notifier
	dateMath     *datemath.Parser
	pendingLimit int
}

var _ task.UseCase = (*implUseCase)(nil)

// New creates a new task UseCase instance.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	notifier notify.Notifier,
	dateMath *datemath.Parser,
	pendingLimit int,
) *implUseCase {
	if pendingLimit <= 0 {
		pendingLimit = defaultPendingLimit
	}
	return &implUseCase{
		l:            l,
		repo:         repo,
		notifier:     notifier,
		dateMath:     dateMath,
		pendingLimit: pendingLimit,
	}
}
