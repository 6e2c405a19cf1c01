package usecase

import (
	"calendar-pro/internal/event"
	"calendar-pro/internal/event/repository"
	"calendar-pro/internal/notify"
	"calendar-pro/pkg/datemath"
	pkgLog "calendar-pro/pkg/log"
)

const defaultUpcomingDays = 7

type implUseCase struct {
	l            pkgLog.Logger
	repo         repository.Repository
	notifier     notify.Notifier
	dateMath     *datemath.Parser
	upcomingDays int
}

var _ event.UseCase = (*implUseCase)(nil)

// New creates a new event UseCase. upcomingDays is the default window
// for Upcoming.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	notifier notify.Notifier,
	dateMath *datemath.Parser,
	upcomingDays int,
) *implUseCase {
	if upcomingDays < 0 {
		upcomingDays = defaultUpcomingDays
	}
	return &implUseCase{
		l:            l,
		repo:         repo,
		notifier:     notifier,
		dateMath:     dateMath,
		upcomingDays: upcomingDays,
	}
}
