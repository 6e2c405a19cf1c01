package usecase

import (
	"calendar-pro/internal/calendar"
	"calendar-pro/internal/calendar/repository"
	"calendar-pro/internal/notify"
	"calendar-pro/pkg/datemath"
	pkgLog "calendar-pro/pkg/log"
)

const defaultMaxVisible = 2

type implUseCase struct {
	l          pkgLog.Logger
	repo       repository.Repository
	notifier   notify.Notifier
	dateMath   *datemath.Parser
	maxVisible int
}

var _ calendar.UseCase = (*implUseCase)(nil)

// New creates the calendar UseCase. maxVisible caps the events listed in
// one day cell; the rest are reported as overflow.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	notifier notify.Notifier,
	dateMath *datemath.Parser,
	maxVisible int,
) *implUseCase {
	if maxVisible <= 0 {
		maxVisible = defaultMaxVisible
	}
	return &implUseCase{
		l:          l,
		repo:       repo,
		notifier:   notifier,
		dateMath:   dateMath,
		maxVisible: maxVisible,
	}
}
