package usecase

import (
	"calendar-pro/internal/backup"
	"calendar-pro/internal/backup/repository"
	"calendar-pro/internal/notify"
	"calendar-pro/pkg/datemath"
	"calendar-pro/pkg/gcalendar"
	pkgLog "calendar-pro/pkg/log"
)

const defaultWindowDays = 7

// Options configures the backup use case.
type Options struct {
	// Publisher is nil when Google Calendar is not configured.
	Publisher  gcalendar.Inserter
	CalendarID string
	WindowDays int
}

type implUseCase struct {
	l          pkgLog.Logger
	repo       repository.Repository
	notifier   notify.Notifier
	dateMath   *datemath.Parser
	publisher  gcalendar.Inserter
	calendarID string
	windowDays int
}

var _ backup.UseCase = (*implUseCase)(nil)

// New creates a new backup UseCase.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	notifier notify.Notifier,
	dateMath *datemath.Parser,
	opt Options,
) *implUseCase {
	if opt.WindowDays <= 0 {
		opt.WindowDays = defaultWindowDays
	}
	if opt.CalendarID == "" {
		opt.CalendarID = "primary"
	}
	return &implUseCase{
		l:          l,
		repo:       repo,
		notifier:   notifier,
		dateMath:   dateMath,
		publisher:  opt.Publisher,
		calendarID: opt.CalendarID,
		windowDays: opt.WindowDays,
	}
}
