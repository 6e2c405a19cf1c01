package app

import (
	"context"
	"fmt"

	"calendar-pro/config"
	"calendar-pro/internal/backup"
	backupUC "calendar-pro/internal/backup/usecase"
	"calendar-pro/internal/calendar"
	calendarUC "calendar-pro/internal/calendar/usecase"
	"calendar-pro/internal/event"
	eventUC "calendar-pro/internal/event/usecase"
	"calendar-pro/internal/notify"
	"calendar-pro/internal/preference"
	preferenceUC "calendar-pro/internal/preference/usecase"
	"calendar-pro/internal/reminder"
	"calendar-pro/internal/store"
	"calendar-pro/internal/task"
	taskUC "calendar-pro/internal/task/usecase"
	"calendar-pro/pkg/datemath"
	"calendar-pro/pkg/gcalendar"
	"calendar-pro/pkg/kvstore"
	"calendar-pro/pkg/log"
)

// App is the wired application shared by the HTTP API and the terminal UI.
type App struct {
	Store    *store.Store
	Notifier notify.Notifier
	DateMath *datemath.Parser

	Calendar   calendar.UseCase
	Event      event.UseCase
	Task       task.UseCase
	Preference preference.UseCase
	Backup     backup.UseCase

	// Reminder is nil unless reminder.enabled is set.
	Reminder *reminder.Scheduler
}

// New builds storage, loads the persisted state and wires every use case.
// Google Calendar is optional: a broken credentials file only disables publishing.
func New(ctx context.Context, l log.Logger, cfg *config.Config) (*App, error) {
	dateMath, err := datemath.NewParser(cfg.Calendar.Timezone)
	if err != nil {
		return nil, err
	}

	storage, err := newStorage(cfg.Storage)
	if err != nil {
		return nil, err
	}

	s := store.New(storage, l, store.Options{Namespace: cfg.Storage.Namespace})
	s.Load(ctx)

	notifier := notify.New(l, notify.Options{TTL: cfg.Notify.TTL, Capacity: cfg.Notify.Capacity})

	var publisher gcalendar.Inserter
	if cfg.GoogleCalendar.CredentialsPath != "" {
		client, err := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if err != nil {
			l.Warnf(ctx, "Google Calendar not available (optional): %v", err)
			l.Warn(ctx, "→ Run `go run scripts/gcal-auth/main.go` to generate token.json")
		} else {
			publisher = client
			l.Info(ctx, "Google Calendar initialized")
		}
	}

	a := &App{
		Store:      s,
		Notifier:   notifier,
		DateMath:   dateMath,
		Calendar:   calendarUC.New(l, s, notifier, dateMath, cfg.Calendar.MaxVisibleEvents),
		Event:      eventUC.New(l, s, notifier, dateMath, cfg.Calendar.UpcomingDays),
		Task:       taskUC.New(l, s, notifier, dateMath, cfg.Calendar.PendingTaskLimit),
		Preference: preferenceUC.New(l, s, notifier),
	}
	a.Backup = backupUC.New(l, s, notifier, dateMath, backupUC.Options{
		Publisher:  publisher,
		CalendarID: cfg.GoogleCalendar.CalendarID,
		WindowDays: cfg.Calendar.UpcomingDays,
	})

	if cfg.Reminder.Enabled {
		a.Reminder, err = reminder.New(l, a.Event, notifier, reminder.Options{
			Spec:       cfg.Reminder.Cron,
			WindowDays: cfg.Reminder.WindowDays,
			Location:   dateMath.Location(),
		})
		if err != nil {
			return nil, err
		}
	}

	return a, nil
}

func newStorage(cfg config.StorageConfig) (kvstore.Storage, error) {
	switch cfg.Driver {
	case config.StorageDriverMemory:
		return kvstore.NewMemory(), nil
	case config.StorageDriverFile:
		f, err := kvstore.NewFile(cfg.Dir)
		if err != nil {
			return nil, err
		}
		return kvstore.NewCached(f, cfg.CacheSize)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}
