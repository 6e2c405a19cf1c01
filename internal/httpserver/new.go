package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"calendar-pro/internal/backup"
	"calendar-pro/internal/calendar"
	"calendar-pro/internal/event"
	"calendar-pro/internal/notify"
	"calendar-pro/internal/preference"
	"calendar-pro/internal/task"
	"calendar-pro/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	rateLimitPerMin int

	// Domains
	calendarUC   calendar.UseCase
	eventUC      event.UseCase
	taskUC       task.UseCase
	preferenceUC preference.UseCase
	backupUC     backup.UseCase
	notifier     notify.Notifier
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger          log.Logger
	Port            int
	Mode            string
	Environment     string
	RateLimitPerMin int

	CalendarUC   calendar.UseCase
	EventUC      event.UseCase
	TaskUC       task.UseCase
	PreferenceUC preference.UseCase
	BackupUC     backup.UseCase
	Notifier     notify.Notifier
}

// New creates a new HTTPServer instance with every route mapped.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		rateLimitPerMin: cfg.RateLimitPerMin,
		calendarUC:      cfg.CalendarUC,
		eventUC:         cfg.EventUC,
		taskUC:          cfg.TaskUC,
		preferenceUC:    cfg.PreferenceUC,
		backupUC:        cfg.BackupUC,
		notifier:        cfg.Notifier,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.calendarUC == nil || srv.eventUC == nil || srv.taskUC == nil ||
		srv.preferenceUC == nil || srv.backupUC == nil || srv.notifier == nil {
		return errors.New("all domain use cases are required")
	}
	return nil
}
