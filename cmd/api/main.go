package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"calendar-pro/config"
	_ "calendar-pro/docs" // Swagger docs
	"calendar-pro/internal/app"
	"calendar-pro/internal/httpserver"
	"calendar-pro/pkg/log"
)

// @title       Calendar Pro API
// @description Month calendar with events, tasks, backups and Google Calendar publishing.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Calendar Pro...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Storage: %s (%s)", cfg.Storage.Driver, cfg.Storage.Dir)

	// 3. Domains
	a, err := app.New(ctx, logger, cfg)
	if err != nil {
		logger.Error(ctx, "Failed to initialize application: ", err)
		return
	}

	// 4. Reminder (optional)
	if a.Reminder != nil {
		a.Reminder.Start()
		logger.Infof(ctx, "Reminder scheduled: %q", cfg.Reminder.Cron)
		defer func() {
			stopCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			a.Reminder.Stop(stopCtx)
		}()
	}

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		RateLimitPerMin: cfg.HTTPServer.RateLimitPerMin,
		CalendarUC:      a.Calendar,
		EventUC:         a.Event,
		TaskUC:          a.Task,
		PreferenceUC:    a.Preference,
		BackupUC:        a.Backup,
		Notifier:        a.Notifier,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
