package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"calendar-pro/config"
	"calendar-pro/internal/app"
	"calendar-pro/internal/tui"
	"calendar-pro/pkg/log"
)

func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger. Lower levels would draw over the alt screen.
	logger := log.Init(log.ZapConfig{
		Level:    "error",
		Mode:     cfg.Logger.Mode,
		Encoding: cfg.Logger.Encoding,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Domains
	a, err := app.New(ctx, logger, cfg)
	if err != nil {
		fmt.Println("Failed to initialize application: ", err)
		os.Exit(1)
	}

	// 4. Reminder (optional)
	if a.Reminder != nil {
		a.Reminder.Start()
		defer func() {
			stopCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			a.Reminder.Stop(stopCtx)
		}()
	}

	// 5. Run
	if err := tui.Run(ctx, tui.Deps{
		Logger:     logger,
		Source:     a.Store,
		Calendar:   a.Calendar,
		Event:      a.Event,
		Task:       a.Task,
		Preference: a.Preference,
		Notifier:   a.Notifier,
	}); err != nil {
		fmt.Println("TUI stopped with error: ", err)
	}
}
