package http

import (
	"calendar-pro/internal/notify"
	"calendar-pro/pkg/log"
)

type handler struct {
	l        log.Logger
	notifier notify.Notifier
}

// New creates a new HTTP handler exposing live notifications.
func New(l log.Logger, notifier notify.Notifier) *handler {
	return &handler{l: l, notifier: notifier}
}
