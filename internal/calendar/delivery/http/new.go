package http

import (
	"calendar-pro/internal/calendar"
	"calendar-pro/pkg/log"
)

type handler struct {
	l  log.Logger
	uc calendar.UseCase
}

// New creates a new HTTP handler for the calendar view.
func New(l log.Logger, uc calendar.UseCase) *handler {
	return &handler{l: l, uc: uc}
}
