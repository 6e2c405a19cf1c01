package http

import (
	"calendar-pro/internal/preference"
	"calendar-pro/pkg/log"
)

type handler struct {
	l  log.Logger
	uc preference.UseCase
}

func New(l log.Logger, uc preference.UseCase) *handler {
	return &handler{l: l, uc: uc}
}
