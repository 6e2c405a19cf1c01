package http

import (
	"calendar-pro/internal/backup"
	"calendar-pro/pkg/log"
)

// maxImportBytes bounds uploaded backups.
const maxImportBytes = 5 << 20

type handler struct {
	l  log.Logger
	uc backup.UseCase
}

// New creates a new HTTP handler for backups.
func New(l log.Logger, uc backup.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
