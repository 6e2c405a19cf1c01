package http

import (
	"errors"
	"net/http"

	"calendar-pro/internal/backup"
	pkgErrors "calendar-pro/pkg/errors"
)

var errBodyTooLarge = pkgErrors.NewHTTPError(http.StatusRequestEntityTooLarge, "import file is too large")

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, backup.ErrEmptyFile),
		errors.Is(err, backup.ErrMalformedBackup),
		errors.Is(err, backup.ErrMalformedCalendar):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, backup.ErrPublisherUnavailable):
		return pkgErrors.NewHTTPError(http.StatusServiceUnavailable, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
