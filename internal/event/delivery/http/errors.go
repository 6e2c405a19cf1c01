package http

import (
	"net/http"

	"calendar-pro/internal/event"
	pkgErrors "calendar-pro/pkg/errors"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case event.ErrEmptyTitle, event.ErrInvalidDate, event.ErrInvalidTime, event.ErrInvalidCategory:
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case event.ErrEventNotFound:
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
