package http

import (
	"net/http"

	"calendar-pro/internal/calendar"
	pkgErrors "calendar-pro/pkg/errors"
)

func (h *handler) mapError(err error) error {
	switch err {
	case calendar.ErrInvalidMonth, calendar.ErrInvalidAction, calendar.ErrInvalidDate:
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
