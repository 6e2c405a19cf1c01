package http

import (
	"net/http"

	"calendar-pro/internal/task"
	pkgErrors "calendar-pro/pkg/errors"
)

func (h *handler) mapError(err error) error {
	switch err {
	case task.ErrEmptyTitle, task.ErrInvalidPriority, task.ErrInvalidDueDate:
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case task.ErrTaskNotFound:
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
