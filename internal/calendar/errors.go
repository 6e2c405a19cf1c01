package calendar

import "errors"

var (
	ErrInvalidMonth  = errors.New("invalid month")
	ErrInvalidAction = errors.New("invalid navigation action")
	ErrInvalidDate   = errors.New("invalid date")
)
