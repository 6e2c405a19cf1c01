package event

import "errors"

var (
	ErrEmptyTitle      = errors.New("event title is empty")
	ErrInvalidDate     = errors.New("invalid event date")
	ErrInvalidTime     = errors.New("invalid event time")
	ErrInvalidCategory = errors.New("invalid event category")
	ErrEventNotFound   = errors.New("event not found")
)
