package backup

import "errors"

var (
	ErrEmptyFile            = errors.New("import file is empty")
	ErrMalformedBackup      = errors.New("malformed backup file")
	ErrMalformedCalendar    = errors.New("malformed iCalendar file")
	ErrPublisherUnavailable = errors.New("google calendar publishing is not configured")
)
