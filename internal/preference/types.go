package preference

import "calendar-pro/internal/model"

type ThemeOutput struct {
	Theme model.Theme
}

// WelcomeOutput reports whether this start was the first one.
type WelcomeOutput struct {
	FirstVisit bool
	Message    string
}
