package model

import "time"

// Theme is the UI color scheme.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ParseTheme maps unknown values to ThemeLight.
func ParseTheme(s string) Theme {
	if Theme(s) == ThemeDark {
		return ThemeDark
	}
	return ThemeLight
}

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// View is the visible month plus the optional selected day.
// It lives in memory only.
type View struct {
	Year         int        `json:"year"`
	Month        time.Month `json:"month"`
	SelectedDate string     `json:"selectedDate,omitempty"`
}

// ViewOf returns the view for the month containing t.
func ViewOf(t time.Time) View {
	return View{Year: t.Year(), Month: t.Month()}
}
