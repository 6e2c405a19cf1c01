package http

import "calendar-pro/internal/preference"

type themeResp struct {
	Theme string `json:"theme"`
}

func (h *handler) newThemeResp(out preference.ThemeOutput) themeResp {
	return themeResp{Theme: string(out.Theme)}
}

type welcomeResp struct {
	FirstVisit bool   `json:"first_visit"`
	Message    string `json:"message,omitempty"`
}
