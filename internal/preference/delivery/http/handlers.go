package http

import (
	"github.com/gin-gonic/gin"

	pkgErrors "calendar-pro/pkg/errors"
	"calendar-pro/pkg/response"
)

// Theme godoc
// @Summary     Current theme
// @Tags        Preferences
// @Produce     json
// @Success     200 {object} themeResp
// @Router      /api/v1/preferences/theme [GET]
func (h *handler) Theme(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Theme(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Theme: %v", err)
		response.Error(c, pkgErrors.ErrInternalServerError)
		return
	}

	response.OK(c, h.newThemeResp(output))
}

// ToggleTheme godoc
// @Summary     Toggle light/dark theme
// @Tags        Preferences
// @Produce     json
// @Success     200 {object} themeResp
// @Router      /api/v1/preferences/theme/toggle [POST]
func (h *handler) ToggleTheme(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.ToggleTheme(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.ToggleTheme: %v", err)
		response.Error(c, pkgErrors.ErrInternalServerError)
		return
	}

	response.OK(c, h.newThemeResp(output))
}

// Welcome godoc
// @Summary     Greet on first visit
// @Description Marks the app as visited. first_visit is true only once per data directory.
// @Tags        Preferences
// @Produce     json
// @Success     200 {object} welcomeResp
// @Router      /api/v1/preferences/welcome [POST]
func (h *handler) Welcome(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Welcome(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Welcome: %v", err)
		response.Error(c, pkgErrors.ErrInternalServerError)
		return
	}

	response.OK(c, welcomeResp{FirstVisit: output.FirstVisit, Message: output.Message})
}
