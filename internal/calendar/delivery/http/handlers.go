package http

import (
	"github.com/gin-gonic/gin"

	"calendar-pro/pkg/response"
)

// Month godoc
// @Summary     Month grid
// @Description 42 day cells with up to two events each and an overflow count. Without year/month the current view is used.
// @Tags        Calendar
// @Produce     json
// @Param       year  query int    false "Year"
// @Param       month query int    false "Month (1-12)"
// @Param       q     query string false "Search text whose matching days are highlighted"
// @Success     200 {object} monthResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/calendar/month [GET]
func (h *handler) Month(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processMonthReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Month(ctx, req.toInput())
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newMonthResp(output))
}

// Navigate godoc
// @Summary     Change the visible month
// @Description prev, next, today, or select (with date).
// @Tags        Calendar
// @Accept      json
// @Produce     json
// @Param       body body navigateReq true "Navigation"
// @Success     200 {object} navigateResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/calendar/navigate [POST]
func (h *handler) Navigate(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processNavigateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Navigate(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Navigate: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newNavigateResp(output))
}

// Stats godoc
// @Summary     Sidebar statistics
// @Tags        Calendar
// @Produce     json
// @Success     200 {object} statsResp
// @Router      /api/v1/calendar/stats [GET]
func (h *handler) Stats(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Stats(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Stats: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newStatsResp(output))
}
