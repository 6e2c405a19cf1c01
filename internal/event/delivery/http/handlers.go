package http

import (
	"github.com/gin-gonic/gin"

	"calendar-pro/internal/event"
	"calendar-pro/pkg/response"
)

// Create godoc
// @Summary     Create an event
// @Description Creates an event. date accepts YYYY-MM-DD or phrases such as "tomorrow".
// @Tags        Events
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Event data"
// @Success     201  {object} createResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Router      /api/v1/events [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, createResp{Event: newEventResp(output.Event)})
}

// List godoc
// @Summary     List events
// @Description Returns every event, or the events of one day when date is set.
// @Tags        Events
// @Produce     json
// @Param       date query string false "Date key (YYYY-MM-DD)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/events [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.List(ctx, event.ListInput{Date: req.Date})
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// Upcoming godoc
// @Summary     Upcoming events
// @Description Events from today through today+days, sorted by date.
// @Tags        Events
// @Produce     json
// @Param       days query int false "Window in days (default from config)"
// @Success     200 {object} upcomingResp
// @Router      /api/v1/events/upcoming [GET]
func (h *handler) Upcoming(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpcomingReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Upcoming(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Upcoming: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newUpcomingResp(output))
}

// Search godoc
// @Summary     Search events
// @Description Case-insensitive match on title and description.
// @Tags        Events
// @Produce     json
// @Param       q query string true "Search text"
// @Success     200 {object} searchResp
// @Router      /api/v1/events/search [GET]
func (h *handler) Search(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSearchReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Search(ctx, event.SearchInput{Query: req.Query})
	if err != nil {
		h.l.Errorf(ctx, "uc.Search: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSearchResp(output))
}

// Delete godoc
// @Summary     Delete an event
// @Tags        Events
// @Produce     json
// @Param       id path string true "Event ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/events/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.Delete(ctx, id); err != nil {
		h.l.Warnf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}
