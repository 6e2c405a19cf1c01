package http

import (
	"github.com/gin-gonic/gin"

	pkgErrors "calendar-pro/pkg/errors"
)

func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	err := c.ShouldBindQuery(&req)
	return req, err
}

func (h *handler) processUpcomingReq(c *gin.Context) (upcomingReq, error) {
	var req upcomingReq
	err := c.ShouldBindQuery(&req)
	return req, err
}

func (h *handler) processSearchReq(c *gin.Context) (searchReq, error) {
	var req searchReq
	err := c.ShouldBindQuery(&req)
	return req, err
}

func (h *handler) processIDParam(c *gin.Context) (string, error) {
	id := c.Param("id")
	if id == "" {
		return "", pkgErrors.ErrBadRequest
	}
	return id, nil
}
