package http

import "github.com/gin-gonic/gin"

func (h *handler) processMonthReq(c *gin.Context) (monthReq, error) {
	var req monthReq
	err := c.ShouldBindQuery(&req)
	return req, err
}

func (h *handler) processNavigateReq(c *gin.Context) (navigateReq, error) {
	var req navigateReq
	err := c.ShouldBindJSON(&req)
	return req, err
}
