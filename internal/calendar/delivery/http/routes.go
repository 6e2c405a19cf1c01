package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps HTTP verbs and paths to handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	cal := rg.Group("/calendar")
	{
		cal.GET("/month", h.Month)
		cal.POST("/navigate", h.Navigate)
		cal.GET("/stats", h.Stats)
	}
}
