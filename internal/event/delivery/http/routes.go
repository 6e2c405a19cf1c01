package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps HTTP verbs and paths to handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	events := rg.Group("/events")
	{
		events.GET("", h.List)
		events.POST("", h.Create)
		events.GET("/upcoming", h.Upcoming)
		events.GET("/search", h.Search)
		events.DELETE("/:id", h.Delete)
	}
}
