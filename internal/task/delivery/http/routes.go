package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps HTTP verbs and paths to handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	tasks := rg.Group("/tasks")
	{
		tasks.GET("", h.List)
		tasks.POST("", h.Create)
		tasks.GET("/pending", h.Pending)
		tasks.PATCH("/:id/toggle", h.Toggle)
		tasks.DELETE("/:id", h.Delete)
	}
}
