package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps HTTP verbs and paths to handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	b := rg.Group("/backup")
	{
		b.GET("/export", h.Export)
		b.POST("/import", h.Import)
		b.GET("/export.ics", h.ExportICS)
		b.POST("/import.ics", h.ImportICS)
		b.POST("/publish", h.Publish)
	}
}
