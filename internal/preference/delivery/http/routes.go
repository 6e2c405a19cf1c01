package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps HTTP verbs and paths to handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	prefs := rg.Group("/preferences")
	{
		prefs.GET("/theme", h.Theme)
		prefs.POST("/theme/toggle", h.ToggleTheme)
		prefs.POST("/welcome", h.Welcome)
	}
}
