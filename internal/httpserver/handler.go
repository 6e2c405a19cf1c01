package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	backupHTTP "calendar-pro/internal/backup/delivery/http"
	calendarHTTP "calendar-pro/internal/calendar/delivery/http"
	eventHTTP "calendar-pro/internal/event/delivery/http"
	"calendar-pro/internal/middleware"
	"calendar-pro/internal/model"
	notifyHTTP "calendar-pro/internal/notify/delivery/http"
	preferenceHTTP "calendar-pro/internal/preference/delivery/http"
	taskHTTP "calendar-pro/internal/task/delivery/http"
)

func (srv HTTPServer) mapHandlers() error {
	mw := middleware.New(srv.l, srv.rateLimitPerMin)

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(mw); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(gin.Recovery(), mw.RequestID())
	if srv.mode != gin.TestMode {
		srv.gin.Use(gin.Logger())
	}

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "HTTP mode: production, rate limit %d/min", srv.rateLimitPerMin)
	} else {
		srv.l.Infof(ctx, "HTTP mode: %s, rate limit %d/min", srv.environment, srv.rateLimitPerMin)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes under /api/v1.
func (srv HTTPServer) registerDomainRoutes(mw middleware.Middleware) error {
	ctx := context.Background()

	api := srv.gin.Group("/api/v1", mw.RateLimit())

	calendarHTTP.RegisterRoutes(api, calendarHTTP.New(srv.l, srv.calendarUC))
	eventHTTP.RegisterRoutes(api, eventHTTP.New(srv.l, srv.eventUC))
	taskHTTP.RegisterRoutes(api, taskHTTP.New(srv.l, srv.taskUC))
	preferenceHTTP.RegisterRoutes(api, preferenceHTTP.New(srv.l, srv.preferenceUC))
	backupHTTP.RegisterRoutes(api, backupHTTP.New(srv.l, srv.backupUC))
	notifyHTTP.RegisterRoutes(api, notifyHTTP.New(srv.l, srv.notifier))

	srv.l.Infof(ctx, "Domain routes registered under /api/v1")
	return nil
}
