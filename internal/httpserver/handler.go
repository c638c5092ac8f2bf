package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
)

func (srv *HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	return srv.registerDomainRoutes()
}

func (srv *HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(srv.middleware.RateLimit())
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/", srv.root)
	srv.gin.GET("/api/elder-advice-agent/health", srv.healthCheck)
}

// registerDomainRoutes registers all domain routes under the agent
// prefix.
func (srv *HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()
	api := srv.gin.Group("/api/elder-advice-agent")

	api.POST("", srv.advisorHandler.Agent)
	api.POST("/query", srv.advisorHandler.Query)
	srv.l.Infof(ctx, "advisor routes registered under /api/elder-advice-agent")

	if srv.reminderHandler != nil {
		api.POST("/reminders", srv.reminderHandler.Create)
		api.GET("/reminders/due", srv.reminderHandler.Due)
		api.GET("/reminders/:userId", srv.reminderHandler.List)
		api.POST("/reminders/:id/confirm", srv.reminderHandler.Confirm)
		api.POST("/reminders/:id/snooze", srv.reminderHandler.Snooze)
		api.DELETE("/reminders/:id", srv.reminderHandler.Delete)
		srv.l.Infof(ctx, "reminder routes registered")
	}

	if srv.checkinHandler != nil {
		api.POST("/checkin/prefs", srv.checkinHandler.SetPrefs)
		api.GET("/checkin/escalations", srv.checkinHandler.Escalations)
		api.POST("/checkin/:userId/prompt", srv.checkinHandler.Prompt)
		api.POST("/checkin/:userId/response", srv.checkinHandler.Response)
		api.GET("/checkin/:userId/status", srv.checkinHandler.Status)
		srv.l.Infof(ctx, "check-in routes registered")
	}

	if srv.calendarHandler != nil {
		api.POST("/calendar", srv.calendarHandler.Create)
		api.GET("/calendar/:userId", srv.calendarHandler.List)
		srv.l.Infof(ctx, "calendar routes registered")
	}

	if srv.auditLog != nil {
		api.GET("/audit", srv.auditEntries)
		srv.l.Infof(ctx, "audit route registered")
	}

	return nil
}
