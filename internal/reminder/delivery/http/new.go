package http

import (
	"github.com/gin-gonic/gin"

	"elder-advice-agent/internal/reminder"
	pkgLog "elder-advice-agent/pkg/log"
)

// Handler exposes reminder operations over HTTP.
type Handler interface {
	Create(c *gin.Context)
	List(c *gin.Context)
	Confirm(c *gin.Context)
	Snooze(c *gin.Context)
	Delete(c *gin.Context)
	Due(c *gin.Context)
}

type handler struct {
	l  pkgLog.Logger
	uc reminder.UseCase
}

// New creates the reminder HTTP handler.
func New(l pkgLog.Logger, uc reminder.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
