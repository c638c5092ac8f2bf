package checkin

import (
	"github.com/gin-gonic/gin"

	pkgLog "elder-advice-agent/pkg/log"
)

// Handler exposes check-in operations over HTTP.
type Handler interface {
	SetPrefs(c *gin.Context)
	Prompt(c *gin.Context)
	Response(c *gin.Context)
	Status(c *gin.Context)
	Escalations(c *gin.Context)
}

type handler struct {
	l   pkgLog.Logger
	svc *Service
}

// NewHandler creates the check-in HTTP handler.
func NewHandler(l pkgLog.Logger, svc *Service) Handler {
	return &handler{
		l:   l,
		svc: svc,
	}
}
