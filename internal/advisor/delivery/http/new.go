package http

import (
	"github.com/gin-gonic/gin"

	"elder-advice-agent/internal/advisor"
	pkgLog "elder-advice-agent/pkg/log"
)

// Handler exposes the advisor over HTTP.
type Handler interface {
	Query(c *gin.Context)
	Agent(c *gin.Context)
}

type handler struct {
	l  pkgLog.Logger
	uc advisor.UseCase
}

// New creates the advisor HTTP handler.
func New(l pkgLog.Logger, uc advisor.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
