package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"elder-advice-agent/internal/advisor"
	pkgResponse "elder-advice-agent/pkg/response"
)

// errAgentUnavailable masks internal failures on the supervisor route.
var errAgentUnavailable = errors.New("elder advice agent is temporarily unavailable")

// mapError translates use case errors to HTTP responses. Anything not
// recognized is an internal error and never leaks its message.
func (h *handler) mapError(c *gin.Context, err error) {
	ctx := c.Request.Context()

	switch {
	case errors.Is(err, advisor.ErrEmptyQuery):
		pkgResponse.Error(c, err, nil)
	default:
		h.l.Errorf(ctx, "advisor.http: %v", err)
		pkgResponse.InternalError(c, err)
	}
}
