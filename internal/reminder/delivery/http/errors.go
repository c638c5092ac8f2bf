package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"elder-advice-agent/internal/reminder"
	pkgResponse "elder-advice-agent/pkg/response"
)

func (h *handler) mapError(c *gin.Context, err error) {
	ctx := c.Request.Context()

	switch {
	case errors.Is(err, reminder.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, reminder.ErrEmptyText),
		errors.Is(err, reminder.ErrMissingWhen),
		errors.Is(err, reminder.ErrMissingUserID):
		pkgResponse.Error(c, err, nil)
	default:
		h.l.Errorf(ctx, "reminder.http: %v", err)
		pkgResponse.InternalError(c, err)
	}
}
