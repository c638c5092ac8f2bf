package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"elder-advice-agent/internal/model"
)

// processQueryRequest binds and validates the query payload. It writes
// the error response itself so handlers can return on failure.
func (h *handler) processQueryRequest(c *gin.Context) (QueryRequest, model.Scope, error) {
	var req QueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "invalid request", "details": err.Error()})
		return QueryRequest{}, model.Scope{}, err
	}

	if req.SessionID == "" {
		err := errors.New("sessionId is required")
		c.JSON(400, gin.H{"error": err.Error()})
		return QueryRequest{}, model.Scope{}, err
	}

	return req, model.Scope{SessionID: req.SessionID}, nil
}
