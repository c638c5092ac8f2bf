package http

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"elder-advice-agent/internal/advisor"
	"elder-advice-agent/internal/model"
)

// Query answers a single free-text query within a session.
// @Summary Answer a query
// @Description Classify a query, apply the safety gate, and return exactly one response
// @Tags advisor
// @Accept json
// @Produce json
// @Param request body QueryRequest true "Query"
// @Success 200 {object} QueryResponse
// @Router /api/elder-advice-agent/query [post]
func (h *handler) Query(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processQueryRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "advisor.http.Query: invalid request: %v", err)
		return
	}

	out, err := h.uc.Answer(ctx, sc, advisor.AnswerInput{Text: req.Text})
	if err != nil {
		h.mapError(c, err)
		return
	}

	c.JSON(200, newQueryResponse(out))
}

// Agent is the supervisor entrypoint: it receives the whole message list
// and answers the most recent user message. An empty list yields the
// greeting.
// @Summary Supervisor entrypoint
// @Description Answer the last user message of a supervisor-style conversation
// @Tags advisor
// @Accept json
// @Produce json
// @Param request body AgentRequest true "Conversation"
// @Success 200 {object} AgentResponse
// @Router /api/elder-advice-agent [post]
func (h *handler) Agent(c *gin.Context) {
	ctx := c.Request.Context()

	var req AgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "advisor.http.Agent: invalid request: %v", err)
		c.JSON(400, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	sc := model.Scope{SessionID: req.SessionID}
	if sc.SessionID == "" {
		sc.SessionID = uuid.NewString()
	}

	text := lastUserMessage(req.Messages)
	if strings.TrimSpace(text) == "" {
		c.JSON(200, newAgentGreeting(h.uc.Greeting()))
		return
	}

	out, err := h.uc.Answer(ctx, sc, advisor.AnswerInput{Text: text})
	if err != nil {
		// Supervisor protocol: always a well-formed 200 envelope.
		if !errors.Is(err, advisor.ErrEmptyQuery) {
			h.l.Errorf(ctx, "advisor.http.Agent: %v", err)
			err = errAgentUnavailable
		}
		c.JSON(200, newAgentError(err))
		return
	}

	c.JSON(200, newAgentResponse(out))
}

// lastUserMessage walks the list backwards for the newest user turn.
func lastUserMessage(messages []AgentMessage) string {
	for i := len(messages) - 1; i >= 0; i-- {
		if strings.EqualFold(messages[i].Role, "user") {
			return messages[i].Content
		}
	}
	return ""
}
