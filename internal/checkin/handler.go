package checkin

import (
	"time"

	"github.com/gin-gonic/gin"

	pkgResponse "elder-advice-agent/pkg/response"
)

// SetPrefs stores the elder's caregiver contact and escalation window.
// @Summary Set check-in preferences
// @Tags checkin
// @Accept json
// @Produce json
// @Param request body Prefs true "Preferences"
// @Success 200 {object} response.Resp
// @Router /api/elder-advice-agent/checkin/prefs [post]
func (h *handler) SetPrefs(c *gin.Context) {
	var req Prefs
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	if err := h.svc.SetPrefs(req); err != nil {
		pkgResponse.Error(c, err, nil)
		return
	}
	pkgResponse.OK(c, gin.H{"ok": true})
}

// Prompt records that a check-in prompt was sent to the elder.
// @Summary Record a check-in prompt
// @Tags checkin
// @Produce json
// @Param userId path string true "User id"
// @Success 200 {object} response.Resp
// @Router /api/elder-advice-agent/checkin/{userId}/prompt [post]
func (h *handler) Prompt(c *gin.Context) {
	if err := h.svc.RecordPrompt(c.Param("userId"), time.Now()); err != nil {
		pkgResponse.Error(c, err, nil)
		return
	}
	pkgResponse.OK(c, gin.H{"ok": true})
}

// Response records that the elder answered a check-in.
// @Summary Record a check-in response
// @Tags checkin
// @Produce json
// @Param userId path string true "User id"
// @Success 200 {object} response.Resp
// @Router /api/elder-advice-agent/checkin/{userId}/response [post]
func (h *handler) Response(c *gin.Context) {
	if err := h.svc.RecordResponse(c.Param("userId"), time.Now()); err != nil {
		pkgResponse.Error(c, err, nil)
		return
	}
	pkgResponse.OK(c, gin.H{"ok": true})
}

// Status evaluates whether the elder's silence warrants escalation.
// @Summary Check-in status and escalation evaluation
// @Tags checkin
// @Produce json
// @Param userId path string true "User id"
// @Success 200 {object} Status
// @Router /api/elder-advice-agent/checkin/{userId}/status [get]
func (h *handler) Status(c *gin.Context) {
	status, err := h.svc.Evaluate(c.Param("userId"), time.Now())
	if err != nil {
		pkgResponse.Error(c, err, nil)
		return
	}
	pkgResponse.OK(c, status)
}

// Escalations lists all recorded caregiver alerts.
// @Summary List escalations
// @Tags checkin
// @Produce json
// @Success 200 {array} Escalation
// @Router /api/elder-advice-agent/checkin/escalations [get]
func (h *handler) Escalations(c *gin.Context) {
	pkgResponse.OK(c, h.svc.Escalations())
}
