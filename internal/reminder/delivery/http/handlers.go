package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"elder-advice-agent/internal/model"
	"elder-advice-agent/internal/reminder"
	pkgResponse "elder-advice-agent/pkg/response"
)

// Create registers a new reminder.
// @Summary Create a reminder
// @Tags reminders
// @Accept json
// @Produce json
// @Param request body CreateRequest true "Reminder"
// @Success 200 {object} model.Reminder
// @Router /api/elder-advice-agent/reminders [post]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	rem, err := h.uc.Create(ctx, model.Scope{UserID: req.UserID}, reminder.CreateInput{
		Text: req.Text,
		When: req.When,
	})
	if err != nil {
		h.mapError(c, err)
		return
	}

	pkgResponse.OK(c, rem)
}

// List returns the user's reminders ordered by firing time.
// @Summary List reminders
// @Tags reminders
// @Produce json
// @Param userId path string true "User id"
// @Success 200 {array} model.Reminder
// @Router /api/elder-advice-agent/reminders/{userId} [get]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	rems, err := h.uc.List(ctx, model.Scope{UserID: c.Param("userId")})
	if err != nil {
		h.mapError(c, err)
		return
	}

	pkgResponse.OK(c, rems)
}

// Confirm acknowledges a reminder.
// @Summary Confirm a reminder
// @Tags reminders
// @Accept json
// @Produce json
// @Param id path string true "Reminder id"
// @Param request body ActionRequest true "Actor"
// @Success 200 {object} model.Reminder
// @Router /api/elder-advice-agent/reminders/{id}/confirm [post]
func (h *handler) Confirm(c *gin.Context) {
	ctx := c.Request.Context()

	req, ok := h.bindAction(c)
	if !ok {
		return
	}

	rem, err := h.uc.Confirm(ctx, model.Scope{UserID: req.Actor}, c.Param("id"))
	if err != nil {
		h.mapError(c, err)
		return
	}

	pkgResponse.OK(c, rem)
}

// Snooze pushes a reminder's firing time forward.
// @Summary Snooze a reminder
// @Tags reminders
// @Accept json
// @Produce json
// @Param id path string true "Reminder id"
// @Param request body ActionRequest true "Actor and minutes"
// @Success 200 {object} model.Reminder
// @Router /api/elder-advice-agent/reminders/{id}/snooze [post]
func (h *handler) Snooze(c *gin.Context) {
	ctx := c.Request.Context()

	req, ok := h.bindAction(c)
	if !ok {
		return
	}

	rem, err := h.uc.Snooze(ctx, model.Scope{UserID: req.Actor}, c.Param("id"), reminder.SnoozeInput{
		Minutes: req.Minutes,
	})
	if err != nil {
		h.mapError(c, err)
		return
	}

	pkgResponse.OK(c, rem)
}

// Delete removes a reminder.
// @Summary Delete a reminder
// @Tags reminders
// @Accept json
// @Produce json
// @Param id path string true "Reminder id"
// @Param request body ActionRequest true "Actor"
// @Success 200 {object} response.Resp
// @Router /api/elder-advice-agent/reminders/{id} [delete]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	req, ok := h.bindAction(c)
	if !ok {
		return
	}

	if err := h.uc.Delete(ctx, model.Scope{UserID: req.Actor}, c.Param("id")); err != nil {
		h.mapError(c, err)
		return
	}

	pkgResponse.OK(c, gin.H{"deleted": true})
}

// Due returns every unconfirmed reminder whose time has passed. Meant
// for a notification worker or a caregiver dashboard poll.
// @Summary List due reminders
// @Tags reminders
// @Produce json
// @Success 200 {array} model.Reminder
// @Router /api/elder-advice-agent/reminders/due [get]
func (h *handler) Due(c *gin.Context) {
	ctx := c.Request.Context()

	rems, err := h.uc.Due(ctx, time.Now().UTC())
	if err != nil {
		h.mapError(c, err)
		return
	}

	pkgResponse.OK(c, rems)
}

func (h *handler) bindAction(c *gin.Context) (ActionRequest, bool) {
	var req ActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "invalid request", "details": err.Error()})
		return ActionRequest{}, false
	}
	return req, true
}
