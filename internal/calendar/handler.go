package calendar

import (
	"github.com/gin-gonic/gin"

	pkgLog "elder-advice-agent/pkg/log"
	pkgResponse "elder-advice-agent/pkg/response"
)

// Handler exposes calendar operations over HTTP.
type Handler interface {
	Create(c *gin.Context)
	List(c *gin.Context)
}

type handler struct {
	l   pkgLog.Logger
	svc *Service
}

// NewHandler creates the calendar HTTP handler.
func NewHandler(l pkgLog.Logger, svc *Service) Handler {
	return &handler{
		l:   l,
		svc: svc,
	}
}

// Create stores an appointment.
// @Summary Create an appointment
// @Tags calendar
// @Accept json
// @Produce json
// @Param request body CreateRequest true "Appointment"
// @Success 200 {object} Event
// @Router /api/elder-advice-agent/calendar [post]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	ev, err := h.svc.Create(ctx, req)
	if err != nil {
		pkgResponse.Error(c, err, nil)
		return
	}
	pkgResponse.OK(c, ev)
}

// List returns the user's appointments.
// @Summary List appointments
// @Tags calendar
// @Produce json
// @Param userId path string true "User id"
// @Success 200 {array} Event
// @Router /api/elder-advice-agent/calendar/{userId} [get]
func (h *handler) List(c *gin.Context) {
	events, err := h.svc.ListForUser(c.Param("userId"))
	if err != nil {
		pkgResponse.Error(c, err, nil)
		return
	}
	pkgResponse.OK(c, events)
}
