package httpserver

import (
	"github.com/gin-gonic/gin"

	"elder-advice-agent/internal/model"
	pkgResponse "elder-advice-agent/pkg/response"
)

// root is a plain sanity-check endpoint.
func (srv *HTTPServer) root(c *gin.Context) {
	pkgResponse.OK(c, gin.H{"message": "Hello from Elder Advice Agent"})
}

// healthCheck reports liveness plus generation readiness. The endpoint
// returns 200 even when generation is degraded: template refusals and
// escalations still work, so the process is healthy.
// @Summary Health Check
// @Description Liveness and generation readiness for the supervisor
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "Agent is healthy"
// @Router /api/elder-advice-agent/health [get]
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	ready := true
	if srv.ready != nil {
		ready = srv.ready.Ready()
	}

	c.JSON(200, gin.H{
		"status":     "ok",
		"agent_name": model.AgentName,
		"ready":      ready,
	})
}

// auditEntries exposes the in-memory audit trail for caregiver review.
// @Summary Audit log
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/elder-advice-agent/audit [get]
func (srv *HTTPServer) auditEntries(c *gin.Context) {
	pkgResponse.OK(c, gin.H{
		"entries":     srv.auditLog.Entries(),
		"drift_count": srv.auditLog.DriftCount(),
	})
}
