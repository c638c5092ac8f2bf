package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	advisorHTTP "elder-advice-agent/internal/advisor/delivery/http"
	"elder-advice-agent/internal/audit"
	"elder-advice-agent/internal/calendar"
	"elder-advice-agent/internal/checkin"
	"elder-advice-agent/internal/middleware"
	reminderHTTP "elder-advice-agent/internal/reminder/delivery/http"
	pkgLog "elder-advice-agent/pkg/log"
)

// ReadyChecker reports whether generation capacity is available. The
// service still serves template paths when degraded.
type ReadyChecker interface {
	Ready() bool
}

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           pkgLog.Logger
	port        int
	mode        string
	environment string

	middleware middleware.Middleware
	ready      ReadyChecker
	auditLog   *audit.Log

	advisorHandler  advisorHTTP.Handler
	reminderHandler reminderHTTP.Handler
	checkinHandler  checkin.Handler
	calendarHandler calendar.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      pkgLog.Logger
	Port        int
	Mode        string
	Environment string

	Middleware middleware.Middleware
	Ready      ReadyChecker
	AuditLog   *audit.Log

	AdvisorHandler  advisorHTTP.Handler
	ReminderHandler reminderHTTP.Handler
	CheckinHandler  checkin.Handler
	CalendarHandler calendar.Handler
}

// New creates a new HTTPServer instance.
func New(cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               cfg.Logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		middleware:      cfg.Middleware,
		ready:           cfg.Ready,
		auditLog:        cfg.AuditLog,
		advisorHandler:  cfg.AdvisorHandler,
		reminderHandler: cfg.ReminderHandler,
		checkinHandler:  cfg.CheckinHandler,
		calendarHandler: cfg.CalendarHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.advisorHandler == nil {
		return errors.New("advisor handler is required")
	}
	return nil
}
