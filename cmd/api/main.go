package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"elder-advice-agent/config"
	advisorHTTP "elder-advice-agent/internal/advisor/delivery/http"
	advisorUC "elder-advice-agent/internal/advisor/usecase"
	"elder-advice-agent/internal/audit"
	"elder-advice-agent/internal/calendar"
	"elder-advice-agent/internal/checkin"
	"elder-advice-agent/internal/httpserver"
	"elder-advice-agent/internal/middleware"
	reminderHTTP "elder-advice-agent/internal/reminder/delivery/http"
	reminderMemory "elder-advice-agent/internal/reminder/repository/memory"
	reminderUC "elder-advice-agent/internal/reminder/usecase"
	"elder-advice-agent/internal/rules"
	"elder-advice-agent/internal/safety"
	"elder-advice-agent/internal/session"
	"elder-advice-agent/internal/taxonomy"
	"elder-advice-agent/pkg/gcalendar"
	"elder-advice-agent/pkg/groq"
	"elder-advice-agent/pkg/llmprovider"
	"elder-advice-agent/pkg/log"
)

// @title       Elder Advice Agent API
// @description Safety-gated conversational guidance for older adults and their caregivers.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Elder Advice Agent...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Shared infrastructure
	auditLog := audit.New(cfg.Audit.Capacity)
	sessions := session.NewStore(cfg.Session.Capacity, cfg.Session.TTL)

	// 4. Taxonomy and safety gate
	patternTable, err := taxonomy.Load(cfg.Advisor.PatternFile)
	if err != nil {
		logger.Errorf(ctx, "Failed to load pattern table: %v", err)
		return
	}
	matcher, err := taxonomy.NewMatcher(patternTable)
	if err != nil {
		logger.Errorf(ctx, "Failed to build matcher: %v", err)
		return
	}

	gate := safety.NewGate(gateOverrides(ctx, logger, cfg.Advisor.ThresholdOverrides))
	templates := safety.DefaultTemplates()

	// 5. Generation providers
	manager, err := buildProviderManager(cfg, logger)
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize LLM providers: %v", err)
		return
	}
	if !manager.Ready() {
		logger.Warn(ctx, "No generation providers configured; serving template paths only")
	}

	// 6. Advisor domain
	advisorUseCase := advisorUC.New(
		logger,
		matcher,
		gate,
		templates,
		rules.NewEngine(),
		manager,
		sessions,
		auditLog,
		advisorUC.Config{
			HistoryWindow:     cfg.Advisor.HistoryWindow,
			GenerationTimeout: cfg.Advisor.GenerationTimeout,
		},
	)
	advisorHandler := advisorHTTP.New(logger, advisorUseCase)

	// 7. Reminder domain
	reminderUseCase := reminderUC.New(logger, reminderMemory.New(), auditLog)
	reminderHandler := reminderHTTP.New(logger, reminderUseCase)

	// 8. Check-in and escalation
	checkinService := checkin.NewService(auditLog)
	checkinHandler := checkin.NewHandler(logger, checkinService)

	// 9. Calendar (Google sync optional)
	var syncer calendar.Syncer
	if cfg.GoogleCalendar.CredentialsPath != "" {
		gcalClient, gcalErr := gcalendar.NewClientFromCredentialsFile(
			ctx, cfg.GoogleCalendar.CredentialsPath, cfg.GoogleCalendar.CalendarID)
		if gcalErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", gcalErr)
		} else {
			logger.Info(ctx, "Google Calendar initialized")
			syncer = gcalClient
		}
	}
	calendarService := calendar.NewService(logger, syncer, auditLog)
	calendarHandler := calendar.NewHandler(logger, calendarService)

	// 10. HTTP server
	httpServer, err := httpserver.New(httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		Middleware:      middleware.New(logger, cfg.RateLimit.RequestsPerMin),
		Ready:           manager,
		AuditLog:        auditLog,
		AdvisorHandler:  advisorHandler,
		ReminderHandler: reminderHandler,
		CheckinHandler:  checkinHandler,
		CalendarHandler: calendarHandler,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize HTTP server: %v", err)
		return
	}

	// 11. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Errorf(ctx, "Failed to run server: %v", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// gateOverrides converts configured per-category thresholds, dropping
// unknown category names with a warning.
func gateOverrides(ctx context.Context, logger log.Logger, raw map[string]float64) map[taxonomy.Category]float64 {
	if len(raw) == 0 {
		return nil
	}
	out := make(map[taxonomy.Category]float64, len(raw))
	for name, threshold := range raw {
		cat := taxonomy.Category(name)
		if !cat.Valid() {
			logger.Warnf(ctx, "Ignoring threshold override for unknown category %q", name)
			continue
		}
		out[cat] = threshold
	}
	return out
}

// buildProviderManager wires the configured generation providers behind
// the fallback manager.
func buildProviderManager(cfg *config.Config, logger log.Logger) (*llmprovider.Manager, error) {
	var providers []llmprovider.Provider
	for _, pc := range cfg.LLM.Providers {
		if !pc.Enabled {
			continue
		}
		switch pc.Name {
		case "groq":
			client, err := groq.New(groq.Config{
				APIKey:  pc.APIKey,
				Model:   pc.Model,
				BaseURL: pc.BaseURL,
			})
			if err != nil {
				return nil, fmt.Errorf("groq provider: %w", err)
			}
			providers = append(providers, llmprovider.NewGroqAdapter(client))
		default:
			return nil, fmt.Errorf("unknown LLM provider %q", pc.Name)
		}
	}

	return llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled: cfg.LLM.FallbackEnabled,
		RetryAttempts:   cfg.LLM.RetryAttempts,
		RetryDelay:      cfg.LLM.RetryDelay,
		MaxTotalTimeout: cfg.LLM.MaxTotalTimeout,
	}, logger), nil
}
