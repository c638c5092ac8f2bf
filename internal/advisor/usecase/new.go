package usecase

import (
	"context"
	"time"

	"elder-advice-agent/internal/audit"
	"elder-advice-agent/internal/rules"
	"elder-advice-agent/internal/safety"
	"elder-advice-agent/internal/session"
	"elder-advice-agent/internal/taxonomy"
	pkgLog "elder-advice-agent/pkg/log"
	"elder-advice-agent/pkg/llmprovider"
)

const (
	// DefaultHistoryWindow is how many prior turns shape the prompt.
	DefaultHistoryWindow = 5

	// DefaultGenerationTimeout bounds the external generation call.
	DefaultGenerationTimeout = 10 * time.Second

	generationTemperature = 0.4
	generationMaxTokens   = 512
)

// Generator is the external text-generation capability. Its output is
// untrusted and always post-filtered.
type Generator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

type implUseCase struct {
	l         pkgLog.Logger
	matcher   *taxonomy.Matcher
	gate      *safety.Gate
	templates *safety.Templates
	rules     *rules.Engine
	llm       Generator
	sessions  *session.Store
	audit     *audit.Log

	historyWindow     int
	generationTimeout time.Duration
}

// Config carries the advisor use case tunables.
type Config struct {
	HistoryWindow     int
	GenerationTimeout time.Duration
}

// New creates a new advisor UseCase instance.
func New(
	l pkgLog.Logger,
	matcher *taxonomy.Matcher,
	gate *safety.Gate,
	templates *safety.Templates,
	ruleEngine *rules.Engine,
	llm Generator,
	sessions *session.Store,
	auditLog *audit.Log,
	cfg Config,
) *implUseCase {
	if cfg.HistoryWindow <= 0 {
		cfg.HistoryWindow = DefaultHistoryWindow
	}
	if cfg.GenerationTimeout <= 0 {
		cfg.GenerationTimeout = DefaultGenerationTimeout
	}
	return &implUseCase{
		l:                 l,
		matcher:           matcher,
		gate:              gate,
		templates:         templates,
		rules:             ruleEngine,
		llm:               llm,
		sessions:          sessions,
		audit:             auditLog,
		historyWindow:     cfg.HistoryWindow,
		generationTimeout: cfg.GenerationTimeout,
	}
}
