package llmprovider

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"elder-advice-agent/pkg/log"
)

// Manager orchestrates provider selection, fallback, and retry logic.
// It also tracks whether the generation capability is currently degraded,
// which feeds the service readiness flag.
type Manager struct {
	providers []Provider
	config    *Config
	logger    log.Logger
	degraded  atomic.Bool
}

// Config defines configuration for the provider Manager.
type Config struct {
	FallbackEnabled bool
	RetryAttempts   int
	RetryDelay      time.Duration
	MaxTotalTimeout time.Duration // Global timeout for the entire fallback chain
}

// NewManager creates a new provider Manager.
func NewManager(providers []Provider, config *Config, logger log.Logger) *Manager {
	return &Manager{
		providers: providers,
		config:    config,
		logger:    logger,
	}
}

// Ready reports whether the generation capability is currently usable.
// It is false when no providers are configured or the last full fallback
// chain failed and no call has succeeded since.
func (m *Manager) Ready() bool {
	return len(m.providers) > 0 && !m.degraded.Load()
}

// GenerateContent iterates through providers in priority order with fallback logic.
func (m *Manager) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if len(m.providers) == 0 {
		return nil, ErrNoProvidersConfigured
	}
	if req == nil || len(req.Messages) == 0 {
		return nil, ErrInvalidRequest
	}

	var cancel context.CancelFunc
	if m.config.MaxTotalTimeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, m.config.MaxTotalTimeout)
		defer cancel()
	}

	var lastErr error

	for _, provider := range m.providers {
		select {
		case <-ctx.Done():
			m.degraded.Store(true)
			return nil, fmt.Errorf("%w: %v", ErrAllProvidersFailed, ctx.Err())
		default:
		}

		resp, err := m.generateWithRetry(ctx, provider, req)
		if err == nil {
			m.degraded.Store(false)
			m.logger.Infof(ctx, "generation ok: provider=%s model=%s tokens=%d",
				provider.Name(), provider.Model(), resp.Usage.TotalTokens)
			return resp, nil
		}

		m.logger.Warnf(ctx, "generation failed: provider=%s err=%v", provider.Name(), err)
		lastErr = err

		if !m.config.FallbackEnabled {
			break
		}
	}

	m.degraded.Store(true)
	return nil, fmt.Errorf("%w: %v", ErrAllProvidersFailed, lastErr)
}

// generateWithRetry retries a single provider with linear backoff.
func (m *Manager) generateWithRetry(ctx context.Context, provider Provider, req *Request) (*Response, error) {
	attempts := m.config.RetryAttempts
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			delay := time.Duration(attempt) * m.config.RetryDelay
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		resp, err := provider.GenerateContent(ctx, req)
		if err == nil {
			return resp, nil
		}
		lastErr = err
	}

	return nil, lastErr
}
