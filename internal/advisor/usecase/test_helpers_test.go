package usecase

import (
	"context"
	"testing"
	"time"

	"elder-advice-agent/internal/audit"
	"elder-advice-agent/internal/rules"
	"elder-advice-agent/internal/safety"
	"elder-advice-agent/internal/session"
	"elder-advice-agent/internal/taxonomy"
	"elder-advice-agent/pkg/llmprovider"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// stubGenerator returns a fixed reply or error and records the requests
// it receives.
type stubGenerator struct {
	content  string
	err      error
	requests []*llmprovider.Request
}

func (s *stubGenerator) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	s.requests = append(s.requests, req)
	if s.err != nil {
		return nil, s.err
	}
	return &llmprovider.Response{Content: s.content, ProviderName: "stub", ModelName: "stub-model"}, nil
}

type fixture struct {
	uc    *implUseCase
	gen   *stubGenerator
	store *session.Store
	audit *audit.Log
}

func newFixture(t *testing.T, gen *stubGenerator) *fixture {
	t.Helper()

	matcher, err := taxonomy.NewMatcher(taxonomy.DefaultPatternTable())
	if err != nil {
		t.Fatalf("NewMatcher: %v", err)
	}

	store := session.NewStore(session.DefaultCapacity, time.Minute)
	auditLog := audit.New(64)

	uc := New(
		&mockLogger{},
		matcher,
		safety.NewGate(nil),
		safety.DefaultTemplates(),
		rules.NewEngine(),
		gen,
		store,
		auditLog,
		Config{},
	)
	return &fixture{uc: uc, gen: gen, store: store, audit: auditLog}
}
