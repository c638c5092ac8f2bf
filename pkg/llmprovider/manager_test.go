package llmprovider

import (
	"context"
	"errors"
	"testing"
	"time"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                     {}
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

type mockProvider struct {
	name     string
	response *Response
	err      error
	calls    int
	failN    int // fail the first failN calls, then succeed
}

func (m *mockProvider) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	m.calls++
	if m.failN > 0 && m.calls <= m.failN {
		return nil, errors.New("transient failure")
	}
	if m.err != nil {
		return nil, m.err
	}
	if m.response != nil {
		return m.response, nil
	}
	return &Response{Content: "ok", ProviderName: m.name, Usage: &Usage{}}, nil
}

func (m *mockProvider) Name() string  { return m.name }
func (m *mockProvider) Model() string { return "mock-model" }

func defaultConfig() *Config {
	return &Config{
		FallbackEnabled: true,
		RetryAttempts:   2,
		RetryDelay:      time.Millisecond,
		MaxTotalTimeout: time.Second,
	}
}

func TestManagerGenerateContent(t *testing.T) {
	req := &Request{Messages: []Message{{Role: "user", Content: "hello"}}}

	t.Run("No Providers", func(t *testing.T) {
		m := NewManager(nil, defaultConfig(), &mockLogger{})
		if _, err := m.GenerateContent(context.Background(), req); !errors.Is(err, ErrNoProvidersConfigured) {
			t.Errorf("expected ErrNoProvidersConfigured, got %v", err)
		}
		if m.Ready() {
			t.Errorf("expected not ready with no providers")
		}
	})

	t.Run("Invalid Request", func(t *testing.T) {
		m := NewManager([]Provider{&mockProvider{name: "p1"}}, defaultConfig(), &mockLogger{})
		if _, err := m.GenerateContent(context.Background(), &Request{}); !errors.Is(err, ErrInvalidRequest) {
			t.Errorf("expected ErrInvalidRequest, got %v", err)
		}
	})

	t.Run("First Provider Succeeds", func(t *testing.T) {
		p := &mockProvider{name: "p1"}
		m := NewManager([]Provider{p}, defaultConfig(), &mockLogger{})
		resp, err := m.GenerateContent(context.Background(), req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Content != "ok" {
			t.Errorf("unexpected content %q", resp.Content)
		}
		if !m.Ready() {
			t.Errorf("expected ready after success")
		}
	})

	t.Run("Fallback To Second Provider", func(t *testing.T) {
		p1 := &mockProvider{name: "p1", err: errors.New("down")}
		p2 := &mockProvider{name: "p2"}
		m := NewManager([]Provider{p1, p2}, defaultConfig(), &mockLogger{})
		resp, err := m.GenerateContent(context.Background(), req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.ProviderName != "p2" {
			t.Errorf("expected p2 response, got %s", resp.ProviderName)
		}
	})

	t.Run("Retry Then Succeed", func(t *testing.T) {
		p := &mockProvider{name: "p1", failN: 1}
		m := NewManager([]Provider{p}, defaultConfig(), &mockLogger{})
		if _, err := m.GenerateContent(context.Background(), req); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.calls != 2 {
			t.Errorf("expected 2 calls, got %d", p.calls)
		}
	})

	t.Run("All Providers Fail Marks Degraded", func(t *testing.T) {
		p := &mockProvider{name: "p1", err: errors.New("down")}
		m := NewManager([]Provider{p}, defaultConfig(), &mockLogger{})
		if _, err := m.GenerateContent(context.Background(), req); !errors.Is(err, ErrAllProvidersFailed) {
			t.Errorf("expected ErrAllProvidersFailed, got %v", err)
		}
		if m.Ready() {
			t.Errorf("expected degraded after total failure")
		}
	})

	t.Run("Recovers After Success", func(t *testing.T) {
		p := &mockProvider{name: "p1", failN: 2} // two attempts fail -> degraded, next call succeeds
		cfg := defaultConfig()
		cfg.RetryAttempts = 1
		cfg.FallbackEnabled = false
		m := NewManager([]Provider{p}, cfg, &mockLogger{})

		if _, err := m.GenerateContent(context.Background(), req); err == nil {
			t.Fatalf("expected first call to fail")
		}
		if _, err := m.GenerateContent(context.Background(), req); err == nil {
			t.Fatalf("expected second call to fail")
		}
		if m.Ready() {
			t.Errorf("expected degraded")
		}
		if _, err := m.GenerateContent(context.Background(), req); err != nil {
			t.Fatalf("expected third call to succeed: %v", err)
		}
		if !m.Ready() {
			t.Errorf("expected ready after recovery")
		}
	})
}
