package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
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

func newRateLimitedRouter(requestsPerMin int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	m := New(&mockLogger{}, requestsPerMin)
	r := gin.New()
	r.Use(m.RateLimit())
	r.GET("/ping", func(c *gin.Context) { c.String(200, "pong") })
	return r
}

func doGet(r *gin.Engine, sessionID string) int {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	if sessionID != "" {
		req.Header.Set("X-Session-Id", sessionID)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimitThrottlesBurst(t *testing.T) {
	// 10 rpm yields a burst of 1: the second immediate request is rejected.
	r := newRateLimitedRouter(10)

	if code := doGet(r, "s1"); code != http.StatusOK {
		t.Fatalf("first request: %d", code)
	}
	if code := doGet(r, "s1"); code != http.StatusTooManyRequests {
		t.Fatalf("burst exceeded, want 429, got %d", code)
	}
}

func TestRateLimitIsolatesSessions(t *testing.T) {
	r := newRateLimitedRouter(10)

	if code := doGet(r, "s1"); code != http.StatusOK {
		t.Fatalf("s1: %d", code)
	}
	if code := doGet(r, "s2"); code != http.StatusOK {
		t.Fatalf("one session's burst must not affect another, got %d", code)
	}
}

func TestRateLimitDisabled(t *testing.T) {
	r := newRateLimitedRouter(0)

	for i := 0; i < 20; i++ {
		if code := doGet(r, "s1"); code != http.StatusOK {
			t.Fatalf("disabled limiter must never reject, got %d on request %d", code, i)
		}
	}
}
