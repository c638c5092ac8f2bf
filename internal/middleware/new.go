package middleware

import (
	pkgLog "elder-advice-agent/pkg/log"
)

// Middleware bundles the HTTP middlewares and their dependencies.
type Middleware struct {
	l           pkgLog.Logger
	rateLimiter *rateLimiter
}

// New creates the middleware set. requestsPerMin <= 0 disables rate
// limiting.
func New(l pkgLog.Logger, requestsPerMin int) Middleware {
	m := Middleware{l: l}
	if requestsPerMin > 0 {
		m.rateLimiter = newRateLimiter(requestsPerMin)
	}
	return m
}
