package model

// AgentName is the service identity reported on health checks and
// supervisor responses.
const AgentName = "elder-advice-agent"

// Scope carries per-request identity. SessionID is caller-supplied and
// opaque; the service never interprets it beyond using it as a key.
type Scope struct {
	SessionID string
	UserID    string
}

// Environment is the deployment environment name.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)
