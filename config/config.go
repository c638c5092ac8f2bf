package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Elder advice specifics
	Advisor        AdvisorConfig
	Session        SessionConfig
	Audit          AuditConfig
	RateLimit      RateLimitConfig
	GoogleCalendar GoogleCalendarConfig

	// LLM Provider Abstraction
	LLM LLMConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// AdvisorConfig tunes classification and response synthesis.
type AdvisorConfig struct {
	PatternFile        string             // optional YAML overriding the built-in pattern table
	HistoryWindow      int                // turns of history fed to classification and prompts
	GenerationTimeout  time.Duration      // per-query generation budget
	ThresholdOverrides map[string]float64 // per-category gate thresholds
}

type SessionConfig struct {
	Capacity int           // turns kept per session
	TTL      time.Duration // inactivity window before a session expires
}

type AuditConfig struct {
	Capacity int
}

type RateLimitConfig struct {
	RequestsPerMin int
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	CalendarID      string
}

// LLMConfig holds configuration for the LLM provider abstraction layer.
type LLMConfig struct {
	Providers       []ProviderConfig `yaml:"providers"`
	FallbackEnabled bool             `yaml:"fallback_enabled"`
	RetryAttempts   int              `yaml:"retry_attempts"`
	RetryDelay      time.Duration    `yaml:"retry_delay"`
	MaxTotalTimeout time.Duration    `yaml:"max_total_timeout"`
}

// ProviderConfig holds configuration for a single LLM provider.
type ProviderConfig struct {
	Name    string `yaml:"name"`
	Enabled bool   `yaml:"enabled"`
	APIKey  string `yaml:"api_key"`
	BaseURL string `yaml:"base_url,omitempty"`
	Model   string `yaml:"model"`
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Advisor
	cfg.Advisor.PatternFile = viper.GetString("advisor.pattern_file")
	cfg.Advisor.HistoryWindow = viper.GetInt("advisor.history_window")
	cfg.Advisor.GenerationTimeout = viper.GetDuration("advisor.generation_timeout")
	cfg.Advisor.ThresholdOverrides = thresholdOverrides()

	// Sessions
	cfg.Session.Capacity = viper.GetInt("session.capacity")
	cfg.Session.TTL = viper.GetDuration("session.ttl")

	// Audit
	cfg.Audit.Capacity = viper.GetInt("audit.capacity")

	// Rate limiting
	cfg.RateLimit.RequestsPerMin = viper.GetInt("rate_limit.requests_per_min")

	// Google Calendar (optional)
	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	// LLM Provider Abstraction
	cfg.LLM.FallbackEnabled = viper.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = viper.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = viper.GetDuration("llm.retry_delay")
	cfg.LLM.MaxTotalTimeout = viper.GetDuration("llm.max_total_timeout")
	cfg.LLM.Providers = providerConfigs()

	// A bare GROQ_API_KEY is enough to run with defaults.
	if len(cfg.LLM.Providers) == 0 {
		if key := viper.GetString("groq_api_key"); key != "" {
			cfg.LLM.Providers = append(cfg.LLM.Providers, ProviderConfig{
				Name:    "groq",
				Enabled: true,
				APIKey:  key,
			})
		}
	}

	return cfg, nil
}

func thresholdOverrides() map[string]float64 {
	raw := viper.GetStringMap("advisor.thresholds")
	if len(raw) == 0 {
		return nil
	}
	out := make(map[string]float64, len(raw))
	for category := range raw {
		out[category] = viper.GetFloat64("advisor.thresholds." + category)
	}
	return out
}

func providerConfigs() []ProviderConfig {
	providersRaw := viper.Get("llm.providers")
	providersList, ok := providersRaw.([]interface{})
	if !ok {
		return nil
	}

	var out []ProviderConfig
	for _, p := range providersList {
		providerMap, ok := p.(map[string]interface{})
		if !ok {
			continue
		}
		out = append(out, ProviderConfig{
			Name:    getStringFromMap(providerMap, "name"),
			Enabled: getBoolFromMap(providerMap, "enabled"),
			APIKey:  expandEnvVar(getStringFromMap(providerMap, "api_key")),
			BaseURL: getStringFromMap(providerMap, "base_url"),
			Model:   getStringFromMap(providerMap, "model"),
		})
	}
	return out
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("advisor.history_window", 5)
	viper.SetDefault("advisor.generation_timeout", "10s")
	viper.SetDefault("session.capacity", 20)
	viper.SetDefault("session.ttl", "30m")
	viper.SetDefault("audit.capacity", 1000)
	viper.SetDefault("rate_limit.requests_per_min", 60)

	// LLM defaults
	viper.SetDefault("llm.fallback_enabled", true)
	viper.SetDefault("llm.retry_attempts", 3)
	viper.SetDefault("llm.retry_delay", "1s")
	viper.SetDefault("llm.max_total_timeout", "60s")
}

// expandEnvVar expands values in the format ${VAR_NAME}.
func expandEnvVar(value string) string {
	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		name := value[2 : len(value)-1]
		if v := viper.GetString(name); v != "" {
			return v
		}
		return os.Getenv(name)
	}
	return value
}

func getStringFromMap(m map[string]interface{}, key string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if v, ok := m[key].(bool); ok {
		return v
	}
	return false
}
