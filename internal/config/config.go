package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Default values
const (
	DefaultHost = "127.0.0.1"
	DefaultPort = "3001"

	DefaultMaxRedirects = 10
	DefaultFetchTimeout = 30 * time.Second

	DefaultInMemoryThreshold = 16 << 20 // 16MiB

	DefaultSessionIdleTimeout = 5 * time.Minute
	DefaultSessionSweepEvery  = time.Minute

	DefaultLogLevel = "info"

	DefaultKeywordTopK = 10
)

// Config holds every tunable the server reads at startup. Env vars are
// all prefixed VOIDLIGHT_; the plugin toggle keeps its original upstream
// name, VOIDLIGHT_MARKITDOWN_ENABLE_PLUGINS, for compatibility with
// existing deployments.
type Config struct {
	// Transport
	Host string
	Port string

	// URI resolver
	MaxRedirects int
	FetchTimeout time.Duration

	// Stream buffering
	InMemoryThreshold int64

	// MCP session lifecycle
	SessionIdleTimeout time.Duration
	SessionSweepEvery  time.Duration

	// Logging
	LogLevel string
	LogFile  string

	// Plugins
	EnablePlugins bool

	// Korean analysis
	KeywordTopK int
}

// LoadConfig reads configuration from the environment, applying defaults
// for anything unset. Call godotenv.Load() before this if a .env file
// should be honored.
func LoadConfig() *Config {
	return &Config{
		Host: getEnv("VOIDLIGHT_HOST", DefaultHost),
		Port: getEnv("VOIDLIGHT_PORT", DefaultPort),

		MaxRedirects: getEnvInt("VOIDLIGHT_MAX_REDIRECTS", DefaultMaxRedirects),
		FetchTimeout: getEnvDuration("VOIDLIGHT_FETCH_TIMEOUT", DefaultFetchTimeout),

		InMemoryThreshold: getEnvInt64("VOIDLIGHT_IN_MEMORY_THRESHOLD", DefaultInMemoryThreshold),

		SessionIdleTimeout: getEnvDuration("VOIDLIGHT_SESSION_IDLE_TIMEOUT", DefaultSessionIdleTimeout),
		SessionSweepEvery:  getEnvDuration("VOIDLIGHT_SESSION_SWEEP_INTERVAL", DefaultSessionSweepEvery),

		LogLevel: getEnv("VOIDLIGHT_LOG_LEVEL", DefaultLogLevel),
		LogFile:  getEnv("VOIDLIGHT_LOG_FILE", ""),

		EnablePlugins: parsePluginsEnabled(getEnv("VOIDLIGHT_MARKITDOWN_ENABLE_PLUGINS", "")),

		KeywordTopK: getEnvInt("VOIDLIGHT_KEYWORD_TOP_K", DefaultKeywordTopK),
	}
}

// parsePluginsEnabled matches the upstream check_plugins_enabled() truthy
// set: "true", "1", "yes", case-insensitive. Anything else, including an
// unset variable, is false.
func parsePluginsEnabled(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true", "1", "yes":
		return true
	}
	return false
}

// ValidateConfig checks config values and returns an error on failure.
// Call after LoadConfig to fail fast on invalid configuration.
func ValidateConfig(cfg *Config) error {
	if cfg.Port != "" {
		if n, err := strconv.Atoi(cfg.Port); err != nil || n <= 0 || n > 65535 {
			return fmt.Errorf("VOIDLIGHT_PORT must be a valid TCP port, got %q", cfg.Port)
		}
	}
	if cfg.MaxRedirects < 0 {
		return fmt.Errorf("VOIDLIGHT_MAX_REDIRECTS must not be negative")
	}
	if cfg.FetchTimeout <= 0 {
		return fmt.Errorf("VOIDLIGHT_FETCH_TIMEOUT must be positive")
	}
	if cfg.InMemoryThreshold <= 0 {
		return fmt.Errorf("VOIDLIGHT_IN_MEMORY_THRESHOLD must be positive")
	}
	if cfg.SessionIdleTimeout <= 0 {
		return fmt.Errorf("VOIDLIGHT_SESSION_IDLE_TIMEOUT must be positive")
	}
	if cfg.SessionSweepEvery <= 0 {
		return fmt.Errorf("VOIDLIGHT_SESSION_SWEEP_INTERVAL must be positive")
	}
	switch strings.ToLower(cfg.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("VOIDLIGHT_LOG_LEVEL must be one of debug|info|warn|error, got %q", cfg.LogLevel)
	}
	if cfg.KeywordTopK <= 0 {
		return fmt.Errorf("VOIDLIGHT_KEYWORD_TOP_K must be positive")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := getEnv(key, "")
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvInt64(key string, fallback int64) int64 {
	value := getEnv(key, "")
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := getEnv(key, "")
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return parsed
}
