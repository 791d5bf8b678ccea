package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"go.uber.org/zap/zapcore"

	"what-if-engine/internal/scenario"
)

// Config holds all configuration for the what-if engine
type Config struct {
	Server    ServerConfig
	Scenarios ScenarioConfig
	Sessions  SessionConfig
	LogLevel  zapcore.Level

	envErr error
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// Addr is the listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// ScenarioConfig holds registry configuration
type ScenarioConfig struct {
	AssumptionsFile string
	BoundaryPolicy  scenario.BoundaryPolicy
}

// SessionConfig holds session store configuration
type SessionConfig struct {
	TTL           time.Duration
	SweepInterval time.Duration
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	policy, err := scenario.ParseBoundaryPolicy(getEnv("WHATIF_BOUNDARY_POLICY", string(scenario.PolicyClamp)))
	if err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	level, err := zapcore.ParseLevel(getEnv("WHATIF_LOG_LEVEL", "info"))
	if err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	var env envErrors
	cfg := &Config{
		Server: ServerConfig{
			Host:         getEnv("WHATIF_HOST", "0.0.0.0"),
			Port:         env.asInt("PORT", 8080),
			ReadTimeout:  env.asDuration("WHATIF_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: env.asDuration("WHATIF_WRITE_TIMEOUT", 15*time.Second),
		},
		Scenarios: ScenarioConfig{
			AssumptionsFile: getEnv("WHATIF_ASSUMPTIONS_FILE", ""),
			BoundaryPolicy:  policy,
		},
		Sessions: SessionConfig{
			TTL:           env.asDuration("WHATIF_SESSION_TTL", 30*time.Minute),
			SweepInterval: env.asDuration("WHATIF_SWEEP_INTERVAL", time.Minute),
		},
		LogLevel: level,
	}
	cfg.envErr = errors.Join(env...)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

var (
	ErrInvalidEnv      = errors.New("malformed environment variable")
	ErrInvalidPort     = errors.New("invalid server port")
	ErrInvalidTimeout  = errors.New("timeouts must be positive")
	ErrInvalidInterval = errors.New("sweep interval must be positive")
)

// Validate validates the configuration. A zero session TTL is allowed and
// disables eviction.
func (c *Config) Validate() error {
	if c.envErr != nil {
		return c.envErr
	}

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("%w: %d", ErrInvalidPort, c.Server.Port)
	}

	if c.Server.ReadTimeout <= 0 || c.Server.WriteTimeout <= 0 {
		return ErrInvalidTimeout
	}

	if c.Sessions.TTL > 0 && c.Sessions.SweepInterval <= 0 {
		return ErrInvalidInterval
	}

	return nil
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// envErrors collects malformed typed variables. Empty values count as unset.
type envErrors []error

func (e *envErrors) asInt(key string, defaultValue int) int {
	value := getEnv(key, "")
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		*e = append(*e, fmt.Errorf("%w: %s=%q: %v", ErrInvalidEnv, key, value, err))
		return defaultValue
	}
	return intValue
}

func (e *envErrors) asDuration(key string, defaultValue time.Duration) time.Duration {
	value := getEnv(key, "")
	if value == "" {
		return defaultValue
	}
	duration, err := time.ParseDuration(value)
	if err != nil {
		*e = append(*e, fmt.Errorf("%w: %s=%q: %v", ErrInvalidEnv, key, value, err))
		return defaultValue
	}
	return duration
}
