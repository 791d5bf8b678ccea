package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"what-if-engine/internal/scenario"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("WHATIF_HOST", "0.0.0.0")
	t.Setenv("WHATIF_LOG_LEVEL", "info")
	// Empty values fall back to the defaults.
	for _, key := range []string{
		"PORT", "WHATIF_ASSUMPTIONS_FILE", "WHATIF_BOUNDARY_POLICY", "WHATIF_SESSION_TTL",
		"WHATIF_SWEEP_INTERVAL", "WHATIF_READ_TIMEOUT", "WHATIF_WRITE_TIMEOUT",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", cfg.Server.Addr())
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, scenario.PolicyClamp, cfg.Scenarios.BoundaryPolicy)
	assert.Empty(t, cfg.Scenarios.AssumptionsFile)
	assert.Equal(t, 30*time.Minute, cfg.Sessions.TTL)
	assert.Equal(t, time.Minute, cfg.Sessions.SweepInterval)
	assert.Equal(t, zapcore.InfoLevel, cfg.LogLevel)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("WHATIF_HOST", "127.0.0.1")
	t.Setenv("PORT", "9090")
	t.Setenv("WHATIF_BOUNDARY_POLICY", "passthrough")
	t.Setenv("WHATIF_SESSION_TTL", "0")
	t.Setenv("WHATIF_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9090", cfg.Server.Addr())
	assert.Equal(t, scenario.PolicyPassthrough, cfg.Scenarios.BoundaryPolicy)
	assert.Zero(t, cfg.Sessions.TTL)
	assert.Equal(t, zapcore.DebugLevel, cfg.LogLevel)
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("WHATIF_BOUNDARY_POLICY", "wrap")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("WHATIF_BOUNDARY_POLICY", "clamp")
	t.Setenv("WHATIF_LOG_LEVEL", "loud")
	_, err = Load()
	assert.Error(t, err)

	t.Setenv("WHATIF_LOG_LEVEL", "info")
	t.Setenv("PORT", "70000")
	_, err = Load()
	assert.ErrorIs(t, err, ErrInvalidPort)
}

func TestValidate(t *testing.T) {
	cfg := Config{
		Server:   ServerConfig{Host: "0.0.0.0", Port: 8080, ReadTimeout: time.Second, WriteTimeout: time.Second},
		Sessions: SessionConfig{TTL: time.Minute, SweepInterval: 0},
	}
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidInterval)

	cfg.Sessions.TTL = 0
	assert.NoError(t, cfg.Validate())

	cfg.Server.WriteTimeout = 0
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidTimeout)
}

func TestLoadRejectsMalformedNumbers(t *testing.T) {
	t.Setenv("PORT", "abc")
	t.Setenv("WHATIF_SESSION_TTL", "5x")

	_, err := Load()
	require.ErrorIs(t, err, ErrInvalidEnv)
	assert.Contains(t, err.Error(), "PORT")
	assert.Contains(t, err.Error(), "WHATIF_SESSION_TTL")

	t.Setenv("PORT", "8081")
	t.Setenv("WHATIF_SESSION_TTL", "45m")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 8081, cfg.Server.Port)
	assert.Equal(t, 45*time.Minute, cfg.Sessions.TTL)
}
