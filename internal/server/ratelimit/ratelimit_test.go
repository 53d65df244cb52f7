package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *Config {
	return &Config{
		Enabled:       true,
		DefaultLimit:  100,
		DefaultWindow: time.Minute,
		Endpoints: []EndpointConfig{
			{Path: "/checkout-session", Method: "POST", Limit: 3, Window: time.Hour, Burst: 3},
			{Path: "/jobs/", Method: "GET", Limit: 0},
		},
	}
}

func TestLimiter_BurstThenBlock(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	for i := 0; i < 3; i++ {
		allowed, info := l.Allow("1.2.3.4", "/checkout-session", "POST")
		require.True(t, allowed, "request %d should be allowed", i)
		assert.Equal(t, 3, info.Limit)
	}

	allowed, info := l.Allow("1.2.3.4", "/checkout-session", "POST")
	assert.False(t, allowed)
	assert.Greater(t, info.RetryAfter, time.Duration(0))
}

func TestLimiter_ClientsAreIndependent(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	for i := 0; i < 3; i++ {
		l.Allow("1.2.3.4", "/checkout-session", "POST")
	}

	allowed, _ := l.Allow("5.6.7.8", "/checkout-session", "POST")
	assert.True(t, allowed)
}

func TestLimiter_UnlimitedEndpoints(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	// Status polling and health checks are never limited.
	for i := 0; i < 50; i++ {
		allowed, _ := l.Allow("1.2.3.4", "/jobs/abc-123", "GET")
		require.True(t, allowed)
		allowed, _ = l.Allow("1.2.3.4", "/health", "GET")
		require.True(t, allowed)
	}
}

func TestLimiter_Disabled(t *testing.T) {
	l := NewLimiter(&Config{Enabled: false})
	defer l.Stop()

	for i := 0; i < 100; i++ {
		allowed, _ := l.Allow("1.2.3.4", "/checkout-session", "POST")
		require.True(t, allowed)
	}
}

func TestConfig_Match(t *testing.T) {
	cfg := testConfig()

	exact := cfg.match("/checkout-session", "POST")
	assert.Equal(t, 3, exact.Limit)

	prefix := cfg.match("/jobs/7f9c0a6e", "GET")
	assert.Equal(t, 0, prefix.Limit)

	fallback := cfg.match("/export/interviews", "POST")
	assert.Equal(t, 100, fallback.Limit)

	health := cfg.match("/health", "GET")
	assert.Equal(t, 0, health.Limit)
}

func TestLoadConfig_DisabledByEnv(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "false")
	cfg := LoadConfig()
	assert.False(t, cfg.Enabled)
}
