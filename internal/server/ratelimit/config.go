package ratelimit

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// EndpointConfig is the rate limit tier for one endpoint.
type EndpointConfig struct {
	Path   string        // path or path prefix (prefixes end with "/")
	Method string        // HTTP method
	Limit  int           // requests per window; <= 0 means unlimited
	Window time.Duration // refill window
	Burst  int           // burst capacity, defaults to Limit
}

// Config holds rate limiting configuration.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	CleanupInterval time.Duration
	Endpoints       []EndpointConfig
}

// LoadConfig loads rate limiting configuration from environment variables.
func LoadConfig() *Config {
	enabled := getEnvBool("RATE_LIMIT_ENABLED", true)
	if !enabled {
		return &Config{Enabled: false}
	}

	return &Config{
		Enabled:         true,
		DefaultLimit:    getEnvInt("RATE_LIMIT_DEFAULT_LIMIT", 600),
		DefaultWindow:   getEnvDuration("RATE_LIMIT_DEFAULT_WINDOW", time.Minute),
		CleanupInterval: getEnvDuration("RATE_LIMIT_CLEANUP_INTERVAL", 5*time.Minute),
		Endpoints:       DefaultEndpointConfigs(),
	}
}

// DefaultEndpointConfigs returns the per-endpoint tiers.
func DefaultEndpointConfigs() []EndpointConfig {
	return []EndpointConfig{
		// Checkout and job starts hit the payment boundary and the LLM;
		// keep them tight.
		{Path: "/checkout-session", Method: "POST", Limit: 20, Window: time.Hour, Burst: 5},
		{Path: "/jobs", Method: "POST", Limit: 20, Window: time.Hour, Burst: 5},

		// Exports are cheap but not free.
		{Path: "/export/", Method: "POST", Limit: 60, Window: time.Minute, Burst: 20},

		// Status polling runs on a fixed 15s cadence per client; unlimited
		// so a poller is never starved mid-job.
		{Path: "/jobs/", Method: "GET", Limit: 0},
	}
}

// match resolves the tier for a request path and method. Health checks are
// always unlimited; unmatched endpoints use the default limit.
func (c *Config) match(path, method string) EndpointConfig {
	if path == "/health" && method == "GET" {
		return EndpointConfig{Limit: 0}
	}

	for _, ep := range c.Endpoints {
		if ep.Method != method {
			continue
		}
		if ep.Path == path {
			return ep
		}
		if strings.HasSuffix(ep.Path, "/") && strings.HasPrefix(path, ep.Path) {
			return ep
		}
	}

	return EndpointConfig{
		Limit:  c.DefaultLimit,
		Window: c.DefaultWindow,
		Burst:  c.DefaultLimit,
	}
}

// getEnvInt gets an environment variable as an integer with a default value.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvBool gets an environment variable as a boolean with a default value.
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvDuration gets an environment variable as a duration with a default value.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
