// Package config provides environment-driven configuration for the server
// and the CLI client.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// DefaultPollInterval is the fixed cadence at which job status is polled.
const DefaultPollInterval = 15 * time.Second

// Config holds every runtime setting. Values come from the environment
// (optionally loaded from a .env file by the CLI entry point); missing
// values fall back to defaults suitable for local development.
type Config struct {
	// Server
	Port         int    // HTTP listen port
	StripeAPIKey string // Stripe secret key; empty enables fake payments
	GeminiAPIKey string // Gemini API key; empty enables the fake generator
	PriceCents   int64  // price per interview, in cents
	Currency     string // ISO currency code for checkout line items

	// Client
	ServerURL    string        // base URL of the API server
	ReturnURL    string        // URL Stripe redirects back to after payment
	DownloadDir  string        // directory exported files are saved into
	PollInterval time.Duration // job status poll cadence
}

// Load reads configuration from the environment.
func Load() *Config {
	return &Config{
		Port:         getEnvInt("PORT", 8080),
		StripeAPIKey: os.Getenv("STRIPE_API_KEY"),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		PriceCents:   int64(getEnvInt("PRICE_CENTS", 150)),
		Currency:     getEnvString("CURRENCY", "usd"),
		ServerURL:    getEnvString("SERVER_URL", "http://localhost:8080"),
		ReturnURL:    getEnvString("RETURN_URL", "http://localhost:8080/"),
		DownloadDir:  getEnvString("DOWNLOAD_DIR", "."),
		PollInterval: getEnvDuration("POLL_INTERVAL", DefaultPollInterval),
	}
}

// Validate checks that the configuration has usable values.
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("config error: invalid port %d", c.Port)
	}
	if c.PriceCents <= 0 {
		return fmt.Errorf("config error: 'PRICE_CENTS' must be positive")
	}
	if c.PollInterval <= 0 {
		return fmt.Errorf("config error: 'POLL_INTERVAL' must be positive")
	}
	if c.ServerURL == "" {
		return fmt.Errorf("config error: 'SERVER_URL' is required")
	}
	return nil
}

// getEnvString gets an environment variable as a string with a default value.
func getEnvString(key string, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
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

// getEnvDuration gets an environment variable as a duration with a default value.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
