// Package config handles configuration for the Luga CLI,
// including defaults, JSON overlay, command-line flags and environment.
package config

import (
	"os"
	"time"
)

// Config holds runtime settings for the Luga CLI.
//
// Fields:
//   - BaseURL: root of the backend HTTP API.
//   - StorePath: path of the local sqlite credential store.
//   - RequestTimeout: per-request deadline for API calls.
//   - RetryMaxAttempts / RetryBaseDelay / RetryMaxDelay: retry policy for
//     idempotent requests.
//   - PollInterval: how often the job watcher re-fetches lipsync job status.
type Config struct {
	BaseURL          string
	StorePath        string
	RequestTimeout   time.Duration
	RetryMaxAttempts int
	RetryBaseDelay   time.Duration
	RetryMaxDelay    time.Duration
	PollInterval     time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "https://www.luga.app/api"
	c.StorePath = "luga.db"
	c.RequestTimeout = 30 * time.Second
	c.RetryMaxAttempts = 3
	c.RetryBaseDelay = 500 * time.Millisecond
	c.RetryMaxDelay = 8 * time.Second
	c.PollInterval = 3 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), command-line flags and the environment. Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	parseEnv(cfg)
	return cfg
}

// parseEnv overlays Config with values from environment variables.
//
//	LUGA_API_URL  root of the backend HTTP API
func parseEnv(cfg *Config) {
	if v, ok := os.LookupEnv("LUGA_API_URL"); ok && v != "" {
		cfg.BaseURL = v
	}
}
