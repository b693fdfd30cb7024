package northpass

import (
	"errors"
	"time"
)

// Config holds the settings for the Northpass API client
type Config struct {
	BaseURL    string
	APIKey     string
	Timeout    time.Duration
	MaxRetries int
	RetryDelay time.Duration
	PageSize   int
}

// Validate checks that the configuration is usable
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return errors.New("northpass: base URL is required")
	}
	if c.APIKey == "" {
		return errors.New("northpass: API key is required")
	}
	return nil
}

func (c *Config) withDefaults() *Config {
	cfg := *c
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.MaxRetries == 0 {
		cfg.MaxRetries = 3
	}
	if cfg.RetryDelay == 0 {
		cfg.RetryDelay = 2 * time.Second
	}
	if cfg.PageSize == 0 {
		cfg.PageSize = 100
	}
	return &cfg
}
