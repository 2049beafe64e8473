// Package config reads harness configuration from the environment.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/vertti/conncheck/pkg/endpoint"
)

const (
	DefaultAPIURL      = "http://localhost:8080"
	DefaultFrontendURL = "http://localhost:3000"
	DefaultTimeout     = 10 * time.Second
)

type Config struct {
	APIURL      string        // base URL for backend checks (API_URL)
	FrontendURL string        // base URL for frontend checks (FRONTEND_URL)
	Timeout     time.Duration // per-check request timeout (CHECK_TIMEOUT)
}

// FromEnv reads API_URL, FRONTEND_URL and CHECK_TIMEOUT, applying defaults
// for unset or empty values. A malformed timeout is an error.
func FromEnv(env EnvGetter) (Config, error) {
	cfg := Config{
		APIURL:      DefaultAPIURL,
		FrontendURL: DefaultFrontendURL,
		Timeout:     DefaultTimeout,
	}

	if v, ok := env.LookupEnv("API_URL"); ok && strings.TrimSpace(v) != "" {
		cfg.APIURL = strings.TrimSpace(v)
	}
	if v, ok := env.LookupEnv("FRONTEND_URL"); ok && strings.TrimSpace(v) != "" {
		cfg.FrontendURL = strings.TrimSpace(v)
	}
	if v, ok := env.LookupEnv("CHECK_TIMEOUT"); ok && strings.TrimSpace(v) != "" {
		d, err := time.ParseDuration(strings.TrimSpace(v))
		if err != nil {
			return Config{}, fmt.Errorf("invalid CHECK_TIMEOUT %q: %w", v, err)
		}
		cfg.Timeout = d
	}

	return cfg, nil
}

// Override replaces fields with non-zero values from o.
func (c Config) Override(o Config) Config {
	if o.APIURL != "" {
		c.APIURL = o.APIURL
	}
	if o.FrontendURL != "" {
		c.FrontendURL = o.FrontendURL
	}
	if o.Timeout != 0 {
		c.Timeout = o.Timeout
	}
	return c
}

// Validate checks that both base URLs are absolute http(s) URLs and the
// timeout is positive.
func (c Config) Validate() error {
	if _, err := endpoint.ParseBaseURL(c.APIURL); err != nil {
		return fmt.Errorf("API_URL: %w", err)
	}
	if _, err := endpoint.ParseBaseURL(c.FrontendURL); err != nil {
		return fmt.Errorf("FRONTEND_URL: %w", err)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", c.Timeout)
	}
	return nil
}
