package server

import (
	"fmt"
	"time"

	"github.com/agentstation/ainything/pkg/constants"
	"github.com/agentstation/ainything/pkg/errors"
)

// Config holds server configuration.
type Config struct {
	// Server settings
	Host string
	Port int

	// API settings
	PathPrefix string

	// CORS settings
	CORSEnabled bool
	CORSOrigins []string

	// Performance settings
	RateLimit int // Requests per minute per IP (0 to disable)
	CacheTTL  time.Duration

	// HTTP timeouts
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Host:         "localhost",
		Port:         8080,
		PathPrefix:   "/api/v1",
		CORSEnabled:  false,
		CORSOrigins:  []string{},
		RateLimit:    100,
		CacheTTL:     constants.CacheTTL,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
}

// Addr returns the listen address.
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Validate checks the configuration for values the server cannot use.
func (c Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return errors.NewConfigError("server", fmt.Sprintf("port %d out of range", c.Port), nil)
	}
	if c.PathPrefix != "" && c.PathPrefix[0] != '/' {
		return errors.NewConfigError("server", "path prefix must start with /", nil)
	}
	if c.RateLimit < 0 {
		return errors.NewConfigError("server", "rate limit cannot be negative", nil)
	}
	return nil
}
