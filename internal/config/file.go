package config

import (
	"fmt"
	"time"
)

// File represents the structure of the .footmap configuration file.
// All fields are optional: unset values keep the built-in defaults,
// and environment variables override file values.
type File struct {
	// Server holds HTTP API settings.
	Server ServerFile `yaml:"server,omitempty"`

	// Redis holds rate limiter backend settings.
	Redis RedisFile `yaml:"redis,omitempty"`

	// Breach holds upstream breach database settings.
	Breach BreachFile `yaml:"breach,omitempty"`
}

// ServerFile holds the HTTP API section of the configuration file.
type ServerFile struct {
	// Listen is the bind address in "host:port" format.
	Listen string `yaml:"listen,omitempty"`

	// CORSOrigins are the browser origins allowed to call the API.
	CORSOrigins []string `yaml:"corsOrigins,omitempty"`

	// RateLimitPerHour is the per-client scan limit per window.
	// A pointer distinguishes "unset" from an explicit 0 (disabled).
	RateLimitPerHour *int `yaml:"rateLimitPerHour,omitempty"`

	// RateLimitWindow is the rolling window as a duration string,
	// e.g. "1h" or "30m".
	RateLimitWindow string `yaml:"rateLimitWindow,omitempty"`
}

// RedisFile holds the redis section of the configuration file.
type RedisFile struct {
	// Address is the redis instance in "host:port" format.
	Address string `yaml:"address,omitempty"`

	// Password is the optional AUTH password.
	Password string `yaml:"password,omitempty"`

	// DB is the redis logical database number.
	DB int `yaml:"db,omitempty"`
}

// BreachFile holds the breach lookup section of the configuration file.
type BreachFile struct {
	// BaseURL overrides the upstream breach database endpoint.
	BaseURL string `yaml:"baseURL,omitempty"`

	// APIKey authenticates against the upstream breach database.
	APIKey string `yaml:"apiKey,omitempty"`

	// Timeout bounds each lookup request as a duration string, e.g. "10s".
	Timeout string `yaml:"timeout,omitempty"`
}

// ApplyTo copies the file's set values onto the config.
// Unset file values leave the config untouched, so defaults and
// earlier sources survive. Malformed duration strings are reported
// with the offending field name.
func (f *File) ApplyTo(c *Config) error {
	if f.Server.Listen != "" {
		c.ListenAddress = f.Server.Listen
	}
	if len(f.Server.CORSOrigins) > 0 {
		c.CORSOrigins = f.Server.CORSOrigins
	}
	if f.Server.RateLimitPerHour != nil {
		c.RateLimitPerHour = *f.Server.RateLimitPerHour
	}
	if f.Server.RateLimitWindow != "" {
		window, err := time.ParseDuration(f.Server.RateLimitWindow)
		if err != nil {
			return fmt.Errorf("parse server.rateLimitWindow: %w", err)
		}
		c.RateLimitWindow = window
	}

	if f.Redis.Address != "" {
		c.RedisAddress = f.Redis.Address
	}
	if f.Redis.Password != "" {
		c.RedisPassword = f.Redis.Password
	}
	if f.Redis.DB != 0 {
		c.RedisDB = f.Redis.DB
	}

	if f.Breach.BaseURL != "" {
		c.BreachAPIBaseURL = f.Breach.BaseURL
	}
	if f.Breach.APIKey != "" {
		c.BreachAPIKey = f.Breach.APIKey
	}
	if f.Breach.Timeout != "" {
		timeout, err := time.ParseDuration(f.Breach.Timeout)
		if err != nil {
			return fmt.Errorf("parse breach.timeout: %w", err)
		}
		c.BreachTimeout = timeout
	}

	return nil
}
