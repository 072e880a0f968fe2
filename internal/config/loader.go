package config

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the default configuration file name.
const DefaultConfigFile = ".footmap"

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// Environment variable names recognized by LoadEnv.
// They follow the upstream service conventions: HIBP_API_KEY matches the
// breach database's own documentation, the rest carry a FOOTMAP_ prefix.
const (
	envBreachAPIKey     = "HIBP_API_KEY"
	envRedisAddress     = "FOOTMAP_REDIS_ADDR"
	envRedisPassword    = "FOOTMAP_REDIS_PASSWORD"
	envListenAddress    = "FOOTMAP_LISTEN_ADDR"
	envRateLimitPerHour = "FOOTMAP_RATE_LIMIT_PER_HOUR"
)

// LoadConfigFile loads configuration overrides from a YAML file.
// If the file does not exist, it returns ErrConfigNotFound.
// Callers should handle this error appropriately based on whether
// the config file path was explicitly specified by the user.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cf File
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, err
	}

	return &cf, nil
}

// FindConfigFile searches for the configuration file in the following order:
// 1. If configPath is specified, use it directly
// 2. Look for .footmap in the current directory
// 3. Look for .footmap in the user's home directory
//
// Returns the path to the configuration file if found, or empty string if not found.
func FindConfigFile(configPath string) string {
	// If explicit path is provided, use it
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	// Check current directory
	cwd, err := os.Getwd()
	if err == nil {
		cwdConfig := filepath.Join(cwd, DefaultConfigFile)
		if _, err := os.Stat(cwdConfig); err == nil {
			return cwdConfig
		}
	}

	// Check home directory
	home, err := os.UserHomeDir()
	if err == nil {
		homeConfig := filepath.Join(home, DefaultConfigFile)
		if _, err := os.Stat(homeConfig); err == nil {
			return homeConfig
		}
	}

	return ""
}

// LoadEnv applies environment variable overrides onto the config.
// A .env file in the current directory is loaded first if present;
// real environment variables win over .env entries, and both win over
// config file values.
func LoadEnv(c *Config) error {
	// godotenv never overwrites variables already set in the environment
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return err
	}

	if v := os.Getenv(envBreachAPIKey); v != "" {
		c.BreachAPIKey = v
	}
	if v := os.Getenv(envRedisAddress); v != "" {
		c.RedisAddress = v
	}
	if v := os.Getenv(envRedisPassword); v != "" {
		c.RedisPassword = v
	}
	if v := os.Getenv(envListenAddress); v != "" {
		c.ListenAddress = v
	}
	if v := os.Getenv(envRateLimitPerHour); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil {
			return errors.New("invalid " + envRateLimitPerHour + ": must be an integer")
		}
		c.RateLimitPerHour = limit
	}

	return nil
}

// Load builds the effective configuration by layering, lowest priority
// first: built-in defaults, the config file (if found), environment
// variables. The returned config is not yet validated.
func Load(configPath string) (*Config, error) {
	c := NewConfig()

	if path := FindConfigFile(configPath); path != "" {
		cf, err := LoadConfigFile(path)
		if err != nil {
			return nil, err
		}
		if err := cf.ApplyTo(c); err != nil {
			return nil, err
		}
		c.ConfigFilePath = path
	}

	if err := LoadEnv(c); err != nil {
		return nil, err
	}

	return c, nil
}
