package config

import (
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

// Default configuration values.
// These values are chosen to match typical personal-use scanning patterns
// and the upstream breach database defaults where applicable.
const (
	// DefaultListenAddress is the HTTP API listen address.
	// Port 8000 keeps parity with common local API development setups
	// so frontends can be pointed at the service without extra wiring.
	DefaultListenAddress = ":8000"

	// DefaultBreachAPIBaseURL is the Have I Been Pwned v3 API root.
	// The breach client appends the per-identifier resource path.
	// The breach lookup works without an API key on the free tier,
	// though unauthenticated requests are heavily throttled upstream.
	DefaultBreachAPIBaseURL = "https://haveibeenpwned.com/api/v3"

	// DefaultBreachTimeout bounds each upstream breach lookup.
	// Breach data is best-effort: a slow upstream must not hold a scan
	// hostage, and 10 seconds is generous for a single HTTPS request.
	DefaultBreachTimeout = 10 * time.Second

	// DefaultRateLimitPerHour is the number of scans one client address
	// may request per rolling window. Scans are cheap but the upstream
	// breach API is not, so the default is deliberately conservative.
	DefaultRateLimitPerHour = 10

	// DefaultRateLimitWindow is the rolling window for the rate limiter.
	// One hour matches the granularity users expect from "N scans per hour"
	// messaging in rejection responses.
	DefaultRateLimitWindow = time.Hour

	// DefaultBatchSize of 10 concurrent scans balances throughput with
	// resource usage. The network-bound breach lookup dominates scan time,
	// so modest concurrency already saturates typical connections.
	DefaultBatchSize = 10

	// AppName is the application name used for XDG directory paths.
	AppName = "footmap"

	// DefaultCORSOrigin is the allowed browser origin for the HTTP API.
	// It matches the Vite dev server default used by the bundled frontend.
	// Additional origins can be configured via the config file.
	DefaultCORSOrigin = "http://localhost:5173"
)

// Config holds all configuration options for footmap.
// This struct is designed to be populated from CLI flags, the optional
// config file, and environment variables, then passed through the
// application via dependency injection rather than global state.
//
// Design decision: We use a single flat struct instead of nested structs
// (e.g., ServerConfig, BreachConfig) for simplicity. The number of options
// is manageable, and nesting would add complexity without significant benefit.
// If the configuration grows significantly, consider refactoring into sub-structs.
type Config struct {
	// ListenAddress is the HTTP API bind address in "host:port" format.
	// Only used by the serve command.
	ListenAddress string

	// CORSOrigins are the browser origins allowed to call the HTTP API.
	CORSOrigins []string

	// RateLimitPerHour is the maximum number of scans one client address
	// may request per RateLimitWindow. Zero disables rate limiting.
	RateLimitPerHour int

	// RateLimitWindow is the rolling window for the rate limiter.
	RateLimitWindow time.Duration

	// RedisAddress is the address of the redis instance backing the
	// rate limiter in "host:port" format. When empty, an in-memory
	// limiter is used instead; counts are then lost on restart and not
	// shared between instances.
	RedisAddress string

	// RedisPassword is the optional redis AUTH password.
	RedisPassword string

	// RedisDB is the redis logical database number.
	RedisDB int

	// BreachAPIBaseURL is the base URL of the upstream breach database.
	BreachAPIBaseURL string

	// BreachAPIKey authenticates against the upstream breach database.
	// Optional: without it, lookups still work on the free tier.
	BreachAPIKey string

	// BreachTimeout bounds each upstream breach lookup request.
	BreachTimeout time.Duration

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool

	// BatchSize is the number of concurrent scans when processing
	// multiple identifiers from the CLI.
	BatchSize int

	// ConfigFilePath is the path to the configuration file.
	// If empty, the tool searches for .footmap in the current directory
	// and then in the user's home directory.
	ConfigFilePath string

	// JSONReport enables JSON report output instead of human-readable format.
	// Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport enables Markdown report output instead of
	// human-readable format. Mutually exclusive with JSONReport.
	MarkdownReport bool

	// ReportFile is the output file path for the report.
	// When set, the report is written to this file instead of stdout.
	// Directories are created automatically if they don't exist.
	ReportFile string

	// Identifiers is the list of email addresses or usernames to scan.
	// Only used by the scan command; the HTTP API takes identifiers
	// per request.
	Identifiers []string

	// IdentifierType forces the identifier type ("email" or "username")
	// for all CLI targets. When empty, the type is guessed per identifier:
	// anything containing "@" is treated as an email.
	IdentifierType string
}

// NewConfig creates a new Config with default values.
// All fields are set to safe, sensible defaults that work for most use cases.
// Users can override specific values after creation.
//
// Design decision: We use a constructor function instead of relying on
// zero values because many defaults are non-zero (e.g., timeout, rate limit).
// This also serves as documentation of what the defaults are.
func NewConfig() *Config {
	return &Config{
		ListenAddress:    DefaultListenAddress,
		CORSOrigins:      []string{DefaultCORSOrigin},
		RateLimitPerHour: DefaultRateLimitPerHour,
		RateLimitWindow:  DefaultRateLimitWindow,
		BreachAPIBaseURL: DefaultBreachAPIBaseURL,
		BreachTimeout:    DefaultBreachTimeout,
		BatchSize:        DefaultBatchSize,
	}
}

// XDGDataDir returns the XDG data directory for footmap.
// This follows the XDG Base Directory Specification.
// On Linux: ~/.local/share/footmap
// On macOS: ~/Library/Application Support/footmap
// On Windows: %LOCALAPPDATA%\footmap
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// XDGConfigDir returns the XDG config directory for footmap.
// This follows the XDG Base Directory Specification.
// On Linux: ~/.config/footmap
// On macOS: ~/Library/Application Support/footmap
// On Windows: %APPDATA%\footmap
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// XDGCacheDir returns the XDG cache directory for footmap.
// This follows the XDG Base Directory Specification.
// On Linux: ~/.cache/footmap
// On macOS: ~/Library/Caches/footmap
// On Windows: %LOCALAPPDATA%\footmap\cache
func XDGCacheDir() string {
	return filepath.Join(xdg.CacheHome, AppName)
}

// Validate checks if the configuration is valid.
// It returns a specific error describing what is invalid.
//
// Design decision: We validate at the config level rather than at each
// point of use to fail fast and provide clear error messages upfront.
// This is called once after CLI parsing, before any scanning begins.
//
// We chose to return the first error found rather than collecting all errors
// because fixing one error often makes others irrelevant.
func (c *Config) Validate() error {
	// Zero timeout would cause every breach lookup to fail immediately
	if c.BreachTimeout <= 0 {
		return ErrInvalidBreachTimeout
	}

	// BatchSize must be positive; zero would mean no scanning
	if c.BatchSize <= 0 {
		return ErrInvalidBatchSize
	}

	// A negative limit is invalid; zero means rate limiting is disabled
	if c.RateLimitPerHour < 0 {
		return ErrInvalidRateLimit
	}

	// The window must be positive whenever rate limiting is enabled
	if c.RateLimitPerHour > 0 && c.RateLimitWindow <= 0 {
		return ErrInvalidRateLimitWindow
	}

	// JSONReport and MarkdownReport are mutually exclusive
	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}

	if c.IdentifierType != "" && c.IdentifierType != "email" && c.IdentifierType != "username" {
		return ErrInvalidIdentifierType
	}

	return nil
}

// ValidateScan checks the configuration for a CLI scan run.
// In addition to the general Validate rules, at least one identifier
// must be provided.
func (c *Config) ValidateScan() error {
	if err := c.Validate(); err != nil {
		return err
	}

	if len(c.Identifiers) == 0 {
		return ErrNoIdentifier
	}

	return nil
}

// ValidateServe checks the configuration for an HTTP API run.
func (c *Config) ValidateServe() error {
	if err := c.Validate(); err != nil {
		return err
	}

	if c.ListenAddress == "" {
		return ErrInvalidListenAddress
	}

	return nil
}
