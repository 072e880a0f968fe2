package config

import "errors"

// Configuration validation errors.
// These errors are returned by the Validate methods and provide specific
// information about what is wrong with the configuration.
//
// Design decision: We use package-level sentinel errors rather than
// creating new error instances in Validate(). This allows callers to use
// errors.Is() for programmatic error handling while still providing
// human-readable messages. Using errors.New() here rather than fmt.Errorf()
// because we don't need to include dynamic values in these messages.
var (
	// ErrNoIdentifier is returned when a scan run has nothing to scan.
	ErrNoIdentifier = errors.New("no identifier specified: provide an email address or username")

	// ErrInvalidBreachTimeout is returned when the breach lookup timeout
	// is not positive. A zero or negative timeout would cause immediate
	// lookup failures.
	ErrInvalidBreachTimeout = errors.New("invalid breach timeout: must be positive")

	// ErrInvalidBatchSize is returned when the batch size is not positive.
	// A batch size of zero would mean no concurrent scans, effectively
	// stopping the scanning process.
	ErrInvalidBatchSize = errors.New("invalid batch size: must be positive")

	// ErrInvalidRateLimit is returned when the per-window scan limit is
	// negative. Use 0 to disable rate limiting entirely.
	ErrInvalidRateLimit = errors.New("invalid rate limit: must be non-negative")

	// ErrInvalidRateLimitWindow is returned when rate limiting is enabled
	// with a non-positive window.
	ErrInvalidRateLimitWindow = errors.New("invalid rate limit window: must be positive")

	// ErrConflictingReportFormats is returned when both --json and --markdown
	// are specified. Only one output format can be used at a time.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")

	// ErrInvalidIdentifierType is returned when --type is neither "email"
	// nor "username".
	ErrInvalidIdentifierType = errors.New("invalid identifier type: must be \"email\" or \"username\"")

	// ErrInvalidListenAddress is returned when the serve command has no
	// address to bind.
	ErrInvalidListenAddress = errors.New("invalid listen address: must not be empty")
)
