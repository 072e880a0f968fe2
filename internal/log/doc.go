// Package log provides secure logging functionality with automatic sanitization
// of sensitive information, built on top of the standard slog package.
//
// This package extends slog to provide:
//   - Automatic sanitization of sensitive values (API keys, tokens, secrets)
//   - Masking of scanned identifiers (email addresses are PII)
//   - Configurable log levels with verbose mode support
//   - Consistent log formatting across the application
//
// # Privacy Features
//
// The SecureHandler automatically sanitizes sensitive information in log output:
//   - HTTP headers (Authorization, Cookie, hibp-api-key)
//   - Secret values detected by pattern matching (passwords, tokens, keys)
//   - Email addresses appearing in attribute values
//
// footmap is a privacy tool: the identifiers users submit for scanning are
// exactly the kind of personal data the tool helps them protect, so they
// never appear unmasked in logs, even in verbose mode.
//
// # Usage
//
//	// Create a secure logger
//	logger := log.NewSecureLogger(os.Stderr, true) // verbose=true
//
//	// Use as a standard slog.Logger
//	logger.Info("scan requested",
//	    "identifier", "user@gmail.com",  // Will be masked
//	    "type", "email",
//	)
//
//	// Set as default logger
//	slog.SetDefault(logger)
package log
