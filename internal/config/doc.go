// Package config provides configuration structures and utilities for footmap.
// It defines the main configuration options for scanning identifiers,
// serving the HTTP API, and report generation preferences.
package config
