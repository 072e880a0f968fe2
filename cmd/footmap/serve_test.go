package main

import (
	"path/filepath"
	"testing"

	"github.com/footmap/footmap/internal/config"
)

// TestNewServeCmd tests the serve command creation.
func TestNewServeCmd(t *testing.T) {
	t.Parallel()

	cmd := NewServeCmd()

	t.Run("has correct use", func(t *testing.T) {
		t.Parallel()
		if cmd.Use != "serve" {
			t.Errorf("expected use 'serve', got %q", cmd.Use)
		}
	})

	t.Run("has short description", func(t *testing.T) {
		t.Parallel()
		if cmd.Short == "" {
			t.Error("expected non-empty short description")
		}
	})

	t.Run("has listen flag", func(t *testing.T) {
		t.Parallel()
		flag := cmd.Flags().Lookup("listen")
		if flag == nil {
			t.Fatal("expected listen flag")
		}
		if flag.Shorthand != "l" {
			t.Errorf("expected shorthand 'l', got %q", flag.Shorthand)
		}
	})

	t.Run("has redis flag", func(t *testing.T) {
		t.Parallel()
		flag := cmd.Flags().Lookup("redis")
		if flag == nil {
			t.Fatal("expected redis flag")
		}
		if flag.Shorthand != "r" {
			t.Errorf("expected shorthand 'r', got %q", flag.Shorthand)
		}
	})

	t.Run("rate-limit defaults to unset", func(t *testing.T) {
		t.Parallel()
		flag := cmd.Flags().Lookup("rate-limit")
		if flag == nil {
			t.Fatal("expected rate-limit flag")
		}
		if flag.DefValue != "-1" {
			t.Errorf("expected default -1, got %q", flag.DefValue)
		}
	})

	t.Run("has config flag", func(t *testing.T) {
		t.Parallel()
		if cmd.Flags().Lookup("config") == nil {
			t.Error("expected config flag")
		}
	})
}

// TestBuildServeConfig tests flag to config mapping.
func TestBuildServeConfig(t *testing.T) {
	t.Parallel()

	t.Run("keeps defaults when flags are unset", func(t *testing.T) {
		t.Parallel()

		cmd := NewServeCmd()
		cmd.Flags().Bool("verbose", false, "")

		cfg, err := buildServeConfig(cmd)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if cfg.ListenAddress != config.DefaultListenAddress {
			t.Errorf("expected default listen address, got %q", cfg.ListenAddress)
		}
		if cfg.RateLimitPerHour != config.DefaultRateLimitPerHour {
			t.Errorf("expected default rate limit, got %d", cfg.RateLimitPerHour)
		}
	})

	t.Run("flags override defaults", func(t *testing.T) {
		t.Parallel()

		cmd := NewServeCmd()
		cmd.Flags().Bool("verbose", false, "")
		if err := cmd.Flags().Set("listen", ":9000"); err != nil {
			t.Fatal(err)
		}
		if err := cmd.Flags().Set("redis", "localhost:6379"); err != nil {
			t.Fatal(err)
		}
		if err := cmd.Flags().Set("rate-limit", "100"); err != nil {
			t.Fatal(err)
		}

		cfg, err := buildServeConfig(cmd)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if cfg.ListenAddress != ":9000" {
			t.Errorf("expected listen :9000, got %q", cfg.ListenAddress)
		}
		if cfg.RedisAddress != "localhost:6379" {
			t.Errorf("expected redis localhost:6379, got %q", cfg.RedisAddress)
		}
		if cfg.RateLimitPerHour != 100 {
			t.Errorf("expected rate limit 100, got %d", cfg.RateLimitPerHour)
		}
	})

	t.Run("explicit zero disables rate limiting", func(t *testing.T) {
		t.Parallel()

		cmd := NewServeCmd()
		cmd.Flags().Bool("verbose", false, "")
		if err := cmd.Flags().Set("rate-limit", "0"); err != nil {
			t.Fatal(err)
		}

		cfg, err := buildServeConfig(cmd)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.RateLimitPerHour != 0 {
			t.Errorf("expected rate limit 0, got %d", cfg.RateLimitPerHour)
		}
	})

	t.Run("missing explicit config file is an error", func(t *testing.T) {
		t.Parallel()

		cmd := NewServeCmd()
		cmd.Flags().Bool("verbose", false, "")
		if err := cmd.Flags().Set("config", filepath.Join(t.TempDir(), "nope.yaml")); err != nil {
			t.Fatal(err)
		}

		if _, err := buildServeConfig(cmd); err == nil {
			t.Error("expected an error for a missing config file")
		}
	})
}
