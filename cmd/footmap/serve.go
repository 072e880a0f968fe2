package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/footmap/footmap/internal/breach"
	"github.com/footmap/footmap/internal/config"
	"github.com/footmap/footmap/internal/log"
	"github.com/footmap/footmap/internal/pipeline"
	"github.com/footmap/footmap/internal/server"
	"github.com/spf13/cobra"
)

// NewServeCmd creates the serve command.
func NewServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the footmap HTTP API",
		Long: `Serve runs the footmap HTTP API.

Endpoints:
  GET  /           service banner
  GET  /api/health liveness probe
  POST /api/scan   run a scan for one identifier

Scans are rate limited per client IP. With a redis address configured
the counts are shared between instances; without one an in-memory
limiter is used.

Examples:
  # Serve on the default address (:8000)
  footmap serve

  # Serve on a custom address with a shared redis limiter
  footmap serve --listen :9000 --redis localhost:6379

  # Allow 100 scans per client per hour
  footmap serve --rate-limit 100`,
		Args: cobra.NoArgs,
		RunE: runServeCmd,
	}

	cmd.Flags().StringP("listen", "l", "",
		"Listen address (default: "+config.DefaultListenAddress+")")
	cmd.Flags().StringP("redis", "r", "",
		"Redis address for the shared rate limiter (e.g., localhost:6379)")
	cmd.Flags().Int("rate-limit", -1,
		"Scans allowed per client per window; 0 disables rate limiting")
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .footmap in current or home directory)")

	return cmd
}

// runServeCmd executes the serve command.
func runServeCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildServeConfig(cmd)
	if err != nil {
		return err
	}

	if err := cfg.ValidateServe(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := log.NewSecureLogger(os.Stderr, cfg.Verbose)
	slog.SetDefault(logger)

	ctx, cancel := signalContext(logger)
	defer cancel()

	scanner := pipeline.NewScanner(
		pipeline.WithScannerLogger(logger),
		pipeline.WithBreachSource(breach.NewClient(
			breach.WithBaseURL(cfg.BreachAPIBaseURL),
			breach.WithAPIKey(cfg.BreachAPIKey),
			breach.WithTimeout(cfg.BreachTimeout),
			breach.WithLogger(logger),
		)),
	)

	srv := server.New(cfg, scanner, server.WithServerLogger(logger))
	return srv.Run(ctx)
}

// buildServeConfig creates a Config from the config file, environment,
// and cobra command flags, in ascending priority.
func buildServeConfig(cmd *cobra.Command) (*config.Config, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	if configPath != "" && config.FindConfigFile(configPath) == "" {
		return nil, fmt.Errorf("configuration file not found: %s", configPath)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	listen, err := cmd.Flags().GetString("listen")
	if err != nil {
		return nil, err
	}
	if listen != "" {
		cfg.ListenAddress = listen
	}

	redisAddr, err := cmd.Flags().GetString("redis")
	if err != nil {
		return nil, err
	}
	if redisAddr != "" {
		cfg.RedisAddress = redisAddr
	}

	rateLimit, err := cmd.Flags().GetInt("rate-limit")
	if err != nil {
		return nil, err
	}
	if rateLimit >= 0 {
		cfg.RateLimitPerHour = rateLimit
	}

	cfg.Verbose = getVerboseFlag(cmd)

	return cfg, nil
}
