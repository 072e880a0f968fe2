package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/footmap/footmap/internal/breach"
	"github.com/footmap/footmap/internal/config"
	"github.com/footmap/footmap/internal/log"
	"github.com/footmap/footmap/internal/model"
	"github.com/footmap/footmap/internal/pipeline"
	"github.com/footmap/footmap/internal/report"
	"github.com/spf13/cobra"
)

// NewScanCmd creates the scan command.
func NewScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan <identifier>...",
		Short: "Estimate the data exposure of one or more identifiers",
		Long: `Scan estimates the digital footprint of email addresses or usernames.

For each identifier it reports:
- Platform categories the identifier is likely registered on
- An aggregate exposure score (0-100) and risk level
- Known public data breaches (best-effort, from Have I Been Pwned)
- A prioritized cleanup plan

Examples:
  # Scan a single email address
  footmap scan user@gmail.com

  # Scan several identifiers concurrently
  footmap scan user@gmail.com someone@corp.com cooluser42

  # Force all identifiers to be treated as usernames
  footmap scan --type username cooluser42

  # Output JSON report to a file
  footmap scan --json --output report.json user@gmail.com

  # Skip the breach database lookup
  footmap scan --no-breach user@gmail.com

Configuration file (.footmap) example:
  breach:
    apiKey: "your-hibp-api-key"
    timeout: "10s"`,
		Args: cobra.ArbitraryArgs,
		RunE: runScanCmd,
	}

	cmd.Flags().StringP("type", "t", "",
		"Identifier type: email or username (default: guessed per identifier)")
	cmd.Flags().IntP("batch", "b", config.DefaultBatchSize,
		"Number of concurrent scans")
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .footmap in current or home directory)")
	cmd.Flags().Bool("no-breach", false,
		"Skip the breach database lookup")

	// Report flags
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed)")

	return cmd
}

// runScanCmd executes the scan command.
func runScanCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildScanConfig(cmd, args)
	if err != nil {
		return err
	}

	if err := cfg.ValidateScan(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	// Set up structured logging with identifier masking
	logger := log.NewSecureLogger(os.Stderr, cfg.Verbose)
	slog.SetDefault(logger)

	ctx, cancel := signalContext(logger)
	defer cancel()

	noBreach, err := cmd.Flags().GetBool("no-breach")
	if err != nil {
		return err
	}

	return runScan(ctx, cfg, noBreach, logger)
}

// signalContext returns a context cancelled on SIGINT/SIGTERM.
func signalContext(logger *slog.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("received shutdown signal, cancelling...")
		cancel()
	}()

	return ctx, cancel
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildScanConfig creates a Config from the config file, environment,
// and cobra command flags, in ascending priority.
func buildScanConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	// User explicitly specified a config file that doesn't exist
	if configPath != "" && config.FindConfigFile(configPath) == "" {
		return nil, fmt.Errorf("configuration file not found: %s", configPath)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	cfg.IdentifierType, err = cmd.Flags().GetString("type")
	if err != nil {
		return nil, err
	}

	cfg.BatchSize, err = cmd.Flags().GetInt("batch")
	if err != nil {
		return nil, err
	}

	cfg.JSONReport, err = cmd.Flags().GetBool("json")
	if err != nil {
		return nil, err
	}

	cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown")
	if err != nil {
		return nil, err
	}

	cfg.ReportFile, err = cmd.Flags().GetString("output")
	if err != nil {
		return nil, err
	}

	cfg.Verbose = getVerboseFlag(cmd)
	cfg.Identifiers = args

	return cfg, nil
}

// runScan executes the scan and writes the report.
func runScan(ctx context.Context, cfg *config.Config, noBreach bool, logger *slog.Logger) error {
	scannerOpts := []pipeline.ScannerOption{
		pipeline.WithScannerLogger(logger),
	}
	if !noBreach {
		scannerOpts = append(scannerOpts, pipeline.WithBreachSource(
			breach.NewClient(
				breach.WithBaseURL(cfg.BreachAPIBaseURL),
				breach.WithAPIKey(cfg.BreachAPIKey),
				breach.WithTimeout(cfg.BreachTimeout),
				breach.WithLogger(logger),
			),
		))
	}
	scanner := pipeline.NewScanner(scannerOpts...)

	targets := make([]pipeline.BatchTarget, len(cfg.Identifiers))
	for i, identifier := range cfg.Identifiers {
		targets[i] = pipeline.BatchTarget{
			Identifier: identifier,
			Type:       resolveIdentifierType(cfg, identifier),
		}
	}

	fmt.Printf("Scanning %d identifier(s)...\n", len(targets))
	startTime := time.Now()

	bp := pipeline.NewBatchProcessor(scanner,
		pipeline.WithConcurrency(cfg.BatchSize),
		pipeline.WithBatchLogger(logger),
	)

	reports, err := bp.ProcessBatch(ctx, targets)
	if err != nil {
		return fmt.Errorf("scan aborted: %w", err)
	}

	fmt.Printf("Scan completed in %s\n", time.Since(startTime).Round(time.Millisecond))

	return outputReports(cfg, reports)
}

// resolveIdentifierType picks the identifier type for one CLI target.
// An explicit --type wins; otherwise the type is guessed from the shape.
func resolveIdentifierType(cfg *config.Config, identifier string) model.IdentifierType {
	if cfg.IdentifierType != "" {
		return model.ParseIdentifierType(cfg.IdentifierType)
	}
	return model.GuessIdentifierType(identifier)
}

// outputReports writes the scan reports in the requested format.
func outputReports(cfg *config.Config, reports []*model.ScanReport) error {
	if cfg.ReportFile == "" {
		return writeReports(cfg, os.Stdout, reports)
	}

	// Create directories if they don't exist
	dir := filepath.Dir(cfg.ReportFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	// Reports contain the scanned identifiers, so owner-only permissions
	f, err := os.OpenFile(cfg.ReportFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	return closeReport(f, writeReports(cfg, f, reports))
}

// writeReports renders the reports onto the output in the configured format.
func writeReports(cfg *config.Config, output io.Writer, reports []*model.ScanReport) error {
	writer := newReportWriter(cfg, output)

	var err error
	if len(reports) == 1 {
		_, err = writer.Write(reports[0])
	} else {
		_, err = writer.WriteBatch(reports)
	}
	return err
}

// closeReport closes the report file. A close failure can mean the last
// buffered write never hit the disk, so it is surfaced when the writes
// themselves succeeded.
func closeReport(f io.Closer, writeErr error) error {
	closeErr := f.Close()
	if writeErr != nil {
		return writeErr
	}
	if closeErr != nil {
		return fmt.Errorf("failed to finalize output file: %w", closeErr)
	}
	return nil
}

// newReportWriter picks the report writer for the configured format.
func newReportWriter(cfg *config.Config, output io.Writer) report.Writer {
	switch {
	case cfg.JSONReport:
		return report.NewFullJSONWriter(output, getVersion(), report.WithPrettyPrint())
	case cfg.MarkdownReport:
		return report.NewMarkdownWriter(output)
	default:
		return report.NewSimpleWriter(output, report.WithVerbose(cfg.Verbose))
	}
}
