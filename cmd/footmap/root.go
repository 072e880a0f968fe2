// Package main provides the entry point for the footmap CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for footmap.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "footmap",
		Short: "Personal data-exposure estimator",
		Long: `footmap estimates the digital footprint of an email address or username.

It reports which categories of online platforms the identifier is likely
registered on, an aggregate exposure score, known public data breaches,
and a prioritized cleanup plan. The output is advisory and derived from
static lookup tables, not live account probing.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewScanCmd())
	cmd.AddCommand(NewServeCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
