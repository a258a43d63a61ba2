// Package main provides the entry point for the contentaudit CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for contentaudit.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contentaudit",
		Short: "Multi-phase content quality audit engine",
		Long: `contentaudit evaluates a content project across up to fifteen independent
audit dimensions (phases) and produces a normalized, severity-weighted
score plus actionable findings per phase.

Analyzers run outside this tool; point --analysis at a directory of their
raw JSON output and contentaudit normalizes, scores, and reports it.
Phases without analyzer output score neutral (100, zero checks).`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewAuditCmd())
	cmd.AddCommand(NewPhasesCmd())
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
