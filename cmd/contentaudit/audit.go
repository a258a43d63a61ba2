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

	"github.com/spf13/cobra"

	"github.com/nao1215/contentaudit/internal/analyzer"
	"github.com/nao1215/contentaudit/internal/audit"
	"github.com/nao1215/contentaudit/internal/config"
	"github.com/nao1215/contentaudit/internal/log"
	"github.com/nao1215/contentaudit/internal/phase"
	"github.com/nao1215/contentaudit/internal/report"
)

// NewAuditCmd creates the audit command.
func NewAuditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Run a content audit from a request file",
		Long: `Audit runs the requested phases against a content project and prints
the scored report.

The request file is YAML describing one audit run:

  type: internal            # internal | external
  project_id: my-project
  depth: quick              # quick | deep
  language: en
  phases:                   # omit to run every phase
    - strategicFoundation
    - eavSystem
  include_fact_validation: false

Raw analyzer output is read from the --analysis directory, one JSON file
per analyzer domain (foundation.json, eav.json, quality.json, flow.json).
Phases whose file is absent score neutral.

Examples:
  # Run all phases with analyzer output from ./analysis
  contentaudit audit -f request.yaml --analysis ./analysis

  # Output JSON report to a file
  contentaudit audit -f request.yaml --analysis ./analysis --json -o report.json

  # Markdown report for sharing
  contentaudit audit -f request.yaml --analysis ./analysis --markdown`,
		Args: cobra.NoArgs,
		RunE: runAuditCmd,
	}

	cmd.Flags().StringP("request", "f", "", "Audit request file (YAML; falls back to the XDG config dir)")
	cmd.Flags().StringP("analysis", "a", "", "Directory of raw analyzer output files")
	cmd.Flags().DurationP("timeout", "t", config.DefaultTimeout, "Overall audit timeout")
	cmd.Flags().IntP("concurrency", "b", config.DefaultConcurrency, "Maximum phases running at once")

	// Report flags
	cmd.Flags().BoolP("json", "j", false, "Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false, "Output Markdown report (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "", "Write report to specified file path (creates directories if needed)")

	return cmd
}

// runAuditCmd executes the audit command.
func runAuditCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	// Set up structured logging with credential redaction
	logger := log.NewSecureLogger(cmd.ErrOrStderr(), cfg.Verbose)
	slog.SetDefault(logger)

	// Set up context with signal handling for graceful shutdown.
	// Cancellation is cooperative: phases unable to finish yield neutral
	// results, so an interrupted audit still prints a partial report.
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			logger.Info("received shutdown signal, cancelling...")
			cancel()
		case <-ctx.Done():
		}
	}()

	return runAudit(ctx, cmd.OutOrStdout(), cfg, logger)
}

// buildConfig creates a Config from cobra command flags.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()

	var err error
	cfg.RequestFile, err = cmd.Flags().GetString("request")
	if err != nil {
		return nil, err
	}
	if cfg.RequestFile == "" {
		// Fall back to the XDG config location when it holds a request.
		if p := config.DefaultRequestFile(); fileExists(p) {
			cfg.RequestFile = p
		}
	}
	cfg.AnalysisDir, err = cmd.Flags().GetString("analysis")
	if err != nil {
		return nil, err
	}
	cfg.Timeout, err = cmd.Flags().GetDuration("timeout")
	if err != nil {
		return nil, err
	}
	cfg.Concurrency, err = cmd.Flags().GetInt("concurrency")
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

	return cfg, nil
}

// fileExists reports whether path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
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

// runAudit loads the request, assembles the engine, runs the audit, and
// writes the report.
func runAudit(ctx context.Context, stdout io.Writer, cfg *config.Config, logger *slog.Logger) error {
	req, err := config.LoadRequest(cfg.RequestFile)
	if err != nil {
		return err
	}

	var analyzers phase.Analyzers
	if cfg.AnalysisDir != "" {
		analyzers = analyzer.FromDirectory(cfg.AnalysisDir)
	}

	registry, err := phase.NewDefaultRegistry(analyzers, logger)
	if err != nil {
		return fmt.Errorf("assemble phase registry: %w", err)
	}

	orchestrator := audit.New(registry,
		audit.WithLogger(logger),
		audit.WithConcurrency(cfg.Concurrency),
	)

	result, err := orchestrator.Run(ctx, req)
	if err != nil {
		return err
	}

	writer, closeOutput, err := buildWriter(stdout, cfg)
	if err != nil {
		return err
	}
	defer closeOutput()

	if _, err := writer.Write(result); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// buildWriter selects the report writer and output destination from the
// configuration. The returned func closes the output file, if any.
func buildWriter(stdout io.Writer, cfg *config.Config) (report.Writer, func(), error) {
	output := stdout
	closeOutput := func() {}

	if cfg.ReportFile != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.ReportFile), 0o750); err != nil {
			return nil, nil, fmt.Errorf("create report directory: %w", err)
		}
		f, err := os.Create(cfg.ReportFile) //nolint:gosec // User-provided output path is intentional
		if err != nil {
			return nil, nil, fmt.Errorf("create report file: %w", err)
		}
		output = f
		closeOutput = func() { _ = f.Close() } //nolint:errcheck // Best-effort close on report file
	}

	switch {
	case cfg.JSONReport:
		return report.NewJSONWriter(output, report.WithPrettyPrint()), closeOutput, nil
	case cfg.MarkdownReport:
		return report.NewMarkdownWriter(output), closeOutput, nil
	default:
		return report.NewSimpleWriter(output, report.WithVerbose(cfg.Verbose)), closeOutput, nil
	}
}
