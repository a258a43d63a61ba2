package config

import (
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

// Default configuration values.
const (
	// DefaultTimeout bounds a whole audit run. Deep audits lean on
	// model-backed analyzers that can take tens of seconds per phase, so
	// the default is generous; quick audits finish far sooner and simply
	// never hit it.
	DefaultTimeout = 120 * time.Second

	// DefaultConcurrency caps how many phases run at once. Phases are
	// independent, but most hosts back several analyzers with the same
	// rate-limited model endpoint. Four keeps the pipe busy without
	// tripping provider limits; raise it when analyzers are local.
	DefaultConcurrency = 4

	// AppName is the application name used for XDG directory paths.
	AppName = "contentaudit"
)

// Config holds all configuration options for the contentaudit CLI.
// This struct is populated from CLI flags and passed through the
// application via dependency injection rather than global state.
//
// Design decision: We use a single flat struct instead of nested structs
// for simplicity. The number of options is manageable, and nesting would
// add complexity without significant benefit.
type Config struct {
	// RequestFile is the path to the YAML audit request file.
	RequestFile string

	// AnalysisDir is the directory holding raw analyzer output files.
	// When empty, no analyzers are bound and every phase scores neutral,
	// which is still useful for validating requests and report plumbing.
	AnalysisDir string

	// Timeout bounds the whole audit run. Phases unable to finish in
	// time yield neutral results rather than blocking the report.
	Timeout time.Duration

	// Concurrency is the maximum number of phases running simultaneously.
	Concurrency int

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool

	// JSONReport enables JSON report output instead of the human-readable
	// format. Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport enables Markdown report output instead of the
	// human-readable format. Mutually exclusive with JSONReport.
	MarkdownReport bool

	// ReportFile is the output file path for the report.
	// When set, the report is written to this file instead of stdout.
	// Directories are created automatically if they don't exist.
	ReportFile string
}

// NewConfig creates a new Config with default values.
// Users can override specific values after creation.
//
// Design decision: We use a constructor function instead of relying on
// zero values because several defaults are non-zero (timeout,
// concurrency). This also serves as documentation of what the defaults
// are.
func NewConfig() *Config {
	return &Config{
		Timeout:     DefaultTimeout,
		Concurrency: DefaultConcurrency,
	}
}

// Validate checks if the configuration is valid.
// It returns the first problem found as a sentinel error.
func (c *Config) Validate() error {
	if c.RequestFile == "" {
		return ErrNoRequestFile
	}
	if c.Timeout <= 0 {
		return ErrInvalidTimeout
	}
	if c.Concurrency <= 0 {
		return ErrInvalidConcurrency
	}
	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}
	return nil
}

// XDGDataDir returns the XDG data directory for contentaudit.
// This follows the XDG Base Directory Specification.
// On Linux: ~/.local/share/contentaudit
// On macOS: ~/Library/Application Support/contentaudit
// On Windows: %LOCALAPPDATA%\contentaudit
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// XDGConfigDir returns the XDG config directory for contentaudit.
// On Linux: ~/.config/contentaudit
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// DefaultRequestFile returns the request file consulted when no --request
// flag is given: <XDGConfigDir>/request.yaml.
func DefaultRequestFile() string {
	return filepath.Join(XDGConfigDir(), "request.yaml")
}
