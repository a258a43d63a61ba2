package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/nao1215/contentaudit/internal/model"
)

// SimpleWriter outputs human-readable text reports.
// This format is designed for terminal display with clear section
// formatting.
//
// Design decision: We use plain text with ASCII formatting rather than
// ANSI colors by default because:
// 1. It works in all terminals without compatibility issues
// 2. It's easier to pipe to files or other tools
// 3. Color can be added as an option later if needed
type SimpleWriter struct {
	baseWriter

	// verbose enables per-finding detail in the output.
	verbose bool
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithVerbose enables verbose output with per-finding details.
func WithVerbose(verbose bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.verbose = verbose
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{
		baseWriter: newBaseWriter(output),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the report in human-readable format.
func (w *SimpleWriter) Write(report *model.AuditReport) (int, error) {
	var sb strings.Builder

	w.writeHeader(&sb, report)
	w.writeSummary(&sb, report)
	w.writePhaseScores(&sb, report)
	w.writeFindings(&sb, report)

	return w.output.Write([]byte(sb.String()))
}

// writeHeader writes the report header with run information.
func (w *SimpleWriter) writeHeader(sb *strings.Builder, report *model.AuditReport) {
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
	sb.WriteString("                       CONTENT AUDIT REPORT\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n\n")

	sb.WriteString(fmt.Sprintf("Project:       %s\n", report.ProjectID))
	sb.WriteString(fmt.Sprintf("Audit Type:    %s\n", report.Type))
	sb.WriteString(fmt.Sprintf("Depth:         %s\n", report.Depth))
	sb.WriteString(fmt.Sprintf("Audit Date:    %s\n", report.DateAudited.Format("2006-01-02 15:04:05 MST")))
	sb.WriteString(fmt.Sprintf("Overall Score: %d (%s)\n", report.OverallScore(), scoreLabel(report.OverallScore())))

	if len(report.FailedPhases) > 0 {
		sb.WriteString(fmt.Sprintf("Status:        DEGRADED (%d phase(s) failed)\n", len(report.FailedPhases)))
	} else {
		sb.WriteString("Status:        Complete\n")
	}

	sb.WriteString("\n")
}

// writeSummary writes the severity summary section.
func (w *SimpleWriter) writeSummary(sb *strings.Builder, report *model.AuditReport) {
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString("SEVERITY SUMMARY\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")

	sb.WriteString(fmt.Sprintf("  CRITICAL: %d\n", report.CountBySeverity(model.SeverityCritical)))
	sb.WriteString(fmt.Sprintf("  HIGH:     %d\n", report.CountBySeverity(model.SeverityHigh)))
	sb.WriteString(fmt.Sprintf("  MEDIUM:   %d\n", report.CountBySeverity(model.SeverityMedium)))
	sb.WriteString(fmt.Sprintf("  LOW:      %d\n", report.CountBySeverity(model.SeverityLow)))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  TOTAL:    %d findings\n", report.TotalFindings()))
	sb.WriteString("\n")
}

// writePhaseScores writes the per-phase score section.
func (w *SimpleWriter) writePhaseScores(sb *strings.Builder, report *model.AuditReport) {
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString("PHASE SCORES\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")

	for i := range report.Results {
		r := &report.Results[i]
		if r.IsNeutral() {
			sb.WriteString(fmt.Sprintf("  %-24s %3d  (no applicable checks)\n", r.Phase, r.Score))
			continue
		}
		sb.WriteString(fmt.Sprintf("  %-24s %3d  (%s, %d/%d checks, %d findings)\n",
			r.Phase, r.Score, scoreLabel(r.Score), r.PassedChecks, r.TotalChecks, len(r.Findings)))
	}
	sb.WriteString("\n")
}

// writeFindings writes the findings section, most severe first.
func (w *SimpleWriter) writeFindings(sb *strings.Builder, report *model.AuditReport) {
	if !report.HasFindings() {
		return
	}

	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString("FINDINGS\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")

	for _, severity := range []model.Severity{
		model.SeverityCritical,
		model.SeverityHigh,
		model.SeverityMedium,
		model.SeverityLow,
	} {
		findings := findingsBySeverity(report, severity)
		if len(findings) == 0 {
			continue
		}

		sb.WriteString(fmt.Sprintf("[%s]\n", strings.ToUpper(severity.String())))
		for _, f := range findings {
			sb.WriteString(fmt.Sprintf("  * %s (%s)\n", f.Title, f.Phase))
			if f.AffectedElement != "" {
				sb.WriteString(fmt.Sprintf("      element:  %s\n", f.AffectedElement))
			}
			sb.WriteString(fmt.Sprintf("      %s\n", f.Description))
			if w.verbose {
				if f.WhyItMatters != "" {
					sb.WriteString(fmt.Sprintf("      why:      %s\n", f.WhyItMatters))
				}
				if f.SuggestedFix != "" {
					sb.WriteString(fmt.Sprintf("      fix:      %s\n", f.SuggestedFix))
				}
				if f.CurrentValue != "" || f.ExpectedValue != "" {
					sb.WriteString(fmt.Sprintf("      current:  %s\n", f.CurrentValue))
					sb.WriteString(fmt.Sprintf("      expected: %s\n", f.ExpectedValue))
				}
			}
		}
		sb.WriteString("\n")
	}
}
