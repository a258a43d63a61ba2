package report

import (
	"io"
	"strconv"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"

	"github.com/nao1215/contentaudit/internal/model"
)

// MarkdownWriter outputs reports in Markdown format.
// This format is designed for documentation and sharing.
//
// Design decision: We use the nao1215/markdown library for fluent markdown
// generation which provides:
// 1. Type-safe markdown generation
// 2. Support for tables, lists, and code blocks
// 3. GitHub-flavored markdown alerts
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the full report in Markdown format.
func (w *MarkdownWriter) Write(report *model.AuditReport) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, report)
	w.writeSummary(md, report)
	w.writePhaseScores(md, report)
	w.writeFindings(md, report)

	return len(md.String()), md.Build()
}

// writeHeader writes the report header with run information.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, report *model.AuditReport) {
	md.H1("Content Audit Report")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Project", "`" + report.ProjectID + "`"},
			{"Audit Type", string(report.Type)},
			{"Depth", string(report.Depth)},
			{"Audit Date", report.DateAudited.Format("2006-01-02 15:04:05 MST")},
			{"Overall Score", strconv.Itoa(report.OverallScore()) + " (" + scoreLabel(report.OverallScore()) + ")"},
		},
	})
	md.PlainText("")
}

// writeSummary writes the severity summary section.
func (w *MarkdownWriter) writeSummary(md *markdown.Markdown, report *model.AuditReport) {
	md.H2("Severity Summary")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Severity", "Count"},
		Rows: [][]string{
			{"🔴 Critical", strconv.Itoa(report.CountBySeverity(model.SeverityCritical))},
			{"🟠 High", strconv.Itoa(report.CountBySeverity(model.SeverityHigh))},
			{"🟡 Medium", strconv.Itoa(report.CountBySeverity(model.SeverityMedium))},
			{"🔵 Low", strconv.Itoa(report.CountBySeverity(model.SeverityLow))},
			{"**Total**", "**" + strconv.Itoa(report.TotalFindings()) + "**"},
		},
	})
	md.PlainText("")

	if report.HasFindings() {
		w.writePieChart(md, report)
	}

	w.writeAlert(md, report)
}

// writePieChart writes a mermaid pie chart for severity distribution.
func (w *MarkdownWriter) writePieChart(md *markdown.Markdown, report *model.AuditReport) {
	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Finding Severity Distribution"),
		piechart.WithShowData(true),
	)

	if n := report.CountBySeverity(model.SeverityCritical); n > 0 {
		chart.LabelAndIntValue("Critical", uint64(n))
	}
	if n := report.CountBySeverity(model.SeverityHigh); n > 0 {
		chart.LabelAndIntValue("High", uint64(n))
	}
	if n := report.CountBySeverity(model.SeverityMedium); n > 0 {
		chart.LabelAndIntValue("Medium", uint64(n))
	}
	if n := report.CountBySeverity(model.SeverityLow); n > 0 {
		chart.LabelAndIntValue("Low", uint64(n))
	}

	md.PlainText("")
	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

// writeAlert writes an appropriate alert based on severity counts.
func (w *MarkdownWriter) writeAlert(md *markdown.Markdown, report *model.AuditReport) {
	switch {
	case report.CountBySeverity(model.SeverityCritical) > 0:
		md.Cautionf(
			"Critical content issues detected! %d critical finding(s) require immediate attention.",
			report.CountBySeverity(model.SeverityCritical),
		)
	case report.CountBySeverity(model.SeverityHigh) > 0:
		md.Warningf(
			"High severity issues detected. %d high severity finding(s) should be addressed.",
			report.CountBySeverity(model.SeverityHigh),
		)
	case report.CountBySeverity(model.SeverityMedium) > 0:
		md.Importantf(
			"Medium severity issues found. %d finding(s) may hold the content back.",
			report.CountBySeverity(model.SeverityMedium),
		)
	case report.HasFindings():
		md.Note("Only low severity findings detected.")
	default:
		md.Tip("No content issues detected.")
	}
	md.PlainText("")
}

// writePhaseScores writes the per-phase score table.
func (w *MarkdownWriter) writePhaseScores(md *markdown.Markdown, report *model.AuditReport) {
	md.H2("Phase Scores")
	md.PlainText("")

	rows := make([][]string, 0, len(report.Results))
	for i := range report.Results {
		r := &report.Results[i]
		checks := strconv.Itoa(r.PassedChecks) + "/" + strconv.Itoa(r.TotalChecks)
		if r.IsNeutral() {
			checks = "-"
		}
		rows = append(rows, []string{
			r.Phase.String(),
			strconv.Itoa(r.Score),
			scoreLabel(r.Score),
			checks,
			strconv.Itoa(len(r.Findings)),
		})
	}

	md.Table(markdown.TableSet{
		Header: []string{"Phase", "Score", "Rating", "Checks Passed", "Findings"},
		Rows:   rows,
	})
	md.PlainText("")

	if len(report.FailedPhases) > 0 {
		names := make([]string, 0, len(report.FailedPhases))
		for _, name := range report.FailedPhases {
			names = append(names, name.String())
		}
		md.Warningf("%d phase(s) failed and degraded to neutral results: %v", len(names), names)
		md.PlainText("")
	}
}

// writeFindings writes all findings grouped by severity.
func (w *MarkdownWriter) writeFindings(md *markdown.Markdown, report *model.AuditReport) {
	md.H2("Findings")
	md.PlainText("")

	if !report.HasFindings() {
		md.PlainText("No findings.")
		md.PlainText("")
		return
	}

	severities := []struct {
		level  model.Severity
		header string
	}{
		{model.SeverityCritical, "### 🔴 Critical"},
		{model.SeverityHigh, "### 🟠 High"},
		{model.SeverityMedium, "### 🟡 Medium"},
		{model.SeverityLow, "### 🔵 Low"},
	}

	for _, sev := range severities {
		findings := findingsBySeverity(report, sev.level)
		if len(findings) == 0 {
			continue
		}

		md.PlainText(sev.header)
		md.PlainText("")
		w.writeFindingsTable(md, findings)
	}
}

// writeFindingsTable writes a table of findings with details.
func (w *MarkdownWriter) writeFindingsTable(md *markdown.Markdown, findings []model.Finding) {
	rows := make([][]string, len(findings))
	for i, f := range findings {
		affected := f.AffectedElement
		if affected == "" {
			affected = "-"
		}
		fix := f.SuggestedFix
		if fix == "" {
			fix = "-"
		}

		rows[i] = []string{
			string(f.Phase),
			f.Title,
			truncateString(affected, 40),
			truncateString(f.Description, 60),
			truncateString(fix, 50),
		}
	}

	md.Table(markdown.TableSet{
		Header: []string{"Phase", "Title", "Affected Element", "Description", "Suggested Fix"},
		Rows:   rows,
	})
	md.PlainText("")
}

// findingsBySeverity collects findings of one severity across all phases,
// preserving report order.
func findingsBySeverity(report *model.AuditReport, severity model.Severity) []model.Finding {
	var findings []model.Finding
	for i := range report.Results {
		for _, f := range report.Results[i].Findings {
			if f.Severity == severity {
				findings = append(findings, f)
			}
		}
	}
	return findings
}
