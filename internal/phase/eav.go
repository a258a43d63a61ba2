package phase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nao1215/contentaudit/internal/model"
	"github.com/nao1215/contentaudit/internal/score"
)

// EAVAnalyzer is the external collaborator of the eavSystem phase. It
// checks entity-attribute-value consistency across the project's content
// inventory and reports conflicts in its own vocabulary.
type EAVAnalyzer interface {
	// CheckConsistency runs the attribute-consistency analysis.
	CheckConsistency(ctx context.Context, req *model.AuditRequest) (*EAVConsistency, error)
}

// EAVConsistency is the raw output of an attribute-consistency analyzer.
type EAVConsistency struct {
	// ChecksRun is the number of attribute checks the analyzer evaluated.
	ChecksRun int `json:"checks_run"`

	// Issues are the consistency problems found.
	Issues []EAVIssue `json:"issues"`
}

// EAVIssue is one consistency problem in the analyzer's own vocabulary.
// The analyzer grades issues on a three-level scale (critical, warning,
// info) that the normalizer remaps onto the canonical four-level one.
type EAVIssue struct {
	// Type is the analyzer's issue-type tag, e.g. "value_conflict".
	Type string `json:"type"`

	// Severity is the analyzer's severity: "critical", "warning", or "info".
	Severity string `json:"severity"`

	// Subject is the entity whose attribute is affected.
	Subject string `json:"subject,omitempty"`

	// Attribute is the attribute name.
	Attribute string `json:"attribute,omitempty"`

	// Expected is the value the analyzer considers authoritative.
	Expected string `json:"expected,omitempty"`

	// Actual is the conflicting value as observed.
	Actual string `json:"actual,omitempty"`

	// Detail is the analyzer's free-form explanation.
	Detail string `json:"detail,omitempty"`
}

// eavSeverities remaps the analyzer's three-level vocabulary onto the
// canonical scale, preserving relative ordering: critical stays critical,
// warning becomes high, info becomes low. Never the reverse.
var eavSeverities = map[string]model.Severity{
	"critical": model.SeverityCritical,
	"warning":  model.SeverityHigh,
	"info":     model.SeverityLow,
}

// eavTitles maps analyzer issue-type tags to fixed finding titles.
var eavTitles = map[string]string{
	"value_conflict":             "Conflicting EAV values",
	"type_mismatch":              "EAV value type mismatch",
	"unit_mismatch":              "Inconsistent attribute units",
	"missing_required_attribute": "Missing required attribute",
	"stale_value":                "Stale attribute value",
	"duplicate_attribute":        "Duplicate attribute definition",
}

// eavWhy maps issue-type tags to their consequence line.
var eavWhy = map[string]string{
	"value_conflict":             "Pages stating different values for the same attribute contradict each other and erode trust.",
	"type_mismatch":              "A value of the wrong type breaks structured data consumers and comparison features.",
	"unit_mismatch":              "Mixed units for one attribute make values incomparable across pages.",
	"missing_required_attribute": "Entities missing required attributes produce incomplete answers.",
	"stale_value":                "Outdated values mislead readers and invite corrections elsewhere.",
	"duplicate_attribute":        "Duplicate definitions make it ambiguous which value is authoritative.",
}

// transformEAVIssues normalizes raw consistency issues into canonical
// findings. Pure function over the issue list.
func transformEAVIssues(issues []EAVIssue) ([]model.Finding, error) {
	findings := make([]model.Finding, 0, len(issues))
	for _, issue := range issues {
		severity, ok := eavSeverities[issue.Severity]
		if !ok {
			// An unknown vocabulary level still yields a usable finding;
			// medium sits safely between the mapped extremes.
			severity = model.SeverityMedium
		}

		title, ok := eavTitles[issue.Type]
		if !ok {
			title = "EAV consistency issue: " + issue.Type
		}

		description := issue.Detail
		if description == "" {
			if issue.Expected != "" && issue.Actual != "" {
				description = fmt.Sprintf("Expected %q but found %q", issue.Expected, issue.Actual)
			} else {
				description = fmt.Sprintf("Attribute consistency check %q failed", issue.Type)
			}
		}

		why := eavWhy[issue.Type]
		if why == "" {
			why = "Inconsistent attribute data weakens the site's reliability as a source."
		}

		// Subject and attribute are joined only when both are known;
		// one side alone does not identify the affected element.
		affected := ""
		if issue.Subject != "" && issue.Attribute != "" {
			affected = issue.Subject + " / " + issue.Attribute
		}

		f, err := model.NewFinding(model.PhaseEAVSystem, model.FindingSpec{
			RuleID:          "eav." + issue.Type,
			Severity:        severity,
			Title:           title,
			Description:     description,
			WhyItMatters:    why,
			Category:        "consistency",
			AffectedElement: affected,
			CurrentValue:    issue.Actual,
			ExpectedValue:   issue.Expected,
		})
		if err != nil {
			return nil, err
		}
		findings = append(findings, f)
	}
	return findings, nil
}

// EAVPhase is the eavSystem audit dimension.
type EAVPhase struct {
	base
	analyzer EAVAnalyzer
}

// NewEAVPhase creates the phase. A nil analyzer is allowed; the phase
// then always returns neutral results.
func NewEAVPhase(analyzer EAVAnalyzer, logger *slog.Logger) *EAVPhase {
	return &EAVPhase{
		base:     newBase(model.PhaseEAVSystem, logger),
		analyzer: analyzer,
	}
}

// Execute runs the attribute-consistency analyzer and scores its output.
func (p *EAVPhase) Execute(ctx context.Context, req *model.AuditRequest) (*model.PhaseResult, error) {
	if p.analyzer == nil {
		return p.neutral(), nil
	}
	if ctx.Err() != nil {
		return p.cancelled(ctx), nil
	}

	consistency, err := p.analyzer.CheckConsistency(ctx, req)
	if err != nil {
		if ctx.Err() != nil {
			return p.cancelled(ctx), nil
		}
		return p.analyzerFailed(err), nil
	}
	if consistency == nil {
		return p.neutral(), nil
	}

	findings, err := transformEAVIssues(consistency.Issues)
	if err != nil {
		return nil, err
	}

	return score.BuildResult(p.name, findings, consistency.ChecksRun), nil
}
