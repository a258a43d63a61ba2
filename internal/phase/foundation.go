package phase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nao1215/contentaudit/internal/model"
	"github.com/nao1215/contentaudit/internal/score"
)

// FoundationAnalyzer is the external collaborator of the
// strategicFoundation phase. It inspects the structural foundation of the
// content - central entity, source context, central search intent - and
// reports what it found. How it decides an issue exists (heuristics or a
// model call) is its own business.
type FoundationAnalyzer interface {
	// DetectStructure analyzes the project's content structure.
	// ChecksRun reports how many structural checks were evaluated; Issues
	// carries the failing ones with a 0-100 sub-score each.
	DetectStructure(ctx context.Context, req *model.AuditRequest) (*FoundationAnalysis, error)
}

// FoundationAnalysis is the raw output of a structural-foundation analyzer.
type FoundationAnalysis struct {
	// ChecksRun is the number of structural checks the analyzer evaluated.
	ChecksRun int `json:"checks_run"`

	// Issues are the checks that failed.
	Issues []FoundationIssue `json:"issues"`
}

// FoundationIssue is one failing structural check in the analyzer's own
// vocabulary. The analyzer grades each failure with a continuous 0-100
// sub-score rather than a discrete severity; lower is worse.
type FoundationIssue struct {
	// Type is the analyzer's issue-type tag, e.g. "missing_central_entity".
	Type string `json:"type"`

	// Score is the 0-100 sub-score for the failing aspect.
	Score float64 `json:"score"`

	// Entity is the entity concerned, when the analyzer identified one.
	Entity string `json:"entity,omitempty"`

	// Section is the content section concerned, when known.
	Section string `json:"section,omitempty"`

	// Detail is the analyzer's free-form explanation.
	Detail string `json:"detail,omitempty"`
}

// foundationTitles maps analyzer issue-type tags to fixed human-readable
// finding titles. Tags missing from the table still produce a usable title
// via foundationTitle; they must never crash the normalizer.
var foundationTitles = map[string]string{
	"missing_central_entity":   "No central entity detected",
	"ambiguous_central_entity": "Ambiguous central entity",
	"missing_source_context":   "Missing source context",
	"weak_source_context":      "Weak source context",
	"unclear_search_intent":    "Unclear central search intent",
	"intent_mismatch":          "Content does not match search intent",
	"missing_core_section":     "Missing core section",
	"orphan_section":           "Section disconnected from central entity",
}

// foundationWhy maps issue-type tags to the consequence of leaving the
// issue unfixed. Tags outside the table fall back to a generic line.
var foundationWhy = map[string]string{
	"missing_central_entity":   "Without a clear central entity, search engines cannot tell what the page is about.",
	"ambiguous_central_entity": "Competing candidate entities dilute topical relevance signals.",
	"missing_source_context":   "Content without source context reads as unattributed and loses trust signals.",
	"weak_source_context":      "Thin source context weakens the page's expertise signals.",
	"unclear_search_intent":    "A page that serves no identifiable intent ranks for none.",
	"intent_mismatch":          "Content answering a different intent than it targets loses both audiences.",
	"missing_core_section":     "Core sections expected for this content type are absent, leaving the topic underserved.",
	"orphan_section":           "Sections unrelated to the central entity dilute the page's focus.",
}

// foundationTitle resolves an issue-type tag to a title, falling back to a
// readable generic form for unknown tags.
func foundationTitle(issueType string) string {
	if title, ok := foundationTitles[issueType]; ok {
		return title
	}
	return "Structural issue: " + issueType
}

// foundationSeverity buckets a continuous 0-100 sub-score into a discrete
// severity. The boundaries are monotonic: a lower sub-score never maps to
// a milder severity than a higher one.
func foundationSeverity(subScore float64) model.Severity {
	switch {
	case subScore < 20:
		return model.SeverityCritical
	case subScore < 50:
		return model.SeverityHigh
	case subScore < 80:
		return model.SeverityMedium
	default:
		return model.SeverityLow
	}
}

// transformFoundationIssues normalizes raw structural issues into canonical
// findings. Pure function: same issues in, same findings out (IDs aside).
func transformFoundationIssues(issues []FoundationIssue) ([]model.Finding, error) {
	findings := make([]model.Finding, 0, len(issues))
	for _, issue := range issues {
		description := issue.Detail
		if description == "" {
			description = fmt.Sprintf("Structural check %q failed with sub-score %.0f", issue.Type, issue.Score)
		}

		why := foundationWhy[issue.Type]
		if why == "" {
			why = "Structural weaknesses lower the page's topical authority."
		}

		// Both sides of the relation must be known for an affected
		// element; a lone entity or section is not specific enough.
		affected := ""
		if issue.Entity != "" && issue.Section != "" {
			affected = issue.Entity + " / " + issue.Section
		}

		f, err := model.NewFinding(model.PhaseStrategicFoundation, model.FindingSpec{
			RuleID:          "foundation." + issue.Type,
			Severity:        foundationSeverity(issue.Score),
			Title:           foundationTitle(issue.Type),
			Description:     description,
			WhyItMatters:    why,
			Category:        "foundation",
			AffectedElement: affected,
			CurrentValue:    fmt.Sprintf("%.0f", issue.Score),
			ExpectedValue:   "80",
		})
		if err != nil {
			return nil, err
		}
		findings = append(findings, f)
	}
	return findings, nil
}

// FoundationPhase is the strategicFoundation audit dimension.
type FoundationPhase struct {
	base
	analyzer FoundationAnalyzer
}

// NewFoundationPhase creates the phase. A nil analyzer is allowed; the
// phase then always returns neutral results.
func NewFoundationPhase(analyzer FoundationAnalyzer, logger *slog.Logger) *FoundationPhase {
	return &FoundationPhase{
		base:     newBase(model.PhaseStrategicFoundation, logger),
		analyzer: analyzer,
	}
}

// Execute runs the structural-foundation analyzer and scores its output.
func (p *FoundationPhase) Execute(ctx context.Context, req *model.AuditRequest) (*model.PhaseResult, error) {
	if p.analyzer == nil {
		return p.neutral(), nil
	}
	if ctx.Err() != nil {
		return p.cancelled(ctx), nil
	}

	analysis, err := p.analyzer.DetectStructure(ctx, req)
	if err != nil {
		if ctx.Err() != nil {
			return p.cancelled(ctx), nil
		}
		return p.analyzerFailed(err), nil
	}
	if analysis == nil {
		return p.neutral(), nil
	}

	findings, err := transformFoundationIssues(analysis.Issues)
	if err != nil {
		// A malformed finding is a normalizer bug, the one error class
		// that propagates.
		return nil, err
	}

	return score.BuildResult(p.name, findings, analysis.ChecksRun), nil
}
