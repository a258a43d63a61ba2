package phase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nao1215/contentaudit/internal/model"
	"github.com/nao1215/contentaudit/internal/score"
)

// FlowAnalyzer is the external collaborator of the contextualFlow phase.
// It analyzes link structure and topical flow between topics and reports
// issues in its own vocabulary.
type FlowAnalyzer interface {
	// AnalyzeFlow runs the link-structure and contextual-flow analysis.
	AnalyzeFlow(ctx context.Context, req *model.AuditRequest) (*FlowAnalysis, error)
}

// FlowAnalysis is the raw output of a link-structure analyzer.
type FlowAnalysis struct {
	// ChecksRun is the number of flow checks the analyzer evaluated.
	ChecksRun int `json:"checks_run"`

	// Issues are the flow problems found.
	Issues []FlowIssue `json:"issues"`
}

// FlowIssue is one link-structure problem in the analyzer's own
// vocabulary. Link issues are directional: they run from a source topic
// to a target topic.
type FlowIssue struct {
	// Type is the analyzer's issue-type tag, e.g. "broken_bridge".
	Type string `json:"type"`

	// Severity is the analyzer's severity: "critical", "warning", or
	// "suggestion".
	Severity string `json:"severity"`

	// SourceTopic is the topic the link originates from.
	SourceTopic string `json:"source_topic,omitempty"`

	// TargetTopic is the topic the link points to.
	TargetTopic string `json:"target_topic,omitempty"`

	// Anchor is the anchor text of the link, when applicable.
	Anchor string `json:"anchor,omitempty"`

	// Detail is the analyzer's free-form explanation.
	Detail string `json:"detail,omitempty"`
}

// flowSeverities remaps the flow analyzer's vocabulary onto the canonical
// scale: critical stays critical, warning becomes high, suggestion becomes
// low. The ordering is fixed; reversing any pair would invert the scoring
// monotonicity guarantee.
var flowSeverities = map[string]model.Severity{
	"critical":   model.SeverityCritical,
	"warning":    model.SeverityHigh,
	"suggestion": model.SeverityLow,
}

// flowTitles maps analyzer issue-type tags to fixed finding titles.
var flowTitles = map[string]string{
	"orphan_topic":     "Orphaned topic",
	"broken_bridge":    "Broken contextual bridge",
	"missing_hub_link": "Missing hub link",
	"circular_link":    "Circular link path",
	"anchor_mismatch":  "Anchor text does not match target",
	"dead_end":         "Dead-end contextual flow",
}

// flowWhy maps issue-type tags to their consequence line.
var flowWhy = map[string]string{
	"orphan_topic":     "Topics with no inbound links are invisible to crawlers and readers alike.",
	"broken_bridge":    "A broken bridge strands readers mid-journey and splits topical authority.",
	"missing_hub_link": "Spoke pages that skip their hub flatten the site's topical hierarchy.",
	"circular_link":    "Circular paths trap crawl budget without adding coverage.",
	"anchor_mismatch":  "Anchors promising one topic and delivering another confuse readers and rankers.",
	"dead_end":         "Pages with no onward path end the reader's session prematurely.",
}

// transformFlowIssues normalizes raw flow issues into canonical findings.
// Pure function over the issue list.
func transformFlowIssues(issues []FlowIssue) ([]model.Finding, error) {
	findings := make([]model.Finding, 0, len(issues))
	for _, issue := range issues {
		severity, ok := flowSeverities[issue.Severity]
		if !ok {
			severity = model.SeverityMedium
		}

		title, ok := flowTitles[issue.Type]
		if !ok {
			title = "Link structure issue: " + issue.Type
		}

		description := issue.Detail
		if description == "" {
			description = fmt.Sprintf("Link structure check %q failed", issue.Type)
		}

		why := flowWhy[issue.Type]
		if why == "" {
			why = "Weak link structure fragments the site's topical coverage."
		}

		// Directional issues need both endpoints to name an element.
		affected := ""
		if issue.SourceTopic != "" && issue.TargetTopic != "" {
			affected = issue.SourceTopic + " -> " + issue.TargetTopic
		}

		f, err := model.NewFinding(model.PhaseContextualFlow, model.FindingSpec{
			RuleID:          "flow." + issue.Type,
			Severity:        severity,
			Title:           title,
			Description:     description,
			WhyItMatters:    why,
			Category:        "link-structure",
			AffectedElement: affected,
			CurrentValue:    issue.Anchor,
		})
		if err != nil {
			return nil, err
		}
		findings = append(findings, f)
	}
	return findings, nil
}

// FlowPhase is the contextualFlow audit dimension.
type FlowPhase struct {
	base
	analyzer FlowAnalyzer
}

// NewFlowPhase creates the phase. A nil analyzer is allowed; the phase
// then always returns neutral results.
func NewFlowPhase(analyzer FlowAnalyzer, logger *slog.Logger) *FlowPhase {
	return &FlowPhase{
		base:     newBase(model.PhaseContextualFlow, logger),
		analyzer: analyzer,
	}
}

// Execute runs the flow analyzer and scores its output.
func (p *FlowPhase) Execute(ctx context.Context, req *model.AuditRequest) (*model.PhaseResult, error) {
	if p.analyzer == nil {
		return p.neutral(), nil
	}
	if ctx.Err() != nil {
		return p.cancelled(ctx), nil
	}

	analysis, err := p.analyzer.AnalyzeFlow(ctx, req)
	if err != nil {
		if ctx.Err() != nil {
			return p.cancelled(ctx), nil
		}
		return p.analyzerFailed(err), nil
	}
	if analysis == nil {
		return p.neutral(), nil
	}

	findings, err := transformFlowIssues(analysis.Issues)
	if err != nil {
		return nil, err
	}

	return score.BuildResult(p.name, findings, analysis.ChecksRun), nil
}
