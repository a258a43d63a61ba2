package phase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nao1215/contentaudit/internal/model"
	"github.com/nao1215/contentaudit/internal/score"
)

// QualityAnalyzer is the external collaborator of the microSemantics
// phase. It evaluates the numbered content-quality checklist against the
// project's content and reports every check it ran, passing or failing.
type QualityAnalyzer interface {
	// EvaluateChecklist runs the rule-based content quality checks.
	// The returned slice contains one entry per evaluated rule.
	EvaluateChecklist(ctx context.Context, req *model.AuditRequest) ([]QualityCheck, error)
}

// QualityCheck is one evaluated checklist rule in the analyzer's own
// vocabulary. Unlike the other analyzers, this one reports passing checks
// too: they count toward the total without producing findings.
type QualityCheck struct {
	// RuleNumber is the numbered checklist entry this check implements.
	RuleNumber int `json:"rule_number"`

	// RuleID is the analyzer's stable rule identifier, e.g. "declarative_sentences".
	RuleID string `json:"rule_id"`

	// Name is the human-readable rule name.
	Name string `json:"name"`

	// Passed reports whether the content satisfies the rule.
	Passed bool `json:"passed"`

	// Severity is the analyzer's failure grade: "blocker", "major",
	// "minor", or "polish". Only meaningful when Passed is false.
	Severity string `json:"severity,omitempty"`

	// Detail explains what was observed.
	Detail string `json:"detail,omitempty"`

	// Element is the content element the rule was checked against.
	Element string `json:"element,omitempty"`

	// Current is the offending text or value, when applicable.
	Current string `json:"current,omitempty"`

	// Expected describes what the rule wanted instead.
	Expected string `json:"expected,omitempty"`

	// FixHint is a suggested remediation, when the analyzer has one.
	FixHint string `json:"fix_hint,omitempty"`

	// AutoFixable is true when the platform can apply the fix unattended.
	AutoFixable bool `json:"auto_fixable"`
}

// qualitySeverities remaps the checklist's four-level failure grades onto
// the canonical scale. The vocabularies happen to be the same size, so the
// mapping is rank for rank.
var qualitySeverities = map[string]model.Severity{
	"blocker": model.SeverityCritical,
	"major":   model.SeverityHigh,
	"minor":   model.SeverityMedium,
	"polish":  model.SeverityLow,
}

// transformQualityChecks normalizes evaluated checklist rules into
// canonical findings. A finding is emitted only for failing checks;
// passing checks never produce one but still count toward the total,
// which is why the caller passes len(checks) to the scoring function.
func transformQualityChecks(checks []QualityCheck) ([]model.Finding, error) {
	findings := make([]model.Finding, 0, len(checks))
	for _, check := range checks {
		if check.Passed {
			continue
		}

		severity, ok := qualitySeverities[check.Severity]
		if !ok {
			severity = model.SeverityMedium
		}

		title := check.Name
		if title == "" {
			title = fmt.Sprintf("Checklist rule %d failed", check.RuleNumber)
		}

		description := check.Detail
		if description == "" {
			description = fmt.Sprintf("Content quality rule %q is not satisfied", check.RuleID)
		}

		ruleID := check.RuleID
		if ruleID == "" {
			ruleID = fmt.Sprintf("rule_%d", check.RuleNumber)
		}

		f, err := model.NewFinding(model.PhaseMicroSemantics, model.FindingSpec{
			RuleID:              "quality." + ruleID,
			ChecklistRuleNumber: check.RuleNumber,
			Severity:            severity,
			Title:               title,
			Description:         description,
			WhyItMatters:        "Checklist rules encode how the content must read to be quotable and unambiguous.",
			AutoFixAvailable:    check.AutoFixable,
			Category:            "content-quality",
			AffectedElement:     check.Element,
			CurrentValue:        check.Current,
			ExpectedValue:       check.Expected,
			SuggestedFix:        check.FixHint,
		})
		if err != nil {
			return nil, err
		}
		findings = append(findings, f)
	}
	return findings, nil
}

// QualityPhase is the microSemantics audit dimension.
type QualityPhase struct {
	base
	analyzer QualityAnalyzer
}

// NewQualityPhase creates the phase. A nil analyzer is allowed; the phase
// then always returns neutral results.
func NewQualityPhase(analyzer QualityAnalyzer, logger *slog.Logger) *QualityPhase {
	return &QualityPhase{
		base:     newBase(model.PhaseMicroSemantics, logger),
		analyzer: analyzer,
	}
}

// Execute runs the checklist analyzer and scores its output. Every
// evaluated rule counts as one check, so the score reflects the pass rate
// of the whole checklist, not just the failures.
func (p *QualityPhase) Execute(ctx context.Context, req *model.AuditRequest) (*model.PhaseResult, error) {
	if p.analyzer == nil {
		return p.neutral(), nil
	}
	if ctx.Err() != nil {
		return p.cancelled(ctx), nil
	}

	checks, err := p.analyzer.EvaluateChecklist(ctx, req)
	if err != nil {
		if ctx.Err() != nil {
			return p.cancelled(ctx), nil
		}
		return p.analyzerFailed(err), nil
	}

	findings, err := transformQualityChecks(checks)
	if err != nil {
		return nil, err
	}

	return score.BuildResult(p.name, findings, len(checks)), nil
}
