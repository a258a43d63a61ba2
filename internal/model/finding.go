package model

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Finding construction errors.
// These indicate a normalizer bug (a missing required field), which is the
// one error class the engine allows to propagate as a hard failure. Data
// conditions such as "the analyzer found nothing" never produce these.
var (
	// ErrFindingMissingRuleID is returned when a finding has no rule ID.
	ErrFindingMissingRuleID = errors.New("finding is missing rule ID")
	// ErrFindingMissingTitle is returned when a finding has no title.
	ErrFindingMissingTitle = errors.New("finding is missing title")
	// ErrFindingMissingDescription is returned when a finding has no description.
	ErrFindingMissingDescription = errors.New("finding is missing description")
	// ErrFindingInvalidSeverity is returned when a finding has no valid severity.
	ErrFindingInvalidSeverity = errors.New("finding has no valid severity")
	// ErrFindingInvalidPhase is returned when the owning phase name is unknown.
	ErrFindingInvalidPhase = errors.New("finding has no valid phase name")
)

// Finding is the canonical normalized issue record. Every phase, whatever
// vocabulary its analyzer speaks, folds its raw issues into this shape so
// that scoring and reporting treat all dimensions uniformly.
//
// Findings are immutable after construction. Create them only via
// NewFinding, which stamps the ID and owning phase and applies defaults.
type Finding struct {
	// ID uniquely identifies this finding within its PhaseResult.
	ID string `json:"id"`

	// Phase is the audit dimension that produced this finding.
	Phase PhaseName `json:"phase"`

	// RuleID identifies the check that failed, in the analyzer's rule
	// namespace (e.g. "eav.value_conflict").
	RuleID string `json:"rule_id"`

	// ChecklistRuleNumber is the numbered checklist entry behind this
	// finding, when the phase is checklist-driven. Zero means none.
	ChecklistRuleNumber int `json:"checklist_rule_number,omitempty"`

	// Severity is the normalized impact level.
	Severity Severity `json:"severity"`

	// Title is a short human-readable name for the issue.
	Title string `json:"title"`

	// Description explains what was observed.
	Description string `json:"description"`

	// WhyItMatters explains the consequence of leaving the issue unfixed.
	WhyItMatters string `json:"why_it_matters,omitempty"`

	// AutoFixAvailable is true when the platform can fix the issue without
	// human review. Defaults to false.
	AutoFixAvailable bool `json:"auto_fix_available"`

	// EstimatedImpact is the expected improvement from fixing the issue.
	// Defaults to ImpactMedium.
	EstimatedImpact Impact `json:"estimated_impact"`

	// Category groups related findings for display (e.g. "consistency").
	Category string `json:"category,omitempty"`

	// AffectedElement names the most specific element the issue concerns,
	// e.g. "Aspirin / dosage" or "pricing -> checkout". Empty when only
	// one side of the relation is known.
	AffectedElement string `json:"affected_element,omitempty"`

	// CurrentValue is the value as observed, when applicable.
	CurrentValue string `json:"current_value,omitempty"`

	// ExpectedValue is the value the check expected, when applicable.
	ExpectedValue string `json:"expected_value,omitempty"`

	// ExampleFix shows a concrete corrected snippet, when available.
	ExampleFix string `json:"example_fix,omitempty"`

	// SuggestedFix describes the recommended remediation, when available.
	SuggestedFix string `json:"suggested_fix,omitempty"`
}

// FindingSpec carries the caller-supplied fields for a new Finding.
// ID and Phase are deliberately absent: the constructor generates the
// former and stamps the latter from the owning phase.
type FindingSpec struct {
	RuleID              string
	ChecklistRuleNumber int
	Severity            Severity
	Title               string
	Description         string
	WhyItMatters        string
	AutoFixAvailable    bool
	EstimatedImpact     Impact
	Category            string
	AffectedElement     string
	CurrentValue        string
	ExpectedValue       string
	ExampleFix          string
	SuggestedFix        string
}

// NewFinding builds a Finding for the given phase from the supplied spec.
//
// It generates a fresh unique ID and applies safe defaults: AutoFixAvailable
// stays false unless set, and an empty EstimatedImpact becomes ImpactMedium.
// RuleID, Severity, Title, and Description are never defaulted - their
// absence is a caller defect and returns an error so the normalizer bug is
// caught instead of silently producing an unusable finding.
func NewFinding(phase PhaseName, spec FindingSpec) (Finding, error) {
	if !phase.IsValid() {
		return Finding{}, fmt.Errorf("%w: %q", ErrFindingInvalidPhase, phase)
	}
	if spec.RuleID == "" {
		return Finding{}, fmt.Errorf("%w (phase %s)", ErrFindingMissingRuleID, phase)
	}
	if !spec.Severity.IsValid() {
		return Finding{}, fmt.Errorf("%w (phase %s, rule %s)", ErrFindingInvalidSeverity, phase, spec.RuleID)
	}
	if spec.Title == "" {
		return Finding{}, fmt.Errorf("%w (phase %s, rule %s)", ErrFindingMissingTitle, phase, spec.RuleID)
	}
	if spec.Description == "" {
		return Finding{}, fmt.Errorf("%w (phase %s, rule %s)", ErrFindingMissingDescription, phase, spec.RuleID)
	}

	impact := spec.EstimatedImpact
	if impact == "" {
		impact = ImpactMedium
	}
	if !impact.IsValid() {
		return Finding{}, fmt.Errorf("invalid estimated impact %q (phase %s, rule %s)", impact, phase, spec.RuleID)
	}

	return Finding{
		ID:                  uuid.NewString(),
		Phase:               phase,
		RuleID:              spec.RuleID,
		ChecklistRuleNumber: spec.ChecklistRuleNumber,
		Severity:            spec.Severity,
		Title:               spec.Title,
		Description:         spec.Description,
		WhyItMatters:        spec.WhyItMatters,
		AutoFixAvailable:    spec.AutoFixAvailable,
		EstimatedImpact:     impact,
		Category:            spec.Category,
		AffectedElement:     spec.AffectedElement,
		CurrentValue:        spec.CurrentValue,
		ExpectedValue:       spec.ExpectedValue,
		ExampleFix:          spec.ExampleFix,
		SuggestedFix:        spec.SuggestedFix,
	}, nil
}
