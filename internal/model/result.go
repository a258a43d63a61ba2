package model

import (
	"math"
	"time"
)

// PhaseResult is the outcome of one phase for one audit run.
//
// Invariants: PassedChecks <= TotalChecks, Score is within [0,100], and
// Score is a deterministic pure function of (Findings, TotalChecks). A
// PhaseResult is produced exactly once per phase per run and never mutated;
// the orchestrator aggregates results by copy.
type PhaseResult struct {
	// Phase is the audit dimension this result belongs to.
	Phase PhaseName `json:"phase"`

	// Score is the normalized phase score in [0,100]. 100 means either a
	// clean pass or "nothing to evaluate" - a phase with zero defined
	// checks cannot fail.
	Score int `json:"score"`

	// Findings contains the normalized issues discovered by the phase.
	Findings []Finding `json:"findings"`

	// PassedChecks is the number of checks that did not produce a finding.
	PassedChecks int `json:"passed_checks"`

	// TotalChecks is the number of checks the analyzer evaluated.
	// Zero means the phase had nothing to evaluate (neutral result).
	TotalChecks int `json:"total_checks"`

	// Summary is a short deterministic description of the result.
	Summary string `json:"summary"`
}

// IsNeutral returns true if the phase had nothing to evaluate.
// Neutral results carry a score of 100 and zero checks; they appear when an
// analyzer is unavailable, has no input for this audit type, or could not
// finish before cancellation.
func (r *PhaseResult) IsNeutral() bool {
	return r.TotalChecks == 0
}

// CountBySeverity returns how many findings carry the given severity.
func (r *PhaseResult) CountBySeverity(severity Severity) int {
	count := 0
	for _, f := range r.Findings {
		if f.Severity == severity {
			count++
		}
	}
	return count
}

// AuditReport is the full outcome of one audit run: exactly one PhaseResult
// per requested phase, in request order.
//
// Design decision: Go maps do not preserve insertion order, so the "ordered
// map PhaseName -> PhaseResult" is represented as an ordered slice plus a
// Result() lookup. Serialization keeps the slice so report order is stable.
type AuditReport struct {
	// ProjectID identifies the audited project.
	ProjectID string `json:"project_id"`

	// Type is the audit mode the report was produced under.
	Type AuditType `json:"type"`

	// Depth is the analysis depth the report was produced under.
	Depth AuditDepth `json:"depth"`

	// DateAudited is when the audit ran.
	DateAudited time.Time `json:"date_audited"`

	// Results holds one PhaseResult per requested phase, in request order.
	Results []PhaseResult `json:"results"`

	// FailedPhases lists phases whose implementation returned a hard error
	// and were replaced by neutral results. A non-empty list means the
	// report is degraded but still usable.
	FailedPhases []PhaseName `json:"failed_phases,omitempty"`
}

// Result returns the PhaseResult for the given phase, or nil if that phase
// was not part of this run.
func (a *AuditReport) Result(name PhaseName) *PhaseResult {
	for i := range a.Results {
		if a.Results[i].Phase == name {
			return &a.Results[i]
		}
	}
	return nil
}

// OverallScore returns the arithmetic mean of all phase scores, rounded to
// the nearest integer. An empty report scores 100: no phases ran, so
// nothing failed.
func (a *AuditReport) OverallScore() int {
	if len(a.Results) == 0 {
		return 100
	}
	sum := 0
	for i := range a.Results {
		sum += a.Results[i].Score
	}
	return int(math.Round(float64(sum) / float64(len(a.Results))))
}

// TotalFindings returns the number of findings across all phases.
func (a *AuditReport) TotalFindings() int {
	total := 0
	for i := range a.Results {
		total += len(a.Results[i].Findings)
	}
	return total
}

// CountBySeverity returns how many findings across all phases carry the
// given severity.
func (a *AuditReport) CountBySeverity(severity Severity) int {
	count := 0
	for i := range a.Results {
		count += a.Results[i].CountBySeverity(severity)
	}
	return count
}

// HasFindings returns true if any phase produced at least one finding.
func (a *AuditReport) HasFindings() bool {
	return a.TotalFindings() > 0
}
