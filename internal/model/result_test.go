package model

import (
	"testing"
	"time"
)

// finding is a test helper that builds a valid finding or fails the test.
func finding(t *testing.T, phase PhaseName, severity Severity) Finding {
	t.Helper()

	f, err := NewFinding(phase, FindingSpec{
		RuleID:      "test.rule",
		Severity:    severity,
		Title:       "Test finding",
		Description: "Test description",
	})
	if err != nil {
		t.Fatalf("failed to build finding: %v", err)
	}
	return f
}

// TestPhaseResultIsNeutral tests neutral-result detection.
func TestPhaseResultIsNeutral(t *testing.T) {
	t.Parallel()

	neutral := PhaseResult{Phase: PhaseEAVSystem, Score: 100, TotalChecks: 0}
	if !neutral.IsNeutral() {
		t.Error("expected zero-check result to be neutral")
	}

	scored := PhaseResult{Phase: PhaseEAVSystem, Score: 100, TotalChecks: 10, PassedChecks: 10}
	if scored.IsNeutral() {
		t.Error("expected scored result to be non-neutral")
	}
}

// TestPhaseResultCountBySeverity tests per-result severity counting.
func TestPhaseResultCountBySeverity(t *testing.T) {
	t.Parallel()

	r := PhaseResult{
		Phase: PhaseEAVSystem,
		Findings: []Finding{
			finding(t, PhaseEAVSystem, SeverityCritical),
			finding(t, PhaseEAVSystem, SeverityCritical),
			finding(t, PhaseEAVSystem, SeverityLow),
		},
	}

	if got := r.CountBySeverity(SeverityCritical); got != 2 {
		t.Errorf("expected 2 critical findings, got %d", got)
	}
	if got := r.CountBySeverity(SeverityLow); got != 1 {
		t.Errorf("expected 1 low finding, got %d", got)
	}
	if got := r.CountBySeverity(SeverityHigh); got != 0 {
		t.Errorf("expected 0 high findings, got %d", got)
	}
}

// TestAuditReportResult tests phase lookup on the report.
func TestAuditReportResult(t *testing.T) {
	t.Parallel()

	report := AuditReport{
		ProjectID:   "demo",
		Type:        AuditTypeInternal,
		Depth:       DepthQuick,
		DateAudited: time.Now(),
		Results: []PhaseResult{
			{Phase: PhaseStrategicFoundation, Score: 80},
			{Phase: PhaseEAVSystem, Score: 60},
		},
	}

	t.Run("finds a present phase", func(t *testing.T) {
		t.Parallel()

		r := report.Result(PhaseEAVSystem)
		if r == nil {
			t.Fatal("expected a result, got nil")
		}
		if r.Score != 60 {
			t.Errorf("expected score 60, got %d", r.Score)
		}
	})

	t.Run("returns nil for an absent phase", func(t *testing.T) {
		t.Parallel()

		if r := report.Result(PhaseContextualFlow); r != nil {
			t.Errorf("expected nil for absent phase, got %+v", r)
		}
	})
}

// TestAuditReportOverallScore tests the mean-of-phases overall score.
func TestAuditReportOverallScore(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		scores   []int
		expected int
	}{
		{"empty report scores 100", nil, 100},
		{"single phase", []int{73}, 73},
		{"exact mean", []int{80, 60}, 70},
		{"rounds half up", []int{80, 61}, 71},
		{"rounds down", []int{80, 60, 60}, 67},
		{"all perfect", []int{100, 100, 100}, 100},
		{"all zero", []int{0, 0}, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			report := AuditReport{}
			for i, s := range tc.scores {
				report.Results = append(report.Results, PhaseResult{
					Phase: AllPhaseNames()[i],
					Score: s,
				})
			}

			if got := report.OverallScore(); got != tc.expected {
				t.Errorf("OverallScore() = %d, expected %d", got, tc.expected)
			}
		})
	}
}

// TestAuditReportFindingAggregates tests report-level finding counters.
func TestAuditReportFindingAggregates(t *testing.T) {
	t.Parallel()

	report := AuditReport{
		Results: []PhaseResult{
			{
				Phase: PhaseEAVSystem,
				Findings: []Finding{
					finding(t, PhaseEAVSystem, SeverityCritical),
					finding(t, PhaseEAVSystem, SeverityHigh),
				},
			},
			{
				Phase: PhaseContextualFlow,
				Findings: []Finding{
					finding(t, PhaseContextualFlow, SeverityHigh),
				},
			},
			{Phase: PhaseMicroSemantics},
		},
	}

	if got := report.TotalFindings(); got != 3 {
		t.Errorf("TotalFindings() = %d, expected 3", got)
	}
	if got := report.CountBySeverity(SeverityHigh); got != 2 {
		t.Errorf("CountBySeverity(high) = %d, expected 2", got)
	}
	if !report.HasFindings() {
		t.Error("expected HasFindings() to be true")
	}

	empty := AuditReport{Results: []PhaseResult{{Phase: PhaseEAVSystem}}}
	if empty.HasFindings() {
		t.Error("expected HasFindings() to be false for a clean report")
	}
}
