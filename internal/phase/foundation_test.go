package phase

import (
	"context"
	"errors"
	"testing"

	"github.com/nao1215/contentaudit/internal/model"
)

// fakeFoundationAnalyzer returns canned analysis or a canned error.
type fakeFoundationAnalyzer struct {
	analysis *FoundationAnalysis
	err      error
}

func (f *fakeFoundationAnalyzer) DetectStructure(_ context.Context, _ *model.AuditRequest) (*FoundationAnalysis, error) {
	return f.analysis, f.err
}

// auditRequest returns a minimal valid request for phase tests.
func auditRequest() *model.AuditRequest {
	return &model.AuditRequest{
		Type:      model.AuditTypeInternal,
		ProjectID: "demo-project",
		Depth:     model.DepthQuick,
	}
}

// TestFoundationSeverity tests the sub-score-to-severity bucketing.
func TestFoundationSeverity(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		subScore float64
		expected model.Severity
	}{
		{"zero is critical", 0, model.SeverityCritical},
		{"just below critical boundary", 19.9, model.SeverityCritical},
		{"critical boundary is high", 20, model.SeverityHigh},
		{"just below high boundary", 49.9, model.SeverityHigh},
		{"high boundary is medium", 50, model.SeverityMedium},
		{"just below medium boundary", 79.9, model.SeverityMedium},
		{"medium boundary is low", 80, model.SeverityLow},
		{"perfect sub-score is low", 100, model.SeverityLow},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := foundationSeverity(tc.subScore); got != tc.expected {
				t.Errorf("foundationSeverity(%v) = %v, expected %v", tc.subScore, got, tc.expected)
			}
		})
	}
}

// TestFoundationSeverityMonotonic tests that a lower sub-score never maps to
// a milder severity than a higher one.
func TestFoundationSeverityMonotonic(t *testing.T) {
	t.Parallel()

	prev := model.SeverityCritical
	for s := 0.0; s <= 100; s++ {
		cur := foundationSeverity(s)
		if cur > prev {
			t.Fatalf("severity rose from %v to %v at sub-score %v", prev, cur, s)
		}
		prev = cur
	}
}

// TestTransformFoundationIssues tests normalization of raw structural issues.
func TestTransformFoundationIssues(t *testing.T) {
	t.Parallel()

	t.Run("maps a known issue type", func(t *testing.T) {
		t.Parallel()

		fs, err := transformFoundationIssues([]FoundationIssue{
			{Type: "missing_central_entity", Score: 10, Detail: "no entity candidates found"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(fs) != 1 {
			t.Fatalf("expected 1 finding, got %d", len(fs))
		}

		f := fs[0]
		if f.Phase != model.PhaseStrategicFoundation {
			t.Errorf("expected phase %q, got %q", model.PhaseStrategicFoundation, f.Phase)
		}
		if f.RuleID != "foundation.missing_central_entity" {
			t.Errorf("unexpected rule ID %q", f.RuleID)
		}
		if f.Title != "No central entity detected" {
			t.Errorf("unexpected title %q", f.Title)
		}
		if f.Severity != model.SeverityCritical {
			t.Errorf("expected critical, got %v", f.Severity)
		}
		if f.Description != "no entity candidates found" {
			t.Errorf("unexpected description %q", f.Description)
		}
		if f.CurrentValue != "10" || f.ExpectedValue != "80" {
			t.Errorf("unexpected values %q / %q", f.CurrentValue, f.ExpectedValue)
		}
		if f.Category != "foundation" {
			t.Errorf("unexpected category %q", f.Category)
		}
	})

	t.Run("unknown issue type still yields a finding", func(t *testing.T) {
		t.Parallel()

		fs, err := transformFoundationIssues([]FoundationIssue{
			{Type: "novel_issue", Score: 60},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if fs[0].Title != "Structural issue: novel_issue" {
			t.Errorf("unexpected fallback title %q", fs[0].Title)
		}
		if fs[0].Severity != model.SeverityMedium {
			t.Errorf("expected medium for sub-score 60, got %v", fs[0].Severity)
		}
		if fs[0].Description == "" {
			t.Error("expected a generated description")
		}
		if fs[0].WhyItMatters == "" {
			t.Error("expected a fallback why-it-matters line")
		}
	})

	t.Run("affected element requires both entity and section", func(t *testing.T) {
		t.Parallel()

		fs, err := transformFoundationIssues([]FoundationIssue{
			{Type: "orphan_section", Score: 40, Entity: "Aspirin", Section: "History"},
			{Type: "orphan_section", Score: 40, Entity: "Aspirin"},
			{Type: "orphan_section", Score: 40, Section: "History"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if fs[0].AffectedElement != "Aspirin / History" {
			t.Errorf("expected joined element, got %q", fs[0].AffectedElement)
		}
		if fs[1].AffectedElement != "" || fs[2].AffectedElement != "" {
			t.Errorf("expected empty element for partial relations, got %q and %q",
				fs[1].AffectedElement, fs[2].AffectedElement)
		}
	})

	t.Run("empty issue list yields no findings", func(t *testing.T) {
		t.Parallel()

		fs, err := transformFoundationIssues(nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(fs) != 0 {
			t.Errorf("expected no findings, got %d", len(fs))
		}
	})
}

// TestFoundationPhaseExecute tests the phase's Execute behavior.
func TestFoundationPhaseExecute(t *testing.T) {
	t.Parallel()

	t.Run("nil analyzer yields neutral result", func(t *testing.T) {
		t.Parallel()

		p := NewFoundationPhase(nil, nil)
		r, err := p.Execute(context.Background(), auditRequest())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !r.IsNeutral() {
			t.Errorf("expected neutral result, got %+v", r)
		}
	})

	t.Run("analyzer error yields neutral result", func(t *testing.T) {
		t.Parallel()

		p := NewFoundationPhase(&fakeFoundationAnalyzer{err: errors.New("backend down")}, nil)
		r, err := p.Execute(context.Background(), auditRequest())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !r.IsNeutral() {
			t.Errorf("expected neutral result, got %+v", r)
		}
	})

	t.Run("nil analysis yields neutral result", func(t *testing.T) {
		t.Parallel()

		p := NewFoundationPhase(&fakeFoundationAnalyzer{}, nil)
		r, err := p.Execute(context.Background(), auditRequest())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !r.IsNeutral() {
			t.Errorf("expected neutral result, got %+v", r)
		}
	})

	t.Run("cancelled context yields neutral result", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		p := NewFoundationPhase(&fakeFoundationAnalyzer{
			analysis: &FoundationAnalysis{ChecksRun: 5},
		}, nil)
		r, err := p.Execute(ctx, auditRequest())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !r.IsNeutral() {
			t.Errorf("expected neutral result, got %+v", r)
		}
	})

	t.Run("scores analyzer output", func(t *testing.T) {
		t.Parallel()

		p := NewFoundationPhase(&fakeFoundationAnalyzer{
			analysis: &FoundationAnalysis{
				ChecksRun: 10,
				Issues: []FoundationIssue{
					{Type: "missing_central_entity", Score: 10},
				},
			},
		}, nil)

		r, err := p.Execute(context.Background(), auditRequest())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if r.Phase != model.PhaseStrategicFoundation {
			t.Errorf("unexpected phase %q", r.Phase)
		}
		if r.TotalChecks != 10 || r.PassedChecks != 9 {
			t.Errorf("expected 9/10 checks, got %d/%d", r.PassedChecks, r.TotalChecks)
		}
		if len(r.Findings) != 1 {
			t.Errorf("expected 1 finding, got %d", len(r.Findings))
		}
		if r.Score != 70 {
			t.Errorf("expected score 70, got %d", r.Score)
		}
	})
}
