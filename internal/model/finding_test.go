package model

import (
	"errors"
	"testing"
)

// validSpec returns a minimal spec that passes all constructor checks.
func validSpec() FindingSpec {
	return FindingSpec{
		RuleID:      "eav.value_conflict",
		Severity:    SeverityHigh,
		Title:       "Conflicting EAV values",
		Description: "Expected \"500mg\" but found \"250mg\"",
	}
}

// TestNewFinding tests the Finding constructor.
func TestNewFinding(t *testing.T) {
	t.Parallel()

	t.Run("builds a finding with defaults applied", func(t *testing.T) {
		t.Parallel()

		f, err := NewFinding(PhaseEAVSystem, validSpec())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if f.ID == "" {
			t.Error("expected a generated ID")
		}
		if f.Phase != PhaseEAVSystem {
			t.Errorf("expected phase %q, got %q", PhaseEAVSystem, f.Phase)
		}
		if f.EstimatedImpact != ImpactMedium {
			t.Errorf("expected default impact %q, got %q", ImpactMedium, f.EstimatedImpact)
		}
		if f.AutoFixAvailable {
			t.Error("expected AutoFixAvailable to default to false")
		}
	})

	t.Run("generates unique IDs", func(t *testing.T) {
		t.Parallel()

		a, err := NewFinding(PhaseEAVSystem, validSpec())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		b, err := NewFinding(PhaseEAVSystem, validSpec())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if a.ID == b.ID {
			t.Errorf("expected distinct IDs, both were %q", a.ID)
		}
	})

	t.Run("preserves explicit impact", func(t *testing.T) {
		t.Parallel()

		spec := validSpec()
		spec.EstimatedImpact = ImpactHigh

		f, err := NewFinding(PhaseEAVSystem, spec)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if f.EstimatedImpact != ImpactHigh {
			t.Errorf("expected impact %q, got %q", ImpactHigh, f.EstimatedImpact)
		}
	})

	t.Run("rejects invalid phase", func(t *testing.T) {
		t.Parallel()

		_, err := NewFinding(PhaseName("nonexistent"), validSpec())
		if !errors.Is(err, ErrFindingInvalidPhase) {
			t.Errorf("expected ErrFindingInvalidPhase, got %v", err)
		}
	})

	t.Run("rejects missing rule ID", func(t *testing.T) {
		t.Parallel()

		spec := validSpec()
		spec.RuleID = ""

		_, err := NewFinding(PhaseEAVSystem, spec)
		if !errors.Is(err, ErrFindingMissingRuleID) {
			t.Errorf("expected ErrFindingMissingRuleID, got %v", err)
		}
	})

	t.Run("rejects missing severity", func(t *testing.T) {
		t.Parallel()

		spec := validSpec()
		spec.Severity = SeverityUnknown

		_, err := NewFinding(PhaseEAVSystem, spec)
		if !errors.Is(err, ErrFindingInvalidSeverity) {
			t.Errorf("expected ErrFindingInvalidSeverity, got %v", err)
		}
	})

	t.Run("rejects missing title", func(t *testing.T) {
		t.Parallel()

		spec := validSpec()
		spec.Title = ""

		_, err := NewFinding(PhaseEAVSystem, spec)
		if !errors.Is(err, ErrFindingMissingTitle) {
			t.Errorf("expected ErrFindingMissingTitle, got %v", err)
		}
	})

	t.Run("rejects missing description", func(t *testing.T) {
		t.Parallel()

		spec := validSpec()
		spec.Description = ""

		_, err := NewFinding(PhaseEAVSystem, spec)
		if !errors.Is(err, ErrFindingMissingDescription) {
			t.Errorf("expected ErrFindingMissingDescription, got %v", err)
		}
	})

	t.Run("rejects unknown impact", func(t *testing.T) {
		t.Parallel()

		spec := validSpec()
		spec.EstimatedImpact = Impact("enormous")

		if _, err := NewFinding(PhaseEAVSystem, spec); err == nil {
			t.Error("expected error for unknown impact, got nil")
		}
	})

	t.Run("carries optional fields through unchanged", func(t *testing.T) {
		t.Parallel()

		spec := validSpec()
		spec.ChecklistRuleNumber = 42
		spec.WhyItMatters = "why"
		spec.Category = "consistency"
		spec.AffectedElement = "Aspirin / dosage"
		spec.CurrentValue = "250mg"
		spec.ExpectedValue = "500mg"
		spec.ExampleFix = "example"
		spec.SuggestedFix = "suggestion"
		spec.AutoFixAvailable = true

		f, err := NewFinding(PhaseEAVSystem, spec)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if f.ChecklistRuleNumber != 42 {
			t.Errorf("expected rule number 42, got %d", f.ChecklistRuleNumber)
		}
		if f.AffectedElement != "Aspirin / dosage" {
			t.Errorf("expected affected element carried through, got %q", f.AffectedElement)
		}
		if f.CurrentValue != "250mg" || f.ExpectedValue != "500mg" {
			t.Errorf("expected values carried through, got %q / %q", f.CurrentValue, f.ExpectedValue)
		}
		if !f.AutoFixAvailable {
			t.Error("expected AutoFixAvailable to carry through")
		}
	})
}
