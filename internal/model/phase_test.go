package model

import "testing"

// TestAllPhaseNames tests the canonical phase list.
func TestAllPhaseNames(t *testing.T) {
	t.Parallel()

	t.Run("contains fifteen phases", func(t *testing.T) {
		t.Parallel()

		names := AllPhaseNames()
		if len(names) != 15 {
			t.Errorf("expected 15 phases, got %d", len(names))
		}
	})

	t.Run("starts with strategicFoundation and ends with factValidation", func(t *testing.T) {
		t.Parallel()

		names := AllPhaseNames()
		if names[0] != PhaseStrategicFoundation {
			t.Errorf("expected first phase %q, got %q", PhaseStrategicFoundation, names[0])
		}
		if names[len(names)-1] != PhaseFactValidation {
			t.Errorf("expected last phase %q, got %q", PhaseFactValidation, names[len(names)-1])
		}
	})

	t.Run("returns a fresh copy", func(t *testing.T) {
		t.Parallel()

		names := AllPhaseNames()
		names[0] = PhaseName("mutated")

		if AllPhaseNames()[0] != PhaseStrategicFoundation {
			t.Error("mutating the returned slice leaked into the canonical list")
		}
	})

	t.Run("has no duplicates", func(t *testing.T) {
		t.Parallel()

		seen := make(map[PhaseName]bool)
		for _, name := range AllPhaseNames() {
			if seen[name] {
				t.Errorf("duplicate phase name %q", name)
			}
			seen[name] = true
		}
	})
}

// TestPhaseNameIsValid tests membership in the closed phase set.
func TestPhaseNameIsValid(t *testing.T) {
	t.Parallel()

	for _, name := range AllPhaseNames() {
		if !name.IsValid() {
			t.Errorf("expected %q to be valid", name)
		}
	}

	invalid := []PhaseName{"", "StrategicFoundation", "eav_system", "unknownPhase"}
	for _, name := range invalid {
		if name.IsValid() {
			t.Errorf("expected %q to be invalid", name)
		}
	}
}

// TestPhaseNameString tests the String method.
func TestPhaseNameString(t *testing.T) {
	t.Parallel()

	if PhaseEAVSystem.String() != "eavSystem" {
		t.Errorf("expected %q, got %q", "eavSystem", PhaseEAVSystem.String())
	}
}
