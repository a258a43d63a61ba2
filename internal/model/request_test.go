package model

import (
	"errors"
	"testing"
)

// validRequest returns a minimal request that passes validation.
func validRequest() *AuditRequest {
	return &AuditRequest{
		Type:      AuditTypeInternal,
		ProjectID: "demo-project",
		Depth:     DepthQuick,
	}
}

// TestAuditRequestValidate tests request validation.
func TestAuditRequestValidate(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		mutate   func(*AuditRequest)
		expected error
	}{
		{
			name:     "valid request",
			mutate:   func(_ *AuditRequest) {},
			expected: nil,
		},
		{
			name:     "external type is valid",
			mutate:   func(r *AuditRequest) { r.Type = AuditTypeExternal },
			expected: nil,
		},
		{
			name:     "deep depth is valid",
			mutate:   func(r *AuditRequest) { r.Depth = DepthDeep },
			expected: nil,
		},
		{
			name:     "explicit phases are valid",
			mutate:   func(r *AuditRequest) { r.Phases = []PhaseName{PhaseEAVSystem, PhaseContextualFlow} },
			expected: nil,
		},
		{
			name:     "valid language tag",
			mutate:   func(r *AuditRequest) { r.Language = "nl" },
			expected: nil,
		},
		{
			name:     "empty type",
			mutate:   func(r *AuditRequest) { r.Type = "" },
			expected: ErrInvalidAuditType,
		},
		{
			name:     "unknown type",
			mutate:   func(r *AuditRequest) { r.Type = "hybrid" },
			expected: ErrInvalidAuditType,
		},
		{
			name:     "missing project ID",
			mutate:   func(r *AuditRequest) { r.ProjectID = "" },
			expected: ErrMissingProjectID,
		},
		{
			name:     "unknown depth",
			mutate:   func(r *AuditRequest) { r.Depth = "thorough" },
			expected: ErrInvalidAuditDepth,
		},
		{
			name:     "unknown phase",
			mutate:   func(r *AuditRequest) { r.Phases = []PhaseName{"notAPhase"} },
			expected: ErrUnknownPhase,
		},
		{
			name:     "duplicate phase",
			mutate:   func(r *AuditRequest) { r.Phases = []PhaseName{PhaseEAVSystem, PhaseEAVSystem} },
			expected: ErrDuplicatePhase,
		},
		{
			name:     "invalid language tag",
			mutate:   func(r *AuditRequest) { r.Language = "not a tag" },
			expected: ErrInvalidLanguage,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			req := validRequest()
			tc.mutate(req)

			err := req.Validate()
			if tc.expected == nil {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tc.expected) {
				t.Errorf("expected %v, got %v", tc.expected, err)
			}
		})
	}
}

// TestEffectiveLanguage tests the language default.
func TestEffectiveLanguage(t *testing.T) {
	t.Parallel()

	t.Run("defaults to en", func(t *testing.T) {
		t.Parallel()

		req := validRequest()
		if req.EffectiveLanguage() != "en" {
			t.Errorf("expected %q, got %q", "en", req.EffectiveLanguage())
		}
	})

	t.Run("keeps explicit language", func(t *testing.T) {
		t.Parallel()

		req := validRequest()
		req.Language = "nl"
		if req.EffectiveLanguage() != "nl" {
			t.Errorf("expected %q, got %q", "nl", req.EffectiveLanguage())
		}
	})
}

// TestEffectivePhases tests phase list expansion and fact-validation gating.
func TestEffectivePhases(t *testing.T) {
	t.Parallel()

	t.Run("empty list expands to all phases except factValidation", func(t *testing.T) {
		t.Parallel()

		req := validRequest()
		phases := req.EffectivePhases()

		if len(phases) != 14 {
			t.Errorf("expected 14 phases, got %d", len(phases))
		}
		for _, name := range phases {
			if name == PhaseFactValidation {
				t.Error("factValidation included without opt-in")
			}
		}
	})

	t.Run("opt-in includes factValidation", func(t *testing.T) {
		t.Parallel()

		req := validRequest()
		req.IncludeFactValidation = true

		phases := req.EffectivePhases()
		if len(phases) != 15 {
			t.Errorf("expected 15 phases, got %d", len(phases))
		}
		if phases[len(phases)-1] != PhaseFactValidation {
			t.Errorf("expected factValidation last, got %q", phases[len(phases)-1])
		}
	})

	t.Run("explicit list preserves request order", func(t *testing.T) {
		t.Parallel()

		req := validRequest()
		req.Phases = []PhaseName{PhaseContextualFlow, PhaseStrategicFoundation}

		phases := req.EffectivePhases()
		if len(phases) != 2 {
			t.Fatalf("expected 2 phases, got %d", len(phases))
		}
		if phases[0] != PhaseContextualFlow || phases[1] != PhaseStrategicFoundation {
			t.Errorf("expected request order preserved, got %v", phases)
		}
	})

	t.Run("explicit factValidation is filtered without opt-in", func(t *testing.T) {
		t.Parallel()

		req := validRequest()
		req.Phases = []PhaseName{PhaseFactValidation}

		if phases := req.EffectivePhases(); len(phases) != 0 {
			t.Errorf("expected empty phase list, got %v", phases)
		}
	})
}
