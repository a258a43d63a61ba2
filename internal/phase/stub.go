package phase

import (
	"context"

	"github.com/nao1215/contentaudit/internal/model"
	"github.com/nao1215/contentaudit/internal/score"
)

// StubPhase is a placeholder implementation for audit dimensions whose
// analyzer does not exist yet. It always returns the neutral zero-check
// result, so requesting a stubbed dimension degrades the audit gracefully
// instead of failing it.
//
// Design decision: One generic stub parameterized by name, rather than a
// near-duplicate type per pending dimension. When a dimension gains a real
// analyzer it gets its own phase type and the stub simply stops being
// registered under that name.
type StubPhase struct {
	name model.PhaseName
}

// NewStubPhase creates a stub for the given dimension.
func NewStubPhase(name model.PhaseName) *StubPhase {
	return &StubPhase{name: name}
}

// PhaseName returns the dimension this stub stands in for.
func (s *StubPhase) PhaseName() model.PhaseName {
	return s.name
}

// Execute returns the neutral result unconditionally.
func (s *StubPhase) Execute(_ context.Context, _ *model.AuditRequest) (*model.PhaseResult, error) {
	return score.BuildResult(s.name, nil, 0), nil
}
