package phase

import (
	"context"
	"log/slog"

	"github.com/nao1215/contentaudit/internal/model"
	"github.com/nao1215/contentaudit/internal/score"
)

// Phase is the interface every audit dimension implements. The orchestrator
// talks to phases exclusively through it.
//
// Design decision: We use an interface rather than concrete types because:
//  1. The orchestrator dispatches over a registry of fifteen dimensions
//  2. Enables testing with fake phases and fake analyzers
//  3. Stub and real phases are interchangeable behind the same contract
type Phase interface {
	// PhaseName returns the stable name of this phase. It is constant for
	// the lifetime of the phase and unique across the registry.
	PhaseName() model.PhaseName

	// Execute runs the phase's analyzer against the request and returns a
	// scored PhaseResult. It may perform network- or model-bound analyzer
	// I/O and must honor ctx cancellation.
	//
	// Execute never fails for "nothing to evaluate": a missing analyzer,
	// absent input, or an analyzer error all yield a neutral zero-check
	// result instead. A returned error signals a genuine internal bug
	// (typically a normalizer emitting a malformed finding).
	Execute(ctx context.Context, req *model.AuditRequest) (*model.PhaseResult, error)
}

// base carries the pieces every concrete phase shares: its name and a
// logger for phase-boundary diagnostics.
type base struct {
	name   model.PhaseName
	logger *slog.Logger
}

// newBase creates the shared phase state. A nil logger falls back to
// slog.Default so phases can always log analyzer failures.
func newBase(name model.PhaseName, logger *slog.Logger) base {
	if logger == nil {
		logger = slog.Default()
	}
	return base{name: name, logger: logger}
}

// PhaseName returns the phase's stable name.
func (b *base) PhaseName() model.PhaseName {
	return b.name
}

// neutral returns the zero-check result used whenever the phase has
// nothing to evaluate: no analyzer bound, no input for this audit type,
// analyzer failure, or cancellation. One failing phase must never abort
// the whole audit.
func (b *base) neutral() *model.PhaseResult {
	return score.BuildResult(b.name, nil, 0)
}

// analyzerFailed logs an analyzer failure and returns the neutral result.
// Analyzer errors (network, parse, model) are a data condition at this
// boundary, not an engine failure.
func (b *base) analyzerFailed(err error) *model.PhaseResult {
	b.logger.Warn("analyzer failed; phase degrades to neutral result",
		"phase", b.name,
		"error", err,
	)
	return b.neutral()
}

// cancelled logs a cooperative cancellation and returns the neutral result.
// A phase unable to finish in time yields rather than blocking the report.
func (b *base) cancelled(ctx context.Context) *model.PhaseResult {
	b.logger.Warn("phase cancelled before completion",
		"phase", b.name,
		"reason", ctx.Err(),
	)
	return b.neutral()
}
