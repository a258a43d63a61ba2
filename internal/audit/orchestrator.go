package audit

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/nao1215/contentaudit/internal/model"
	"github.com/nao1215/contentaudit/internal/phase"
	"github.com/nao1215/contentaudit/internal/score"
)

// Orchestrator errors.
var (
	// ErrPhaseNotRegistered is returned when a requested phase has no
	// implementation in the registry. With the default registry this is
	// unreachable (all fifteen names are populated); it guards hosts that
	// assemble their own registries.
	ErrPhaseNotRegistered = errors.New("phase not registered")
	// ErrAllPhasesFailed is returned when every requested phase failed and
	// no result could be produced. This is the only run-level failure.
	ErrAllPhasesFailed = errors.New("no phase produced a result")
	// ErrNoPhasesRequested is returned when the effective phase list is
	// empty, e.g. a request naming only factValidation without enabling it.
	ErrNoPhasesRequested = errors.New("no phases to run")
)

// Orchestrator runs all requested phases of an audit and composes the
// AuditReport. It holds no per-run state; a single Orchestrator may serve
// many concurrent runs.
type Orchestrator struct {
	// registry resolves phase names to implementations.
	registry *phase.Registry

	// concurrency is the maximum number of phases running simultaneously.
	concurrency int

	// logger is used for run-level logging.
	logger *slog.Logger
}

// Option configures an Orchestrator.
// This follows the functional options pattern for clean API design.
type Option func(*Orchestrator)

// WithLogger sets a custom logger for the orchestrator.
// If not set, slog.Default() is used.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Orchestrator) {
		o.logger = logger
	}
}

// WithConcurrency caps the number of phases running at once.
// The default runs all requested phases simultaneously, which is fine for
// the fifteen-dimension case; hosts whose analyzers share a rate-limited
// backend can lower it.
func WithConcurrency(n int) Option {
	return func(o *Orchestrator) {
		if n > 0 {
			o.concurrency = n
		}
	}
}

// New creates an Orchestrator over the given phase registry.
func New(registry *phase.Registry, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		registry:    registry,
		concurrency: len(model.AllPhaseNames()),
	}

	for _, opt := range opts {
		opt(o)
	}

	if o.logger == nil {
		o.logger = slog.Default()
	}

	return o
}

// Run executes the audit described by the request and returns its report.
//
// All requested phases run concurrently; results join in request order so
// the report is reproducible. A phase returning an error (programmer bug
// class) is logged, recorded in FailedPhases, and replaced by a neutral
// result so the report stays complete. Run fails only when the request is
// invalid, resolution fails, or every phase failed.
//
// Cancellation is cooperative: phases observe ctx and yield neutral
// results rather than blocking the report.
func (o *Orchestrator) Run(ctx context.Context, req *model.AuditRequest) (*model.AuditReport, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid audit request: %w", err)
	}

	names := req.EffectivePhases()
	if len(names) == 0 {
		return nil, ErrNoPhasesRequested
	}

	phases := make([]phase.Phase, len(names))
	for i, name := range names {
		p, ok := o.registry.Get(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrPhaseNotRegistered, name)
		}
		phases[i] = p
	}

	o.logger.Info("starting audit",
		"project", req.ProjectID,
		"type", req.Type,
		"depth", req.Depth,
		"phases", len(phases),
	)
	startTime := time.Now()

	// Pre-allocate to keep results in request order; each goroutine
	// writes only its own index, so no mutex is needed.
	results := make([]*model.PhaseResult, len(phases))
	failures := make([]error, len(phases))

	g := new(errgroup.Group)
	g.SetLimit(o.concurrency)

	for i, p := range phases {
		g.Go(func() error {
			results[i], failures[i] = o.executePhase(ctx, p, req)
			// Never propagate into the group: one failing phase must not
			// cancel its siblings. Failures are judged after the join.
			return nil
		})
	}
	// Goroutines never return errors; Wait only joins.
	_ = g.Wait() //nolint:errcheck // group members always return nil

	report := &model.AuditReport{
		ProjectID:   req.ProjectID,
		Type:        req.Type,
		Depth:       req.Depth,
		DateAudited: startTime,
		Results:     make([]model.PhaseResult, 0, len(phases)),
	}

	failedCount := 0
	for i, result := range results {
		if failures[i] != nil {
			failedCount++
			report.FailedPhases = append(report.FailedPhases, names[i])
		}
		// Aggregate by copy; the report owns its results.
		report.Results = append(report.Results, *result)
	}

	if failedCount == len(phases) {
		return nil, fmt.Errorf("%w: %d phases failed", ErrAllPhasesFailed, failedCount)
	}

	o.logger.Info("audit complete",
		"project", req.ProjectID,
		"overall_score", report.OverallScore(),
		"findings", report.TotalFindings(),
		"failed_phases", failedCount,
		"elapsed", time.Since(startTime),
	)

	return report, nil
}

// executePhase runs one phase and contains its failures. A panic or error
// from the phase implementation is a programmer bug; it is logged and the
// phase degrades to a neutral result so the rest of the report survives.
func (o *Orchestrator) executePhase(ctx context.Context, p phase.Phase, req *model.AuditRequest) (result *model.PhaseResult, failure error) {
	name := p.PhaseName()

	defer func() {
		if r := recover(); r != nil {
			failure = fmt.Errorf("phase %s panicked: %v", name, r)
			o.logger.Error("phase panicked",
				"phase", name,
				"panic", r,
			)
			result = score.BuildResult(name, nil, 0)
		}
	}()

	o.logger.Debug("executing phase", "phase", name)

	result, err := p.Execute(ctx, req)
	if err != nil {
		o.logger.Error("phase failed",
			"phase", name,
			"error", err,
		)
		return score.BuildResult(name, nil, 0), err
	}
	if result == nil {
		// A nil result without an error breaks the Phase contract.
		err := fmt.Errorf("phase %s returned no result", name)
		o.logger.Error("phase returned no result", "phase", name)
		return score.BuildResult(name, nil, 0), err
	}

	o.logger.Debug("phase completed",
		"phase", name,
		"score", result.Score,
		"findings", len(result.Findings),
	)
	return result, nil
}
