package phase

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/nao1215/contentaudit/internal/model"
)

// Registry errors.
var (
	// ErrDuplicatePhaseName is returned when two phases register under the
	// same name. Phase names must be unique so that a report slot maps to
	// exactly one implementation.
	ErrDuplicatePhaseName = errors.New("phase name already registered")
	// ErrInvalidPhaseName is returned when a phase registers under a name
	// outside the closed fifteen-value set.
	ErrInvalidPhaseName = errors.New("phase name outside the known set")
)

// Registry maps each PhaseName to its single Phase implementation.
// It is populated once at startup and read-only afterwards, so the
// orchestrator can consult it from concurrent goroutines without locking.
//
// Design decision: A registry of interface implementations replaces the
// deep subclass hierarchy a class-based design would invite. Dispatch is a
// map lookup; no inheritance deeper than interface-implements-interface.
type Registry struct {
	phases map[model.PhaseName]Phase
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{phases: make(map[model.PhaseName]Phase)}
}

// Register adds a phase to the registry. It rejects unknown and duplicate
// names: both indicate a wiring bug at startup, not a runtime condition.
func (r *Registry) Register(p Phase) error {
	name := p.PhaseName()
	if !name.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidPhaseName, name)
	}
	if _, exists := r.phases[name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicatePhaseName, name)
	}
	r.phases[name] = p
	return nil
}

// Get returns the phase registered under the given name.
func (r *Registry) Get(name model.PhaseName) (Phase, bool) {
	p, ok := r.phases[name]
	return p, ok
}

// Len returns the number of registered phases.
func (r *Registry) Len() int {
	return len(r.phases)
}

// Analyzers bundles the external analyzer collaborators of the four
// concrete phases. Any field may be nil: the corresponding phase then
// degrades to neutral results, which lets a host enable analyzers one at
// a time as they become available.
type Analyzers struct {
	// Foundation detects structural-foundation issues.
	Foundation FoundationAnalyzer
	// EAV checks entity-attribute-value consistency.
	EAV EAVAnalyzer
	// Quality evaluates the rule-based content quality checklist.
	Quality QualityAnalyzer
	// Flow analyzes link structure and contextual flow.
	Flow FlowAnalyzer
}

// NewDefaultRegistry builds the standard registry: the four concrete
// phases bound to the supplied analyzers, and a StubPhase for every other
// dimension. Every one of the fifteen PhaseNames ends up registered.
func NewDefaultRegistry(analyzers Analyzers, logger *slog.Logger) (*Registry, error) {
	r := NewRegistry()

	concrete := []Phase{
		NewFoundationPhase(analyzers.Foundation, logger),
		NewEAVPhase(analyzers.EAV, logger),
		NewQualityPhase(analyzers.Quality, logger),
		NewFlowPhase(analyzers.Flow, logger),
	}
	for _, p := range concrete {
		if err := r.Register(p); err != nil {
			return nil, err
		}
	}

	for _, name := range model.AllPhaseNames() {
		if _, ok := r.Get(name); ok {
			continue
		}
		if err := r.Register(NewStubPhase(name)); err != nil {
			return nil, err
		}
	}

	return r, nil
}
