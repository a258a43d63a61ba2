package model

import (
	"errors"
	"fmt"

	"golang.org/x/text/language"
)

// AuditRequest validation errors.
//
// Design decision: We use package-level sentinel errors rather than creating
// new error instances in Validate(). This allows callers to use errors.Is()
// for programmatic error handling while still providing human-readable
// messages.
var (
	// ErrInvalidAuditType is returned when the audit type is not
	// "internal" or "external".
	ErrInvalidAuditType = errors.New("invalid audit type: must be internal or external")
	// ErrInvalidAuditDepth is returned when the depth is not "quick" or "deep".
	ErrInvalidAuditDepth = errors.New("invalid audit depth: must be quick or deep")
	// ErrMissingProjectID is returned when the request has no project ID.
	ErrMissingProjectID = errors.New("missing project ID")
	// ErrUnknownPhase is returned when the request names a phase outside
	// the closed fifteen-value set.
	ErrUnknownPhase = errors.New("unknown phase name")
	// ErrDuplicatePhase is returned when the same phase is requested twice.
	// Phases form an ordered set; running one dimension twice in a single
	// run would produce two results for one report slot.
	ErrDuplicatePhase = errors.New("duplicate phase name")
	// ErrInvalidLanguage is returned when the language is not a valid
	// BCP 47 tag.
	ErrInvalidLanguage = errors.New("invalid language tag")
)

// AuditType distinguishes audits of the platform's own generated content
// from audits of externally scraped pages.
type AuditType string

// Audit type constants.
const (
	// AuditTypeInternal audits content the platform generated itself.
	AuditTypeInternal AuditType = "internal"
	// AuditTypeExternal audits content scraped from a live site.
	AuditTypeExternal AuditType = "external"
)

// AuditDepth controls how thoroughly analyzers inspect the content.
type AuditDepth string

// Audit depth constants.
const (
	// DepthQuick runs lightweight heuristics only.
	DepthQuick AuditDepth = "quick"
	// DepthDeep enables the slower, model-backed analyzer paths.
	DepthDeep AuditDepth = "deep"
)

// AuditRequest is the immutable input to one audit run. It is constructed
// by the calling layer (CLI, API, or UI action) and passed unchanged to
// every phase; phases must never modify it.
type AuditRequest struct {
	// Type selects internal or external audit mode.
	Type AuditType `json:"type" yaml:"type"`

	// ProjectID identifies the project whose content is audited.
	ProjectID string `json:"project_id" yaml:"project_id"`

	// Depth selects quick or deep analysis.
	Depth AuditDepth `json:"depth" yaml:"depth"`

	// Phases is the ordered set of phases to run. Empty means every
	// registered phase in canonical order.
	Phases []PhaseName `json:"phases,omitempty" yaml:"phases,omitempty"`

	// ScrapingProvider names the provider used to fetch external content.
	// Only meaningful for external audits; the engine passes it through
	// to analyzers untouched.
	ScrapingProvider string `json:"scraping_provider,omitempty" yaml:"scraping_provider,omitempty"`

	// Language is the BCP 47 tag of the content language (e.g. "en", "nl").
	// Empty defaults to "en".
	Language string `json:"language,omitempty" yaml:"language,omitempty"`

	// IncludeFactValidation enables the factValidation phase, which is
	// expensive because it verifies claims against sources.
	IncludeFactValidation bool `json:"include_fact_validation" yaml:"include_fact_validation"`

	// IncludePerformanceData asks analyzers to include timing and cost
	// data where they have it.
	IncludePerformanceData bool `json:"include_performance_data" yaml:"include_performance_data"`
}

// Validate checks the request for structural problems before any phase runs.
// It returns the first problem found.
func (r *AuditRequest) Validate() error {
	switch r.Type {
	case AuditTypeInternal, AuditTypeExternal:
	default:
		return fmt.Errorf("%w: got %q", ErrInvalidAuditType, r.Type)
	}

	if r.ProjectID == "" {
		return ErrMissingProjectID
	}

	switch r.Depth {
	case DepthQuick, DepthDeep:
	default:
		return fmt.Errorf("%w: got %q", ErrInvalidAuditDepth, r.Depth)
	}

	seen := make(map[PhaseName]bool, len(r.Phases))
	for _, name := range r.Phases {
		if !name.IsValid() {
			return fmt.Errorf("%w: %q", ErrUnknownPhase, name)
		}
		if seen[name] {
			return fmt.Errorf("%w: %q", ErrDuplicatePhase, name)
		}
		seen[name] = true
	}

	if r.Language != "" {
		if _, err := language.Parse(r.Language); err != nil {
			return fmt.Errorf("%w: %q: %v", ErrInvalidLanguage, r.Language, err)
		}
	}

	return nil
}

// EffectiveLanguage returns the request language, defaulting to "en".
func (r *AuditRequest) EffectiveLanguage() string {
	if r.Language == "" {
		return "en"
	}
	return r.Language
}

// EffectivePhases returns the phases to run, expanding an empty list to
// every phase in canonical order. The factValidation phase is excluded
// unless IncludeFactValidation is set, even when explicitly listed:
// fact validation is expensive and must be opted into.
func (r *AuditRequest) EffectivePhases() []PhaseName {
	source := r.Phases
	if len(source) == 0 {
		source = AllPhaseNames()
	}

	phases := make([]PhaseName, 0, len(source))
	for _, name := range source {
		if name == PhaseFactValidation && !r.IncludeFactValidation {
			continue
		}
		phases = append(phases, name)
	}
	return phases
}
