package model

import (
	"encoding/json"
	"fmt"
)

// Severity represents the impact level of an audit finding.
// This allows categorizing findings by how badly they hurt content quality.
//
// Design decision: We use iota-based constants rather than string constants
// for efficiency in comparisons and sorting. The String() method provides
// human-readable output when needed. The zero value is deliberately
// SeverityUnknown so that a normalizer that forgets to assign a severity is
// caught by NewFinding instead of silently producing a low-severity finding.
type Severity int

const (
	// SeverityUnknown is the zero value and never valid on a Finding.
	// NewFinding rejects it because a missing severity indicates a
	// normalizer bug, not a data condition.
	SeverityUnknown Severity = iota

	// SeverityLow indicates minor polish issues with limited impact.
	// Examples: a slightly long meta description, a weak anchor text.
	SeverityLow

	// SeverityMedium indicates moderate issues that warrant attention.
	// Examples: a missing supporting section, inconsistent units in a table.
	SeverityMedium

	// SeverityHigh indicates serious issues that significantly hurt the
	// content. Examples: a conflicting attribute value, a broken
	// contextual bridge between topics.
	SeverityHigh

	// SeverityCritical indicates severe issues that undermine the page as a
	// whole. Examples: no central entity, a contradicted core fact.
	SeverityCritical
)

// severityNames maps severities to their canonical wire representation.
// Lowercase strings match the vocabulary used by the rest of the platform.
var severityNames = map[Severity]string{
	SeverityLow:      "low",
	SeverityMedium:   "medium",
	SeverityHigh:     "high",
	SeverityCritical: "critical",
}

// String returns a human-readable representation of the severity level.
func (s Severity) String() string {
	if name, ok := severityNames[s]; ok {
		return name
	}
	return "unknown"
}

// IsValid returns true if this is one of the four canonical severities.
func (s Severity) IsValid() bool {
	_, ok := severityNames[s]
	return ok
}

// ParseSeverity converts a canonical severity string into a Severity.
// It returns an error for anything outside the closed four-value set so
// that typos in lookup tables or request files surface immediately.
func ParseSeverity(s string) (Severity, error) {
	for sev, name := range severityNames {
		if name == s {
			return sev, nil
		}
	}
	return SeverityUnknown, fmt.Errorf("unknown severity %q", s)
}

// MarshalJSON serializes the severity as its lowercase canonical name.
func (s Severity) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON parses the lowercase canonical name back into a Severity.
func (s *Severity) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	sev, err := ParseSeverity(name)
	if err != nil {
		return err
	}
	*s = sev
	return nil
}

// Impact represents the estimated improvement from fixing a finding.
// It is coarser than Severity: severity says how bad the issue is,
// impact says how much fixing it is expected to move the score.
type Impact string

// Estimated impact constants.
const (
	// ImpactLow means fixing the issue yields a marginal improvement.
	ImpactLow Impact = "low"
	// ImpactMedium is the default when a normalizer supplies no estimate.
	ImpactMedium Impact = "medium"
	// ImpactHigh means fixing the issue yields a substantial improvement.
	ImpactHigh Impact = "high"
)

// IsValid returns true if this is a known impact level.
func (i Impact) IsValid() bool {
	switch i {
	case ImpactLow, ImpactMedium, ImpactHigh:
		return true
	default:
		return false
	}
}
