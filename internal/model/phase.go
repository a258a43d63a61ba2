package model

// PhaseName identifies one independent inspection dimension of a content
// audit. The set is closed: every name maps 1:1 to exactly one registered
// phase implementation, and the orchestrator rejects requests that mention
// anything else.
//
// Design decision: We use typed string constants rather than iota integers
// because phase names travel through request files and reports, and a
// self-describing string survives serialization without a lookup table.
type PhaseName string

// The fifteen audit dimensions.
const (
	// PhaseStrategicFoundation checks the structural foundation of the
	// content: central entity, source context, and central search intent.
	PhaseStrategicFoundation PhaseName = "strategicFoundation"
	// PhaseEAVSystem checks entity-attribute-value consistency across
	// the content inventory.
	PhaseEAVSystem PhaseName = "eavSystem"
	// PhaseMicroSemantics runs the rule-based content quality checklist
	// (sentence-level semantics, modality, precision).
	PhaseMicroSemantics PhaseName = "microSemantics"
	// PhaseInternalLinking checks internal link coverage and anchor quality.
	PhaseInternalLinking PhaseName = "internalLinking"
	// PhaseInformationDensity checks for filler and low-density passages.
	PhaseInformationDensity PhaseName = "informationDensity"
	// PhaseContextualFlow checks link structure and topical flow between
	// sections and pages.
	PhaseContextualFlow PhaseName = "contextualFlow"
	// PhaseSemanticDistance checks semantic distance between linked topics.
	PhaseSemanticDistance PhaseName = "semanticDistance"
	// PhaseContentFormat checks formatting conventions (lists, tables,
	// headings) against the content type.
	PhaseContentFormat PhaseName = "contentFormat"
	// PhaseHTMLTechnical checks technical HTML hygiene.
	PhaseHTMLTechnical PhaseName = "htmlTechnical"
	// PhaseMetaStructuredData checks meta tags and structured data.
	PhaseMetaStructuredData PhaseName = "metaStructuredData"
	// PhaseCostOfRetrieval checks how expensive the page is to retrieve
	// and parse for search engines.
	PhaseCostOfRetrieval PhaseName = "costOfRetrieval"
	// PhaseURLArchitecture checks URL structure and hierarchy.
	PhaseURLArchitecture PhaseName = "urlArchitecture"
	// PhaseCrossPageConsistency checks consistency of shared facts across
	// pages of the same project.
	PhaseCrossPageConsistency PhaseName = "crossPageConsistency"
	// PhaseWebsiteTypeSpecific runs checks specific to the website type
	// (e-commerce, publisher, corporate).
	PhaseWebsiteTypeSpecific PhaseName = "websiteTypeSpecific"
	// PhaseFactValidation validates factual claims against sources.
	// Only runs when AuditRequest.IncludeFactValidation is set.
	PhaseFactValidation PhaseName = "factValidation"
)

// allPhaseNames lists every phase in canonical execution/report order.
// The order is stable so that reports are reproducible run to run.
var allPhaseNames = []PhaseName{
	PhaseStrategicFoundation,
	PhaseEAVSystem,
	PhaseMicroSemantics,
	PhaseInternalLinking,
	PhaseInformationDensity,
	PhaseContextualFlow,
	PhaseSemanticDistance,
	PhaseContentFormat,
	PhaseHTMLTechnical,
	PhaseMetaStructuredData,
	PhaseCostOfRetrieval,
	PhaseURLArchitecture,
	PhaseCrossPageConsistency,
	PhaseWebsiteTypeSpecific,
	PhaseFactValidation,
}

// AllPhaseNames returns every phase name in canonical order.
// Callers receive a fresh copy and may reorder it freely.
func AllPhaseNames() []PhaseName {
	names := make([]PhaseName, len(allPhaseNames))
	copy(names, allPhaseNames)
	return names
}

// String returns the phase name as it appears in requests and reports.
func (p PhaseName) String() string {
	return string(p)
}

// IsValid returns true if this is one of the fifteen known phases.
func (p PhaseName) IsValid() bool {
	for _, name := range allPhaseNames {
		if p == name {
			return true
		}
	}
	return false
}
