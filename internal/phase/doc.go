// Package phase defines the Phase interface and the concrete phase
// adapters of the audit engine.
//
// A phase is one independent inspection dimension of a content audit. Each
// phase calls exactly one external analyzer, normalizes its raw output into
// canonical model.Findings, and folds them through the shared scoring
// function. The analyzers themselves - how an issue is decided to exist -
// live outside this module.
//
// Four phases carry real normalization logic (strategicFoundation,
// eavSystem, microSemantics, contextualFlow); the remaining dimensions ship
// as a single generic StubPhase until their analyzers exist.
//
// Design decision: Each normalizer's severity remap and title lookup tables
// are co-located with its phase rather than shared globally, so each
// analyzer domain's mapping can be audited in isolation. The tables are
// pure data; the transform functions that use them take raw issues in and
// return findings out, with no I/O.
package phase
