// Package score implements the shared scoring function of the audit engine.
//
// Every phase funnels its normalized findings through BuildResult so that
// scores stay comparable across all fifteen audit dimensions. The function
// is pure: no I/O, no clock, no randomness - identical inputs always yield
// identical PhaseResults.
//
// Design decision: Scoring lives in its own package rather than in model
// because model holds passive data while this package holds policy (the
// severity weights). Keeping policy out of model also keeps the weight
// table in exactly one place, so no phase can drift to its own formula.
package score
