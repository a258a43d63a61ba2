// Package model defines the core data structures used throughout the
// audit phase engine.
//
// This package contains the following main types:
//   - Finding: A single normalized, severity-tagged issue discovered by a phase
//   - PhaseResult: Score, findings, and check counts produced by one phase
//   - AuditRequest: The immutable input describing one audit run
//   - AuditReport: The full collection of PhaseResults for one run
//
// Design decision: We separate models into their own package to avoid circular
// dependencies. Multiple packages (phase, audit, report) need to use these
// types, so centralizing them prevents import cycles.
//
// Every entity here is created fresh per audit run and treated as immutable
// afterwards. The engine holds no persistent mutable state; storing past runs
// is a concern of the embedding host.
package model
