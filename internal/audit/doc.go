// Package audit contains the orchestrator that runs an audit: it fans the
// requested phases out concurrently, joins their results, and composes the
// final AuditReport.
//
// The fan-out is embarrassingly parallel. Phases share no mutable state and
// have no ordering dependency, every Finding and PhaseResult is an
// immutable value created exactly once, and aggregation is by copy - so no
// locks are needed beyond what errgroup provides.
//
// Error policy follows the engine's taxonomy: analyzer failures are already
// absorbed at the phase boundary, a phase implementation error (programmer
// bug) is logged and replaced by a neutral result so the report stays
// complete, and the orchestrator itself fails only when no phase could
// produce any result. A degraded audit beats no audit.
package audit
