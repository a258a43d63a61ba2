package score

import (
	"fmt"
	"math"

	"github.com/nao1215/contentaudit/internal/model"
)

// Severity penalty weights. Each finding subtracts its weight from the
// base score on top of consuming one check. The values are strictly
// decreasing by severity rank; the ordering is the binding contract, the
// exact magnitudes are tuning.
//
// Design decision: A single critical finding on a ten-check phase lands at
// 70 (90 base - 20), which the report writers present as "needs work",
// while a single low finding lands at 88, still "good". The weights were
// chosen so those presentation bands feel right, not from any deeper math.
const (
	// WeightCritical is the penalty for a critical finding.
	WeightCritical = 20
	// WeightHigh is the penalty for a high severity finding.
	WeightHigh = 10
	// WeightMedium is the penalty for a medium severity finding.
	WeightMedium = 5
	// WeightLow is the penalty for a low severity finding.
	WeightLow = 2
)

// Weight returns the score penalty for a finding of the given severity.
// Unknown severities weigh as critical: they indicate a normalizer bug
// that NewFinding should have caught, and underpenalizing a bug would
// hide it.
func Weight(severity model.Severity) int {
	switch severity {
	case model.SeverityCritical:
		return WeightCritical
	case model.SeverityHigh:
		return WeightHigh
	case model.SeverityMedium:
		return WeightMedium
	case model.SeverityLow:
		return WeightLow
	default:
		return WeightCritical
	}
}

// BuildResult folds normalized findings and the analyzer's check count into
// a PhaseResult. This is the only way a PhaseResult is produced.
//
// The contract:
//   - totalChecks == 0 means the phase had nothing to evaluate: score 100,
//     passedChecks 0, regardless of findings. No defined checks, no failure.
//   - Otherwise passedChecks = max(0, totalChecks - len(findings)): every
//     finding consumes exactly one check irrespective of severity.
//   - score = clamp(round(passedChecks/totalChecks*100 - penalty), 0, 100)
//     where penalty is the sum of severity weights over all findings.
//
// Negative totalChecks is treated as zero; an analyzer reporting a negative
// check count is misbehaving, and the neutral result is the safe reading.
func BuildResult(phase model.PhaseName, findings []model.Finding, totalChecks int) *model.PhaseResult {
	if totalChecks <= 0 {
		return &model.PhaseResult{
			Phase:        phase,
			Score:        100,
			Findings:     copyFindings(findings),
			PassedChecks: 0,
			TotalChecks:  0,
			Summary:      fmt.Sprintf("%s: no applicable checks for this audit", phase),
		}
	}

	passed := totalChecks - len(findings)
	if passed < 0 {
		passed = 0
	}

	penalty := 0
	for _, f := range findings {
		penalty += Weight(f.Severity)
	}

	base := float64(passed) / float64(totalChecks) * 100
	s := int(math.Round(base - float64(penalty)))
	if s < 0 {
		s = 0
	}
	if s > 100 {
		s = 100
	}

	result := &model.PhaseResult{
		Phase:        phase,
		Score:        s,
		Findings:     copyFindings(findings),
		PassedChecks: passed,
		TotalChecks:  totalChecks,
	}
	result.Summary = summarize(result)
	return result
}

// summarize derives the deterministic summary line for a scored result.
// The wording is not contractual, but it must be stable for identical
// inputs so reports diff cleanly between runs.
func summarize(r *model.PhaseResult) string {
	if len(r.Findings) == 0 {
		return fmt.Sprintf("%s: all %d checks passed (score %d)", r.Phase, r.TotalChecks, r.Score)
	}
	return fmt.Sprintf(
		"%s: %d of %d checks passed (score %d): %d critical, %d high, %d medium, %d low",
		r.Phase,
		r.PassedChecks,
		r.TotalChecks,
		r.Score,
		r.CountBySeverity(model.SeverityCritical),
		r.CountBySeverity(model.SeverityHigh),
		r.CountBySeverity(model.SeverityMedium),
		r.CountBySeverity(model.SeverityLow),
	)
}

// copyFindings copies the findings slice so the result owns its data.
// Aggregation is by copy: no phase may later mutate another's result.
func copyFindings(findings []model.Finding) []model.Finding {
	out := make([]model.Finding, len(findings))
	copy(out, findings)
	return out
}
