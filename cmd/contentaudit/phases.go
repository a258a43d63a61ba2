package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nao1215/contentaudit/internal/model"
)

// concretePhases marks the dimensions that currently have real
// normalization logic behind them. Everything else runs as a stub until
// its analyzer exists.
var concretePhases = map[model.PhaseName]bool{
	model.PhaseStrategicFoundation: true,
	model.PhaseEAVSystem:           true,
	model.PhaseMicroSemantics:      true,
	model.PhaseContextualFlow:      true,
}

// NewPhasesCmd creates the phases command.
func NewPhasesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "phases",
		Short: "List all audit phases",
		Long: `List every audit dimension in canonical order, marking which phases
have a real analyzer binding and which run as neutral stubs.`,
		Run: func(cmd *cobra.Command, _ []string) {
			for _, name := range model.AllPhaseNames() {
				status := "stub"
				if concretePhases[name] {
					status = "analyzer-backed"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-24s %s\n", name, status)
			}
		},
	}
}
