package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/foundry/ioshell"
)

// NewRootCommand builds the belts solver's single-command CLI, mirroring
// cmd/factory's contract for the bounded-flow request/response pair.
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "belts",
		Short: "Solve a bounded-flow feasibility request read from stdin",
		Long: `belts reads a single JSON flow-network request from standard input
and writes a single JSON response to standard output: either a feasible
flow assignment or a min-cut infeasibility certificate.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ioshell.RunBelts(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
	cmd.CompletionOptions.DisableDefaultCmd = true
	return cmd
}

func main() {
	if err := NewRootCommand().Execute(); err != nil {
		slog.Error("belts solver failed", "error", err)
		os.Exit(1)
	}
}
