package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/foundry/ioshell"
)

// NewRootCommand builds the factory solver's single-command CLI: read one
// JSON request from standard input, write one JSON response to standard
// output. There are no flags; the whole contract is the request body.
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "factory",
		Short: "Solve a factory production-planning request read from stdin",
		Long: `factory reads a single JSON production request from standard input
and writes a single JSON response to standard output: either an
achievable production plan or an infeasibility diagnosis.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ioshell.RunFactory(cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
	cmd.CompletionOptions.DisableDefaultCmd = true
	return cmd
}

func main() {
	if err := NewRootCommand().Execute(); err != nil {
		slog.Error("factory solver failed", "error", err)
		os.Exit(1)
	}
}
