package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pycross/pycross/internal/transpiler"
)

// NewLintCommand creates the lint command.
func NewLintCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "lint <file.py>",
		Short:         "Report constructs the translation will skip or degrade",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLint(args[0], cmd)
		},
	}

	return cmd
}

func runLint(filePath string, cmd *cobra.Command) error {
	source, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	diag := transpiler.Lint(string(source))

	if diag.HasErrors() {
		return fmt.Errorf("parse errors:\n%s", diag.Format(filePath))
	}

	if diag.Count() == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "Everything translates cleanly.")
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), diag.Format(filePath))
	fmt.Fprintf(cmd.OutOrStdout(), "%d warning(s) found.\n", diag.Count())
	return nil
}
