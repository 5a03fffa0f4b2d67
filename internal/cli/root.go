// Package cli implements the pycross command tree.
package cli

import (
	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
}

// NewRootCommand creates the root command for the pycross CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "pycross",
		Short: "pycross - Python-subset to C/C++/Java transpiler",
		Long: `pycross translates a restricted Python subset into equivalent
C, C++, or Java source text. Unsupported constructs degrade to
best-effort output instead of failing; use 'pycross lint' to see
what a source file loses in translation.`,
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")

	cmd.AddCommand(NewBuildCommand(opts))
	cmd.AddCommand(NewLintCommand(opts))
	cmd.AddCommand(NewTargetsCommand(opts))
	cmd.AddCommand(NewServeCommand(opts))

	return cmd
}
