package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pycross/pycross/internal/backend"
)

// NewTargetsCommand creates the targets command.
func NewTargetsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "targets",
		Short: "List supported target languages",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, target := range backend.Targets() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t(%s)\n", target, backend.FileExtension(target))
			}
		},
	}
}
