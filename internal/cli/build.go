package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pycross/pycross/internal/ir"
	"github.com/pycross/pycross/internal/transpiler"
)

// BuildOptions holds flags for the build command.
type BuildOptions struct {
	*RootOptions
	Target string
	Stdout bool
}

// NewBuildCommand creates the build command.
func NewBuildCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &BuildOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "build <file.py>",
		Short: "Translate a source file to the selected target language",
		Long: `Translate a Python-subset source file into C, C++, or Java.

The output file is written next to the input with the target's
extension (hello.py -> hello.c). Translation never fails on malformed
source; parse errors surface as a comment in the generated output.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Target, "target", "t", "c", "target language (c|cpp|java)")
	cmd.Flags().BoolVar(&opts.Stdout, "stdout", false, "write generated code to stdout")

	return cmd
}

func runBuild(opts *BuildOptions, filePath string, cmd *cobra.Command) error {
	source, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	if opts.Verbose {
		prog := transpiler.Parse(string(source))
		if problems := ir.Validate(prog); len(problems) > 0 {
			fmt.Fprintf(cmd.ErrOrStderr(), "invalid IR:\n  %s\n", strings.Join(problems, "\n  "))
		}
	}

	if opts.Stdout {
		code, err := transpiler.Translate(string(source), opts.Target)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), code)
		return nil
	}

	baseName := strings.TrimSuffix(filepath.Base(filePath), filepath.Ext(filePath))
	outPath, err := transpiler.EmitFile(string(source), opts.Target, baseName)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", outPath)
	return nil
}
