// Package transpiler wires the pipeline together: source text in,
// generated program text out. Each call builds its own IR and generator
// state, so concurrent translations never share anything.
package transpiler

import (
	"fmt"
	"os"

	"github.com/pycross/pycross/internal/backend"
	"github.com/pycross/pycross/internal/diagnostic"
	"github.com/pycross/pycross/internal/ir"
	"github.com/pycross/pycross/internal/linter"
	"github.com/pycross/pycross/internal/parser"
)

// Translate runs the full pipeline: parse -> lower -> generate.
// It is total with respect to the source text: a parse failure is
// captured as a single comment inside otherwise valid output. The only
// error condition is an unknown target selector.
func Translate(source, target string) (string, error) {
	be, err := backend.For(target)
	if err != nil {
		return "", err
	}
	return be.Generate(Parse(source)), nil
}

// Parse runs parse -> lower and returns the IR program. When parsing
// fails the program holds exactly one Comment instruction carrying the
// first error; nothing else from the source survives.
func Parse(source string) *ir.Program {
	p := parser.New(source)
	mod := p.Parse()

	if p.Diagnostics().HasErrors() {
		first := p.Diagnostics().First()
		return &ir.Program{Instructions: []ir.Instr{
			&ir.Comment{Text: fmt.Sprintf("Error: %d:%d: %s", first.Line, first.Column, first.Message)},
		}}
	}

	return ir.Lower(mod)
}

// Lint parses the source and reports every construct the translation
// would skip or degrade. Parse errors are returned in place of lint
// findings since a failed parse degrades the whole translation.
func Lint(source string) *diagnostic.Diagnostics {
	p := parser.New(source)
	mod := p.Parse()

	if p.Diagnostics().HasErrors() {
		return p.Diagnostics()
	}

	return linter.Lint(mod)
}

// EmitFile translates source and writes the output next to baseName
// with the target's file extension.
func EmitFile(source, target, baseName string) (string, error) {
	code, err := Translate(source, target)
	if err != nil {
		return "", err
	}

	outPath := baseName + backend.FileExtension(target)
	if err := os.WriteFile(outPath, []byte(code), 0644); err != nil {
		return "", fmt.Errorf("failed to write output file: %w", err)
	}
	return outPath, nil
}
