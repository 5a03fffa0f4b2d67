package linter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pycross/pycross/internal/ast"
	"github.com/pycross/pycross/internal/diagnostic"
	"github.com/pycross/pycross/internal/parser"
)

func lint(t *testing.T, src string) *diagnostic.Diagnostics {
	t.Helper()
	p := parser.New(src)
	mod := p.Parse()
	require.False(t, p.Diagnostics().HasErrors(),
		"parse errors: %s", p.Diagnostics().Format("test"))
	return Lint(mod)
}

func messages(d *diagnostic.Diagnostics) []string {
	var msgs []string
	for _, item := range d.All() {
		msgs = append(msgs, item.Message)
	}
	return msgs
}

func TestLintCleanSource(t *testing.T) {
	src := "x = 5\nprint(\"total\", x)\nfor i in range(3):\n    print(i)\n"
	assert.Zero(t, lint(t, src).Count())
}

func TestLintFuncDef(t *testing.T) {
	diags := lint(t, "def helper():\n    return 1\n")
	require.Equal(t, 1, diags.Count())
	assert.Contains(t, diags.All()[0].Message, "function definition 'helper'")
	assert.Equal(t, diagnostic.Warning, diags.All()[0].Severity)
}

func TestLintImport(t *testing.T) {
	diags := lint(t, "import math\n")
	require.Equal(t, 1, diags.Count())
	assert.Contains(t, diags.All()[0].Message, "import of 'math' is dropped")
}

func TestLintMultiTargetAssignment(t *testing.T) {
	diags := lint(t, "a = b = 1\n")
	require.Equal(t, 1, diags.Count())
	assert.Contains(t, diags.All()[0].Message, "only the first assignment target 'a'")
}

func TestLintUnsupportedExpression(t *testing.T) {
	diags := lint(t, "x = foo()\n")
	require.Equal(t, 1, diags.Count())
	assert.Contains(t, diags.All()[0].Message, "degrades to 0")
}

func TestLintNonComparisonCondition(t *testing.T) {
	diags := lint(t, "while x:\n    x = 0\n")
	require.Equal(t, 1, diags.Count())
	assert.Contains(t, diags.All()[0].Message, "degrades to true")
}

func TestLintNonRangeIterable(t *testing.T) {
	diags := lint(t, "for x in items:\n    print(x)\n")
	require.Equal(t, 1, diags.Count())
	assert.Contains(t, diags.All()[0].Message, "the bound defaults to 10")
}

func TestLintTopLevelReturn(t *testing.T) {
	diags := lint(t, "return 5\n")
	require.Equal(t, 1, diags.Count())
	assert.Contains(t, diags.All()[0].Message, "return outside a function definition")
}

func TestLintDroppedBareStatement(t *testing.T) {
	diags := lint(t, "helper()\n")
	require.Equal(t, 1, diags.Count())
	assert.Contains(t, diags.All()[0].Message, "no translation")
}

func TestLintEntryGuardIsSilent(t *testing.T) {
	src := "if __name__ == \"__main__\":\n    x = 5\n"
	assert.Zero(t, lint(t, src).Count())
}

func TestLintLooksInsideBlocks(t *testing.T) {
	src := "if x > 1:\n    y = foo()\nelse:\n    import os\n"
	msgs := messages(lint(t, src))
	require.Len(t, msgs, 2)
	assert.Contains(t, msgs[0], "degrades to 0")
	assert.Contains(t, msgs[1], "import of 'os'")
}

func TestLintPrintArguments(t *testing.T) {
	diags := lint(t, "print(foo(), \"ok\")\n")
	require.Equal(t, 1, diags.Count())
	assert.Contains(t, diags.All()[0].Message, "degrades to 0")
}

func TestLintEmptyModule(t *testing.T) {
	assert.Zero(t, Lint(&ast.Module{}).Count())
}
