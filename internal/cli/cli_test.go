package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeSource(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sample.py")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestTargetsCommand(t *testing.T) {
	out, err := runCommand(t, "targets")
	require.NoError(t, err)
	assert.Contains(t, out, "c\t(.c)")
	assert.Contains(t, out, "cpp\t(.cpp)")
	assert.Contains(t, out, "java\t(.java)")
}

func TestBuildToStdout(t *testing.T) {
	path := writeSource(t, "x = 5\nprint(x)\n")

	out, err := runCommand(t, "build", "--stdout", "-t", "java", path)
	require.NoError(t, err)
	assert.Contains(t, out, "public class Main {")
	assert.Contains(t, out, "int x = 5;")
	assert.Contains(t, out, "System.out.println(x);")
}

func TestBuildUnknownTarget(t *testing.T) {
	path := writeSource(t, "x = 5\n")

	_, err := runCommand(t, "build", "--stdout", "-t", "rust", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown target: rust")
}

func TestBuildMissingInput(t *testing.T) {
	_, err := runCommand(t, "build", filepath.Join(t.TempDir(), "nope.py"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read input")
}

func TestLintCleanFile(t *testing.T) {
	path := writeSource(t, "x = 5\nprint(x)\n")

	out, err := runCommand(t, "lint", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Everything translates cleanly.")
}

func TestLintWarnings(t *testing.T) {
	path := writeSource(t, "import math\nx = 5\n")

	out, err := runCommand(t, "lint", path)
	require.NoError(t, err)
	assert.Contains(t, out, "import of 'math' is dropped")
	assert.Contains(t, out, "1 warning(s) found.")
}

func TestLintParseErrors(t *testing.T) {
	path := writeSource(t, "x = = 5\n")

	_, err := runCommand(t, "lint", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse errors")
}

func TestBuildWritesFileNextToCwd(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hello.py")
	require.NoError(t, os.WriteFile(path, []byte("x = 1\n"), 0644))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	out, err := runCommand(t, "build", "-t", "cpp", path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Wrote hello.cpp"), "got %q", out)

	data, err := os.ReadFile(filepath.Join(dir, "hello.cpp"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "int x = 1;")
}
