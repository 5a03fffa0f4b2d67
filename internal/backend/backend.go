package backend

import (
	"fmt"

	"github.com/pycross/pycross/internal/ir"
)

// Backend is the interface that all code generation backends implement.
type Backend interface {
	// Name returns the backend name (e.g., "c", "cpp", "java")
	Name() string
	// Generate produces output source code from an IR program.
	Generate(prog *ir.Program) string
}

// For returns the backend for the given target selector. Unknown
// targets are a configuration error, never a silent fallback.
func For(target string) (Backend, error) {
	switch target {
	case "c":
		return &CBackend{}, nil
	case "cpp":
		return &CppBackend{}, nil
	case "java":
		return &JavaBackend{}, nil
	default:
		return nil, fmt.Errorf("unknown target: %s", target)
	}
}

// Targets returns the supported target selectors.
func Targets() []string {
	return []string{"c", "cpp", "java"}
}

// FileExtension returns the output file extension for the given target,
// or the empty string for unknown targets.
func FileExtension(target string) string {
	switch target {
	case "c":
		return ".c"
	case "cpp":
		return ".cpp"
	case "java":
		return ".java"
	default:
		return ""
	}
}
