package backend

import (
	"github.com/pycross/pycross/internal/ir"
	"github.com/pycross/pycross/internal/javabe"
)

// JavaBackend wraps the javabe as a Backend implementation.
type JavaBackend struct{}

// Name returns the backend name.
func (b *JavaBackend) Name() string {
	return "java"
}

// Generate produces Java source code from an IR program.
func (b *JavaBackend) Generate(prog *ir.Program) string {
	return javabe.Generate(prog)
}
