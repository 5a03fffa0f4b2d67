package backend

import (
	"github.com/pycross/pycross/internal/cppbe"
	"github.com/pycross/pycross/internal/ir"
)

// CppBackend wraps the cppbe as a Backend implementation.
type CppBackend struct{}

// Name returns the backend name.
func (b *CppBackend) Name() string {
	return "cpp"
}

// Generate produces C++ source code from an IR program.
func (b *CppBackend) Generate(prog *ir.Program) string {
	return cppbe.Generate(prog)
}
