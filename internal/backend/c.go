package backend

import (
	"github.com/pycross/pycross/internal/cbe"
	"github.com/pycross/pycross/internal/ir"
)

// CBackend wraps the cbe as a Backend implementation.
type CBackend struct{}

// Name returns the backend name.
func (b *CBackend) Name() string {
	return "c"
}

// Generate produces C source code from an IR program.
func (b *CBackend) Generate(prog *ir.Program) string {
	return cbe.Generate(prog)
}
