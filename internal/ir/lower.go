package ir

import (
	"github.com/pycross/pycross/internal/ast"
	"github.com/pycross/pycross/internal/lexer"
)

// defaultLoopLimit is the loop bound used when a for statement iterates
// over anything other than a single-argument range() call.
const defaultLoopLimit = "10"

// Lower walks a parsed module and produces the IR program. Function
// definitions and imports are dropped, the conventional entry-point
// guard is unwrapped, and unsupported constructs degrade to defaults
// instead of failing.
func Lower(mod *ast.Module) *Program {
	return &Program{Instructions: lowerBlock(mod.Body)}
}

// lowerBlock converts an ordered statement sequence into instructions.
func lowerBlock(stmts []ast.Statement) []Instr {
	var block []Instr
	for _, stmt := range stmts {
		switch s := stmt.(type) {
		case *ast.FuncDef, *ast.ImportStmt, *ast.PassStmt, *ast.ReturnStmt:
			// Never translated

		case *ast.AssignStmt:
			if len(s.Targets) == 0 {
				continue
			}
			// Only the first target is honored; the rest are dropped
			block = append(block, &Assign{
				Name:  s.Targets[0],
				Value: lowerExpr(s.Value),
			})

		case *ast.ExprStmt:
			if instr := lowerPrint(s.Expr); instr != nil {
				block = append(block, instr)
			}
			// Other bare expressions emit nothing

		case *ast.IfStmt:
			if isMainGuard(s) {
				// Structural unwrap: the guarded body is inlined into
				// the current block, no If node is produced
				block = append(block, lowerBlock(s.Body)...)
				continue
			}
			block = append(block, &If{
				Condition: lowerCondition(s.Test),
				Then:      lowerBlock(s.Body),
				Else:      lowerBlock(s.Else),
			})

		case *ast.WhileStmt:
			block = append(block, &While{
				Condition: lowerCondition(s.Test),
				Body:      lowerBlock(s.Body),
			})

		case *ast.ForStmt:
			block = append(block, &For{
				Var:   s.Var,
				Limit: lowerLoopLimit(s.Iter),
				Body:  lowerBlock(s.Body),
			})
		}
	}
	return block
}

// lowerPrint converts a print call into a Print instruction, or returns
// nil when the expression is not a print call.
func lowerPrint(expr ast.Expression) Instr {
	call, ok := expr.(*ast.CallExpr)
	if !ok || call.FuncName() != "print" {
		return nil
	}

	parts := make([]PrintPart, 0, len(call.Args))
	for _, arg := range call.Args {
		value := lowerExpr(arg)
		_, isString := value.(*StringLit)
		parts = append(parts, PrintPart{Value: value, IsString: isString})
	}
	return &Print{Parts: parts}
}

// lowerExpr converts a source expression into an IR expression. Any
// unsupported expression kind becomes the Unsupported sentinel.
func lowerExpr(expr ast.Expression) Expr {
	switch e := expr.(type) {
	case *ast.IntLit:
		return &IntLit{Value: e.Value}
	case *ast.FloatLit:
		return &FloatLit{Value: e.Value}
	case *ast.StringLit:
		return &StringLit{Value: e.Value}
	case *ast.BoolLit:
		return &BoolLit{Value: e.Value}
	case *ast.Name:
		return &VarRef{Name: e.Value}
	case *ast.BinaryExpr:
		return &BinaryExpr{
			Left:  lowerExpr(e.Left),
			Op:    e.Op,
			Right: lowerExpr(e.Right),
		}
	default:
		return &Unsupported{}
	}
}

// lowerCondition converts a branch or loop test. Only comparisons are
// supported as conditions; anything else degrades to the literal true.
func lowerCondition(expr ast.Expression) Expr {
	if cmp, ok := expr.(*ast.CompareExpr); ok {
		return &CompareExpr{
			Left:  lowerExpr(cmp.Left),
			Op:    cmp.Op,
			Right: lowerExpr(cmp.Right),
		}
	}
	return &BoolLit{Value: true}
}

// lowerLoopLimit extracts the loop bound from a for statement iterable.
// Only the single-argument range(limit) form is recognized.
func lowerLoopLimit(iter ast.Expression) Expr {
	if call, ok := iter.(*ast.CallExpr); ok {
		if call.FuncName() == "range" && len(call.Args) == 1 {
			return lowerExpr(call.Args[0])
		}
	}
	return &IntLit{Value: defaultLoopLimit}
}

// isMainGuard reports whether an if statement is the conventional
// entry-point guard: if __name__ == "__main__":
func isMainGuard(s *ast.IfStmt) bool {
	cmp, ok := s.Test.(*ast.CompareExpr)
	if !ok || cmp.Op != lexer.EQ {
		return false
	}
	name, ok := cmp.Left.(*ast.Name)
	if !ok || name.Value != "__name__" {
		return false
	}
	str, ok := cmp.Right.(*ast.StringLit)
	return ok && str.Value == "__main__"
}
