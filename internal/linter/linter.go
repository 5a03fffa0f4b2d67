// Package linter reports the constructs a translation will silently
// skip or degrade. The pipeline itself never reports these -- it
// translates best-effort -- so the linter is the only place a user can
// see what their source loses on the way through.
package linter

import (
	"github.com/pycross/pycross/internal/ast"
	"github.com/pycross/pycross/internal/diagnostic"
	"github.com/pycross/pycross/internal/lexer"
)

// Linter walks an AST module and collects degradation warnings.
type Linter struct {
	diag *diagnostic.Diagnostics
}

// Lint runs all rules on the given module and returns diagnostics.
// All findings are warnings; the linter never fails a translation.
func Lint(mod *ast.Module) *diagnostic.Diagnostics {
	l := &Linter{diag: diagnostic.New()}
	l.lintBlock(mod.Body)
	return l.diag
}

func (l *Linter) lintBlock(stmts []ast.Statement) {
	for _, stmt := range stmts {
		switch s := stmt.(type) {
		case *ast.FuncDef:
			l.diag.Warningf(s.Line, s.Column,
				"function definition '%s' is not translated", s.Name)
		case *ast.ImportStmt:
			l.diag.Warningf(s.Line, s.Column,
				"import of '%s' is dropped", s.Module)
		case *ast.AssignStmt:
			if len(s.Targets) > 1 {
				l.diag.Warningf(s.Line, s.Column,
					"only the first assignment target '%s' is translated", s.Targets[0])
			}
			l.lintExpr(s.Value)
		case *ast.ExprStmt:
			l.lintExprStmt(s)
		case *ast.IfStmt:
			if !isMainGuard(s) {
				l.lintCondition(s.Test)
			}
			l.lintBlock(s.Body)
			l.lintBlock(s.Else)
		case *ast.WhileStmt:
			l.lintCondition(s.Test)
			l.lintBlock(s.Body)
		case *ast.ForStmt:
			if !isRangeCall(s.Iter) {
				line, col := s.Iter.Pos()
				l.diag.Warningf(line, col,
					"loop iterable is not range(n); the bound defaults to 10")
			}
			l.lintBlock(s.Body)
		case *ast.ReturnStmt:
			l.diag.Warningf(s.Line, s.Column,
				"return outside a function definition is dropped")
		}
	}
}

// lintExprStmt flags bare expression statements that produce no output,
// and checks print arguments.
func (l *Linter) lintExprStmt(s *ast.ExprStmt) {
	if call, ok := s.Expr.(*ast.CallExpr); ok && call.FuncName() == "print" {
		for _, arg := range call.Args {
			l.lintExpr(arg)
		}
		return
	}
	l.diag.Warningf(s.Line, s.Column, "statement has no translation and is dropped")
}

// lintExpr flags expression kinds that degrade to the literal 0.
func (l *Linter) lintExpr(expr ast.Expression) {
	switch e := expr.(type) {
	case *ast.IntLit, *ast.FloatLit, *ast.StringLit, *ast.BoolLit, *ast.Name:
		// Fully supported
	case *ast.BinaryExpr:
		l.lintExpr(e.Left)
		l.lintExpr(e.Right)
	default:
		line, col := expr.Pos()
		l.diag.Warningf(line, col, "unsupported expression degrades to 0")
	}
}

// lintCondition flags branch and loop tests that are not comparisons.
func (l *Linter) lintCondition(test ast.Expression) {
	cmp, ok := test.(*ast.CompareExpr)
	if !ok {
		line, col := test.Pos()
		l.diag.Warningf(line, col, "condition is not a comparison and degrades to true")
		return
	}
	l.lintExpr(cmp.Left)
	l.lintExpr(cmp.Right)
}

// isRangeCall reports whether the iterable is a single-argument range
// call, the only loop form with a real bound.
func isRangeCall(iter ast.Expression) bool {
	call, ok := iter.(*ast.CallExpr)
	return ok && call.FuncName() == "range" && len(call.Args) == 1
}

// isMainGuard mirrors the walker's entry-point guard detection; the
// guard is unwrapped, not degraded, so it gets no warning.
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
