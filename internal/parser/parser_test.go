package parser

import (
	"testing"

	"github.com/pycross/pycross/internal/ast"
	"github.com/pycross/pycross/internal/lexer"
)

func parseOK(t *testing.T, src string) *ast.Module {
	t.Helper()
	p := New(src)
	mod := p.Parse()
	if p.Diagnostics().HasErrors() {
		t.Fatalf("parse errors: %s", p.Diagnostics().Format("test"))
	}
	return mod
}

func TestParseAssignment(t *testing.T) {
	mod := parseOK(t, "x = 5\ny = x + 2\n")
	if len(mod.Body) != 2 {
		t.Fatalf("expected 2 statements, got %d", len(mod.Body))
	}

	first, ok := mod.Body[0].(*ast.AssignStmt)
	if !ok {
		t.Fatalf("expected AssignStmt, got %T", mod.Body[0])
	}
	if len(first.Targets) != 1 || first.Targets[0] != "x" {
		t.Errorf("expected target x, got %v", first.Targets)
	}
	if lit, ok := first.Value.(*ast.IntLit); !ok || lit.Value != "5" {
		t.Errorf("expected IntLit 5, got %#v", first.Value)
	}

	second := mod.Body[1].(*ast.AssignStmt)
	bin, ok := second.Value.(*ast.BinaryExpr)
	if !ok {
		t.Fatalf("expected BinaryExpr, got %T", second.Value)
	}
	if bin.Op != lexer.PLUS {
		t.Errorf("expected PLUS, got %s", bin.Op)
	}
}

func TestParsePrecedence(t *testing.T) {
	mod := parseOK(t, "x = 1 + 2 * 3\n")
	assign := mod.Body[0].(*ast.AssignStmt)
	bin := assign.Value.(*ast.BinaryExpr)
	if bin.Op != lexer.PLUS {
		t.Fatalf("expected PLUS at the root, got %s", bin.Op)
	}
	right, ok := bin.Right.(*ast.BinaryExpr)
	if !ok || right.Op != lexer.STAR {
		t.Errorf("expected STAR on the right, got %#v", bin.Right)
	}
}

func TestParseParenthesizedExpression(t *testing.T) {
	mod := parseOK(t, "x = (1 + 2) * 3\n")
	assign := mod.Body[0].(*ast.AssignStmt)
	bin := assign.Value.(*ast.BinaryExpr)
	if bin.Op != lexer.STAR {
		t.Fatalf("expected STAR at the root, got %s", bin.Op)
	}
	left, ok := bin.Left.(*ast.BinaryExpr)
	if !ok || left.Op != lexer.PLUS {
		t.Errorf("expected PLUS on the left, got %#v", bin.Left)
	}
}

func TestParseChainedTargets(t *testing.T) {
	mod := parseOK(t, "a = b = 2\n")
	assign := mod.Body[0].(*ast.AssignStmt)
	if len(assign.Targets) != 2 || assign.Targets[0] != "a" || assign.Targets[1] != "b" {
		t.Errorf("expected targets [a b], got %v", assign.Targets)
	}
	if lit, ok := assign.Value.(*ast.IntLit); !ok || lit.Value != "2" {
		t.Errorf("expected IntLit 2, got %#v", assign.Value)
	}
}

func TestParseTupleTargets(t *testing.T) {
	mod := parseOK(t, "a, b = 1\n")
	assign := mod.Body[0].(*ast.AssignStmt)
	if len(assign.Targets) != 2 || assign.Targets[0] != "a" || assign.Targets[1] != "b" {
		t.Errorf("expected targets [a b], got %v", assign.Targets)
	}
}

func TestParseTupleValueDegradesToList(t *testing.T) {
	mod := parseOK(t, "p = 1, 2\n")
	assign := mod.Body[0].(*ast.AssignStmt)
	list, ok := assign.Value.(*ast.ListLit)
	if !ok {
		t.Fatalf("expected ListLit, got %T", assign.Value)
	}
	if len(list.Elements) != 2 {
		t.Errorf("expected 2 elements, got %d", len(list.Elements))
	}
}

func TestParseIfElse(t *testing.T) {
	src := "if x > 2:\n    y = 1\nelse:\n    y = 2\n"
	mod := parseOK(t, src)

	ifStmt, ok := mod.Body[0].(*ast.IfStmt)
	if !ok {
		t.Fatalf("expected IfStmt, got %T", mod.Body[0])
	}
	cmp, ok := ifStmt.Test.(*ast.CompareExpr)
	if !ok || cmp.Op != lexer.GT {
		t.Errorf("expected GT comparison test, got %#v", ifStmt.Test)
	}
	if len(ifStmt.Body) != 1 || len(ifStmt.Else) != 1 {
		t.Errorf("expected 1 statement in each branch, got %d/%d",
			len(ifStmt.Body), len(ifStmt.Else))
	}
}

func TestParseElifChain(t *testing.T) {
	src := "if a > 1:\n    x = 1\nelif a > 2:\n    x = 2\nelse:\n    x = 3\n"
	mod := parseOK(t, src)

	outer := mod.Body[0].(*ast.IfStmt)
	if len(outer.Else) != 1 {
		t.Fatalf("expected elif as single nested else statement, got %d", len(outer.Else))
	}
	nested, ok := outer.Else[0].(*ast.IfStmt)
	if !ok {
		t.Fatalf("expected nested IfStmt for elif, got %T", outer.Else[0])
	}
	if len(nested.Else) != 1 {
		t.Errorf("expected final else on nested if, got %d statements", len(nested.Else))
	}
}

func TestParseWhile(t *testing.T) {
	mod := parseOK(t, "while n > 0:\n    n = n - 1\n")
	stmt, ok := mod.Body[0].(*ast.WhileStmt)
	if !ok {
		t.Fatalf("expected WhileStmt, got %T", mod.Body[0])
	}
	if len(stmt.Body) != 1 {
		t.Errorf("expected 1 body statement, got %d", len(stmt.Body))
	}
}

func TestParseForRange(t *testing.T) {
	mod := parseOK(t, "for i in range(5):\n    print(i)\n")
	stmt, ok := mod.Body[0].(*ast.ForStmt)
	if !ok {
		t.Fatalf("expected ForStmt, got %T", mod.Body[0])
	}
	if stmt.Var != "i" {
		t.Errorf("expected loop var i, got %q", stmt.Var)
	}
	call, ok := stmt.Iter.(*ast.CallExpr)
	if !ok || call.FuncName() != "range" {
		t.Errorf("expected range call iterable, got %#v", stmt.Iter)
	}
}

func TestParseFuncDef(t *testing.T) {
	src := "def add(a, b):\n    return a + b\n"
	mod := parseOK(t, src)

	fn, ok := mod.Body[0].(*ast.FuncDef)
	if !ok {
		t.Fatalf("expected FuncDef, got %T", mod.Body[0])
	}
	if fn.Name != "add" {
		t.Errorf("expected name add, got %q", fn.Name)
	}
	if len(fn.Params) != 2 {
		t.Errorf("expected 2 params, got %v", fn.Params)
	}
	if len(fn.Body) != 1 {
		t.Errorf("expected 1 body statement, got %d", len(fn.Body))
	}
}

func TestParseImports(t *testing.T) {
	mod := parseOK(t, "import math\nfrom os import path, sep\n")
	first := mod.Body[0].(*ast.ImportStmt)
	if first.Module != "math" {
		t.Errorf("expected module math, got %q", first.Module)
	}
	second := mod.Body[1].(*ast.ImportStmt)
	if second.Module != "os" {
		t.Errorf("expected module os, got %q", second.Module)
	}
}

func TestParsePrintCall(t *testing.T) {
	mod := parseOK(t, "print(\"total\", x)\n")
	stmt := mod.Body[0].(*ast.ExprStmt)
	call, ok := stmt.Expr.(*ast.CallExpr)
	if !ok {
		t.Fatalf("expected CallExpr, got %T", stmt.Expr)
	}
	if call.FuncName() != "print" {
		t.Errorf("expected print call, got %q", call.FuncName())
	}
	if len(call.Args) != 2 {
		t.Errorf("expected 2 args, got %d", len(call.Args))
	}
}

func TestParseAttributeAndCall(t *testing.T) {
	mod := parseOK(t, "x = math.floor(1.5)\n")
	assign := mod.Body[0].(*ast.AssignStmt)
	call, ok := assign.Value.(*ast.CallExpr)
	if !ok {
		t.Fatalf("expected CallExpr, got %T", assign.Value)
	}
	if _, ok := call.Func.(*ast.AttributeExpr); !ok {
		t.Errorf("expected AttributeExpr callee, got %T", call.Func)
	}
	if call.FuncName() != "" {
		t.Errorf("expected empty FuncName for attribute callee, got %q", call.FuncName())
	}
}

func TestParseUnary(t *testing.T) {
	mod := parseOK(t, "x = -5\n")
	assign := mod.Body[0].(*ast.AssignStmt)
	un, ok := assign.Value.(*ast.UnaryExpr)
	if !ok || un.Op != lexer.MINUS {
		t.Errorf("expected unary minus, got %#v", assign.Value)
	}
}

func TestParseErrorReported(t *testing.T) {
	p := New("x = = 5\n")
	p.Parse()
	if !p.Diagnostics().HasErrors() {
		t.Fatal("expected parse errors")
	}
	first := p.Diagnostics().First()
	if first.Line != 1 {
		t.Errorf("expected error on line 1, got %d", first.Line)
	}
}

func TestParseRecoversAfterError(t *testing.T) {
	src := "x = = 5\ny = 2\n"
	p := New(src)
	mod := p.Parse()
	if !p.Diagnostics().HasErrors() {
		t.Fatal("expected parse errors")
	}
	// The statement after the bad line still parses
	found := false
	for _, stmt := range mod.Body {
		if a, ok := stmt.(*ast.AssignStmt); ok && len(a.Targets) > 0 && a.Targets[0] == "y" {
			found = true
		}
	}
	if !found {
		t.Error("expected recovery to parse the following assignment")
	}
}

func TestParseBlankLinesBetweenStatements(t *testing.T) {
	mod := parseOK(t, "x = 1\n\n\ny = 2\n")
	if len(mod.Body) != 2 {
		t.Errorf("expected 2 statements, got %d", len(mod.Body))
	}
}
