package ast

import "github.com/pycross/pycross/internal/lexer"

// Node is the base interface for all AST nodes
type Node interface {
	Pos() (line, col int)
}

// Statement nodes
type Statement interface {
	Node
	stmtNode()
}

// Expression nodes
type Expression interface {
	Node
	exprNode()
}

// Module represents a parsed source file: one ordered sequence of
// top-level statements.
type Module struct {
	Body []Statement
}

func (m *Module) Pos() (int, int) {
	if len(m.Body) > 0 {
		return m.Body[0].Pos()
	}
	return 0, 0
}

// FuncDef represents a function definition. Function bodies are parsed
// but never translated; the walker drops the whole definition.
type FuncDef struct {
	Name   string
	Params []string
	Body   []Statement
	Line   int
	Column int
}

func (f *FuncDef) Pos() (int, int) { return f.Line, f.Column }
func (*FuncDef) stmtNode()         {}

// ImportStmt represents "import x" or "from x import y".
type ImportStmt struct {
	Module string
	Line   int
	Column int
}

func (i *ImportStmt) Pos() (int, int) { return i.Line, i.Column }
func (*ImportStmt) stmtNode()         {}

// AssignStmt represents an assignment. Python allows chained targets
// (a = b = 1); every target after the first is ignored downstream.
type AssignStmt struct {
	Targets []string
	Value   Expression
	Line    int
	Column  int
}

func (a *AssignStmt) Pos() (int, int) { return a.Line, a.Column }
func (*AssignStmt) stmtNode()         {}

// ExprStmt wraps an expression used as a statement (e.g. a print call).
type ExprStmt struct {
	Expr   Expression
	Line   int
	Column int
}

func (e *ExprStmt) Pos() (int, int) { return e.Line, e.Column }
func (*ExprStmt) stmtNode()         {}

// IfStmt represents an if statement. An elif chain parses as an IfStmt
// whose Else block holds a single nested IfStmt.
type IfStmt struct {
	Test   Expression
	Body   []Statement
	Else   []Statement // nil if no else branch
	Line   int
	Column int
}

func (i *IfStmt) Pos() (int, int) { return i.Line, i.Column }
func (*IfStmt) stmtNode()         {}

// WhileStmt represents a while loop.
type WhileStmt struct {
	Test   Expression
	Body   []Statement
	Line   int
	Column int
}

func (w *WhileStmt) Pos() (int, int) { return w.Line, w.Column }
func (*WhileStmt) stmtNode()         {}

// ForStmt represents "for <var> in <iterable>:".
type ForStmt struct {
	Var    string
	Iter   Expression
	Body   []Statement
	Line   int
	Column int
}

func (f *ForStmt) Pos() (int, int) { return f.Line, f.Column }
func (*ForStmt) stmtNode()         {}

// PassStmt represents a pass statement.
type PassStmt struct {
	Line   int
	Column int
}

func (p *PassStmt) Pos() (int, int) { return p.Line, p.Column }
func (*PassStmt) stmtNode()         {}

// ReturnStmt represents a return statement (only legal inside defs,
// which are skipped; kept so def bodies parse cleanly).
type ReturnStmt struct {
	Value  Expression // nil for bare return
	Line   int
	Column int
}

func (r *ReturnStmt) Pos() (int, int) { return r.Line, r.Column }
func (*ReturnStmt) stmtNode()         {}

// --- Expressions ---

// Name references a variable.
type Name struct {
	Value  string
	Line   int
	Column int
}

func (n *Name) Pos() (int, int) { return n.Line, n.Column }
func (*Name) exprNode()         {}

// IntLit represents an integer literal. The original text is kept so
// generation reproduces the source spelling.
type IntLit struct {
	Value  string
	Line   int
	Column int
}

func (i *IntLit) Pos() (int, int) { return i.Line, i.Column }
func (*IntLit) exprNode()         {}

// FloatLit represents a float literal.
type FloatLit struct {
	Value  string
	Line   int
	Column int
}

func (f *FloatLit) Pos() (int, int) { return f.Line, f.Column }
func (*FloatLit) exprNode()         {}

// StringLit represents a string literal, quotes stripped.
type StringLit struct {
	Value  string
	Line   int
	Column int
}

func (s *StringLit) Pos() (int, int) { return s.Line, s.Column }
func (*StringLit) exprNode()         {}

// BoolLit represents True or False.
type BoolLit struct {
	Value  bool
	Line   int
	Column int
}

func (b *BoolLit) Pos() (int, int) { return b.Line, b.Column }
func (*BoolLit) exprNode()         {}

// NoneLit represents None.
type NoneLit struct {
	Line   int
	Column int
}

func (n *NoneLit) Pos() (int, int) { return n.Line, n.Column }
func (*NoneLit) exprNode()         {}

// BinaryExpr represents an arithmetic or boolean binary operation.
type BinaryExpr struct {
	Left   Expression
	Op     lexer.TokenType
	Right  Expression
	Line   int
	Column int
}

func (b *BinaryExpr) Pos() (int, int) { return b.Line, b.Column }
func (*BinaryExpr) exprNode()         {}

// CompareExpr represents a comparison.
type CompareExpr struct {
	Left   Expression
	Op     lexer.TokenType
	Right  Expression
	Line   int
	Column int
}

func (c *CompareExpr) Pos() (int, int) { return c.Line, c.Column }
func (*CompareExpr) exprNode()         {}

// UnaryExpr represents a unary operation (-x, not x).
type UnaryExpr struct {
	Op      lexer.TokenType
	Operand Expression
	Line    int
	Column  int
}

func (u *UnaryExpr) Pos() (int, int) { return u.Line, u.Column }
func (*UnaryExpr) exprNode()         {}

// CallExpr represents a function call.
type CallExpr struct {
	Func   Expression
	Args   []Expression
	Line   int
	Column int
}

func (c *CallExpr) Pos() (int, int) { return c.Line, c.Column }
func (*CallExpr) exprNode()         {}

// FuncName returns the called name when the callee is a bare name,
// else the empty string.
func (c *CallExpr) FuncName() string {
	if n, ok := c.Func.(*Name); ok {
		return n.Value
	}
	return ""
}

// AttributeExpr represents attribute access (obj.attr). Unsupported by
// the pipeline; parsed so it can degrade instead of failing.
type AttributeExpr struct {
	Object Expression
	Attr   string
	Line   int
	Column int
}

func (a *AttributeExpr) Pos() (int, int) { return a.Line, a.Column }
func (*AttributeExpr) exprNode()         {}

// ListLit represents a list literal. Unsupported by the pipeline.
type ListLit struct {
	Elements []Expression
	Line     int
	Column   int
}

func (l *ListLit) Pos() (int, int) { return l.Line, l.Column }
func (*ListLit) exprNode()         {}
