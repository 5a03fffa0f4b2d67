package ir

import "github.com/pycross/pycross/internal/lexer"

// Program is the translated body of one input source: a single ordered
// sequence of instructions. It is built once per translation, immutable
// after lowering, and consumed exactly once by a backend.
type Program struct {
	Instructions []Instr
}

// TypeTag is the coarse type classification carried by an expression.
// Tags are resolved to concrete target types only at emission time.
type TypeTag int

const (
	TagInt    TypeTag = iota
	TagDouble         // float literal
	TagString         // string literal
	TagVar            // value copied from another variable
	TagAuto           // arithmetic result, unresolved until generation
)

// String returns the string representation of the tag
func (t TypeTag) String() string {
	switch t {
	case TagInt:
		return "int"
	case TagDouble:
		return "double"
	case TagString:
		return "string"
	case TagVar:
		return "var"
	case TagAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// --- Instructions ---

// Instr is the interface for all IR instruction nodes.
type Instr interface {
	instrNode()
}

// Assign represents a variable assignment. The first Assign for a name
// in generation order determines the name's declared type; later ones
// emit bare reassignments.
type Assign struct {
	Name  string
	Value Expr
}

func (*Assign) instrNode() {}

// PrintPart is one argument of a Print. String literal parts are quoted
// by the backend; all other parts emit as raw expression text.
type PrintPart struct {
	Value    Expr
	IsString bool
}

// Print represents a call to the print primitive. Part order is
// preserved; backends join parts with a single-space separator.
type Print struct {
	Parts []PrintPart
}

func (*Print) instrNode() {}

// If represents a conditional. Else is empty when the source has no
// else branch.
type If struct {
	Condition Expr
	Then      []Instr
	Else      []Instr
}

func (*If) instrNode() {}

// While represents a while loop.
type While struct {
	Condition Expr
	Body      []Instr
}

func (*While) instrNode() {}

// For represents a counting loop over 0 <= Var < Limit.
type For struct {
	Var   string
	Limit Expr
	Body  []Instr
}

func (*For) instrNode() {}

// Comment carries the error text of a failed parse. It is emitted in
// place of the whole translation when parsing fails.
type Comment struct {
	Text string
}

func (*Comment) instrNode() {}

// --- Expressions ---

// Expr is the interface for all IR expression nodes.
type Expr interface {
	Tag() TypeTag
	exprNode()
}

// IntLit represents an integer literal. The source spelling is kept so
// generation reproduces it byte for byte.
type IntLit struct {
	Value string
}

func (*IntLit) Tag() TypeTag { return TagInt }
func (*IntLit) exprNode()    {}

// FloatLit represents a float literal.
type FloatLit struct {
	Value string
}

func (*FloatLit) Tag() TypeTag { return TagDouble }
func (*FloatLit) exprNode()    {}

// StringLit represents a string literal, quotes stripped.
type StringLit struct {
	Value string
}

func (*StringLit) Tag() TypeTag { return TagString }
func (*StringLit) exprNode()    {}

// BoolLit represents a boolean literal. Booleans are integers here,
// matching how the source language treats them.
type BoolLit struct {
	Value bool
}

func (*BoolLit) Tag() TypeTag { return TagInt }
func (*BoolLit) exprNode()    {}

// VarRef references a variable.
type VarRef struct {
	Name string
}

func (*VarRef) Tag() TypeTag { return TagVar }
func (*VarRef) exprNode()    {}

// BinaryExpr represents a binary arithmetic operation. Operators other
// than + - * / degrade to + at emission.
type BinaryExpr struct {
	Left  Expr
	Op    lexer.TokenType
	Right Expr
}

func (*BinaryExpr) Tag() TypeTag { return TagAuto }
func (*BinaryExpr) exprNode()    {}

// CompareExpr represents a comparison; it only appears as a loop or
// branch condition. Unrecognized comparison operators degrade to ==.
type CompareExpr struct {
	Left  Expr
	Op    lexer.TokenType
	Right Expr
}

func (*CompareExpr) Tag() TypeTag { return TagAuto }
func (*CompareExpr) exprNode()    {}

// Unsupported stands in for any expression kind the pipeline cannot
// translate. Backends render it as the literal 0. Keeping it a distinct
// variant lets callers tell a defaulted value from a real one.
type Unsupported struct{}

func (*Unsupported) Tag() TypeTag { return TagInt }
func (*Unsupported) exprNode()    {}
