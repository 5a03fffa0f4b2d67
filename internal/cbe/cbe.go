// Package cbe generates C source from the IR.
package cbe

import (
	"fmt"
	"strings"

	"github.com/pycross/pycross/internal/ir"
	"github.com/pycross/pycross/internal/lexer"
)

// Generate produces a complete C program from an IR program. Generator
// state lives for one call only; a fresh declared-variable set is built
// every time, so output for the same IR is byte-identical across calls.
func Generate(prog *ir.Program) string {
	g := &generator{declared: make(map[string]bool)}

	g.emitLine("#include <stdio.h>")
	g.emitLine("")
	g.emitLine("int main() {")
	g.indent = 1
	g.genBlock(prog.Instructions)
	g.emitLine("return 0;")
	g.indent = 0
	g.emitLine("}")

	return g.sb.String()
}

type generator struct {
	sb       strings.Builder
	indent   int
	declared map[string]bool // names already given a type declaration
}

func (g *generator) emitLinef(format string, args ...any) {
	g.emitLine(fmt.Sprintf(format, args...))
}

func (g *generator) emitLine(s string) {
	if s != "" {
		g.sb.WriteString(strings.Repeat("    ", g.indent))
		g.sb.WriteString(s)
	}
	g.sb.WriteString("\n")
}

// genBlock emits one instruction sequence at the current indent level.
func (g *generator) genBlock(instrs []ir.Instr) {
	for _, instr := range instrs {
		switch n := instr.(type) {
		case *ir.Assign:
			g.genAssign(n)
		case *ir.Print:
			g.genPrint(n)
		case *ir.If:
			g.emitLinef("if (%s) {", g.expr(n.Condition))
			g.indent++
			g.genBlock(n.Then)
			g.indent--
			if len(n.Else) > 0 {
				g.emitLine("} else {")
				g.indent++
				g.genBlock(n.Else)
				g.indent--
			}
			g.emitLine("}")
		case *ir.While:
			g.emitLinef("while (%s) {", g.expr(n.Condition))
			g.indent++
			g.genBlock(n.Body)
			g.indent--
			g.emitLine("}")
		case *ir.For:
			g.emitLinef("for(int %s=0; %s<%s; %s++) {", n.Var, n.Var, g.expr(n.Limit), n.Var)
			// Loop variables count as declared for the rest of the pass
			g.declared[n.Var] = true
			g.indent++
			g.genBlock(n.Body)
			g.indent--
			g.emitLine("}")
		case *ir.Comment:
			g.emitLinef("// %s", oneLine(n.Text))
		}
	}
}

// genAssign emits a declaration-with-initializer for the first
// occurrence of a name, a bare reassignment after that. The declared
// set is deliberately global to the generation pass, not per block.
func (g *generator) genAssign(n *ir.Assign) {
	value := g.expr(n.Value)
	if g.declared[n.Name] {
		g.emitLinef("%s = %s;", n.Name, value)
		return
	}
	g.declared[n.Name] = true
	g.emitLinef("%s %s = %s;", typeFor(n.Value.Tag()), n.Name, value)
}

// genPrint emits one printf with a format string built from per-part
// placeholders: %s for string parts, %d for everything else.
func (g *generator) genPrint(n *ir.Print) {
	if len(n.Parts) == 0 {
		g.emitLine(`printf("\n");`)
		return
	}

	verbs := make([]string, 0, len(n.Parts))
	vals := make([]string, 0, len(n.Parts))
	for _, part := range n.Parts {
		if part.IsString {
			verbs = append(verbs, "%s")
		} else {
			verbs = append(verbs, "%d")
		}
		vals = append(vals, g.expr(part.Value))
	}
	g.emitLinef(`printf("%s\n", %s);`, strings.Join(verbs, " "), strings.Join(vals, ", "))
}

// typeFor resolves a type tag to a concrete C type. Variable copies and
// arithmetic results default to int.
func typeFor(tag ir.TypeTag) string {
	switch tag {
	case ir.TagDouble:
		return "double"
	case ir.TagString:
		return "char*"
	default:
		return "int"
	}
}

// expr renders an IR expression as C text. Nested arithmetic renders
// left to right without added parentheses.
func (g *generator) expr(e ir.Expr) string {
	switch n := e.(type) {
	case *ir.IntLit:
		return n.Value
	case *ir.FloatLit:
		return n.Value
	case *ir.StringLit:
		return quote(n.Value)
	case *ir.BoolLit:
		// stdio-only C has no bool literals
		if n.Value {
			return "1"
		}
		return "0"
	case *ir.VarRef:
		return n.Name
	case *ir.BinaryExpr:
		return g.expr(n.Left) + " " + binOp(n.Op) + " " + g.expr(n.Right)
	case *ir.CompareExpr:
		return g.expr(n.Left) + " " + cmpOp(n.Op) + " " + g.expr(n.Right)
	default:
		return "0" // Unsupported
	}
}

// binOp maps an arithmetic operator token to its symbol; unrecognized
// operators degrade to +.
func binOp(op lexer.TokenType) string {
	switch op {
	case lexer.PLUS:
		return "+"
	case lexer.MINUS:
		return "-"
	case lexer.STAR:
		return "*"
	case lexer.SLASH:
		return "/"
	default:
		return "+"
	}
}

// cmpOp maps a comparison operator token to its symbol; unrecognized
// comparisons degrade to ==.
func cmpOp(op lexer.TokenType) string {
	switch op {
	case lexer.EQ:
		return "=="
	case lexer.NEQ:
		return "!="
	case lexer.GT:
		return ">"
	case lexer.LT:
		return "<"
	case lexer.GEQ:
		return ">="
	case lexer.LEQ:
		return "<="
	default:
		return "=="
	}
}

var stringEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\t", `\t`,
)

// quote renders a string literal with C escaping.
func quote(s string) string {
	return `"` + stringEscaper.Replace(s) + `"`
}

// oneLine collapses newlines so error text stays inside one comment.
func oneLine(s string) string {
	return strings.ReplaceAll(s, "\n", " ")
}
