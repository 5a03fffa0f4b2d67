// Package cppbe generates C++ source from the IR.
package cppbe

import (
	"fmt"
	"strings"

	"github.com/pycross/pycross/internal/ir"
	"github.com/pycross/pycross/internal/lexer"
)

// Generate produces a complete C++ program from an IR program. The
// declared-variable set is rebuilt per call, so generation is
// repeatable byte for byte.
func Generate(prog *ir.Program) string {
	g := &generator{declared: make(map[string]bool)}

	g.emitLine("#include <iostream>")
	g.emitLine("using namespace std;")
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
	declared map[string]bool
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

func (g *generator) genAssign(n *ir.Assign) {
	value := g.expr(n.Value)
	if g.declared[n.Name] {
		g.emitLinef("%s = %s;", n.Name, value)
		return
	}
	g.declared[n.Name] = true
	g.emitLinef("%s %s = %s;", typeFor(n.Value.Tag()), n.Name, value)
}

// genPrint emits one cout chain. Parts after the first are preceded by
// a single-space literal, reproducing the source language's default
// print separator.
func (g *generator) genPrint(n *ir.Print) {
	var chain strings.Builder
	chain.WriteString("cout")
	for i, part := range n.Parts {
		if i > 0 {
			chain.WriteString(` << " "`)
		}
		chain.WriteString(" << " + g.expr(part.Value))
	}
	chain.WriteString(" << endl;")
	g.emitLine(chain.String())
}

func typeFor(tag ir.TypeTag) string {
	switch tag {
	case ir.TagDouble:
		return "double"
	case ir.TagString:
		return "string"
	default:
		return "int"
	}
}

func (g *generator) expr(e ir.Expr) string {
	switch n := e.(type) {
	case *ir.IntLit:
		return n.Value
	case *ir.FloatLit:
		return n.Value
	case *ir.StringLit:
		return quote(n.Value)
	case *ir.BoolLit:
		if n.Value {
			return "true"
		}
		return "false"
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

func quote(s string) string {
	return `"` + stringEscaper.Replace(s) + `"`
}

func oneLine(s string) string {
	return strings.ReplaceAll(s, "\n", " ")
}
