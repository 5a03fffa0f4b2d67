package javabe

import (
	"strings"
	"testing"

	"github.com/pycross/pycross/internal/ir"
	"github.com/pycross/pycross/internal/lexer"
)

func TestGenerateEmptyProgram(t *testing.T) {
	got := Generate(&ir.Program{})
	want := "public class Main {\n" +
		"    public static void main(String[] args) {\n" +
		"    }\n" +
		"}\n"
	if got != want {
		t.Errorf("expected:\n%s\ngot:\n%s", want, got)
	}
}

func TestGenerateDeclarations(t *testing.T) {
	prog := &ir.Program{Instructions: []ir.Instr{
		&ir.Assign{Name: "x", Value: &ir.IntLit{Value: "5"}},
		&ir.Assign{Name: "y", Value: &ir.FloatLit{Value: "2.5"}},
		&ir.Assign{Name: "name", Value: &ir.StringLit{Value: "world"}},
	}}
	got := Generate(prog)

	for _, line := range []string{
		"        int x = 5;",
		"        double y = 2.5;",
		`        String name = "world";`,
	} {
		if !strings.Contains(got, line+"\n") {
			t.Errorf("expected line %q, got:\n%s", line, got)
		}
	}
}

func TestGeneratePrintConcatenation(t *testing.T) {
	prog := &ir.Program{Instructions: []ir.Instr{
		&ir.Print{Parts: []ir.PrintPart{
			{Value: &ir.StringLit{Value: "a"}, IsString: true},
			{Value: &ir.VarRef{Name: "b"}},
		}},
	}}
	got := Generate(prog)
	want := `        System.out.println("a" + " " + b);` + "\n"
	if !strings.Contains(got, want) {
		t.Errorf("expected %q, got:\n%s", want, got)
	}
}

func TestGeneratePrintEmpty(t *testing.T) {
	prog := &ir.Program{Instructions: []ir.Instr{&ir.Print{}}}
	if !strings.Contains(Generate(prog), "        System.out.println();\n") {
		t.Errorf("expected empty println, got:\n%s", Generate(prog))
	}
}

func TestGenerateNestedBlocks(t *testing.T) {
	prog := &ir.Program{Instructions: []ir.Instr{
		&ir.If{
			Condition: &ir.CompareExpr{
				Left:  &ir.VarRef{Name: "x"},
				Op:    lexer.GT,
				Right: &ir.IntLit{Value: "3"},
			},
			Then: []ir.Instr{
				&ir.Print{Parts: []ir.PrintPart{
					{Value: &ir.StringLit{Value: "big"}, IsString: true},
				}},
			},
		},
	}}
	got := Generate(prog)

	if !strings.Contains(got, "        if (x > 3) {\n            System.out.println(\"big\");\n        }\n") {
		t.Errorf("unexpected nesting, got:\n%s", got)
	}
}

func TestGenerateForLoop(t *testing.T) {
	prog := &ir.Program{Instructions: []ir.Instr{
		&ir.For{
			Var:   "i",
			Limit: &ir.IntLit{Value: "5"},
			Body: []ir.Instr{
				&ir.Print{Parts: []ir.PrintPart{{Value: &ir.VarRef{Name: "i"}}}},
			},
		},
	}}
	got := Generate(prog)

	if !strings.Contains(got, "        for(int i=0; i<5; i++) {\n            System.out.println(i);\n        }\n") {
		t.Errorf("unexpected loop shape, got:\n%s", got)
	}
}

func TestGenerateComment(t *testing.T) {
	prog := &ir.Program{Instructions: []ir.Instr{
		&ir.Comment{Text: "Error: 2:1: invalid syntax"},
	}}
	if !strings.Contains(Generate(prog), "        // Error: 2:1: invalid syntax\n") {
		t.Errorf("expected comment line, got:\n%s", Generate(prog))
	}
}

func TestGenerateIsRepeatable(t *testing.T) {
	prog := &ir.Program{Instructions: []ir.Instr{
		&ir.Assign{Name: "x", Value: &ir.IntLit{Value: "5"}},
		&ir.Assign{Name: "x", Value: &ir.IntLit{Value: "6"}},
	}}
	if Generate(prog) != Generate(prog) {
		t.Error("expected identical output across calls for the same IR")
	}
}
