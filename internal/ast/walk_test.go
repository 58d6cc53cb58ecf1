package ast_test

import (
	"strings"
	"testing"

	"github.com/Mik3l24/verbose-lang/internal/ast"
	"github.com/Mik3l24/verbose-lang/internal/testutil"
)

// sampleProgram: x := 1 + 2; while x { f(x) }
func sampleProgram(t *testing.T) (*ast.Program, *ast.Call) {
	t.Helper()
	sum := testutil.Must(ast.NewBinaryOperation(ast.OpPlus, intLit(1), intLit(2)))
	assign := testutil.Must(ast.NewAssignment(ident("x"), sum))
	call := testutil.Must(ast.NewCall(ident("f"), testutil.Must(ast.NewCallArgs(ident("x")))))
	loop := testutil.Must(ast.NewWhileStatement(ident("x"), testutil.Must(ast.NewProcedure(call))))
	return testutil.Must(ast.NewProgram(assign, loop)), call
}

func TestWalkPreOrder(t *testing.T) {
	prog, _ := sampleProgram(t)

	var got []string
	ast.Walk(prog, func(n ast.Node, depth int) bool {
		got = append(got, strings.Repeat(".", depth)+n.Kind().String())
		return true
	})

	want := []string{
		"Program",
		".Assignment",
		"..Identifier",
		"..BinaryOperation",
		"...IntegerLiteral",
		"...IntegerLiteral",
		".WhileStatement",
		"..Identifier",
		"..Procedure",
		"...Call",
		"....Identifier",
		"....CallArgs",
		".....Identifier",
	}
	if strings.Join(got, "\n") != strings.Join(want, "\n") {
		t.Errorf("walk order:\n%s\nwant:\n%s", strings.Join(got, "\n"), strings.Join(want, "\n"))
	}

	if n := ast.Count(prog); n != len(want) {
		t.Errorf("Count = %d, want %d", n, len(want))
	}
}

func TestWalkSkipChildren(t *testing.T) {
	prog, _ := sampleProgram(t)

	visited := 0
	ast.Walk(prog, func(n ast.Node, depth int) bool {
		visited++
		return n.Kind() != ast.KindWhileStatement
	})
	// while 下面的 6 个节点被跳过
	if visited != 7 {
		t.Errorf("visited %d nodes, want 7", visited)
	}
}

func TestParentTable(t *testing.T) {
	prog, call := sampleProgram(t)
	table := ast.BuildParents(prog)

	if table.Len() != ast.Count(prog) {
		t.Errorf("Len = %d, want %d", table.Len(), ast.Count(prog))
	}
	if _, ok := table.Parent(prog); ok {
		t.Error("root has a parent")
	}

	parent, ok := table.Parent(call)
	if !ok || parent.Kind() != ast.KindProcedure {
		t.Fatalf("Parent(call) = %v, %v", parent, ok)
	}
	if d, ok := table.Depth(call); !ok || d != 3 {
		t.Errorf("Depth(call) = %d, %v; want 3", d, ok)
	}

	var kinds []string
	for _, a := range table.Ancestors(call) {
		kinds = append(kinds, a.Kind().String())
	}
	if got := strings.Join(kinds, " "); got != "Procedure WhileStatement Program" {
		t.Errorf("Ancestors(call) = %s", got)
	}

	if _, ok := table.Parent(intLit(7)); ok {
		t.Error("node outside the tree has a parent")
	}
}
