package treefile_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Mik3l24/verbose-lang/internal/ast"
	"github.com/Mik3l24/verbose-lang/internal/dump"
	"github.com/Mik3l24/verbose-lang/internal/i18n"
	"github.com/Mik3l24/verbose-lang/internal/testutil"
	"github.com/Mik3l24/verbose-lang/internal/treefile"
)

func TestMain(m *testing.M) {
	i18n.SetLanguage(i18n.LangEnglish)
	os.Exit(m.Run())
}

func TestLoadFileGolden(t *testing.T) {
	prog, err := treefile.LoadFile(testutil.Shared("program.yaml"))
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if n := len(prog.Statements()); n != 4 {
		t.Fatalf("got %d statements, want 4", n)
	}
	testutil.Golden(t, testutil.Shared("program.golden"), dump.String(prog))
}

func TestLoadNode(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "integer",
			src:  "kind: IntegerLiteral\nvalue: -7\n",
			want: "IntegerLiteral\nvalue: -7\n",
		},
		{
			name: "float from int",
			src:  "kind: FloatLiteral\nvalue: 2\n",
			want: "FloatLiteral\nvalue: 2\n",
		},
		{
			name: "quoted string",
			src:  "kind: StringLiteral\nvalue: \"say \\\"hi\\\"\"\n",
			want: "StringLiteral\nvalue: \"say \\\"hi\\\"\"\n",
		},
		{
			name: "json",
			src:  `{"kind": "UnaryOperation", "op": "not", "expr": {"kind": "Identifier", "name": "ok"}}`,
			want: "UnaryOperation\nop: not\nexpr:\n  Identifier\n  name: ok\n",
		},
		{
			name: "null optional",
			src:  "kind: TermDecl\nis_const: null\nname: {kind: Identifier, name: n}\ntype: {kind: Identifier, name: int}\nvalue: ~\n",
			want: "TermDecl\nis_const: false\nname:\n  Identifier\n  name: n\ntype:\n  Identifier\n  name: int\nvalue: none\n",
		},
		{
			name: "empty function",
			src:  "kind: FunctionDecl\n",
			want: "FunctionDecl\nfunc_name: none\nreturn_type: none\nparams: none\nprocedure: none\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := treefile.LoadNode(strings.NewReader(tt.src))
			if err != nil {
				t.Fatalf("LoadNode: %v", err)
			}
			if got := dump.String(n); got != tt.want {
				t.Errorf("got:\n%s\nwant:\n%s", got, tt.want)
			}
		})
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want error
		line int
	}{
		{
			name: "empty",
			src:  "",
			want: treefile.ErrEmptyDocument,
		},
		{
			name: "not a program",
			src:  "kind: Identifier\nname: x\n",
			want: treefile.ErrNotProgram,
			line: 1,
		},
		{
			name: "scalar root",
			src:  "42\n",
			want: treefile.ErrNotMapping,
			line: 1,
		},
		{
			name: "missing kind",
			src:  "kind: Program\nstatements:\n  - name: x\n",
			want: treefile.ErrMissingKind,
			line: 3,
		},
		{
			name: "unknown kind",
			src:  "kind: Program\nstatements:\n  - kind: Return\n",
			want: treefile.ErrUnknownKind,
			line: 3,
		},
		{
			name: "unknown key",
			src:  "kind: Program\nstatements:\n  - kind: Identifier\n    name: x\n    type: int\n",
			want: treefile.ErrUnknownKey,
			line: 5,
		},
		{
			name: "duplicate key",
			src:  "kind: Identifier\nname: x\nname: y\n",
			want: treefile.ErrDuplicateKey,
			line: 3,
		},
		{
			name: "statements not a list",
			src:  "kind: Program\nstatements: {kind: Identifier, name: x}\n",
			want: treefile.ErrNotSequence,
			line: 2,
		},
		{
			name: "missing scalar field",
			src:  "kind: Program\nstatements:\n  - kind: Identifier\n",
			want: treefile.ErrMissingField,
			line: 3,
		},
		{
			name: "bad integer",
			src:  "kind: Program\nstatements:\n  - {kind: IntegerLiteral, value: ten}\n",
			want: treefile.ErrBadValue,
			line: 3,
		},
		{
			name: "bad operator",
			src:  "kind: Program\nstatements:\n  - kind: UnaryOperation\n    op: plus\n    expr: {kind: Identifier, name: x}\n",
			want: ast.ErrInvalidOperator,
			line: 3,
		},
		{
			name: "unknown operator name",
			src:  "kind: Program\nstatements:\n  - kind: UnaryOperation\n    op: shift\n    expr: {kind: Identifier, name: x}\n",
			want: treefile.ErrBadValue,
			line: 4,
		},
		{
			name: "empty identifier",
			src:  "kind: Program\nstatements:\n  - {kind: Identifier, name: \"\"}\n",
			want: ast.ErrEmptyName,
			line: 3,
		},
		{
			name: "statement where expression expected",
			src:  "kind: Program\nstatements:\n  - kind: Assignment\n    term: {kind: Identifier, name: x}\n    value: {kind: WhileStatement, condition: {kind: Identifier, name: y}, procedure: {kind: Procedure}}\n",
			want: treefile.ErrWrongCategory,
			line: 5,
		},
		{
			name: "alias in a list",
			src:  "kind: Program\nstatements:\n  - &x {kind: Identifier, name: x}\n  - *x\n",
			want: treefile.ErrAlias,
			line: 4,
		},
		{
			name: "alias as a child",
			src:  "kind: Program\nstatements:\n  - kind: Assignment\n    term: &t {kind: Identifier, name: x}\n    value: *t\n",
			want: treefile.ErrAlias,
			line: 5,
		},
		{
			name: "doubling alias chain",
			src: "kind: Program\nstatements:\n" +
				"  - &a0 {kind: IntegerLiteral, value: 1}\n" +
				"  - &a1 {kind: BinaryOperation, op: plus, left: *a0, right: *a0}\n" +
				"  - &a2 {kind: BinaryOperation, op: plus, left: *a1, right: *a1}\n",
			want: treefile.ErrAlias,
			line: 4,
		},
		{
			name: "missing required child",
			src:  "kind: Program\nstatements:\n  - kind: BinaryOperation\n    op: plus\n    left: {kind: IntegerLiteral, value: 1}\n",
			want: ast.ErrMissingChild,
			line: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := treefile.Load(strings.NewReader(tt.src))
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
			var le *treefile.LoadError
			if !errors.As(err, &le) {
				t.Fatalf("err %T is not a *LoadError", err)
			}
			if le.Line != tt.line {
				t.Errorf("line = %d, want %d (%v)", le.Line, tt.line, err)
			}
		})
	}
}

func TestLoadFileErrors(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	src := "kind: Program\nstatements:\n  - kind: WhileStatement\n    condition: {kind: Identifier, name: x}\n"
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := treefile.LoadFile(path)
	if !errors.Is(err, ast.ErrMissingChild) {
		t.Fatalf("err = %v, want ErrMissingChild", err)
	}
	var le *treefile.LoadError
	if !errors.As(err, &le) || le.Path != path {
		t.Fatalf("err = %#v, want LoadError with path %s", err, path)
	}
	msg := err.Error()
	for _, want := range []string{path, "line 3:5", "WhileStatement.procedure"} {
		if !strings.Contains(msg, want) {
			t.Errorf("message %q does not contain %q", msg, want)
		}
	}

	if _, err := treefile.LoadFile(filepath.Join(dir, "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file: err = %v", err)
	}
}
