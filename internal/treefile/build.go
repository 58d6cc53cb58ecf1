package treefile

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/Mik3l24/verbose-lang/internal/ast"
)

// mapping 一个节点描述及其键索引
type mapping struct {
	node *yaml.Node
	keys map[string]*yaml.Node
	used map[string]bool
	kind ast.Kind
}

func newMapping(y *yaml.Node) (*mapping, error) {
	if y.Kind != yaml.MappingNode {
		return nil, at(y, ErrNotMapping)
	}

	m := &mapping{
		node: y,
		keys: make(map[string]*yaml.Node, len(y.Content)/2),
		used: make(map[string]bool, len(y.Content)/2),
	}
	for i := 0; i+1 < len(y.Content); i += 2 {
		k, v := y.Content[i], y.Content[i+1]
		if k.Kind == yaml.AliasNode || v.Kind == yaml.AliasNode {
			return nil, at(v, ErrAlias)
		}
		if _, dup := m.keys[k.Value]; dup {
			return nil, at(k, fmt.Errorf("%w %q", ErrDuplicateKey, k.Value))
		}
		m.keys[k.Value] = v
	}

	kindNode, ok := m.get("kind")
	if !ok {
		return nil, at(y, ErrMissingKind)
	}
	kind, ok := ast.LookupKind(kindNode.Value)
	if kindNode.Kind != yaml.ScalarNode || !ok {
		return nil, at(kindNode, fmt.Errorf("%w %q", ErrUnknownKind, kindNode.Value))
	}
	m.kind = kind
	return m, nil
}

// get 返回 key 的值，null 视为缺省
func (m *mapping) get(key string) (*yaml.Node, bool) {
	y, ok := m.keys[key]
	if !ok {
		return nil, false
	}
	m.used[key] = true
	if y.Kind == yaml.ScalarNode && y.ShortTag() == "!!null" {
		return nil, false
	}
	return y, true
}

// unused 报告第一个没有被字段或子节点使用的键
func (m *mapping) unused() error {
	for i := 0; i+1 < len(m.node.Content); i += 2 {
		k := m.node.Content[i]
		if !m.used[k.Value] {
			return at(k, fmt.Errorf("%w %q for %s", ErrUnknownKey, k.Value, m.kind))
		}
	}
	return nil
}

// scalar 把必填的标量字段解码到 v
func (m *mapping) scalar(key, tag string, v any) error {
	y, ok := m.get(key)
	if !ok {
		return at(m.node, fmt.Errorf("%w %q for %s", ErrMissingField, key, m.kind))
	}
	if y.Kind != yaml.ScalarNode || (tag != "" && y.ShortTag() != tag) {
		return at(y, fmt.Errorf("%w for %s.%s: %q", ErrBadValue, m.kind, key, y.Value))
	}
	if err := y.Decode(v); err != nil {
		return at(y, fmt.Errorf("%w for %s.%s: %v", ErrBadValue, m.kind, key, err))
	}
	return nil
}

func (m *mapping) operator(key string) (ast.Operator, error) {
	var name string
	if err := m.scalar(key, "!!str", &name); err != nil {
		return 0, err
	}
	op, ok := ast.LookupOperator(name)
	if !ok {
		y, _ := m.get(key)
		return 0, at(y, fmt.Errorf("%w for %s.%s: %q", ErrBadValue, m.kind, key, name))
	}
	return op, nil
}

// child 构造 key 下的子节点。key 不存在时返回 T 的零值，构造函数把它当作缺省。
func child[T ast.Node](m *mapping, key string) (T, error) {
	var zero T
	y, ok := m.get(key)
	if !ok {
		return zero, nil
	}
	n, err := build(y)
	if err != nil {
		return zero, err
	}
	t, ok := n.(T)
	if !ok {
		return zero, at(y, fmt.Errorf("%w: %s in %s.%s", ErrWrongCategory, n.Kind(), m.kind, key))
	}
	return t, nil
}

// list 构造 key 下的节点列表，key 不存在时为空列表
func list[T ast.Node](m *mapping, key string) ([]T, error) {
	y, ok := m.get(key)
	if !ok {
		return nil, nil
	}
	if y.Kind != yaml.SequenceNode {
		return nil, at(y, fmt.Errorf("%w: %s.%s", ErrNotSequence, m.kind, key))
	}

	out := make([]T, 0, len(y.Content))
	for _, item := range y.Content {
		n, err := build(item)
		if err != nil {
			return nil, err
		}
		t, ok := n.(T)
		if !ok {
			return nil, at(item, fmt.Errorf("%w: %s in %s.%s", ErrWrongCategory, n.Kind(), m.kind, key))
		}
		out = append(out, t)
	}
	return out, nil
}

func build(y *yaml.Node) (ast.Node, error) {
	// 每段描述只构造一个节点
	if y.Kind == yaml.AliasNode {
		return nil, at(y, ErrAlias)
	}
	m, err := newMapping(y)
	if err != nil {
		return nil, err
	}

	n, err := buildKind(m)
	if err != nil {
		return nil, at(y, err)
	}
	if err := m.unused(); err != nil {
		return nil, err
	}
	return n, nil
}

func buildKind(m *mapping) (ast.Node, error) {
	switch m.kind {
	case ast.KindIntegerLiteral:
		var v int64
		if err := m.scalar("value", "!!int", &v); err != nil {
			return nil, err
		}
		return ast.NewIntegerLiteral(v), nil

	case ast.KindFloatLiteral:
		var v float64
		if err := m.scalar("value", "", &v); err != nil {
			return nil, err
		}
		return ast.NewFloatLiteral(v), nil

	case ast.KindStringLiteral:
		var v string
		if err := m.scalar("value", "!!str", &v); err != nil {
			return nil, err
		}
		return ast.NewStringLiteral(v), nil

	case ast.KindIdentifier:
		var name string
		if err := m.scalar("name", "!!str", &name); err != nil {
			return nil, err
		}
		return ast.NewIdentifier(name)

	case ast.KindCallArgs:
		args, err := list[ast.Expression](m, "list")
		if err != nil {
			return nil, err
		}
		return ast.NewCallArgs(args...)

	case ast.KindCall:
		callable, err := child[*ast.Identifier](m, "callable")
		if err != nil {
			return nil, err
		}
		args, err := child[*ast.CallArgs](m, "args")
		if err != nil {
			return nil, err
		}
		return ast.NewCall(callable, args)

	case ast.KindUnaryOperation:
		op, err := m.operator("op")
		if err != nil {
			return nil, err
		}
		expr, err := child[ast.Expression](m, "expr")
		if err != nil {
			return nil, err
		}
		return ast.NewUnaryOperation(op, expr)

	case ast.KindBinaryOperation:
		op, err := m.operator("op")
		if err != nil {
			return nil, err
		}
		left, err := child[ast.Expression](m, "left")
		if err != nil {
			return nil, err
		}
		right, err := child[ast.Expression](m, "right")
		if err != nil {
			return nil, err
		}
		return ast.NewBinaryOperation(op, left, right)

	case ast.KindTermDecl:
		return buildTermDecl(m)

	case ast.KindAssignment:
		term, err := child[ast.Expression](m, "term")
		if err != nil {
			return nil, err
		}
		value, err := child[ast.Expression](m, "value")
		if err != nil {
			return nil, err
		}
		return ast.NewAssignment(term, value)

	case ast.KindProcedure:
		stmts, err := list[ast.Statement](m, "statements")
		if err != nil {
			return nil, err
		}
		return ast.NewProcedure(stmts...)

	case ast.KindParamsDecl:
		params, err := list[*ast.TermDecl](m, "list")
		if err != nil {
			return nil, err
		}
		return ast.NewParamsDecl(params...)

	case ast.KindFunctionDecl:
		return buildFunctionDecl(m)

	case ast.KindIfStatement:
		return buildIfStatement(m)

	case ast.KindElse:
		proc, err := child[*ast.Procedure](m, "procedure")
		if err != nil {
			return nil, err
		}
		return ast.NewElse(proc)

	case ast.KindElseIf:
		ifStmt, err := child[*ast.IfStatement](m, "if")
		if err != nil {
			return nil, err
		}
		return ast.NewElseIf(ifStmt)

	case ast.KindWhileStatement:
		cond, err := child[ast.Expression](m, "condition")
		if err != nil {
			return nil, err
		}
		proc, err := child[*ast.Procedure](m, "procedure")
		if err != nil {
			return nil, err
		}
		return ast.NewWhileStatement(cond, proc)

	case ast.KindProgram:
		stmts, err := list[ast.Statement](m, "statements")
		if err != nil {
			return nil, err
		}
		return ast.NewProgram(stmts...)
	}
	return nil, fmt.Errorf("%w %s", ErrUnknownKind, m.kind)
}

func buildTermDecl(m *mapping) (ast.Node, error) {
	var isConst bool
	if _, ok := m.get("is_const"); ok {
		if err := m.scalar("is_const", "!!bool", &isConst); err != nil {
			return nil, err
		}
	}
	name, err := child[*ast.Identifier](m, "name")
	if err != nil {
		return nil, err
	}
	typ, err := child[ast.Expression](m, "type")
	if err != nil {
		return nil, err
	}
	value, err := child[ast.Expression](m, "value")
	if err != nil {
		return nil, err
	}
	return ast.NewTermDecl(isConst, name, typ, value)
}

// buildFunctionDecl 按声明顺序逐个设置子节点，与解析器分阶段构造函数声明的方式一致
func buildFunctionDecl(m *mapping) (ast.Node, error) {
	fn := ast.NewFunctionDecl()

	name, err := child[*ast.Identifier](m, "func_name")
	if err != nil {
		return nil, err
	}
	if name != nil {
		if err := fn.SetName(name); err != nil {
			return nil, err
		}
	}

	ret, err := child[ast.Expression](m, "return_type")
	if err != nil {
		return nil, err
	}
	if ret != nil {
		if err := fn.SetReturnType(ret); err != nil {
			return nil, err
		}
	}

	params, err := child[*ast.ParamsDecl](m, "params")
	if err != nil {
		return nil, err
	}
	if params != nil {
		if err := fn.SetParams(params); err != nil {
			return nil, err
		}
	}

	proc, err := child[*ast.Procedure](m, "procedure")
	if err != nil {
		return nil, err
	}
	if proc != nil {
		if err := fn.SetProcedure(proc); err != nil {
			return nil, err
		}
	}
	return fn, nil
}

func buildIfStatement(m *mapping) (ast.Node, error) {
	cond, err := child[ast.Expression](m, "condition")
	if err != nil {
		return nil, err
	}
	proc, err := child[*ast.Procedure](m, "procedure")
	if err != nil {
		return nil, err
	}
	branch, err := child[ast.ElseBranch](m, "else")
	if err != nil {
		return nil, err
	}

	ifStmt, err := ast.NewIfStatement(cond, proc)
	if err != nil {
		return nil, err
	}
	if branch != nil {
		if err := ifStmt.SetElse(branch); err != nil {
			return nil, err
		}
	}
	return ifStmt, nil
}
