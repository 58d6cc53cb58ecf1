package ast

import (
	"fmt"
	"strconv"
)

// SlotMode 子节点位置的类别
type SlotMode int

const (
	SlotRequired SlotMode = iota // 必填
	SlotOptional                 // 可缺省
	SlotSequence                 // 有序列表
)

func (m SlotMode) String() string {
	switch m {
	case SlotRequired:
		return "required"
	case SlotOptional:
		return "optional"
	case SlotSequence:
		return "sequence"
	default:
		return "unknown"
	}
}

// Field 标量字段，Value 已经格式化为输出文本
type Field struct {
	Name  string
	Value string
}

// Slot 子节点位置。
// 单个子节点放在 Child，缺省或丢失时为 nil；列表放在 Children。
type Slot struct {
	Name     string
	Mode     SlotMode
	Child    Node
	Children []Node
}

// Nodes 返回该位置上实际存在的子节点
func (s Slot) Nodes() []Node {
	if s.Mode == SlotSequence {
		return s.Children
	}
	if s.Child == nil {
		return nil
	}
	return []Node{s.Child}
}

// Layout 节点的声明式描述：字段和子节点都按声明顺序排列
type Layout struct {
	Kind   Kind
	Fields []Field
	Slots  []Slot
}

// Describe 返回节点的字段和子节点。打印和遍历都只通过它访问节点内容。
func Describe(n Node) Layout {
	switch n := n.(type) {
	case *IntegerLiteral:
		return layout(n, fields("value", strconv.FormatInt(n.value, 10)))
	case *FloatLiteral:
		return layout(n, fields("value", strconv.FormatFloat(n.value, 'g', -1, 64)))
	case *StringLiteral:
		return layout(n, fields("value", strconv.Quote(n.value)))
	case *Identifier:
		return layout(n, fields("name", n.name))
	case *CallArgs:
		return layout(n, nil, sequence("list", n.list))
	case *Call:
		return layout(n, nil,
			required("callable", n.callable),
			optional("args", n.args))
	case *UnaryOperation:
		return layout(n, fields("op", n.op.String()),
			required("expr", n.expr))
	case *BinaryOperation:
		return layout(n, fields("op", n.op.String()),
			required("left", n.left),
			required("right", n.right))
	case *TermDecl:
		return layout(n, fields("is_const", strconv.FormatBool(n.isConst)),
			required("name", n.name),
			required("type", n.typ),
			optional("value", n.value))
	case *Assignment:
		return layout(n, nil,
			required("term", n.term),
			required("value", n.value))
	case *Procedure:
		return layout(n, nil, sequence("statements", n.statements))
	case *ParamsDecl:
		return layout(n, nil, sequence("list", n.list))
	case *FunctionDecl:
		return layout(n, nil,
			optional("func_name", n.name),
			optional("return_type", n.returnType),
			optional("params", n.params),
			optional("procedure", n.procedure))
	case *IfStatement:
		return layout(n, nil,
			required("condition", n.condition),
			required("procedure", n.procedure),
			optional("else", n.elseBranch))
	case *Else:
		return layout(n, nil, required("procedure", n.procedure))
	case *ElseIf:
		return layout(n, nil, required("if", n.ifStmt))
	case *WhileStatement:
		return layout(n, nil,
			required("condition", n.condition),
			required("procedure", n.procedure))
	case *Program:
		return layout(n, nil, sequence("statements", n.statements))
	}
	panic(fmt.Sprintf("ast: unexpected node type %T", n))
}

func layout(n Node, fs []Field, slots ...Slot) Layout {
	return Layout{Kind: n.Kind(), Fields: fs, Slots: slots}
}

func fields(kv ...string) []Field {
	fs := make([]Field, 0, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		fs = append(fs, Field{Name: kv[i], Value: kv[i+1]})
	}
	return fs
}

func required[T Node](name string, child T) Slot {
	return Slot{Name: name, Mode: SlotRequired, Child: nodeOf(child)}
}

func optional[T Node](name string, child Optional[T]) Slot {
	s := Slot{Name: name, Mode: SlotOptional}
	if n, ok := child.Get(); ok {
		s.Child = nodeOf(n)
	}
	return s
}

func sequence[T Node](name string, list []T) Slot {
	children := make([]Node, len(list))
	for i, n := range list {
		children[i] = nodeOf(n)
	}
	return Slot{Name: name, Mode: SlotSequence, Children: children}
}
