// Package ast 定义 verbose 语言的抽象语法树。
//
// 节点集合是封闭的：只能通过本包的构造函数创建，构造时必填子节点缺失会直接报错，
// 可选子节点可以稍后通过 Set/Append 挂上。每个子节点只属于一个父节点，树中不存在环。
package ast

import (
	"reflect"

	"github.com/google/uuid"
)

// Kind 节点类型
type Kind int

const (
	KindIntegerLiteral Kind = iota
	KindFloatLiteral
	KindStringLiteral
	KindIdentifier
	KindCallArgs
	KindCall
	KindUnaryOperation
	KindBinaryOperation
	KindTermDecl
	KindAssignment
	KindProcedure
	KindParamsDecl
	KindFunctionDecl
	KindIfStatement
	KindElse
	KindElseIf
	KindWhileStatement
	KindProgram

	kindCount
)

var kindNames = [...]string{
	KindIntegerLiteral:  "IntegerLiteral",
	KindFloatLiteral:    "FloatLiteral",
	KindStringLiteral:   "StringLiteral",
	KindIdentifier:      "Identifier",
	KindCallArgs:        "CallArgs",
	KindCall:            "Call",
	KindUnaryOperation:  "UnaryOperation",
	KindBinaryOperation: "BinaryOperation",
	KindTermDecl:        "TermDecl",
	KindAssignment:      "Assignment",
	KindProcedure:       "Procedure",
	KindParamsDecl:      "ParamsDecl",
	KindFunctionDecl:    "FunctionDecl",
	KindIfStatement:     "IfStatement",
	KindElse:            "Else",
	KindElseIf:          "ElseIf",
	KindWhileStatement:  "WhileStatement",
	KindProgram:         "Program",
}

// String 返回节点类型名，即输出树时的首行
func (k Kind) String() string {
	if k >= 0 && k < kindCount {
		return kindNames[k]
	}
	return "UNKNOWN"
}

// Kinds 按声明顺序返回全部节点类型
func Kinds() []Kind {
	kinds := make([]Kind, 0, kindCount)
	for k := Kind(0); k < kindCount; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// LookupKind 按类型名查找节点类型
func LookupKind(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name {
			return Kind(k), true
		}
	}
	return 0, false
}

// Node AST 节点接口
type Node interface {
	Kind() Kind
	ID() uuid.UUID
	base() *node
}

// Statement 语句接口
type Statement interface {
	Node
	statementNode()
}

// Expression 表达式接口。表达式可以直接作为语句使用。
type Expression interface {
	Statement
	expressionNode()
}

// Declaration 声明接口
type Declaration interface {
	Statement
	declarationNode()
}

// ElseBranch if 语句的 else 分支：Else 或 ElseIf
type ElseBranch interface {
	Node
	elseBranchNode()
}

// node 所有节点共有的部分
type node struct {
	id    uuid.UUID
	owned bool // 已经挂到某个父节点上
}

func newNode() node {
	return node{id: uuid.New()}
}

// ID 返回节点标识，构造时生成
func (n *node) ID() uuid.UUID { return n.id }

func (n *node) base() *node { return n }

// Owned 报告节点是否已经属于某个父节点
func Owned(n Node) bool {
	return !IsNil(n) && n.base().owned
}

// Optional 可缺省的子节点
type Optional[T Node] struct {
	value T
	ok    bool
}

func some[T Node](n T) Optional[T] {
	return Optional[T]{value: n, ok: true}
}

// Get 返回子节点以及它是否存在
func (o Optional[T]) Get() (T, bool) { return o.value, o.ok }

// Present 报告子节点是否存在
func (o Optional[T]) Present() bool { return o.ok }

// IsNil 同时识别 nil 接口和装在接口里的 nil 指针
func IsNil(n Node) bool {
	if n == nil {
		return true
	}
	v := reflect.ValueOf(n)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

// nodeOf 把可能为 nil 指针的子节点规整成 nil 接口
func nodeOf[T Node](n T) Node {
	if IsNil(n) {
		return nil
	}
	return n
}
