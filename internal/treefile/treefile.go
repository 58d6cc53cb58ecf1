// Package treefile 从 YAML（或 JSON）树描述文件构造语法树。
//
// 描述文件与 dump 输出一一对应：每个节点是一个带 kind 键的映射，
// 字段和子节点各占一个键，列表子节点写成序列，缺省的可选子节点省略或写 null。
//
//	kind: Program
//	statements:
//	  - kind: Assignment
//	    term: {kind: Identifier, name: x}
//	    value: {kind: IntegerLiteral, value: 1}
//
// 节点只通过 ast 的构造函数创建，缺少必填子节点的描述会得到构造函数的错误。
// 每个节点描述只能出现一次，不支持 YAML 锚点别名。
package treefile

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Mik3l24/verbose-lang/internal/ast"
	"github.com/Mik3l24/verbose-lang/internal/i18n"
)

var (
	ErrEmptyDocument = errors.New("empty tree file")
	ErrNotProgram    = errors.New("root node is not a Program")
	ErrNotMapping    = errors.New("node must be a mapping")
	ErrNotSequence   = errors.New("value must be a list")
	ErrMissingKind   = errors.New("node has no kind")
	ErrUnknownKind   = errors.New("unknown node kind")
	ErrUnknownKey    = errors.New("unknown key")
	ErrDuplicateKey  = errors.New("duplicate key")
	ErrMissingField  = errors.New("missing field")
	ErrBadValue      = errors.New("invalid value")
	ErrWrongCategory = errors.New("node kind not allowed here")
	ErrAlias         = errors.New("aliases are not allowed; each node must be written out once")
)

// LoadError 加载失败的位置
type LoadError struct {
	Path   string // 从 reader 加载时为空
	Line   int
	Column int
	Err    error
}

func (e *LoadError) Error() string {
	msg := e.Err.Error()
	if e.Line > 0 {
		msg = i18n.T(i18n.ErrLoadAt, e.Line, e.Column, e.Err)
	}
	if e.Path != "" {
		return i18n.T(i18n.ErrLoadFile, e.Path, msg)
	}
	return msg
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// at 给 err 附上 y 的位置，已经带位置的错误保持不变
func at(y *yaml.Node, err error) error {
	var le *LoadError
	if errors.As(err, &le) {
		return err
	}
	return &LoadError{Line: y.Line, Column: y.Column, Err: err}
}

// Load 读取根节点为 Program 的描述文件
func Load(r io.Reader) (*ast.Program, error) {
	root, y, err := decode(r)
	if err != nil {
		return nil, err
	}
	prog, ok := root.(*ast.Program)
	if !ok {
		return nil, at(y, fmt.Errorf("%w: got %s", ErrNotProgram, root.Kind()))
	}
	return prog, nil
}

// LoadNode 读取根节点为任意类型的描述文件
func LoadNode(r io.Reader) (ast.Node, error) {
	root, _, err := decode(r)
	return root, err
}

// LoadFile 读取 path 处的描述文件，"-" 表示标准输入
func LoadFile(path string) (*ast.Program, error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	prog, err := Load(r)
	if err != nil {
		var le *LoadError
		if errors.As(err, &le) && path != "-" {
			le.Path = path
		}
		return nil, err
	}
	return prog, nil
}

func decode(r io.Reader) (ast.Node, *yaml.Node, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil, &LoadError{Err: ErrEmptyDocument}
		}
		return nil, nil, &LoadError{Err: err}
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, nil, &LoadError{Err: ErrEmptyDocument}
	}

	y := doc.Content[0]
	n, err := build(y)
	if err != nil {
		return nil, nil, err
	}
	return n, y, nil
}
