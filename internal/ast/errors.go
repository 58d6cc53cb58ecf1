package ast

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingChild 必填子节点为空
	ErrMissingChild = errors.New("required child is absent")
	// ErrAlreadyOwned 子节点已经属于别的父节点
	ErrAlreadyOwned = errors.New("child already belongs to another node")
	// ErrSlotOccupied 可选子节点已经设置过
	ErrSlotOccupied = errors.New("slot is already set")
	// ErrCycle 挂上的子树包含父节点自身
	ErrCycle = errors.New("child subtree contains its parent")
	// ErrInvalidOperator 运算符与节点元数不符
	ErrInvalidOperator = errors.New("invalid operator")
	// ErrEmptyName 标识符名字为空
	ErrEmptyName = errors.New("empty identifier name")
)

// ContractError 构造或挂载节点时违反约定
type ContractError struct {
	Kind Kind   // 正在构造的节点类型
	Slot string // 出错的字段或子节点名
	Err  error
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("%s.%s: %v", e.Kind, e.Slot, e.Err)
}

func (e *ContractError) Unwrap() error {
	return e.Err
}

// claim 收集一次构造或挂载要占用的子节点。
// 全部检查通过后 commit 才会把子节点标记为已占用，失败时实参保持原样。
type claim struct {
	kind  Kind
	taken []*node
	err   error
}

func newClaim(kind Kind) *claim {
	return &claim{kind: kind}
}

func (c *claim) fail(slot string, err error) {
	if c.err == nil {
		c.err = &ContractError{Kind: c.kind, Slot: slot, Err: err}
	}
}

// require 必填子节点
func (c *claim) require(slot string, child Node) {
	if IsNil(child) {
		c.fail(slot, ErrMissingChild)
		return
	}
	c.take(slot, child)
}

// optional 可选子节点，nil 表示缺省
func (c *claim) optional(slot string, child Node) {
	if IsNil(child) {
		return
	}
	c.take(slot, child)
}

func (c *claim) take(slot string, child Node) {
	b := child.base()
	if b.owned {
		c.fail(slot, ErrAlreadyOwned)
		return
	}
	for _, t := range c.taken {
		if t == b {
			c.fail(slot, ErrAlreadyOwned)
			return
		}
	}
	c.taken = append(c.taken, b)
}

func (c *claim) commit() error {
	if c.err != nil {
		return c.err
	}
	for _, b := range c.taken {
		b.owned = true
	}
	return nil
}

// attach 把 child 挂到已经存在的 parent 上
func attach(parent Node, slot string, child Node) error {
	c := newClaim(parent.Kind())
	c.require(slot, child)
	if c.err == nil && contains(child, parent) {
		c.fail(slot, ErrCycle)
	}
	return c.commit()
}

func occupied(kind Kind, slot string) error {
	return &ContractError{Kind: kind, Slot: slot, Err: ErrSlotOccupied}
}

func seqSlot(name string, i int) string {
	return fmt.Sprintf("%s[%d]", name, i)
}
