package ast

import "github.com/google/uuid"

// Walk 先序遍历以 root 为根的子树。fn 返回 false 时跳过该节点的子节点。
// depth 从 0 开始，与输出树的缩进层数一致。
func Walk(root Node, fn func(n Node, depth int) bool) {
	walk(root, 0, fn)
}

func walk(n Node, depth int, fn func(Node, int) bool) {
	if IsNil(n) || !fn(n, depth) {
		return
	}
	for _, slot := range Describe(n).Slots {
		for _, child := range slot.Nodes() {
			walk(child, depth+1, fn)
		}
	}
}

// Count 返回子树中的节点数
func Count(root Node) int {
	count := 0
	Walk(root, func(Node, int) bool {
		count++
		return true
	})
	return count
}

// contains 判断 target 是否位于 root 的子树中
func contains(root, target Node) bool {
	found := false
	Walk(root, func(n Node, _ int) bool {
		if n.base() == target.base() {
			found = true
		}
		return !found
	})
	return found
}

// ParentTable 父节点查找表。
// 节点自身不保存父指针，需要父节点时先对整棵树建表，再按节点 ID 查询。
type ParentTable struct {
	parents map[uuid.UUID]Node
	depths  map[uuid.UUID]int
}

// BuildParents 为以 root 为根的树建立父节点表
func BuildParents(root Node) *ParentTable {
	t := &ParentTable{
		parents: make(map[uuid.UUID]Node),
		depths:  make(map[uuid.UUID]int),
	}
	if !IsNil(root) {
		t.depths[root.ID()] = 0
		t.add(root, 0)
	}
	return t
}

func (t *ParentTable) add(parent Node, depth int) {
	for _, slot := range Describe(parent).Slots {
		for _, child := range slot.Nodes() {
			if IsNil(child) {
				continue
			}
			t.parents[child.ID()] = parent
			t.depths[child.ID()] = depth + 1
			t.add(child, depth+1)
		}
	}
}

// Parent 返回 n 的父节点；根节点或不在表中的节点返回 false
func (t *ParentTable) Parent(n Node) (Node, bool) {
	if IsNil(n) {
		return nil, false
	}
	p, ok := t.parents[n.ID()]
	return p, ok
}

// Depth 返回 n 到根的距离
func (t *ParentTable) Depth(n Node) (int, bool) {
	if IsNil(n) {
		return 0, false
	}
	d, ok := t.depths[n.ID()]
	return d, ok
}

// Ancestors 由近到远返回 n 的祖先
func (t *ParentTable) Ancestors(n Node) []Node {
	var out []Node
	for {
		p, ok := t.Parent(n)
		if !ok {
			return out
		}
		out = append(out, p)
		n = p
	}
}

// Len 返回表中的节点数（含根）
func (t *ParentTable) Len() int {
	return len(t.depths)
}
