package ordtree

import (
	"cmp"
	"fmt"
)

// Position refers to one node of a Tree. It stays valid only until the next
// Insert, Delete, Remove, Clear or CopyFrom on that tree; afterwards the tree
// treats it as absent. The zero Position is absent.
type Position[T cmp.Ordered] struct {
	tree *Tree[T]
	n    *node[T]
	gen  uint64
}

func (t *Tree[T]) at(n *node[T]) Position[T] {
	if n == nil {
		return Position[T]{}
	}
	return Position[T]{tree: t, n: n, gen: t.gen}
}

// live returns the node p refers to if p belongs to t and t has not changed
// since p was made.
func (t *Tree[T]) live(p Position[T]) *node[T] {
	if p.n == nil || p.tree != t || p.gen != t.gen {
		return nil
	}
	return p.n
}

// Absent reports whether p refers to no node at all. A stale position is not
// absent by this test, but every Tree method rejects it.
func (p Position[T]) Absent() bool {
	return p.n == nil
}

// Left returns the position of p's left child.
func (p Position[T]) Left() Position[T] {
	if p.n == nil || p.n.left == nil {
		return Position[T]{}
	}
	return Position[T]{tree: p.tree, n: p.n.left, gen: p.gen}
}

// Right returns the position of p's right child.
func (p Position[T]) Right() Position[T] {
	if p.n == nil || p.n.right == nil {
		return Position[T]{}
	}
	return Position[T]{tree: p.tree, n: p.n.right, gen: p.gen}
}

// Root returns the position of the root node, absent if t is empty.
func (t *Tree[T]) Root() Position[T] {
	return t.at(t.root)
}

// Retrieve returns the value at p. It fails with ErrInvalidPosition if t is
// empty or p is absent, stale, or belongs to another tree.
func (t *Tree[T]) Retrieve(p Position[T]) (v T, err error) {
	if t.root == nil {
		return v, fmt.Errorf("%w: tree is empty", ErrInvalidPosition)
	}
	if p.n == nil {
		return v, fmt.Errorf("%w: absent position", ErrInvalidPosition)
	}
	n := t.live(p)
	if n == nil {
		return v, fmt.Errorf("%w: position is stale or from another tree", ErrInvalidPosition)
	}
	return n.value, nil
}

// IsLeaf reports whether p refers to a live node without children.
func (t *Tree[T]) IsLeaf(p Position[T]) bool {
	return t.live(p).isLeaf()
}
