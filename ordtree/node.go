package ordtree

import (
	"cmp"

	"github.com/goose-lang/primitive"
	"github.com/goose-lang/std"
)

// node holds one value and owns its two subtrees. A nil *node is the empty
// subtree; every method below is defined for it.
type node[T cmp.Ordered] struct {
	value T
	left  *node[T]
	right *node[T]
}

func leaf[T cmp.Ordered](v T) *node[T] {
	return &node[T]{value: v}
}

func (n *node[T]) isLeaf() bool {
	return n != nil && n.left == nil && n.right == nil
}

// insert returns the subtree with v added; the caller stores the result
// back into the link it passed in.
func (n *node[T]) insert(v T) *node[T] {
	if n == nil {
		return leaf(v)
	}
	// modify in-place
	if cmp.Less(v, n.value) {
		n.left = n.left.insert(v)
	} else {
		// equal values go right
		n.right = n.right.insert(v)
	}
	return n
}

// remove deletes one node holding v and returns the replacement subtree,
// together with whether anything was removed.
func (n *node[T]) remove(v T) (*node[T], bool) {
	if n == nil {
		return n, false
	}
	var ok bool
	switch c := cmp.Compare(v, n.value); {
	case c < 0:
		n.left, ok = n.left.remove(v)
		return n, ok
	case c > 0:
		n.right, ok = n.right.remove(v)
		return n, ok
	}
	if n.isLeaf() {
		return nil, true
	}
	if n.left == nil {
		return n.right, true
	}
	if n.right == nil {
		return n.left, true
	}
	// Two children: take over the in-order predecessor's value and delete
	// the predecessor from the left subtree.
	pred := n.left.highest().value
	n.left, ok = n.left.remove(pred)
	primitive.Assert(ok)
	tracer().Debugf("ordtree: replaced %v by predecessor %v", n.value, pred)
	n.value = pred
	return n, true
}

func (n *node[T]) find(v T) *node[T] {
	if n == nil {
		return nil
	}
	c := cmp.Compare(v, n.value)
	if c == 0 {
		return n
	}
	if c < 0 {
		return n.left.find(v)
	}
	return n.right.find(v)
}

// count returns the number of nodes holding v. Predecessor promotion may
// leave a copy of a node's value in its left subtree, so both sides are
// searched on a match.
func (n *node[T]) count(v T) uint64 {
	if n == nil {
		return 0
	}
	switch c := cmp.Compare(v, n.value); {
	case c < 0:
		return n.left.count(v)
	case c > 0:
		return n.right.count(v)
	}
	return std.SumAssumeNoOverflow(1, std.SumAssumeNoOverflow(n.left.count(v), n.right.count(v)))
}

func (n *node[T]) lowest() *node[T] {
	if n == nil || n.left == nil {
		return n
	}
	return n.left.lowest()
}

func (n *node[T]) highest() *node[T] {
	if n == nil || n.right == nil {
		return n
	}
	return n.right.highest()
}

// height counts nodes on the longest path down from n.
func (n *node[T]) height() uint64 {
	if n == nil {
		return 0
	}
	return std.SumAssumeNoOverflow(max(n.left.height(), n.right.height()), 1)
}

// clone copies the subtree in pre-order: a node before its left and then
// its right subtree.
func (n *node[T]) clone() *node[T] {
	if n == nil {
		return nil
	}
	c := leaf(n.value)
	c.left = n.left.clone()
	c.right = n.right.clone()
	return c
}
