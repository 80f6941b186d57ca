package ordtree

import (
	"fmt"
	"iter"
)

// Order selects the sequence in which a traversal visits nodes.
type Order uint8

const (
	// PreOrder visits a node, then its left subtree, then its right subtree.
	PreOrder Order = iota
	// InOrder visits the left subtree, the node, then the right subtree,
	// which yields values in non-decreasing order.
	InOrder
	// PostOrder visits both subtrees before the node.
	PostOrder
	// LevelOrder visits nodes by depth, left to right within a level.
	LevelOrder
)

func (o Order) String() string {
	switch o {
	case PreOrder:
		return "preorder"
	case InOrder:
		return "inorder"
	case PostOrder:
		return "postorder"
	case LevelOrder:
		return "levelorder"
	}
	return fmt.Sprintf("Order(%d)", uint8(o))
}

// Walk calls visit for every value in the given order until visit returns
// false. The tree must not be modified during the walk.
func (t *Tree[T]) Walk(order Order, visit func(T) bool) {
	switch order {
	case PreOrder:
		t.root.preOrder(visit)
	case InOrder:
		t.root.inOrder(visit)
	case PostOrder:
		t.root.postOrder(visit)
	case LevelOrder:
		t.root.levelOrder(visit)
	default:
		panic(fmt.Sprintf("ordtree: unknown traversal order %v", order))
	}
}

// All returns the values in the given order as a sequence. Each range over
// the sequence walks the tree afresh.
func (t *Tree[T]) All(order Order) iter.Seq[T] {
	return func(yield func(T) bool) {
		t.Walk(order, yield)
	}
}

// Values returns the values in the given order.
func (t *Tree[T]) Values(order Order) []T {
	vs := make([]T, 0, t.size)
	t.Walk(order, func(v T) bool {
		vs = append(vs, v)
		return true
	})
	return vs
}

func (n *node[T]) preOrder(visit func(T) bool) bool {
	if n == nil {
		return true
	}
	return visit(n.value) && n.left.preOrder(visit) && n.right.preOrder(visit)
}

func (n *node[T]) inOrder(visit func(T) bool) bool {
	if n == nil {
		return true
	}
	return n.left.inOrder(visit) && visit(n.value) && n.right.inOrder(visit)
}

func (n *node[T]) postOrder(visit func(T) bool) bool {
	if n == nil {
		return true
	}
	return n.left.postOrder(visit) && n.right.postOrder(visit) && visit(n.value)
}

func (n *node[T]) levelOrder(visit func(T) bool) bool {
	q := newQueue[*node[T]]()
	if n != nil {
		q.push(n)
	}
	for {
		cur, ok := q.pop()
		if !ok {
			return true
		}
		if !visit(cur.value) {
			return false
		}
		if cur.left != nil {
			q.push(cur.left)
		}
		if cur.right != nil {
			q.push(cur.right)
		}
	}
}
