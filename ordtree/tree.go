package ordtree

import (
	"cmp"
	"fmt"

	"github.com/goose-lang/std"
)

// Tree is a binary search tree of values of type T. The zero value is an
// empty tree without a capacity limit.
type Tree[T cmp.Ordered] struct {
	root *node[T]
	size uint64
	cfg  config
	// gen changes on every mutation; positions remember the gen they were
	// created at.
	gen uint64
}

// New returns an empty tree.
func New[T cmp.Ordered](opts ...Option) *Tree[T] {
	return &Tree[T]{cfg: newConfig(opts)}
}

func (t *Tree[T]) IsEmpty() bool {
	return t.root == nil
}

// Len returns the number of stored values, counting duplicates.
func (t *Tree[T]) Len() uint64 {
	return t.size
}

func (t *Tree[T]) mutated() {
	t.gen++
}

func (t *Tree[T]) reserve(n uint64) error {
	if limit := t.cfg.capacity; limit > 0 && n > limit {
		return fmt.Errorf("%w: %d nodes requested, capacity is %d", ErrAllocation, n, limit)
	}
	return nil
}

// Insert adds v to the tree. Values equal to one already stored go to its
// right. The only failure is ErrAllocation when the tree is at capacity, in
// which case the tree is unchanged.
func (t *Tree[T]) Insert(v T) error {
	size := std.SumAssumeNoOverflow(t.size, 1)
	if err := t.reserve(size); err != nil {
		return err
	}
	t.root = t.root.insert(v)
	t.size = size
	t.mutated()
	return nil
}

// Remove deletes one occurrence of v and reports whether there was one.
//
// A node with a single child is replaced by that child. A node with two
// children takes the value of its in-order predecessor (the highest value of
// its left subtree), which is then deleted from the left subtree.
func (t *Tree[T]) Remove(v T) bool {
	root, ok := t.root.remove(v)
	if !ok {
		return false
	}
	t.root = root
	t.size--
	t.mutated()
	return true
}

// Delete deletes one occurrence of v. Deleting a value that is not stored
// does nothing.
func (t *Tree[T]) Delete(v T) {
	t.Remove(v)
}

// Find returns the position of a node holding v, or an absent position.
func (t *Tree[T]) Find(v T) Position[T] {
	return t.at(t.root.find(v))
}

func (t *Tree[T]) Contains(v T) bool {
	return t.root.find(v) != nil
}

// Count returns how many copies of v are stored.
func (t *Tree[T]) Count(v T) uint64 {
	return t.root.count(v)
}

// Lowest returns the position of the smallest value, absent if the tree is
// empty.
func (t *Tree[T]) Lowest() Position[T] {
	return t.at(t.root.lowest())
}

// Highest returns the position of the largest value, absent if the tree is
// empty.
func (t *Tree[T]) Highest() Position[T] {
	return t.at(t.root.highest())
}

// LowestIn returns the position of the smallest value in the subtree at p.
func (t *Tree[T]) LowestIn(p Position[T]) Position[T] {
	return t.at(t.live(p).lowest())
}

// HighestIn returns the position of the largest value in the subtree at p.
func (t *Tree[T]) HighestIn(p Position[T]) Position[T] {
	return t.at(t.live(p).highest())
}

// Min returns the smallest value; ok is false if the tree is empty.
func (t *Tree[T]) Min() (v T, ok bool) {
	if n := t.root.lowest(); n != nil {
		return n.value, true
	}
	return v, false
}

// Max returns the largest value; ok is false if the tree is empty.
func (t *Tree[T]) Max() (v T, ok bool) {
	if n := t.root.highest(); n != nil {
		return n.value, true
	}
	return v, false
}

// Height returns the number of nodes on the longest path from the root to a
// leaf: 0 for an empty tree, 1 for a single node.
func (t *Tree[T]) Height() uint64 {
	return t.root.height()
}

// HeightAt returns the height of the subtree at p, 0 if p is absent.
func (t *Tree[T]) HeightAt(p Position[T]) uint64 {
	return t.live(p).height()
}

// LeftHeight returns the height of the root's left subtree.
func (t *Tree[T]) LeftHeight() (uint64, error) {
	if t.root == nil {
		return 0, fmt.Errorf("%w: left height of empty tree", ErrInvalidPosition)
	}
	return t.root.left.height(), nil
}

// RightHeight returns the height of the root's right subtree.
func (t *Tree[T]) RightHeight() (uint64, error) {
	if t.root == nil {
		return 0, fmt.Errorf("%w: right height of empty tree", ErrInvalidPosition)
	}
	return t.root.right.height(), nil
}

// Clear removes every value.
func (t *Tree[T]) Clear() {
	if t.root != nil {
		tracer().Debugf("ordtree: clearing %d nodes", t.size)
	}
	t.root = nil
	t.size = 0
	t.mutated()
}
