package ordtree

import (
	"cmp"
	"sync"
)

// Synced guards a Tree with a mutex so that several goroutines can share it.
// It deals in values only; positions are never handed out, since they would
// go stale as soon as the lock is released.
type Synced[T cmp.Ordered] struct {
	mu   *sync.Mutex
	tree *Tree[T]
}

func NewSynced[T cmp.Ordered](opts ...Option) *Synced[T] {
	return &Synced[T]{mu: new(sync.Mutex), tree: New[T](opts...)}
}

func (s *Synced[T]) Insert(v T) error {
	s.mu.Lock()
	err := s.tree.Insert(v)
	s.mu.Unlock()
	return err
}

func (s *Synced[T]) Remove(v T) bool {
	s.mu.Lock()
	ok := s.tree.Remove(v)
	s.mu.Unlock()
	return ok
}

func (s *Synced[T]) Delete(v T) {
	s.Remove(v)
}

func (s *Synced[T]) Contains(v T) bool {
	s.mu.Lock()
	ok := s.tree.Contains(v)
	s.mu.Unlock()
	return ok
}

func (s *Synced[T]) Min() (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tree.Min()
}

func (s *Synced[T]) Max() (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tree.Max()
}

func (s *Synced[T]) Len() uint64 {
	s.mu.Lock()
	n := s.tree.Len()
	s.mu.Unlock()
	return n
}

func (s *Synced[T]) Height() uint64 {
	s.mu.Lock()
	h := s.tree.Height()
	s.mu.Unlock()
	return h
}

// Values returns a snapshot of the values in the given order.
func (s *Synced[T]) Values(order Order) []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tree.Values(order)
}

func (s *Synced[T]) Clear() {
	s.mu.Lock()
	s.tree.Clear()
	s.mu.Unlock()
}

// Snapshot returns a deep copy of the guarded tree, which the caller then
// owns outright.
func (s *Synced[T]) Snapshot() *Tree[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tree.Clone()
}
