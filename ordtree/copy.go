package ordtree

// CopyFrom replaces the contents of t with a deep copy of other. No node is
// shared between the two trees afterwards. If other holds more values than
// t's capacity allows, CopyFrom returns ErrAllocation and leaves t unchanged.
// A nil other empties t.
func (t *Tree[T]) CopyFrom(other *Tree[T]) error {
	if other == t {
		return nil
	}
	if other == nil {
		t.Clear()
		return nil
	}
	if err := t.reserve(other.size); err != nil {
		return err
	}
	t.Clear()
	t.root = other.root.clone()
	t.size = other.size
	tracer().Debugf("ordtree: copied %d nodes", t.size)
	return nil
}

// Clone returns a deep copy of t with the same capacity.
func (t *Tree[T]) Clone() *Tree[T] {
	c := &Tree[T]{cfg: t.cfg}
	c.root = t.root.clone()
	c.size = t.size
	return c
}
