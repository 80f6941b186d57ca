package ordtree

import "errors"

var (
	// ErrAllocation signals that the tree refused to create another node.
	ErrAllocation = errors.New("ordtree: cannot allocate node")
	// ErrInvalidPosition signals a position that does not refer to a live
	// node of the tree it was passed to.
	ErrInvalidPosition = errors.New("ordtree: invalid position")
)
