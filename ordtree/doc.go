// Package ordtree implements an unbalanced binary search tree over any
// ordered element type.
//
// Values that compare equal are all kept; a new value equal to an existing
// one is placed in that node's right subtree. An in-order walk therefore
// yields the stored values in non-decreasing order. The tree never
// rebalances, so inserting already sorted input produces a tree whose height
// equals its size.
//
// A Tree is not safe for concurrent use; wrap it in a Synced if several
// goroutines share it.
package ordtree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'ordtree'
func tracer() tracing.Trace {
	return tracing.Select("ordtree")
}
