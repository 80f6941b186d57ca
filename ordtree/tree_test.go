package ordtree_test

import (
	"math"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"

	"ordtree_code/ordtree"
)

func fromValues[T int | string | float64](vs ...T) *ordtree.Tree[T] {
	tree := ordtree.New[T]()
	for _, v := range vs {
		if err := tree.Insert(v); err != nil {
			panic(err)
		}
	}
	return tree
}

func TestEmpty(t *testing.T) {
	assert := assert.New(t)

	var tree ordtree.Tree[int]
	assert.True(tree.IsEmpty())
	assert.Equal(uint64(0), tree.Len())
	assert.Equal(uint64(0), tree.Height())
	assert.True(tree.Find(1).Absent())
	assert.True(tree.Lowest().Absent())
	assert.True(tree.Highest().Absent())
	assert.True(tree.Root().Absent())
	_, ok := tree.Min()
	assert.False(ok)
	_, ok = tree.Max()
	assert.False(ok)
	assert.Empty(tree.Values(ordtree.InOrder))
}

func TestInsertScenario(t *testing.T) {
	assert := assert.New(t)

	tree := fromValues(5, 3, 8, 1, 4, 7, 9)
	assert.False(tree.IsEmpty())
	assert.Equal(uint64(7), tree.Len())
	assert.Equal([]int{1, 3, 4, 5, 7, 8, 9}, tree.Values(ordtree.InOrder))
	assert.Equal(uint64(3), tree.Height())

	lowest, err := tree.Retrieve(tree.Lowest())
	assert.NoError(err)
	assert.Equal(1, lowest)
	highest, err := tree.Retrieve(tree.Highest())
	assert.NoError(err)
	assert.Equal(9, highest)

	lh, err := tree.LeftHeight()
	assert.NoError(err)
	assert.Equal(uint64(2), lh)
	rh, err := tree.RightHeight()
	assert.NoError(err)
	assert.Equal(uint64(2), rh)
}

func TestSingleNode(t *testing.T) {
	assert := assert.New(t)

	tree := fromValues(42)
	assert.Equal(uint64(1), tree.Height())
	assert.True(tree.IsLeaf(tree.Root()))
	lh, err := tree.LeftHeight()
	assert.NoError(err)
	assert.Equal(uint64(0), lh)
	rh, err := tree.RightHeight()
	assert.NoError(err)
	assert.Equal(uint64(0), rh)
}

func TestDuplicatesGoRight(t *testing.T) {
	assert := assert.New(t)

	tree := fromValues(5, 5, 5)
	assert.Equal([]int{5, 5, 5}, tree.Values(ordtree.InOrder))
	assert.Equal(uint64(3), tree.Count(5))
	assert.Equal(uint64(3), tree.Height())
	lh, _ := tree.LeftHeight()
	assert.Equal(uint64(0), lh)
	rh, _ := tree.RightHeight()
	assert.Equal(uint64(2), rh)

	tree.Delete(5)
	assert.Equal(uint64(2), tree.Count(5))
	assert.Equal([]int{5, 5}, tree.Values(ordtree.InOrder))
}

func TestDeleteTwoChildren(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	assert := assert.New(t)

	tree := fromValues(5, 3, 8)
	tree.Delete(5)

	root := tree.Root()
	v, err := tree.Retrieve(root)
	assert.NoError(err)
	assert.Equal(3, v, "root takes the predecessor's value")
	assert.True(root.Left().Absent(), "predecessor removed from left subtree")
	right, err := tree.Retrieve(root.Right())
	assert.NoError(err)
	assert.Equal(8, right)
	assert.Equal([]int{3, 8}, tree.Values(ordtree.InOrder))
	assert.Equal(uint64(2), tree.Len())
}

func TestDeleteCases(t *testing.T) {
	tests := []struct {
		name     string
		insert   []int
		del      int
		preOrder []int
	}{
		{"leaf", []int{5, 3, 8}, 3, []int{5, 8}},
		{"only right child", []int{5, 3, 4, 8}, 3, []int{5, 4, 8}},
		{"only left child", []int{5, 3, 2, 8}, 3, []int{5, 2, 8}},
		{"root only right", []int{5, 8, 7, 9}, 5, []int{8, 7, 9}},
		{"root only left", []int{5, 3, 1, 4}, 5, []int{3, 1, 4}},
		{"deep predecessor", []int{10, 5, 15, 3, 7, 6, 8}, 10, []int{8, 5, 3, 7, 6, 15}},
		{"predecessor with left child", []int{10, 5, 15, 7, 6}, 10, []int{7, 5, 6, 15}},
		{"single node", []int{1}, 1, []int{}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert := assert.New(t)
			tree := fromValues(test.insert...)
			assert.True(tree.Remove(test.del))
			assert.Equal(test.preOrder, tree.Values(ordtree.PreOrder))
			assert.Equal(uint64(len(test.insert)-1), tree.Len())
		})
	}
}

func TestDeleteAbsent(t *testing.T) {
	assert := assert.New(t)

	tree := fromValues(5, 3, 8, 1, 4, 7, 9)
	pre := tree.Values(ordtree.PreOrder)
	root := tree.Root()

	assert.False(tree.Remove(6))
	tree.Delete(100)
	assert.Equal(pre, tree.Values(ordtree.PreOrder))
	assert.Equal([]int{1, 3, 4, 5, 7, 8, 9}, tree.Values(ordtree.InOrder))
	assert.Equal(uint64(7), tree.Len())

	// nothing changed, so positions stay valid
	v, err := tree.Retrieve(root)
	assert.NoError(err)
	assert.Equal(5, v)

	var empty ordtree.Tree[int]
	assert.False(empty.Remove(1))
	assert.True(empty.IsEmpty())
}

func TestDeleteToEmpty(t *testing.T) {
	assert := assert.New(t)

	input := []int{5, 3, 8, 1, 4, 7, 9, 5, 3}
	tree := fromValues(input...)
	for _, v := range input {
		assert.True(tree.Remove(v), "remove %d", v)
	}
	assert.True(tree.IsEmpty())
	assert.Equal(uint64(0), tree.Len())
	assert.Equal(uint64(0), tree.Height())
}

func TestFind(t *testing.T) {
	assert := assert.New(t)

	tree := fromValues(5, 3, 8, 1, 4, 7, 9)
	for _, v := range []int{1, 3, 4, 5, 7, 8, 9} {
		p := tree.Find(v)
		assert.False(p.Absent(), "find %d", v)
		got, err := tree.Retrieve(p)
		assert.NoError(err)
		assert.Equal(v, got)
		assert.True(tree.Contains(v))
	}
	for _, v := range []int{0, 2, 6, 10} {
		assert.True(tree.Find(v).Absent(), "find %d", v)
		assert.False(tree.Contains(v))
		assert.Equal(uint64(0), tree.Count(v))
	}
}

func TestMinMax(t *testing.T) {
	assert := assert.New(t)

	tree := fromValues("pear", "apple", "quince", "fig")
	lo, ok := tree.Min()
	assert.True(ok)
	assert.Equal("apple", lo)
	hi, ok := tree.Max()
	assert.True(ok)
	assert.Equal("quince", hi)
}

func TestNaNOrdersFirst(t *testing.T) {
	assert := assert.New(t)

	tree := fromValues(1.5, math.NaN(), -2.0, math.NaN())
	vs := tree.Values(ordtree.InOrder)
	assert.Len(vs, 4)
	assert.True(math.IsNaN(vs[0]))
	assert.True(math.IsNaN(vs[1]))
	assert.Equal([]float64{-2.0, 1.5}, vs[2:])
	assert.Equal(uint64(2), tree.Count(math.NaN()))
	assert.True(tree.Remove(math.NaN()))
	assert.Equal(uint64(1), tree.Count(math.NaN()))
}

func TestHeightErrorsOnEmpty(t *testing.T) {
	assert := assert.New(t)

	tree := ordtree.New[int]()
	_, err := tree.LeftHeight()
	assert.ErrorIs(err, ordtree.ErrInvalidPosition)
	_, err = tree.RightHeight()
	assert.ErrorIs(err, ordtree.ErrInvalidPosition)
}

func TestDegenerateHeight(t *testing.T) {
	assert := assert.New(t)

	tree := ordtree.New[int]()
	for i := 0; i < 100; i++ {
		assert.NoError(tree.Insert(i))
	}
	assert.Equal(uint64(100), tree.Height(), "sorted input is not rebalanced")
	lh, _ := tree.LeftHeight()
	assert.Equal(uint64(0), lh)
	rh, _ := tree.RightHeight()
	assert.Equal(uint64(99), rh)
}

func TestClear(t *testing.T) {
	assert := assert.New(t)

	tree := fromValues(5, 3, 8)
	tree.Clear()
	assert.True(tree.IsEmpty())
	assert.Equal(uint64(0), tree.Len())
	assert.Equal(uint64(0), tree.Height())
	assert.True(tree.Lowest().Absent())

	assert.NoError(tree.Insert(1))
	assert.Equal([]int{1}, tree.Values(ordtree.InOrder))
}

func TestCapacity(t *testing.T) {
	assert := assert.New(t)

	tree := ordtree.New[int](ordtree.WithCapacity(2))
	assert.NoError(tree.Insert(1))
	assert.NoError(tree.Insert(2))
	err := tree.Insert(3)
	assert.ErrorIs(err, ordtree.ErrAllocation)
	assert.Equal([]int{1, 2}, tree.Values(ordtree.InOrder), "failed insert leaves tree unchanged")
	assert.Equal(uint64(2), tree.Len())

	tree.Delete(1)
	assert.NoError(tree.Insert(3), "deleting frees room")
}
