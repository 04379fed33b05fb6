/*
File    : dhadLang/arena/arena_test.go
Author  : t-011
*/
package arena

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// node is a representative AST-shaped payload: a couple of pointer-sized
// fields and a small integer, like the real node types.
type node struct {
	Name  string
	Left  *node
	Value int
}

// TestArena_AllocZeroed checks that Alloc hands out zero-initialized nodes.
func TestArena_AllocZeroed(t *testing.T) {
	arn := NewArena[node](0)

	n := arn.Alloc()
	assert.NotNil(t, n)
	assert.Equal(t, "", n.Name)
	assert.Nil(t, n.Left)
	assert.Equal(t, 0, n.Value)
}

// TestArena_DistinctAddresses checks that no address is ever handed out
// twice within one arena, across several block boundaries.
func TestArena_DistinctAddresses(t *testing.T) {
	arn := NewArena[node](0)

	seen := make(map[*node]bool)
	total := 3*DEFAULT_BLOCK_CAP + 17
	for i := 0; i < total; i++ {
		n := arn.Alloc()
		assert.False(t, seen[n], "address handed out twice")
		seen[n] = true
		n.Value = i
	}

	assert.Equal(t, total, arn.Len())
	assert.Equal(t, 4, len(arn.Blocks))
}

// TestArena_StableAddresses checks that growth never moves already
// allocated nodes: values written through early pointers survive
// arbitrarily many later allocations.
func TestArena_StableAddresses(t *testing.T) {
	arn := NewArena[node](0)

	first := arn.Alloc()
	first.Name = "first"
	first.Value = 7

	ptrs := make([]*node, 0)
	for i := 0; i < 2*DEFAULT_BLOCK_CAP; i++ {
		n := arn.Alloc()
		n.Value = i
		ptrs = append(ptrs, n)
	}

	assert.Equal(t, "first", first.Name)
	assert.Equal(t, 7, first.Value)
	for i, p := range ptrs {
		assert.Equal(t, i, p.Value)
	}
}

// TestArena_CrossReferences checks the property the parser depends on:
// nodes may point at each other and the references stay valid as the
// arena grows.
func TestArena_CrossReferences(t *testing.T) {
	arn := NewArena[node](0)

	parent := arn.Alloc()
	parent.Name = "parent"
	for i := 0; i < DEFAULT_BLOCK_CAP+5; i++ {
		child := arn.Alloc()
		child.Left = parent
	}

	last := arn.Alloc()
	last.Left = parent
	assert.Equal(t, "parent", last.Left.Name)
}

// TestArena_MinimumBlockCap checks that tiny capacities are rounded up.
func TestArena_MinimumBlockCap(t *testing.T) {
	arn := NewArena[node](3)
	assert.Equal(t, DEFAULT_BLOCK_CAP, arn.BlockCap)
}
