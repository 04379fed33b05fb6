/*
File    : dhadLang/arena/arena.go
Author  : t-011
*/

// Package arena implements a bump allocator for AST nodes.
// Nodes are allocated out of fixed-capacity blocks and are never freed
// individually; dropping the arena releases every node at once. Addresses
// handed out by Alloc stay valid for the lifetime of the arena, which is
// what lets AST nodes reference each other freely.
package arena

// DEFAULT_BLOCK_CAP is the number of nodes held by a single block.
// A new block of the same capacity is appended whenever the current
// block is full, so allocation cost stays amortized O(1).
const DEFAULT_BLOCK_CAP = 1024

// Arena is a bump allocator for values of a single node type.
// Blocks are plain slices that are appended to but never grown in place,
// so the address of an allocated node is stable forever.
type Arena[T any] struct {
	Blocks   [][]T // allocated blocks; only the last one receives new nodes
	BlockCap int   // capacity of every block
}

// NewArena creates an arena whose blocks hold blockCap nodes each.
// Capacities below DEFAULT_BLOCK_CAP are rounded up to it.
func NewArena[T any](blockCap int) *Arena[T] {
	if blockCap < DEFAULT_BLOCK_CAP {
		blockCap = DEFAULT_BLOCK_CAP
	}
	arn := &Arena[T]{BlockCap: blockCap}
	arn.Blocks = append(arn.Blocks, make([]T, 0, blockCap))
	return arn
}

// Alloc returns a pointer to a freshly zero-initialized node.
// The node lives in the current block; when the block is full a new one
// is appended first. The returned address is never reused or moved.
func (arn *Arena[T]) Alloc() *T {
	last := len(arn.Blocks) - 1
	if len(arn.Blocks[last]) == cap(arn.Blocks[last]) {
		arn.Blocks = append(arn.Blocks, make([]T, 0, arn.BlockCap))
		last++
	}
	var zero T
	arn.Blocks[last] = append(arn.Blocks[last], zero)
	return &arn.Blocks[last][len(arn.Blocks[last])-1]
}

// Len returns the total number of nodes allocated so far.
func (arn *Arena[T]) Len() int {
	total := 0
	for _, block := range arn.Blocks {
		total += len(block)
	}
	return total
}
