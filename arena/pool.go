/*
File    : go-lox/arena/pool.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package arena provides append-only node pools addressed by compact
// 32-bit handles. The parser stores every AST node in a pool and parent
// nodes reference their children by handle instead of by pointer, which
// keeps the node graph trivially copyable and free of ownership cycles.
// Pools are frozen once parsing completes; the resolver and evaluator only
// read from them.
package arena

import "fmt"

// Handle constrains the handle types a pool can hand out. Each pool is
// instantiated with its own named handle type (the parser uses distinct
// types for statement and expression handles) so that an index into one
// pool cannot be used against another by accident.
type Handle interface {
	~uint32
}

// Pool is an append-only vector of nodes. A node, once added, is never
// moved or freed; the pool owns all of its nodes for the lifetime of the
// program being interpreted.
type Pool[T any, H Handle] struct {
	nodes []T
}

// NewPool creates an empty pool.
func NewPool[T any, H Handle]() *Pool[T, H] {
	return &Pool[T, H]{
		nodes: make([]T, 0),
	}
}

// Add appends a node to the pool and returns its handle.
// Panics if the pool outgrows the 32-bit handle space.
func (p *Pool[T, H]) Add(node T) H {
	idx := len(p.nodes)
	if uint64(idx) > uint64(^uint32(0)) {
		panic(fmt.Sprintf("arena: too many objects in the pool (%d)", idx))
	}
	p.nodes = append(p.nodes, node)
	return H(uint32(idx))
}

// Get returns the node stored at the given handle.
// Handles are only produced by Add, so an out-of-range handle is a bug in
// the caller; the resulting index panic is intentional.
func (p *Pool[T, H]) Get(handle H) T {
	return p.nodes[uint32(handle)]
}

// Len returns the number of nodes stored in the pool.
func (p *Pool[T, H]) Len() int {
	return len(p.nodes)
}

// Valid reports whether a handle refers to a slot inside the pool.
func (p *Pool[T, H]) Valid(handle H) bool {
	return int(uint32(handle)) < len(p.nodes)
}
