/*
File    : go-lox/arena/pool_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package arena

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type testHandle uint32

func TestPool_AddAndGet(t *testing.T) {
	pool := NewPool[string, testHandle]()

	h1 := pool.Add("first")
	h2 := pool.Add("second")
	h3 := pool.Add("third")

	assert.Equal(t, testHandle(0), h1)
	assert.Equal(t, testHandle(1), h2)
	assert.Equal(t, testHandle(2), h3)

	assert.Equal(t, "first", pool.Get(h1))
	assert.Equal(t, "second", pool.Get(h2))
	assert.Equal(t, "third", pool.Get(h3))
	assert.Equal(t, 3, pool.Len())
}

func TestPool_NodesAreNeverMoved(t *testing.T) {
	type node struct{ value int }
	pool := NewPool[*node, testHandle]()

	first := pool.Add(&node{value: 1})
	stored := pool.Get(first)

	// Growing the pool must not invalidate earlier handles.
	for i := 0; i < 1000; i++ {
		pool.Add(&node{value: i})
	}
	assert.Same(t, stored, pool.Get(first))
	assert.Equal(t, 1, pool.Get(first).value)
}

func TestPool_Valid(t *testing.T) {
	pool := NewPool[int, testHandle]()
	h := pool.Add(42)

	assert.True(t, pool.Valid(h))
	assert.False(t, pool.Valid(testHandle(1)))
	assert.False(t, pool.Valid(testHandle(100)))
}
