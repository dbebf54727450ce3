package slicepool

import (
	"math"
	"math/bits"
	"sync"
	"unsafe"
)

// Strings is the shared pool for []string scratch space.
var Strings Pool[string]

// Pool holds 32 sync.Pools, one per power-of-two capacity.
type Pool[T any] struct {
	pools [32]sync.Pool
}

// Get returns a slice of length size. Its elements may hold stale values.
func (p *Pool[T]) Get(size int) []T {
	if size <= 0 {
		return nil
	}
	if size > math.MaxInt32 {
		return make([]T, size)
	}
	idx := index(uint32(size))
	ptr, _ := p.pools[idx].Get().(*T)
	if ptr == nil {
		return make([]T, size, 1<<idx)
	}
	return unsafe.Slice(ptr, 1<<idx)[:size]
}

// Put zeroes buf up to its capacity and returns it to the pool.
func (p *Pool[T]) Put(buf []T) {
	size := cap(buf)
	if size == 0 || size > math.MaxInt32 {
		return
	}
	clear(buf[:size])
	idx := index(uint32(size))
	if size != 1<<idx { // not from Get, file it under the smaller class
		idx--
	}
	// store the array pointer, not the slice header, so buf does not escape.
	p.pools[idx].Put(unsafe.SliceData(buf))
}

func index(n uint32) uint32 {
	return uint32(bits.Len32(n - 1))
}
