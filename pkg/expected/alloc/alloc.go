package alloc

import (
	"sync"

	"github.com/ib-77/expected/pkg/expected"
)

// Allocator hands out buffers of T. Allocate returns nil when the request
// cannot be served and must not panic; Deallocate releases a buffer and is a
// no-op on nil.
type Allocator[T any] interface {
	Allocate(n int) []T
	Deallocate(buf []T)
}

// Heap allocates directly from the Go heap. Deallocate drops the buffer for
// the collector.
type Heap[T any] struct{}

func (Heap[T]) Allocate(n int) []T {
	if n < 0 {
		return nil
	}
	return make([]T, n)
}

func (Heap[T]) Deallocate([]T) {}

// Pool reuses deallocated buffers via sync.Pool. Buffers with insufficient
// capacity fall back to the heap.
type Pool[T any] struct {
	pool sync.Pool
}

func (p *Pool[T]) Allocate(n int) []T {
	if n < 0 {
		return nil
	}
	if buf, ok := p.pool.Get().([]T); ok && cap(buf) >= n {
		return buf[:n]
	}
	return make([]T, n)
}

func (p *Pool[T]) Deallocate(buf []T) {
	if buf == nil {
		return
	}
	clear(buf)
	p.pool.Put(buf[:0])
}

// Make requests n elements from a and encodes a nil answer as fail.
func Make[T, E any](a Allocator[T], n int, fail E) expected.Result[[]T, E] {
	buf := a.Allocate(n)
	if buf == nil {
		return expected.Err[[]T, E](fail)
	}
	return expected.Ok[[]T, E](buf)
}
