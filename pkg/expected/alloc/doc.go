// Package alloc defines the raw memory allocator capability used by
// peripheral utilities. It is never used by the Result core itself.
//
// Highlights:
// - Allocator[T]: Allocate returns nil when it cannot serve and never
//   panics; Deallocate is a no-op on nil
// - Heap[T]: make-backed allocator
// - Pool[T]: sync.Pool-backed allocator reusing returned buffers
// - Make: a Result-returning helper encoding allocation failure
package alloc
