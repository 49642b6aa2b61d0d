package lifecycle

import (
	"github.com/ib-77/expected/pkg/expected/trap"
)

// Storage is an initially empty cell holding at most one T. It must be
// filled exactly once, through ConstructAt, CopyAt, Emplace or Fill, before
// any read. A Storage must not be copied after first use.
type Storage[T any] struct {
	value  T
	filled bool
}

// Filled reports whether the cell has been constructed.
func (s *Storage[T]) Filled() bool {
	return s.filled
}

// Fill places v into the cell. Filling an already filled cell is a contract
// violation.
func (s *Storage[T]) Fill(v T) {
	if s.filled {
		trap.Fire(nil, "lifecycle.Storage filled twice")
	}
	s.value = v
	s.filled = true
}

// Ref returns a mutable reference to the constructed value. Reading an
// unfilled cell is a contract violation.
func (s *Storage[T]) Ref() *T {
	if !s.filled {
		trap.Fire(nil, "lifecycle.Storage read before construction")
	}
	return &s.value
}

// Get returns a copy of the constructed value. Reading an unfilled cell is a
// contract violation.
func (s *Storage[T]) Get() T {
	return *s.Ref()
}

// Take removes the constructed value, leaving the cell empty and reusable.
func (s *Storage[T]) Take() T {
	v := *s.Ref()
	var zero T
	s.value = zero
	s.filled = false
	return v
}
