package lifecycle

import (
	"github.com/ib-77/expected/pkg/expected/status"
	"github.com/ib-77/expected/pkg/expected/strictness"
	"github.com/ib-77/expected/pkg/expected/trap"
)

// Creator is implemented by types with a custom fallible construction
// factory. The receiver is the prototype value carrying the construction
// arguments; CreateAt fills the cell or reports failure without filling it.
type Creator[T, E any] interface {
	CreateAt(cell *Storage[T]) status.Status[E]
}

// Copier is implemented by types with a custom fallible copy factory.
type Copier[T, E any] interface {
	CopyAt(cell *Storage[T], src T) status.Status[E]
}

// ConstructAt fills the cell from v, preferring v's own fallible factory and
// forwarding its Status. Without a factory it places v directly, which
// cannot fail. Under a strict build a fallible factory must carry the
// strictness.Guaranteed marker; using one that does not is a contract
// violation.
func ConstructAt[T, E any](cell *Storage[T], v T) status.Status[E] {
	if c, ok := any(v).(Creator[T, E]); ok {
		if !strictness.Admits(v) {
			trap.Fire(nil, "lifecycle.ConstructAt: factory not admitted under strict build")
		}
		return c.CreateAt(cell)
	}
	cell.Fill(v)
	return status.OK[E]()
}

// CopyAt fills the cell with a copy of v, preferring v's own fallible copy
// factory and forwarding its Status. Without a factory it copies directly.
func CopyAt[T, E any](cell *Storage[T], v T) status.Status[E] {
	if c, ok := any(v).(Copier[T, E]); ok {
		if !strictness.Admits(v) {
			trap.Fire(nil, "lifecycle.CopyAt: factory not admitted under strict build")
		}
		return c.CopyAt(cell, v)
	}
	cell.Fill(v)
	return status.OK[E]()
}

// Emplace places v directly, bypassing any factory, for types statically
// known to construct infallibly.
func Emplace[T any](cell *Storage[T], v T) status.AlwaysSuccess {
	cell.Fill(v)
	return status.AlwaysSuccess{}
}

// CanConstruct reports whether ConstructAt may be used with v's type under
// the current strictness build.
func CanConstruct[T, E any](v T) bool {
	if _, ok := any(v).(Creator[T, E]); ok {
		return strictness.Admits(v)
	}
	return true
}

// CanCopy reports whether CopyAt may be used with v's type under the current
// strictness build.
func CanCopy[T, E any](v T) bool {
	if _, ok := any(v).(Copier[T, E]); ok {
		return strictness.Admits(v)
	}
	return true
}
