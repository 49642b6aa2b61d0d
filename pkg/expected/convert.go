package expected

import (
	"golang.org/x/exp/constraints"

	"github.com/ib-77/expected/pkg/expected/status"
)

// Number constrains the payload types Numeric can convert between.
type Number interface {
	constraints.Integer | constraints.Float
}

// ConvertFrom builds a Result[T, E] from a Result[U, G], translating
// whichever slot is active. Both slots use explicit converter functions and
// are treated symmetrically. The inactive slot's converter is never invoked.
//
// Go has no implicit conversions, so cross-type construction is never
// ambiguous: wrapping a whole Result as a payload requires the explicit
// Ok[Result[U, G], E](r) spelling, and a Result never collapses into a bool
// payload on its own.
func ConvertFrom[T, E, U, G any](r Result[U, G], value func(U) T, errf func(G) E) Result[T, E] {
	if r.hasValue {
		return Ok[T, E](value(r.value))
	}
	return Err[T, E](errf(r.err))
}

// Numeric converts both slots with Go's built-in numeric conversions,
// narrowing or widening each slot independently.
func Numeric[T, E, U, G Number](r Result[U, G]) Result[T, E] {
	return ConvertFrom(r,
		func(v U) T { return T(v) },
		func(e G) E { return E(e) })
}

// ToStatus collapses a Result to its binary outcome, discarding any value.
func ToStatus[T, E any](r Result[T, E]) status.Status[E] {
	if r.hasValue {
		return status.OK[E]()
	}
	return status.Fail(r.err)
}

// FromStatus lifts a Status into a no-value Result.
func FromStatus[E any](s status.Status[E]) Result[Void, E] {
	if s.Ok() {
		return OkVoid[E]()
	}
	return Err[Void, E](s.Err())
}
