package expected

import (
	"github.com/ib-77/expected/pkg/expected/trap"
)

// Void is the payload of Results that produce no data on success.
type Void struct{}

// Result holds exactly one of: a value of type T, or an error of type E.
// The inactive slot holds its zero value. The zero Result is value-bearing
// with a zero value; use the constructors for anything else.
type Result[T, E any] struct {
	value    T
	err      E
	hasValue bool
}

// Ok builds a value-bearing Result from v.
func Ok[T, E any](v T) Result[T, E] {
	return Result[T, E]{value: v, hasValue: true}
}

// Err builds an error-bearing Result from err.
func Err[T, E any](err E) Result[T, E] {
	return Result[T, E]{err: err}
}

// FromWrapped builds an error-bearing Result from a wrapped error. The
// wrapper always selects the error branch, even when T and E are the same
// type.
func FromWrapped[T, E any](w ErrorWrapper[E]) Result[T, E] {
	return Err[T, E](w.Err())
}

// OkFrom builds the value in place via build, avoiding an intermediate copy
// at the call site.
func OkFrom[T, E any](build func() T) Result[T, E] {
	return Ok[T, E](build())
}

// ErrFrom builds the error in place via build.
func ErrFrom[T, E any](build func() E) Result[T, E] {
	return Err[T, E](build())
}

// OkVoid builds a value-bearing Result that carries no data.
func OkVoid[E any]() Result[Void, E] {
	return Ok[Void, E](Void{})
}

// Of adapts Go's (value, error) convention: a nil error yields a
// value-bearing Result.
func Of[T any](v T, err error) Result[T, error] {
	if err != nil {
		return Err[T, error](err)
	}
	return Ok[T, error](v)
}

// HasValue reports whether the Result is value-bearing.
func (r Result[T, E]) HasValue() bool {
	return r.hasValue
}

// IsOk reports whether the Result is value-bearing.
func (r Result[T, E]) IsOk() bool {
	return r.hasValue
}

// Value returns the contained value. Calling it on an error-bearing Result
// is a contract violation.
func (r Result[T, E]) Value() T {
	return r.ValueWith(nil)
}

// ValueWith is Value with a per-call trap handler.
func (r Result[T, E]) ValueWith(h trap.Handler) T {
	if !r.hasValue {
		trap.Fire(h, "Result.Value called on an error-bearing result")
	}
	return r.value
}

// ValueRef returns a mutable reference to the contained value. Calling it on
// an error-bearing Result is a contract violation.
func (r *Result[T, E]) ValueRef() *T {
	if !r.hasValue {
		trap.Fire(nil, "Result.ValueRef called on an error-bearing result")
	}
	return &r.value
}

// TakeValue removes and returns the contained value, leaving the zero value
// behind. The Result still reports HasValue afterwards; the payload is gone.
func (r *Result[T, E]) TakeValue() T {
	if !r.hasValue {
		trap.Fire(nil, "Result.TakeValue called on an error-bearing result")
	}
	v := r.value
	var zero T
	r.value = zero
	return v
}

// Err returns the contained error. Calling it on a value-bearing Result is a
// contract violation. The name avoids the error-interface Error() signature,
// which would make fmt probe the wrong branch on string-errored Results.
func (r Result[T, E]) Err() E {
	return r.ErrWith(nil)
}

// ErrWith is Err with a per-call trap handler.
func (r Result[T, E]) ErrWith(h trap.Handler) E {
	if r.hasValue {
		trap.Fire(h, "Result.Err called on a value-bearing result")
	}
	return r.err
}

// ErrRef returns a mutable reference to the contained error. Calling it on a
// value-bearing Result is a contract violation.
func (r *Result[T, E]) ErrRef() *E {
	if r.hasValue {
		trap.Fire(nil, "Result.ErrRef called on a value-bearing result")
	}
	return &r.err
}

// TakeErr removes and returns the contained error, leaving the zero value
// behind.
func (r *Result[T, E]) TakeErr() E {
	if r.hasValue {
		trap.Fire(nil, "Result.TakeErr called on a value-bearing result")
	}
	err := r.err
	var zero E
	r.err = zero
	return err
}

// ValueOr returns the contained value, or def on the error branch. Total.
func (r Result[T, E]) ValueOr(def T) T {
	if r.hasValue {
		return r.value
	}
	return def
}

// ErrOr returns the contained error, or def on the value branch. Total.
func (r Result[T, E]) ErrOr(def E) E {
	if r.hasValue {
		return def
	}
	return r.err
}
