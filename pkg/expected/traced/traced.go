package traced

import (
	"time"

	"github.com/google/uuid"

	"github.com/ib-77/expected/pkg/expected"
)

// Provider exposes a traced result's payload and provenance.
type Provider[T, E any] interface {
	// Result returns the wrapped Result.
	Result() expected.Result[T, E]
	// ID identifies the origin of this result line.
	ID() uuid.UUID
	// CreatedAt is the origin's creation time (UTC).
	CreatedAt() time.Time
}

// Traced is a Result stamped with provenance.
type Traced[T, E any] struct {
	id        uuid.UUID
	createdAt time.Time
	res       expected.Result[T, E]
}

// New stamps r with a fresh id and creation time.
func New[T, E any](r expected.Result[T, E]) Traced[T, E] {
	return Traced[T, E]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		res:       r,
	}
}

// FromValue stamps a value-bearing result.
func FromValue[T, E any](v T) Traced[T, E] {
	return New(expected.Ok[T, E](v))
}

// FromError stamps an error-bearing result.
func FromError[T, E any](err E) Traced[T, E] {
	return New(expected.Err[T, E](err))
}

// Derive wraps r with the provenance of from, tying a transformed result
// back to its origin.
func Derive[In, Out, E any](from Traced[In, E], r expected.Result[Out, E]) Traced[Out, E] {
	return Traced[Out, E]{
		id:        from.id,
		createdAt: from.createdAt,
		res:       r,
	}
}

// AndThen chains f on the value branch, preserving provenance.
func AndThen[In, Out, E any](t Traced[In, E], f func(In) expected.Result[Out, E]) Traced[Out, E] {
	return Derive(t, expected.AndThen(t.res, f))
}

// Transform maps the value branch through f, preserving provenance.
func Transform[In, Out, E any](t Traced[In, E], f func(In) Out) Traced[Out, E] {
	return Derive(t, expected.Transform(t.res, f))
}

// Result returns the wrapped Result.
func (t Traced[T, E]) Result() expected.Result[T, E] {
	return t.res
}

// ID identifies the origin of this result line.
func (t Traced[T, E]) ID() uuid.UUID {
	return t.id
}

// CreatedAt is the origin's creation time (UTC).
func (t Traced[T, E]) CreatedAt() time.Time {
	return t.createdAt
}

// Age is the time elapsed since the origin was created.
func (t Traced[T, E]) Age() time.Duration {
	return time.Since(t.createdAt)
}
