package chain

import (
	"context"

	"github.com/ib-77/expected/pkg/expected"
)

// Chain wraps a Result with a context to enable fluent chaining.
type Chain[T, E any] struct {
	ctx context.Context
	res expected.Result[T, E]
}

// Start creates a new chain from a Result.
func Start[T, E any](ctx context.Context, r expected.Result[T, E]) Chain[T, E] {
	return Chain[T, E]{ctx: ctx, res: r}
}

// FromValue creates a new chain from a value.
func FromValue[T, E any](ctx context.Context, v T) Chain[T, E] {
	return Start(ctx, expected.Ok[T, E](v))
}

// Result returns the underlying Result.
func (c Chain[T, E]) Result() expected.Result[T, E] {
	return c.res
}

// Context returns the chain's context.
func (c Chain[T, E]) Context() context.Context {
	return c.ctx
}

// Then composes a function that already returns a Result.
func (c Chain[T, E]) Then(onValue func(ctx context.Context, v T) expected.Result[T, E]) Chain[T, E] {
	if !c.res.HasValue() {
		return c
	}
	return Chain[T, E]{ctx: c.ctx, res: onValue(c.ctx, c.res.Value())}
}

// Map transforms the value branch.
func (c Chain[T, E]) Map(onValue func(ctx context.Context, v T) T) Chain[T, E] {
	if !c.res.HasValue() {
		return c
	}
	return Chain[T, E]{ctx: c.ctx, res: expected.Ok[T, E](onValue(c.ctx, c.res.Value()))}
}

// MapError transforms the error branch.
func (c Chain[T, E]) MapError(onError func(ctx context.Context, err E) E) Chain[T, E] {
	if c.res.HasValue() {
		return c
	}
	return Chain[T, E]{ctx: c.ctx, res: expected.Err[T, E](onError(c.ctx, c.res.Err()))}
}

// Ensure triggers side effects for the active branch without changing the
// result.
func (c Chain[T, E]) Ensure(onValue func(context.Context, T), onError func(context.Context, E)) Chain[T, E] {
	if c.res.HasValue() {
		if onValue != nil {
			onValue(c.ctx, c.res.Value())
		}
	} else if onError != nil {
		onError(c.ctx, c.res.Err())
	}
	return c
}

// While repeats onValue while cond holds on the value branch.
func (c Chain[T, E]) While(onValue func(ctx context.Context, v T) expected.Result[T, E],
	cond func(ctx context.Context, v T) bool) Chain[T, E] {

	for c.res.HasValue() && cond(c.ctx, c.res.Value()) {
		c = c.Then(onValue)
	}
	return c
}

// Or returns the first value-bearing chain among c and the alternatives, or
// the first error-bearing one when none succeeds.
func (c Chain[T, E]) Or(alternatives ...Chain[T, E]) Chain[T, E] {
	if c.res.HasValue() {
		return c
	}
	for _, alt := range alternatives {
		if alt.res.HasValue() {
			return alt
		}
	}
	return c
}

// And returns the first error-bearing chain among c and the required ones,
// or the last chain when all succeed.
func (c Chain[T, E]) And(required ...Chain[T, E]) Chain[T, E] {
	if !c.res.HasValue() {
		return c
	}
	for _, req := range required {
		if !req.res.HasValue() {
			return req
		}
	}
	if len(required) == 0 {
		return c
	}
	return required[len(required)-1]
}

// Switch moves the chain to a new value type.
func Switch[T, E, U any](c Chain[T, E], onValue func(ctx context.Context, v T) expected.Result[U, E]) Chain[U, E] {
	return Chain[U, E]{ctx: c.ctx, res: expected.AndThen(c.res, func(v T) expected.Result[U, E] {
		return onValue(c.ctx, v)
	})}
}

// Finally collapses the chain to a final value via branch handlers.
func Finally[T, E, Out any](c Chain[T, E],
	onValue func(ctx context.Context, v T) Out,
	onError func(ctx context.Context, err E) Out) Out {

	if c.res.HasValue() {
		return onValue(c.ctx, c.res.Value())
	}
	return onError(c.ctx, c.res.Err())
}

// Try composes a function that returns (T, error), converting a non-nil
// error to the error branch.
func Try[T any](c Chain[T, error], try func(ctx context.Context, v T) (T, error)) Chain[T, error] {
	return c.Then(func(ctx context.Context, v T) expected.Result[T, error] {
		return expected.Of(try(ctx, v))
	})
}
