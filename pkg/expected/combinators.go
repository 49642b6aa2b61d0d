package expected

// AndThen chains f on the value branch. On the error branch it returns a
// same-shaped Result carrying the existing error unchanged, without invoking
// f.
func AndThen[T, E, U any](r Result[T, E], f func(T) Result[U, E]) Result[U, E] {
	if r.hasValue {
		return f(r.value)
	}
	return Err[U, E](r.err)
}

// OrElse chains f on the error branch. On the value branch it returns a
// Result wrapping the existing value unchanged, without invoking f.
func OrElse[T, E, F any](r Result[T, E], f func(E) Result[T, F]) Result[T, F] {
	if r.hasValue {
		return Ok[T, F](r.value)
	}
	return f(r.err)
}

// Transform maps the value branch through f, keeping the error type. The
// error branch passes through unchanged without invoking f.
func Transform[T, E, U any](r Result[T, E], f func(T) U) Result[U, E] {
	if r.hasValue {
		return Ok[U, E](f(r.value))
	}
	return Err[U, E](r.err)
}

// TransformError maps the error branch through f, keeping the value type.
// The value branch passes through unchanged without invoking f.
func TransformError[T, E, F any](r Result[T, E], f func(E) F) Result[T, F] {
	if r.hasValue {
		return Ok[T, F](r.value)
	}
	return Err[T, F](f(r.err))
}

// Drop discards the value, producing a no-value Result; the transform
// counterpart for functions that produce no output. The error branch passes
// through unchanged.
func Drop[T, E any](r Result[T, E]) Result[Void, E] {
	if r.hasValue {
		return OkVoid[E]()
	}
	return Err[Void, E](r.err)
}

// Inspect runs f on the value branch for its side effect and returns r
// unchanged.
func Inspect[T, E any](r Result[T, E], f func(T)) Result[T, E] {
	if r.hasValue {
		f(r.value)
	}
	return r
}

// InspectError runs f on the error branch for its side effect and returns r
// unchanged.
func InspectError[T, E any](r Result[T, E], f func(E)) Result[T, E] {
	if !r.hasValue {
		f(r.err)
	}
	return r
}

// AndThen is the same-type method form of the AndThen function.
func (r Result[T, E]) AndThen(f func(T) Result[T, E]) Result[T, E] {
	return AndThen(r, f)
}

// OrElse is the same-type method form of the OrElse function.
func (r Result[T, E]) OrElse(f func(E) Result[T, E]) Result[T, E] {
	return OrElse(r, f)
}

// Transform is the same-type method form of the Transform function.
func (r Result[T, E]) Transform(f func(T) T) Result[T, E] {
	return Transform(r, f)
}

// TransformError is the same-type method form of the TransformError function.
func (r Result[T, E]) TransformError(f func(E) E) Result[T, E] {
	return TransformError(r, f)
}
