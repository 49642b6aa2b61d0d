package expected

// ErrorWrapper carries exactly one error value. Its only job is to tag a
// constructor argument as "this is the error, not the value", which matters
// when T and E overlap. It is not meant to be stored long-term.
type ErrorWrapper[E any] struct {
	err E
}

// Wrap tags err as an error constructor argument.
func Wrap[E any](err E) ErrorWrapper[E] {
	return ErrorWrapper[E]{err: err}
}

// WrapFrom builds the wrapped error in place via build.
func WrapFrom[E any](build func() E) ErrorWrapper[E] {
	return ErrorWrapper[E]{err: build()}
}

// Err returns the carried error.
func (w ErrorWrapper[E]) Err() E {
	return w.err
}

// ErrRef returns a mutable reference to the carried error.
func (w *ErrorWrapper[E]) ErrRef() *E {
	return &w.err
}

// Take removes and returns the carried error, leaving the zero value behind.
func (w *ErrorWrapper[E]) Take() E {
	err := w.err
	var zero E
	w.err = zero
	return err
}

// ConvertWrapper translates the carried error to a different type.
func ConvertWrapper[E, G any](w ErrorWrapper[G], f func(G) E) ErrorWrapper[E] {
	return Wrap(f(w.err))
}
