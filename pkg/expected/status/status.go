package status

import (
	"github.com/ib-77/expected/pkg/expected/trap"
)

// Outcome is satisfied by any status-like type.
type Outcome interface {
	// Ok reports whether the operation succeeded.
	Ok() bool
}

// Status is a binary result: success, or failure with an error of type E.
// The zero value is success.
type Status[E any] struct {
	err      E
	hasError bool
}

// OK returns a successful Status.
func OK[E any]() Status[E] {
	return Status[E]{}
}

// Fail returns a failed Status carrying err.
func Fail[E any](err E) Status[E] {
	return Status[E]{err: err, hasError: true}
}

// FailFrom returns a failed Status whose error is built in place by build.
func FailFrom[E any](build func() E) Status[E] {
	return Status[E]{err: build(), hasError: true}
}

// Ok reports whether the Status represents success.
func (s Status[E]) Ok() bool {
	return !s.hasError
}

// Err returns the failure payload. Calling it on a successful Status is a
// contract violation. The name avoids the error-interface Error() signature,
// which would make fmt probe the wrong branch on string-errored Statuses.
func (s Status[E]) Err() E {
	return s.ErrWith(nil)
}

// ErrWith is Err with a per-call trap handler.
func (s Status[E]) ErrWith(h trap.Handler) E {
	if s.Ok() {
		trap.Fire(h, "status.Err called on a successful status")
	}
	return s.err
}

// ErrRef returns a mutable reference to the failure payload. Calling it on a
// successful Status is a contract violation.
func (s *Status[E]) ErrRef() *E {
	if s.Ok() {
		trap.Fire(nil, "status.ErrRef called on a successful status")
	}
	return &s.err
}

// TakeErr removes and returns the failure payload, leaving the zero value
// behind. The Status still reports failure afterwards.
func (s *Status[E]) TakeErr() E {
	if s.Ok() {
		trap.Fire(nil, "status.TakeErr called on a successful status")
	}
	err := s.err
	var zero E
	s.err = zero
	return err
}

// ErrOr returns the failure payload, or def when the Status is successful.
func (s Status[E]) ErrOr(def E) E {
	if s.Ok() {
		return def
	}
	return s.err
}

// Convert moves a Status across error types, translating the payload with f.
// Success converts to success without invoking f.
func Convert[E, G any](s Status[G], f func(G) E) Status[E] {
	if s.Ok() {
		return OK[E]()
	}
	return Fail(f(s.err))
}

// AlwaysSuccess is the zero-sized status of operations statically known never
// to fail.
type AlwaysSuccess struct{}

// Ok always reports true.
func (AlwaysSuccess) Ok() bool {
	return true
}

// Err is unreachable: an AlwaysSuccess has no failure branch. Calling it is a
// logic defect and routes to the trap handler.
func (AlwaysSuccess) Err() {
	trap.Unreachable("AlwaysSuccess.Err")
}
