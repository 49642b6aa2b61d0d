// Package trap defines the policy invoked on contract violations, such as
// reading the value of an error-bearing Result or the error of a value-bearing
// one. These are programmer defects, not representable failures, so a handler
// never returns normally: it halts the process, panics, or otherwise diverts
// control.
//
// Highlights:
// - Handler: the pluggable policy type
// - Default: process-wide policy, Halt unless replaced by embedding code
// - Halt: write the diagnostic to stderr and exit
// - Panicking: panic with the diagnostic; useful in tests
// - Unreachable: mark code paths that are impossible by construction
//
// Accessors on Result and Status also take a Handler directly (ValueWith,
// ErrWith) for per-use-site policy without touching Default.
package trap
