// Package status provides a value-less result: a binary success/failure
// signal carrying an error payload only on the failure branch.
//
// Highlights:
// - OK/Fail/FailFrom: construct Status[E]
// - Ok/Err/ErrOr/TakeErr: observe the outcome and payload
// - Convert: move a failure across differing error types
// - AlwaysSuccess: zero-sized marker for operations that cannot fail;
//   its Err accessor is unreachable by construction
// - Outcome: the minimal interface both Status and AlwaysSuccess satisfy
//
// The lifecycle package consumes Status values to report in-place
// construction outcomes.
package status
