// Package chain provides a fluent, context-carrying wrapper around
// expected.Result[T, E] for building synchronous pipelines without branching
// at each step.
//
// Key operations:
// - Start/FromValue: begin a chain from a Result or a value
// - Then: compose functions that already return a Result
// - Map/MapError: transform one branch in place
// - Ensure: trigger side effects without changing the result
// - Or/And: combine alternative and required chains
// - While: repeat a step while a condition holds on the value branch
// - Switch/Finally/Try (free functions): change the value type, collapse to
//   a final value, or adapt (T, error) functions when E is error
//
// Every operation short-circuits: the error branch flows through untouched.
package chain
