// Package expected provides Result[T, E], a sum type holding exactly a value
// of type T or an error of type E, for propagating fallible outcomes through
// code that does not use panic-style control flow. Failure is fully encoded
// in the return type; the only other exit is the trap handler, reserved for
// contract violations.
//
// Highlights:
// - Ok/Err/FromWrapped/OkFrom/ErrFrom: construct Result[T, E]
// - Of: adapt a standard (T, error) pair
// - HasValue/Value/Err/ValueOr/ErrOr: observe the active branch
// - ValueRef/TakeValue (and error duals): borrow or consume the payload
// - AndThen/OrElse/Transform/TransformError: short-circuiting combinators
// - ConvertFrom/Numeric: converting construction across compatible type pairs
// - ToStatus/FromStatus: bridge to the value-less status package
//
// Cross-type combinators are free generic functions; same-type forms exist as
// methods for fluent use. Reading the inactive branch (Value on an
// error-bearing Result, Err on a value-bearing one) is a programmer defect
// and routes to the trap package rather than returning a sentinel.
package expected
