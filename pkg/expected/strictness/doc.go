// Package strictness holds the build-wide switch deciding what "type T
// supports operation X" means for fallible factories. In the default relaxed
// build, supporting an operation means the operation exists. Under the
// `strict` build tag, it means the operation is guaranteed never to fail:
// a type whose factory carries failure potential must assert the guarantee
// by implementing Guaranteed, or the lifecycle layer refuses the operation.
//
// The switch is resolved at compile time via build tags and is never mutable
// at runtime.
package strictness
