// Package lifecycle provides a single-use storage cell and the two entry
// points that fill it: ConstructAt and CopyAt. Both prefer a type's own
// fallible factory (the Creator and Copier interfaces) and fall back to
// direct placement, which cannot fail, when no factory is present.
//
// Highlights:
// - Storage[T]: a cell filled exactly once before first read
// - Creator/Copier: fallible in-place factories, implemented by T itself
// - ConstructAt/CopyAt: fill the cell, reporting a Status
// - Emplace: direct placement for types statically known infallible,
//   reporting AlwaysSuccess
// - CanConstruct/CanCopy: participation predicates under the current
//   strictness build
//
// Filling a cell twice or reading an unfilled cell is a contract violation
// and routes to the trap handler.
package lifecycle
