// Package kernel provides core domain primitives shared by every aggregate
// in the shop admin domain model.
//
// The package currently contains a single primitive:
//   - UUID: A value object for unique identifiers with validation and comparison capabilities
//
// Kernel primitives enforce domain invariants at construction time, are
// immutable, and are safe for concurrent use.
package kernel
