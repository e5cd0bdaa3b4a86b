// Package kernel provides core domain primitives used throughout the
// order-fulfillment domain model.
//
// The package currently contains a single primitive:
//   - UUID: a value object for unique identifiers with validation and
//     comparison capabilities, wrapping github.com/google/uuid
//
// Primitives in this package are immutable and thread-safe, and enforce
// their invariants at construction so that domain objects built on top of
// them are always in a valid state.
package kernel
