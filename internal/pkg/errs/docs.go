// Package errs provides the standardized error types used across the
// application.
//
// Each error type follows the same pattern:
//   - a sentinel error variable (e.g. ErrObjectNotFound)
//   - a struct carrying the error details
//   - constructors with and without an underlying cause
//   - Error() for formatting and Unwrap() returning the sentinel,
//     so errors.Is classification works everywhere
//
// The types cover the common failure categories of this system:
// missing objects, invalid values, out-of-range values, and missing
// required values. Domain and application code wrap these rather than
// inventing ad hoc error strings.
package errs
