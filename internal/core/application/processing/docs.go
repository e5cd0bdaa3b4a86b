// Package processing implements the order lifecycle engine: the
// components that advance an accepted order through preparation and
// delivery.
//
// # Components
//
// 1. AdmissionPolicy - caps how many orders may be in flight (Preparing or
// InDelivery) at once. The decision is always derived from a fresh store
// count, never a cached counter, so it survives restarts.
//
// 2. Transitioner - owns the per-order state machine. One run drives one
// order through Ordered -> Preparing -> InDelivery -> Delivered, sleeping
// a randomized duration before each edge and re-validating the order
// inside a locked transaction before committing the edge. A run that
// loses a race (cancellation, admission exhausted, concurrent advance)
// aborts silently; it is not a failure.
//
// 3. Dispatcher - launches a Transitioner run for an order id as an
// independent goroutine after a short settling delay, so the run's first
// read observes the durably committed creation. Dispatch never reports
// errors to the caller; background failures are logged and recorded in
// the error sink.
//
// # Concurrency
//
// At most one run may own an order at a time. Ownership is marked with
// the order's isProcessing flag, and every edge commit happens under a
// row lock conditional on the order still being active and in the
// expected source stage, which closes the residual window between
// dispatch and the first commit.
package processing
