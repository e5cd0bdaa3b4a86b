package order

import (
	"fmt"

	"foodorders/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct fulfillment workflow.
//
// State transitions:
//
//	Ordered ──> Preparing ──> InDelivery ──> Delivered
//	   │
//	   └──> Canceled
//
// Forward progression is strictly monotonic; Canceled is reachable only
// from Ordered. Delivered and Canceled are terminal.
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Ordered is the initial status when an order is first placed.
	// Orders in this status are dormant until a processing run picks them up.
	Ordered

	// Preparing indicates the kitchen is working on the order.
	// Orders in this status count toward the concurrent-orders cap.
	Preparing

	// InDelivery indicates the order has left the kitchen and is on its way.
	// Orders in this status count toward the concurrent-orders cap.
	InDelivery

	// Delivered indicates the order reached the customer.
	// This is a terminal state with no further transitions allowed.
	Delivered

	// Canceled indicates the customer voided the order before preparation
	// began. This is a terminal state, reachable only from Ordered.
	Canceled
)

// getStatusStrings returns a map of Status values to their string
// representations, including Unknown for display purposes.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "UNKNOWN",
		Ordered:    "ORDERED",
		Preparing:  "PREPARING",
		InDelivery: "IN_DELIVERY",
		Delivered:  "DELIVERED",
		Canceled:   "CANCELED",
	}
}

// getValidStatusStrings returns a map of only valid Status values,
// used by Validate and StatusFromString.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Ordered:    "ORDERED",
		Preparing:  "PREPARING",
		InDelivery: "IN_DELIVERY",
		Delivered:  "DELIVERED",
		Canceled:   "CANCELED",
	}
}

// InFlightStatuses returns the statuses that count toward the
// concurrent-orders cap: orders being prepared or out for delivery.
func InFlightStatuses() []Status {
	return []Status{Preparing, InDelivery}
}

// StatusFromString parses the persistence/wire representation of a status
// ("ORDERED", "PREPARING", "IN_DELIVERY", "DELIVERED", "CANCELED").
// Returns an error for any other input.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Ordered, Preparing, InDelivery, Delivered, Canceled.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the persistence/wire name of the status, or "UNKNOWN"
// for invalid values. Implements fmt.Stringer and is safe to call on any
// Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// Next returns the status one forward edge ahead of s.
//
// Valid transitions:
//   - Ordered -> Preparing
//   - Preparing -> InDelivery
//   - InDelivery -> Delivered
//
// Returns an error for terminal or invalid statuses. Next is the only way
// to move an order forward, so skipping a stage is impossible.
func (s Status) Next() (Status, error) {
	switch s {
	case Ordered:
		return Preparing, nil
	case Preparing:
		return InDelivery, nil
	case InDelivery:
		return Delivered, nil
	default:
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s has no next status", s.String()),
		)
	}
}

// Cancel transitions the status to Canceled.
//
// Valid transitions:
//   - Ordered -> Canceled
//
// Any other source status is rejected: once preparation has started the
// order can no longer be voided.
func (s Status) Cancel() (Status, error) {
	if s != Ordered {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to cancel", s.String()),
		)
	}
	return Canceled, nil
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Canceled
}

// IsInFlight reports whether the status counts toward the
// concurrent-orders cap.
func (s Status) IsInFlight() bool {
	return s == Preparing || s == InDelivery
}
