// Package order provides the domain entities and business logic for order
// management in the food-fulfillment system. It implements the Order
// aggregate root with lifecycle management and state transitions.
//
// The package includes:
//   - Order: the aggregate root managing identity, items, flags, and lifecycle
//   - Status: a state machine enforcing valid status transitions
//
// Key business rules:
//   - Orders must have a valid identifier, a valid owning user, and between
//     1 and MaxDishesPerOrder dish entries (duplicates are one unit each)
//   - Status follows a strict forward workflow:
//     Ordered -> Preparing -> InDelivery -> Delivered
//   - Cancellation is allowed only from Ordered
//   - statusUpdatedAt is refreshed on every status change
//   - isProcessing marks exclusive ownership by a single processing run
//
// The package follows Domain-Driven Design principles, providing rich
// domain behavior, encapsulation, and validation to ensure business rules
// are enforced.
package order
