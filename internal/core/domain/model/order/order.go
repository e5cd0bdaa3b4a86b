package order

import (
	"errors"
	"fmt"
	"time"

	"foodorders/internal/core/domain/model/kernel"
	"foodorders/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder. This ensures all orders are
	// properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

const (
	// MaxDishesPerOrder bounds how many dish entries a single order may
	// carry. Each entry is one unit ordered, so duplicates count.
	MaxDishesPerOrder = 50

	// ImmediateDispatchWindow is how far into the future a scheduled time
	// may lie while still being treated as "due now" at placement.
	ImmediateDispatchWindow = time.Minute
)

// Order represents a food order in the system. It is the aggregate root
// that manages the order lifecycle from placement through preparation and
// delivery to completion or cancellation.
//
// Order maintains these invariants:
//   - Must have a valid unique identifier and a valid owning user
//   - Items must be non-empty and at most MaxDishesPerOrder entries
//   - Status transitions follow the state machine in Status
//   - statusUpdatedAt is refreshed on every status change
//   - Can only be created through NewOrder or RestoreOrder
//
// The isProcessing flag marks that a processing run currently owns the
// order's progression; at most one run may hold it at any instant. The
// active flag distinguishes real orders from soft-deleted ones: canceled
// orders stay active (they are terminal, not voided).
//
// The struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// createdBy references the user who placed the order
	createdBy kernel.UUID

	// items holds the ordered dish references; duplicates are one unit each.
	// Read-only after creation.
	items []kernel.UUID

	// status is the current state in the order lifecycle
	status Status

	// active is false only for soft-deleted orders
	active bool

	// isProcessing is true exactly while a processing run owns this order
	isProcessing bool

	// createdAt is when the order was placed
	createdAt time.Time

	// scheduledFor is the requested start time; nil means start now
	scheduledFor *time.Time

	// statusUpdatedAt is refreshed on every status change
	statusUpdatedAt time.Time

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order with validation. This is the only way to
// place a valid order, ensuring all business invariants hold from the start.
//
// Parameters:
//   - id: unique identifier for the order (must be a valid UUID)
//   - createdBy: the owning user's identifier (must be a valid UUID)
//   - items: dish references, at least one and at most MaxDishesPerOrder
//   - scheduledFor: optional requested start time; nil means immediate
//
// The order is created in Ordered status, active, not processing, with
// createdAt and statusUpdatedAt set to the current time.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	o, err := order.NewOrder(orderID, userID, dishIDs, nil)
//	if err != nil {
//	    // handle validation error
//	}
func NewOrder(id kernel.UUID, createdBy kernel.UUID, items []kernel.UUID, scheduledFor *time.Time) (*Order, error) {
	now := time.Now()
	o := &Order{
		status:          Ordered,
		active:          true,
		createdAt:       now,
		statusUpdatedAt: now,
		isConstructed:   true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCreatedBy(createdBy),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	if scheduledFor != nil {
		t := *scheduledFor
		o.scheduledFor = &t
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persisted state. Unlike NewOrder
// it accepts any valid status and the stored flags and timestamps, but it
// still enforces the structural invariants (valid ids, non-empty items).
//
// This is intended for repository adapters only; application code should
// never fabricate orders with it.
func RestoreOrder(
	id kernel.UUID,
	createdBy kernel.UUID,
	items []kernel.UUID,
	status Status,
	active bool,
	isProcessing bool,
	createdAt time.Time,
	scheduledFor *time.Time,
	statusUpdatedAt time.Time,
) (*Order, error) {
	o := &Order{
		active:          active,
		isProcessing:    isProcessing,
		createdAt:       createdAt,
		statusUpdatedAt: statusUpdatedAt,
		isConstructed:   true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCreatedBy(createdBy),
		o.setItems(items),
		o.setStatus(status),
	); err != nil {
		return nil, err
	}

	if scheduledFor != nil {
		t := *scheduledFor
		o.scheduledFor = &t
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
// Returns ErrOrderIsNotConstructed otherwise. Repository adapters call
// this when persisting to reject hand-built structs.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CreatedBy returns the identifier of the user who placed the order.
func (o *Order) CreatedBy() kernel.UUID {
	return o.createdBy
}

// Items returns a copy of the ordered dish references.
// Duplicates are intentional: each entry is one unit ordered.
func (o *Order) Items() []kernel.UUID {
	items := make([]kernel.UUID, len(o.items))
	copy(items, o.items)
	return items
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// IsActive reports whether the order is a live (not soft-deleted) order.
func (o *Order) IsActive() bool {
	return o.active
}

// IsProcessing reports whether a processing run currently owns this order.
func (o *Order) IsProcessing() bool {
	return o.isProcessing
}

// CreatedAt returns when the order was placed.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// ScheduledFor returns the requested start time, or nil for immediate
// orders.
func (o *Order) ScheduledFor() *time.Time {
	if o.scheduledFor == nil {
		return nil
	}
	t := *o.scheduledFor
	return &t
}

// StatusUpdatedAt returns when the status last changed.
func (o *Order) StatusUpdatedAt() time.Time {
	return o.statusUpdatedAt
}

// IsDueAt reports whether the order should start processing at the given
// time: either no schedule was requested, or the scheduled time falls
// before now plus ImmediateDispatchWindow.
func (o *Order) IsDueAt(now time.Time) bool {
	if o.scheduledFor == nil {
		return true
	}
	return o.scheduledFor.Before(now.Add(ImmediateDispatchWindow))
}

// Advance moves the order one forward edge: Ordered -> Preparing ->
// InDelivery -> Delivered, refreshing statusUpdatedAt.
//
// The caller is responsible for re-reading the order and verifying it is
// still active and in the expected source stage before committing the
// advanced state; Advance itself only enforces that a forward edge exists.
//
// Returns an error if the order is inactive or the status is terminal.
func (o *Order) Advance() error {
	if !o.active {
		return errs.NewValueIsInvalidErrorWithCause(
			"order",
			fmt.Errorf("order %s is not active", o.id),
		)
	}

	next, err := o.status.Next()
	if err != nil {
		return err
	}

	o.status = next
	o.statusUpdatedAt = time.Now()
	return nil
}

// Cancel voids the order. Allowed only while the order is still in
// Ordered status; once preparation has started cancellation is rejected.
// Refreshes statusUpdatedAt on success.
func (o *Order) Cancel() error {
	next, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = next
	o.statusUpdatedAt = time.Now()
	return nil
}

// SetProcessing marks or clears ownership of the order by a processing
// run. The caller must guarantee at most one live run per order.
func (o *Order) SetProcessing(processing bool) {
	o.isProcessing = processing
}

// setID validates and sets the order's unique identifier.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setCreatedBy validates and sets the owning user reference.
func (o *Order) setCreatedBy(createdBy kernel.UUID) error {
	if err := createdBy.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("createdBy", err)
	}
	o.createdBy = createdBy
	return nil
}

// setItems validates and sets the dish references.
// Items must be non-empty, at most MaxDishesPerOrder, and individually valid.
func (o *Order) setItems(items []kernel.UUID) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	if len(items) > MaxDishesPerOrder {
		return errs.NewValueIsOutOfRangeError("items", len(items), 1, MaxDishesPerOrder)
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("items", err)
		}
	}

	o.items = make([]kernel.UUID, len(items))
	copy(o.items, items)
	return nil
}

// setStatus validates and sets the status during restoration.
func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
