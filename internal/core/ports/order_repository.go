package ports

import (
	"context"
	"time"

	"foodorders/internal/core/domain/model/kernel"
	"foodorders/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// It provides the point lookups, conditional overwrites, and filtered
// scans the lifecycle engine needs.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update overwrites an existing order aggregate, keyed by id.
	// Returns an error if the order does not exist.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate retrieves an order and locks its row for the duration
	// of the enclosing transaction. Used by processing runs so that the
	// still-active, still-in-source-stage check and the subsequent write
	// commit atomically.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// CountActiveInStatuses returns how many active orders currently hold
	// one of the given statuses. Admission control derives its decision
	// from this read; the count is never cached.
	CountActiveInStatuses(ctx context.Context, statuses []order.Status) (int64, error)

	// AcquireAdmissionLock takes the store-wide lock that serializes
	// admission decisions. Must be called inside an open transaction; the
	// lock is held until that transaction commits or rolls back, so a
	// count performed after acquiring it cannot race another admission.
	AcquireAdmissionLock(ctx context.Context) error

	// FindDueForRelease retrieves dormant orders ready to start processing:
	// active, in Ordered status, not owned by a processing run, and either
	// unscheduled or scheduled at or before the given time.
	FindDueForRelease(ctx context.Context, now time.Time) ([]*order.Order, error)
}
