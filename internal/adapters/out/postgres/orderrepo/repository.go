package orderrepo

import (
	"context"
	"errors"
	"time"

	"foodorders/internal/core/domain/model/kernel"
	"foodorders/internal/core/domain/model/order"
	"foodorders/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository. The tracker
// may be nil for read-mostly uses outside a unit of work.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order and its items to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.track(aggregate)
	return nil
}

// Update overwrites the order's lifecycle columns. Items are immutable
// after creation and are never touched here.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"status":            dto.Status,
			"active":            dto.Active,
			"is_processing":     dto.IsProcessing,
			"scheduled_for":     dto.ScheduledFor,
			"status_updated_at": dto.StatusUpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("orderID", aggregate.ID())
	}

	r.track(aggregate)
	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	return r.get(ctx, r.db, id)
}

// GetForUpdate retrieves an order and locks its row for the duration of
// the enclosing transaction, so a re-validation check and the following
// Update commit atomically.
func (r *GormOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	return r.get(ctx, r.db.Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *GormOrderRepository) get(ctx context.Context, db *gorm.DB, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := db.WithContext(ctx).Preload("Items").First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderID", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// CountActiveInStatuses returns how many active orders currently hold one
// of the given statuses. Admission control derives its decision from this
// read on every call.
func (r *GormOrderRepository) CountActiveInStatuses(ctx context.Context, statuses []order.Status) (int64, error) {
	names := make([]string, 0, len(statuses))
	for _, status := range statuses {
		names = append(names, status.String())
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("active = ? AND status IN ?", true, names).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

// admissionLockID keys the advisory lock that serializes admission
// decisions across connections.
const admissionLockID int64 = 104729

// AcquireAdmissionLock takes the transaction-scoped advisory lock behind
// the admission decision. The enclosing transaction must already be open;
// Postgres releases the lock when that transaction ends, so a count
// performed afterwards cannot race another admission's commit.
func (r *GormOrderRepository) AcquireAdmissionLock(ctx context.Context) error {
	return r.db.WithContext(ctx).Exec("SELECT pg_advisory_xact_lock(?)", admissionLockID).Error
}

// FindDueForRelease retrieves dormant orders ready to start processing:
// active, still Ordered, unclaimed, and either unscheduled or scheduled
// within the immediate dispatch window from now. Oldest first, so queued
// orders are released in placement order.
func (r *GormOrderRepository) FindDueForRelease(ctx context.Context, now time.Time) ([]*order.Order, error) {
	deadline := now.Add(order.ImmediateDispatchWindow)

	var dtos []OrderDTO
	err := r.db.WithContext(ctx).Preload("Items").
		Where("active = ? AND status = ? AND is_processing = ?", true, order.Ordered.String(), false).
		Where("scheduled_for IS NULL OR scheduled_for < ?", deadline).
		Order("created_at").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, dtoErr := toDomain(dto)
		if dtoErr != nil {
			return nil, dtoErr
		}
		orders = append(orders, aggregate)
	}
	return orders, nil
}

func (r *GormOrderRepository) track(aggregate *order.Order) {
	if r.tracker != nil {
		r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	}
}
