package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"foodorders/internal/core/domain/model/errorlog"
	"foodorders/internal/core/domain/model/kernel"
	"foodorders/internal/core/domain/model/user"
	"foodorders/internal/core/ports"
	"foodorders/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TrackOrderQueryHandler reads one order's state from the database.
// Enforces the owner-or-admin rule; rejections are recorded in the
// diagnostic log before being returned.
type TrackOrderQueryHandler struct {
	db   *gorm.DB
	sink ports.ErrorSink
}

// NewTrackOrderQueryHandler creates a handler for order tracking queries.
func NewTrackOrderQueryHandler(db *gorm.DB, sink ports.ErrorSink) TrackOrderQueryHandler {
	return TrackOrderQueryHandler{db: db, sink: sink}
}

// Handle executes the tracking query.
func (h TrackOrderQueryHandler) Handle(ctx context.Context, query TrackOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	response, err := h.handle(ctx, query)
	if err != nil {
		orderID := query.OrderID()
		_ = h.sink.Record(ctx, errorlog.OperationTrackOrder, &orderID, err.Error(), query.UserID())
		return OrderResponse{}, err
	}
	return response, nil
}

func (h TrackOrderQueryHandler) handle(ctx context.Context, query TrackOrderQuery) (OrderResponse, error) {
	admin, err := actorIsAdmin(ctx, h.db, query.UserID())
	if err != nil {
		return OrderResponse{}, err
	}

	response, err := h.readOrder(ctx, query.OrderID())
	if err != nil {
		return OrderResponse{}, err
	}

	if !admin && !response.CreatedBy.IsEqual(query.UserID()) {
		return OrderResponse{}, user.ErrAccessDenied
	}

	response.DishIDs, err = h.readItems(ctx, query.OrderID())
	if err != nil {
		return OrderResponse{}, err
	}
	return response, nil
}

func (h TrackOrderQueryHandler) readOrder(ctx context.Context, orderID kernel.UUID) (OrderResponse, error) {
	var (
		id              uuid.UUID
		createdBy       uuid.UUID
		status          string
		active          bool
		isProcessing    bool
		createdAt       time.Time
		scheduledFor    *time.Time
		statusUpdatedAt time.Time
	)

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			created_by,
			status,
			active,
			is_processing,
			created_at,
			scheduled_for,
			status_updated_at
		FROM orders
		WHERE id = ?
	`, orderID.Bytes()).Row()

	err := row.Scan(&id, &createdBy, &status, &active, &isProcessing,
		&createdAt, &scheduledFor, &statusUpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return OrderResponse{}, errs.NewObjectNotFoundError("orderID", orderID)
		}
		return OrderResponse{}, err
	}

	responseID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderResponse{}, err
	}
	responseCreatedBy, err := kernel.UUIDFromBytes(createdBy[:])
	if err != nil {
		return OrderResponse{}, err
	}

	return OrderResponse{
		ID:              responseID,
		CreatedBy:       responseCreatedBy,
		Status:          status,
		Active:          active,
		IsProcessing:    isProcessing,
		CreatedAt:       createdAt,
		ScheduledFor:    scheduledFor,
		StatusUpdatedAt: statusUpdatedAt,
	}, nil
}

func (h TrackOrderQueryHandler) readItems(ctx context.Context, orderID kernel.UUID) ([]kernel.UUID, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT dish_id
		FROM order_items
		WHERE order_id = ?
		ORDER BY position
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	dishIDs := make([]kernel.UUID, 0)
	for rows.Next() {
		var dishID uuid.UUID
		if err = rows.Scan(&dishID); err != nil {
			return nil, err
		}

		id, idErr := kernel.UUIDFromBytes(dishID[:])
		if idErr != nil {
			return nil, idErr
		}
		dishIDs = append(dishIDs, id)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return dishIDs, nil
}
