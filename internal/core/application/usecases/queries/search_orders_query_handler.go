package queries

import (
	"context"
	"time"

	"foodorders/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SearchOrdersQueryHandler retrieves orders matching the query's filters.
// Administrators may search across all users; everyone else is restricted
// to their own orders.
type SearchOrdersQueryHandler struct {
	db *gorm.DB
}

// NewSearchOrdersQueryHandler creates a handler for order search queries.
func NewSearchOrdersQueryHandler(db *gorm.DB) SearchOrdersQueryHandler {
	return SearchOrdersQueryHandler{db: db}
}

// Handle executes the search. Results are ordered newest first.
func (h SearchOrdersQueryHandler) Handle(ctx context.Context, query SearchOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	admin, err := actorIsAdmin(ctx, h.db, query.ActorID())
	if err != nil {
		return nil, err
	}

	sqlQuery := `
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
		WHERE active = true
	`
	args := make([]any, 0, 4)

	switch {
	case !admin:
		sqlQuery += " AND created_by = ?"
		args = append(args, query.ActorID().Bytes())
	case query.UserFilter() != nil:
		sqlQuery += " AND created_by = ?"
		args = append(args, query.UserFilter().Bytes())
	}

	if statuses := query.Statuses(); len(statuses) > 0 {
		names := make([]string, 0, len(statuses))
		for _, status := range statuses {
			names = append(names, status.String())
		}
		sqlQuery += " AND status IN ?"
		args = append(args, names)
	}
	if from := query.DateFrom(); from != nil {
		sqlQuery += " AND created_at >= ?"
		args = append(args, *from)
	}
	if to := query.DateTo(); to != nil {
		sqlQuery += " AND created_at <= ?"
		args = append(args, *to)
	}

	sqlQuery += " ORDER BY created_at DESC"

	rows, err := h.db.WithContext(ctx).Raw(sqlQuery, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	responses := make([]OrderResponse, 0)
	for rows.Next() {
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

		err = rows.Scan(&id, &createdBy, &status, &active, &isProcessing,
			&createdAt, &scheduledFor, &statusUpdatedAt)
		if err != nil {
			return nil, err
		}

		responseID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		responseCreatedBy, idErr := kernel.UUIDFromBytes(createdBy[:])
		if idErr != nil {
			return nil, idErr
		}

		responses = append(responses, OrderResponse{
			ID:              responseID,
			CreatedBy:       responseCreatedBy,
			Status:          status,
			Active:          active,
			IsProcessing:    isProcessing,
			CreatedAt:       createdAt,
			ScheduledFor:    scheduledFor,
			StatusUpdatedAt: statusUpdatedAt,
		})
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	if err = h.attachItems(ctx, responses); err != nil {
		return nil, err
	}
	return responses, nil
}

// attachItems loads the dish references for all found orders in one scan.
func (h SearchOrdersQueryHandler) attachItems(ctx context.Context, responses []OrderResponse) error {
	if len(responses) == 0 {
		return nil
	}

	orderIDs := make([]uuid.UUID, 0, len(responses))
	index := make(map[kernel.UUID]int, len(responses))
	for i, response := range responses {
		orderIDs = append(orderIDs, response.ID.Bytes())
		index[response.ID] = i
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT order_id, dish_id
		FROM order_items
		WHERE order_id IN ?
		ORDER BY order_id, position
	`, orderIDs).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var orderID, dishID uuid.UUID
		if err = rows.Scan(&orderID, &dishID); err != nil {
			return err
		}

		ownerID, idErr := kernel.UUIDFromBytes(orderID[:])
		if idErr != nil {
			return idErr
		}
		itemID, idErr := kernel.UUIDFromBytes(dishID[:])
		if idErr != nil {
			return idErr
		}

		if i, ok := index[ownerID]; ok {
			responses[i].DishIDs = append(responses[i].DishIDs, itemID)
		}
	}
	return rows.Err()
}
