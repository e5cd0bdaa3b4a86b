package queries

import (
	"context"
	"time"

	"foodorders/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListErrorsQueryHandler reads the diagnostic log from the database.
type ListErrorsQueryHandler struct {
	db *gorm.DB
}

// NewListErrorsQueryHandler creates a handler for diagnostic log queries.
func NewListErrorsQueryHandler(db *gorm.DB) ListErrorsQueryHandler {
	return ListErrorsQueryHandler{db: db}
}

// Handle executes the listing, newest entries first.
func (h ListErrorsQueryHandler) Handle(ctx context.Context, query ListErrorsQuery) ([]ErrorResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	admin, err := actorIsAdmin(ctx, h.db, query.UserID())
	if err != nil {
		return nil, err
	}

	sqlQuery := `
		SELECT id, timestamp, operation, order_id, message, user_id
		FROM error_messages
	`
	args := make([]any, 0, 1)
	if !admin {
		sqlQuery += " WHERE user_id = ?"
		args = append(args, query.UserID().Bytes())
	}
	sqlQuery += " ORDER BY timestamp DESC"

	rows, err := h.db.WithContext(ctx).Raw(sqlQuery, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]ErrorResponse, 0)
	for rows.Next() {
		var (
			id        uuid.UUID
			timestamp time.Time
			operation string
			orderID   *uuid.UUID
			message   string
			userID    uuid.UUID
		)

		if err = rows.Scan(&id, &timestamp, &operation, &orderID, &message, &userID); err != nil {
			return nil, err
		}

		response := ErrorResponse{
			Timestamp: timestamp,
			Operation: operation,
			Message:   message,
		}
		if response.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if response.UserID, err = kernel.UUIDFromBytes(userID[:]); err != nil {
			return nil, err
		}
		if orderID != nil {
			entryOrderID, idErr := kernel.UUIDFromBytes((*orderID)[:])
			if idErr != nil {
				return nil, idErr
			}
			response.OrderID = &entryOrderID
		}

		entries = append(entries, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}
