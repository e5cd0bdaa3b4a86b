// Package errorlogrepo persists the append-only diagnostic log.
package errorlogrepo

import (
	"context"
	"time"

	"foodorders/internal/core/domain/model/errorlog"
	"foodorders/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrorMessageDTO represents the database structure for one diagnostic
// entry. OrderID is null when the failure happened before an order
// existed.
type ErrorMessageDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Timestamp time.Time `gorm:"index"`
	Operation string
	OrderID   *uuid.UUID `gorm:"type:uuid"`
	Message   string
	UserID    uuid.UUID `gorm:"type:uuid;index"`
}

// TableName overrides GORM's default naming to use "error_messages".
func (ErrorMessageDTO) TableName() string {
	return "error_messages"
}

func fromDomain(entry *errorlog.Entry) ErrorMessageDTO {
	var orderID *uuid.UUID
	if id := entry.OrderID(); id != nil {
		raw := id.Bytes()
		orderID = &raw
	}

	return ErrorMessageDTO{
		ID:        entry.ID().Bytes(),
		Timestamp: entry.Timestamp(),
		Operation: entry.Operation(),
		OrderID:   orderID,
		Message:   entry.Message(),
		UserID:    entry.UserID().Bytes(),
	}
}

func toDomain(dto ErrorMessageDTO) (*errorlog.Entry, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	var orderID *kernel.UUID
	if dto.OrderID != nil {
		entryOrderID, orderErr := kernel.UUIDFromBytes((*dto.OrderID)[:])
		if orderErr != nil {
			return nil, orderErr
		}
		orderID = &entryOrderID
	}

	return errorlog.RestoreEntry(id, dto.Timestamp, dto.Operation, orderID, dto.Message, userID)
}

// GetRecent returns the newest entries up to the given limit, for
// diagnostics tooling and tests.
func GetRecent(ctx context.Context, db *gorm.DB, limit int) ([]*errorlog.Entry, error) {
	var dtos []ErrorMessageDTO
	err := db.WithContext(ctx).Order("timestamp DESC").Limit(limit).Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	entries := make([]*errorlog.Entry, 0, len(dtos))
	for _, dto := range dtos {
		entry, dtoErr := toDomain(dto)
		if dtoErr != nil {
			return nil, dtoErr
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
