package errorlogrepo

import (
	"context"

	"foodorders/internal/core/domain/model/errorlog"
	"foodorders/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GormErrorSink implements ports.ErrorSink using GORM. It writes on its
// own connection, never inside a caller's transaction: a rejected
// operation rolls its transaction back and the diagnostic record has to
// survive that rollback.
type GormErrorSink struct {
	db *gorm.DB
}

// NewGormErrorSink creates a sink writing to the given connection.
func NewGormErrorSink(db *gorm.DB) *GormErrorSink {
	return &GormErrorSink{db: db}
}

// Record appends one diagnostic entry.
func (s *GormErrorSink) Record(
	ctx context.Context,
	operation string,
	orderID *kernel.UUID,
	message string,
	userID kernel.UUID,
) error {
	entry, err := errorlog.NewEntry(operation, orderID, message, userID)
	if err != nil {
		return err
	}

	dto := fromDomain(entry)
	return s.db.WithContext(ctx).Create(&dto).Error
}
