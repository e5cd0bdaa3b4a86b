package ports

import (
	"context"

	"foodorders/internal/core/domain/model/kernel"
)

// ErrorSink records rejected or failed operations in the append-only
// diagnostic log. Implementations must write outside the caller's
// business transaction: a rejected operation rolls its transaction back,
// and the diagnostic record has to survive that rollback.
type ErrorSink interface {
	// Record appends one diagnostic entry. orderID may be nil when the
	// failure happened before an order existed.
	Record(ctx context.Context, operation string, orderID *kernel.UUID, message string, userID kernel.UUID) error
}
