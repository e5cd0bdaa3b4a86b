package queries

import (
	"errors"
	"time"

	"foodorders/internal/core/domain/model/kernel"
	"foodorders/internal/pkg/guard"
)

var ErrListErrorsQueryIsNotConstructed = errors.New(
	"ListErrorsQuery must be created via NewListErrorsQuery constructor",
)

// ListErrorsQuery retrieves diagnostic log entries on behalf of a user.
// Administrators see the full log; everyone else sees the entries
// recorded for their own operations.
type ListErrorsQuery struct { //nolint:recvcheck //using for validation
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewListErrorsQuery creates a diagnostic log listing query.
func NewListErrorsQuery(userID kernel.UUID) (ListErrorsQuery, error) {
	listQuery := ListErrorsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := listQuery.setUserID(userID); err != nil {
		return ListErrorsQuery{}, err
	}

	return listQuery, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrListErrorsQueryIsNotConstructed if validation fails.
func (q ListErrorsQuery) Validate() error {
	return q.guard.Validate(ErrListErrorsQueryIsNotConstructed)
}

// UserID returns the identifier of the acting user.
func (q ListErrorsQuery) UserID() kernel.UUID {
	return q.userID
}

func (q *ListErrorsQuery) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	q.userID = userID
	return nil
}

// ErrorResponse represents one diagnostic log entry.
type ErrorResponse struct {
	ID        kernel.UUID
	Timestamp time.Time
	Operation string
	OrderID   *kernel.UUID
	Message   string
	UserID    kernel.UUID
}
