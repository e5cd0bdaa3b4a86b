// Package queries contains read-only operations for the query side of the
// CQRS architecture. Query handlers read the database directly and return
// plain response structs, bypassing the domain aggregates.
package queries

import (
	"errors"
	"time"

	"foodorders/internal/core/domain/model/kernel"
	"foodorders/internal/pkg/guard"
)

var ErrTrackOrderQueryIsNotConstructed = errors.New(
	"TrackOrderQuery must be created via NewTrackOrderQuery constructor",
)

// TrackOrderQuery retrieves the current state of one order on behalf of a
// user. Progression is observed by polling this query; there is no push
// notification.
type TrackOrderQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	userID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewTrackOrderQuery creates a query to track an order for the given user.
func NewTrackOrderQuery(orderID kernel.UUID, userID kernel.UUID) (TrackOrderQuery, error) {
	trackQuery := TrackOrderQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		trackQuery.setOrderID(orderID),
		trackQuery.setUserID(userID),
	); err != nil {
		return TrackOrderQuery{}, err
	}

	return trackQuery, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrTrackOrderQueryIsNotConstructed if validation fails.
func (q TrackOrderQuery) Validate() error {
	return q.guard.Validate(ErrTrackOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the order to track.
func (q TrackOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// UserID returns the identifier of the acting user.
func (q TrackOrderQuery) UserID() kernel.UUID {
	return q.userID
}

func (q *TrackOrderQuery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	q.orderID = orderID
	return nil
}

func (q *TrackOrderQuery) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	q.userID = userID
	return nil
}

// OrderResponse represents one order's externally visible state.
type OrderResponse struct {
	ID              kernel.UUID
	CreatedBy       kernel.UUID
	Status          string
	Active          bool
	IsProcessing    bool
	CreatedAt       time.Time
	ScheduledFor    *time.Time
	StatusUpdatedAt time.Time
	DishIDs         []kernel.UUID
}
