package queries

import (
	"errors"
	"time"

	"foodorders/internal/core/domain/model/kernel"
	"foodorders/internal/core/domain/model/order"
	"foodorders/internal/pkg/guard"
)

var ErrSearchOrdersQueryIsNotConstructed = errors.New(
	"SearchOrdersQuery must be created via NewSearchOrdersQuery constructor",
)

// SearchOrdersQuery retrieves orders matching a combination of optional
// filters: statuses, a creation time window, and an owning user.
// Non-administrators always see their own orders only, regardless of the
// user filter.
type SearchOrdersQuery struct { //nolint:recvcheck //using for validation
	actorID    kernel.UUID
	statuses   []order.Status
	dateFrom   *time.Time
	dateTo     *time.Time
	userFilter *kernel.UUID

	guard guard.ConstructorGuard
}

// NewSearchOrdersQuery creates a search query on behalf of the given actor.
// Every filter may be empty; an empty query lists everything the actor is
// allowed to see.
func NewSearchOrdersQuery(
	actorID kernel.UUID,
	statuses []order.Status,
	dateFrom *time.Time,
	dateTo *time.Time,
	userFilter *kernel.UUID,
) (SearchOrdersQuery, error) {
	searchQuery := SearchOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := searchQuery.setActorID(actorID); err != nil {
		return SearchOrdersQuery{}, err
	}

	for _, status := range statuses {
		if err := status.Validate(); err != nil {
			return SearchOrdersQuery{}, err
		}
	}
	searchQuery.statuses = make([]order.Status, len(statuses))
	copy(searchQuery.statuses, statuses)

	if dateFrom != nil {
		t := *dateFrom
		searchQuery.dateFrom = &t
	}
	if dateTo != nil {
		t := *dateTo
		searchQuery.dateTo = &t
	}
	if userFilter != nil {
		if err := userFilter.Validate(); err != nil {
			return SearchOrdersQuery{}, err
		}
		id := *userFilter
		searchQuery.userFilter = &id
	}

	return searchQuery, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrSearchOrdersQueryIsNotConstructed if validation fails.
func (q SearchOrdersQuery) Validate() error {
	return q.guard.Validate(ErrSearchOrdersQueryIsNotConstructed)
}

// ActorID returns the identifier of the searching user.
func (q SearchOrdersQuery) ActorID() kernel.UUID {
	return q.actorID
}

// Statuses returns the status filter, empty when not set.
func (q SearchOrdersQuery) Statuses() []order.Status {
	statuses := make([]order.Status, len(q.statuses))
	copy(statuses, q.statuses)
	return statuses
}

// DateFrom returns the lower creation time bound, or nil.
func (q SearchOrdersQuery) DateFrom() *time.Time {
	if q.dateFrom == nil {
		return nil
	}
	t := *q.dateFrom
	return &t
}

// DateTo returns the upper creation time bound, or nil.
func (q SearchOrdersQuery) DateTo() *time.Time {
	if q.dateTo == nil {
		return nil
	}
	t := *q.dateTo
	return &t
}

// UserFilter returns the owning-user filter, or nil.
func (q SearchOrdersQuery) UserFilter() *kernel.UUID {
	if q.userFilter == nil {
		return nil
	}
	id := *q.userFilter
	return &id
}

func (q *SearchOrdersQuery) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	q.actorID = actorID
	return nil
}
