package queries

import (
	"errors"

	"foodorders/internal/core/domain/model/kernel"
	"foodorders/internal/pkg/guard"
)

var ErrListDishesQueryIsNotConstructed = errors.New(
	"ListDishesQuery must be created via NewListDishesQuery constructor",
)

// ListDishesQuery retrieves the dish catalog.
type ListDishesQuery struct {
	availableOnly bool

	guard guard.ConstructorGuard
}

// NewListDishesQuery creates a catalog listing query. With availableOnly
// set, dishes currently marked unavailable are omitted.
func NewListDishesQuery(availableOnly bool) ListDishesQuery {
	return ListDishesQuery{
		availableOnly: availableOnly,
		guard:         guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
// Returns ErrListDishesQueryIsNotConstructed if validation fails.
func (q ListDishesQuery) Validate() error {
	return q.guard.Validate(ErrListDishesQueryIsNotConstructed)
}

// AvailableOnly reports whether unavailable dishes are filtered out.
func (q ListDishesQuery) AvailableOnly() bool {
	return q.availableOnly
}

// DishResponse represents one catalog entry.
type DishResponse struct {
	ID          kernel.UUID
	Name        string
	Description string
	Price       float64
	Category    string
	Available   bool
}
