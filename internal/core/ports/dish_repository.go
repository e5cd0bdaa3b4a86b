// Package ports defines the persistence interfaces of the order core.
// These contracts sit between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"foodorders/internal/core/domain/model/dish"
	"foodorders/internal/core/domain/model/kernel"
)

// DishRepository defines the persistence contract for the dish catalog.
type DishRepository interface {
	// Add persists a new catalog entry.
	Add(ctx context.Context, aggregate *dish.Dish) error

	// Get retrieves a dish by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*dish.Dish, error)

	// GetByIDs retrieves the dishes for the given identifiers. Missing
	// identifiers are simply absent from the result; the caller compares
	// counts to detect unknown dishes.
	GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*dish.Dish, error)

	// GetAll retrieves the full catalog.
	GetAll(ctx context.Context) ([]*dish.Dish, error)
}
