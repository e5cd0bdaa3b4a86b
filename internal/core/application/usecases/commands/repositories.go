// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"foodorders/internal/core/domain/model/kernel"
	"foodorders/internal/core/ports"
)

// OrderDispatcher hands an accepted order to the background lifecycle
// engine. Implemented by processing.Dispatcher.
type OrderDispatcher interface {
	Dispatch(orderID kernel.UUID)
}

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// DishRepoFactory provides access to dish repository within a transaction.
	DishRepoFactory interface {
		DishRepository() ports.DishRepository
	}

	// UserRepoFactory provides access to user repository within a transaction.
	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	// OrderUoW manages transactions for order-only operations.
	// Used when commands only modify order aggregates.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// PlacementUoW manages transactions for order placement, which reads
	// the dish catalog to resolve the order's items before persisting.
	PlacementUoW interface {
		TxManager
		OrderRepoFactory
		DishRepoFactory
	}

	// PlacementUoWFactory creates new placement unit of work instances.
	PlacementUoWFactory interface {
		Create() PlacementUoW
	}

	// CancellationUoW manages transactions for order cancellation, which
	// loads the acting user to enforce the owner-or-admin rule.
	CancellationUoW interface {
		TxManager
		OrderRepoFactory
		UserRepoFactory
	}

	// CancellationUoWFactory creates new cancellation unit of work instances.
	CancellationUoWFactory interface {
		Create() CancellationUoW
	}

	// CatalogUoW manages transactions for dish catalog maintenance.
	CatalogUoW interface {
		TxManager
		DishRepoFactory
	}

	// CatalogUoWFactory creates new catalog unit of work instances.
	CatalogUoWFactory interface {
		Create() CatalogUoW
	}

	// UserUoW manages transactions for user provisioning.
	UserUoW interface {
		TxManager
		UserRepoFactory
	}

	// UserUoWFactory creates new user unit of work instances.
	UserUoWFactory interface {
		Create() UserUoW
	}
)
