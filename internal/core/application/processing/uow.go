package processing

import (
	"context"

	"foodorders/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for lifecycle runs.
// Each edge of a run commits in its own short transaction, so the engine
// creates a fresh unit of work per commit instead of holding one open
// across the randomized waits.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a
	// transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}
)
