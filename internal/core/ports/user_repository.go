package ports

import (
	"context"

	"foodorders/internal/core/domain/model/kernel"
	"foodorders/internal/core/domain/model/user"
)

// UserRepository defines the read contract for user references.
// The order core only ever resolves users; account management happens
// elsewhere.
type UserRepository interface {
	// Add persists a new user reference. Present for seeding and tests.
	Add(ctx context.Context, aggregate *user.User) error

	// Get retrieves a user by their unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)
}
