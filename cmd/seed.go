package cmd

import (
	"context"
	"errors"
	"log/slog"

	"foodorders/internal/adapters/out/postgres/dishrepo"
	"foodorders/internal/core/application/usecases/commands"
	"foodorders/internal/core/domain/model/kernel"
	"foodorders/internal/core/domain/model/user"
	"foodorders/internal/pkg/errs"
)

// Well-known user ids, stable across restarts so clients can address the
// seeded accounts through the X-User-ID header.
const (
	adminUserID   = "00000000-0000-0000-0000-000000000001"
	regularUserID = "00000000-0000-0000-0000-000000000002"
)

type seedDish struct {
	name        string
	description string
	price       float64
	category    string
}

var seedDishes = []seedDish{
	{"Margherita Pizza", "Classic pizza with tomato sauce, mozzarella and basil", 12.99, "Pizza"},
	{"Pepperoni Pizza", "Pizza with pepperoni, mozzarella and tomato sauce", 15.99, "Pizza"},
	{"Caesar Salad", "Fresh romaine lettuce with Caesar dressing and croutons", 8.99, "Salad"},
	{"Grilled Chicken", "Tender grilled chicken breast with herbs", 18.99, "Main Course"},
	{"Beef Burger", "Juicy beef burger with lettuce, tomato and cheese", 14.99, "Burger"},
	{"Chocolate Cake", "Rich chocolate cake with chocolate frosting", 6.99, "Dessert"},
}

// SeedInitialData creates the built-in accounts and a starter dish catalog
// on first run. Reruns are no-ops: users are keyed by their well-known
// ids and dishes are only seeded into an empty catalog.
func (c *CompositionRoot) SeedInitialData(ctx context.Context, logger *slog.Logger) error {
	if err := c.seedUser(ctx, adminUserID, "Admin", "User", []string{
		"can_create_users",
		user.PermissionReadUsers,
		"can_update_users",
		"can_delete_users",
		"can_search_order",
		"can_place_order",
		"can_cancel_order",
		"can_track_order",
		"can_schedule_order",
	}, logger); err != nil {
		return err
	}

	if err := c.seedUser(ctx, regularUserID, "Regular", "User", []string{
		"can_search_order",
		"can_place_order",
		"can_track_order",
		"can_schedule_order",
	}, logger); err != nil {
		return err
	}

	return c.seedDishes(ctx, logger)
}

func (c *CompositionRoot) seedUser(
	ctx context.Context,
	rawID string,
	firstName string,
	lastName string,
	permissions []string,
	logger *slog.Logger,
) error {
	userID, err := kernel.UUIDFromString(rawID)
	if err != nil {
		return err
	}

	uow := c.UnitOfWork()
	_, err = uow.UserRepository().Get(ctx, userID)
	if err == nil {
		return nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	cmd, err := commands.NewRegisterUserCommand(userID, firstName, lastName, permissions)
	if err != nil {
		return err
	}

	handler := c.CreateRegisterUserCommandHandler()
	if err := handler.Handle(ctx, cmd); err != nil {
		return err
	}

	logger.InfoContext(ctx, "Seeded user", "user_id", rawID, "name", firstName+" "+lastName)
	return nil
}

func (c *CompositionRoot) seedDishes(ctx context.Context, logger *slog.Logger) error {
	var count int64
	if err := c.gormDB.WithContext(ctx).Model(&dishrepo.DishDTO{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	handler := c.CreateCreateDishCommandHandler()
	for _, d := range seedDishes {
		cmd, err := commands.NewCreateDishCommand(kernel.NewUUID(), d.name, d.description, d.price, d.category)
		if err != nil {
			return err
		}
		if err := handler.Handle(ctx, cmd); err != nil {
			return err
		}
	}

	logger.InfoContext(ctx, "Seeded dish catalog", "dishes", len(seedDishes))
	return nil
}
