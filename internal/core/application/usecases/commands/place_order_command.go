package commands

import (
	"errors"
	"time"

	"foodorders/internal/core/domain/model/kernel"
	"foodorders/internal/core/domain/model/order"
	"foodorders/internal/pkg/errs"
	"foodorders/internal/pkg/guard"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// PlaceOrderCommand represents a request to place a food order.
// Duplicate dish ids are permitted: each entry is one unit ordered.
// A nil scheduledFor means the order should start processing right away;
// a future timestamp leaves it dormant until the release sweep picks it up.
//
// Example:
//
//	cmd, err := NewPlaceOrderCommand(kernel.NewUUID(), userID, dishIDs, nil)
//	if err != nil {
//	    return fmt.Errorf("invalid order request: %w", err)
//	}
//
//	handler := NewPlaceOrderCommandHandler(uowFactory, dispatcher, sink)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to place order: %w", err)
//	}
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	userID       kernel.UUID
	dishIDs      []kernel.UUID
	scheduledFor *time.Time

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place a new order.
// Validates identities and the dish list size; dish existence is checked
// by the handler against the catalog.
func NewPlaceOrderCommand(
	orderID kernel.UUID,
	userID kernel.UUID,
	dishIDs []kernel.UUID,
	scheduledFor *time.Time,
) (PlaceOrderCommand, error) {
	placeCommand := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		placeCommand.setOrderID(orderID),
		placeCommand.setUserID(userID),
		placeCommand.setDishIDs(dishIDs),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	if scheduledFor != nil {
		t := *scheduledFor
		placeCommand.scheduledFor = &t
	}

	return placeCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrPlaceOrderCommandIsNotConstructed if validation fails.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// OrderID returns the identifier the new order will be created under.
func (c PlaceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// UserID returns the identifier of the ordering user.
func (c PlaceOrderCommand) UserID() kernel.UUID {
	return c.userID
}

// DishIDs returns the ordered dish references, duplicates included.
func (c PlaceOrderCommand) DishIDs() []kernel.UUID {
	dishIDs := make([]kernel.UUID, len(c.dishIDs))
	copy(dishIDs, c.dishIDs)
	return dishIDs
}

// ScheduledFor returns the requested start time, or nil for immediate orders.
func (c PlaceOrderCommand) ScheduledFor() *time.Time {
	if c.scheduledFor == nil {
		return nil
	}
	t := *c.scheduledFor
	return &t
}

func (c *PlaceOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *PlaceOrderCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *PlaceOrderCommand) setDishIDs(dishIDs []kernel.UUID) error {
	if len(dishIDs) == 0 {
		return errs.NewValueIsRequiredError("dishIDs")
	}
	if len(dishIDs) > order.MaxDishesPerOrder {
		return errs.NewValueIsOutOfRangeError("dishIDs", len(dishIDs), 1, order.MaxDishesPerOrder)
	}

	for _, dishID := range dishIDs {
		if err := dishID.Validate(); err != nil {
			return err
		}
	}

	c.dishIDs = make([]kernel.UUID, len(dishIDs))
	copy(c.dishIDs, dishIDs)
	return nil
}
