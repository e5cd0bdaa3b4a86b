package commands

import (
	"context"

	"foodorders/internal/core/domain/model/dish"
)

// CreateDishCommandHandler handles dish catalog maintenance.
type CreateDishCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewCreateDishCommandHandler creates a handler for catalog entry creation.
func NewCreateDishCommandHandler(uowFactory CatalogUoWFactory) CreateDishCommandHandler {
	return CreateDishCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the dish creation command. New dishes start available.
func (h *CreateDishCommandHandler) Handle(ctx context.Context, cmd CreateDishCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := dish.NewDish(cmd.DishID(), cmd.Name(), cmd.Description(), cmd.Price(), cmd.Category())
	if err != nil {
		return err
	}

	if err = uow.DishRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
