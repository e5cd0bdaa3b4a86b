package commands

import (
	"errors"

	"foodorders/internal/core/domain/model/kernel"
	"foodorders/internal/pkg/errs"
	"foodorders/internal/pkg/guard"
)

var ErrCreateDishCommandIsNotConstructed = errors.New(
	"CreateDishCommand must be created via NewCreateDishCommand constructor",
)

// CreateDishCommand represents a request to add a dish to the catalog.
type CreateDishCommand struct { //nolint:recvcheck //using for validation
	dishID      kernel.UUID
	name        string
	description string
	price       float64
	category    string

	guard guard.ConstructorGuard
}

// NewCreateDishCommand creates a command to register a new catalog entry.
// Requires a valid id, a non-empty name, and a positive price.
func NewCreateDishCommand(
	dishID kernel.UUID,
	name string,
	description string,
	price float64,
	category string,
) (CreateDishCommand, error) {
	dishCommand := CreateDishCommand{
		description: description,
		category:    category,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		dishCommand.setDishID(dishID),
		dishCommand.setName(name),
		dishCommand.setPrice(price),
	); err != nil {
		return CreateDishCommand{}, err
	}

	return dishCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateDishCommandIsNotConstructed if validation fails.
func (c CreateDishCommand) Validate() error {
	return c.guard.Validate(ErrCreateDishCommandIsNotConstructed)
}

// DishID returns the identifier the catalog entry will be created under.
func (c CreateDishCommand) DishID() kernel.UUID {
	return c.dishID
}

// Name returns the dish name.
func (c CreateDishCommand) Name() string {
	return c.name
}

// Description returns the dish description.
func (c CreateDishCommand) Description() string {
	return c.description
}

// Price returns the dish price.
func (c CreateDishCommand) Price() float64 {
	return c.price
}

// Category returns the dish category.
func (c CreateDishCommand) Category() string {
	return c.category
}

func (c *CreateDishCommand) setDishID(dishID kernel.UUID) error {
	if err := dishID.Validate(); err != nil {
		return err
	}

	c.dishID = dishID
	return nil
}

func (c *CreateDishCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *CreateDishCommand) setPrice(price float64) error {
	if price <= 0 {
		return errs.NewValueIsInvalidError("price")
	}

	c.price = price
	return nil
}
