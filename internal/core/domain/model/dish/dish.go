// Package dish provides the Dish aggregate: the catalog entries that
// orders reference. Orders hold dish identities only; the catalog owns
// the descriptive data.
package dish

import (
	"errors"
	"fmt"

	"foodorders/internal/core/domain/model/kernel"
	"foodorders/internal/pkg/errs"
)

// ErrDishIsNotConstructed is returned when a Dish instance was not created
// through NewDish or RestoreDish.
var ErrDishIsNotConstructed = errors.New("Dish must be created via NewDish or RestoreDish")

// Dish represents a catalog entry customers can order.
//
// Invariants:
//   - Must have a valid unique identifier
//   - Name must be non-empty
//   - Price must be positive
//
// Availability is a soft flag: unavailable dishes stay in the catalog but
// are not offered for new orders.
type Dish struct {
	id          kernel.UUID
	name        string
	description string
	price       float64
	category    string
	available   bool

	isConstructed bool
}

// NewDish creates a new catalog entry with validation. New dishes start
// available.
func NewDish(id kernel.UUID, name, description string, price float64, category string) (*Dish, error) {
	d := &Dish{
		description:   description,
		category:      category,
		available:     true,
		isConstructed: true,
	}

	if err := errors.Join(
		d.setID(id),
		d.setName(name),
		d.setPrice(price),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDish reconstructs a Dish from persisted state, including its
// availability flag. Intended for repository adapters only.
func RestoreDish(id kernel.UUID, name, description string, price float64, category string, available bool) (*Dish, error) {
	d, err := NewDish(id, name, description, price, category)
	if err != nil {
		return nil, err
	}

	d.available = available
	return d, nil
}

// Validate ensures the Dish was properly constructed.
func (d *Dish) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDishIsNotConstructed
	}
	return nil
}

// IsEqual compares two dishes by their unique identifiers.
func (d *Dish) IsEqual(other *Dish) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the dish's unique identifier.
func (d *Dish) ID() kernel.UUID {
	return d.id
}

// Name returns the dish name.
func (d *Dish) Name() string {
	return d.name
}

// Description returns the dish description.
func (d *Dish) Description() string {
	return d.description
}

// Price returns the dish price.
func (d *Dish) Price() float64 {
	return d.price
}

// Category returns the dish category.
func (d *Dish) Category() string {
	return d.category
}

// IsAvailable reports whether the dish is offered for new orders.
func (d *Dish) IsAvailable() bool {
	return d.available
}

func (d *Dish) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Dish) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	d.name = name
	return nil
}

func (d *Dish) setPrice(price float64) error {
	if price <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%v is not greater than 0", price))
	}
	d.price = price
	return nil
}
