// Package dishrepo implements the repository pattern for the dish catalog.
package dishrepo

import (
	"foodorders/internal/core/domain/model/dish"
	"foodorders/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DishDTO represents the database structure for persisting catalog entries.
type DishDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string
	Description string
	Price       float64
	Category    string `gorm:"index"`
	Available   bool
}

// TableName overrides GORM's default naming to use "dishes".
func (DishDTO) TableName() string {
	return "dishes"
}

func fromDomain(aggregate *dish.Dish) DishDTO {
	return DishDTO{
		ID:          aggregate.ID().Bytes(),
		Name:        aggregate.Name(),
		Description: aggregate.Description(),
		Price:       aggregate.Price(),
		Category:    aggregate.Category(),
		Available:   aggregate.IsAvailable(),
	}
}

func toDomain(dto DishDTO) (*dish.Dish, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return dish.RestoreDish(id, dto.Name, dto.Description, dto.Price, dto.Category, dto.Available)
}
