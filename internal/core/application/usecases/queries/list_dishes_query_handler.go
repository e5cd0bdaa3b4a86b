package queries

import (
	"context"

	"foodorders/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListDishesQueryHandler reads the dish catalog from the database.
type ListDishesQueryHandler struct {
	db *gorm.DB
}

// NewListDishesQueryHandler creates a handler for catalog listing queries.
func NewListDishesQueryHandler(db *gorm.DB) ListDishesQueryHandler {
	return ListDishesQueryHandler{db: db}
}

// Handle executes the catalog listing, grouped by category then name.
func (h ListDishesQueryHandler) Handle(ctx context.Context, query ListDishesQuery) ([]DishResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sqlQuery := `
		SELECT id, name, description, price, category, available
		FROM dishes
	`
	if query.AvailableOnly() {
		sqlQuery += " WHERE available = true"
	}
	sqlQuery += " ORDER BY category, name"

	rows, err := h.db.WithContext(ctx).Raw(sqlQuery).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	dishes := make([]DishResponse, 0)
	for rows.Next() {
		var (
			id       uuid.UUID
			response DishResponse
		)

		err = rows.Scan(&id, &response.Name, &response.Description,
			&response.Price, &response.Category, &response.Available)
		if err != nil {
			return nil, err
		}

		response.ID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		dishes = append(dishes, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return dishes, nil
}
