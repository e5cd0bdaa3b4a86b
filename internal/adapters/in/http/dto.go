package http

import (
	"time"

	"foodorders/internal/core/application/usecases/queries"
)

// ErrorDTO is the body returned for every failed request.
type ErrorDTO struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// PlaceOrderRequest is the body of POST /api/v1/orders.
// Dish ids may repeat; each entry is one unit ordered.
type PlaceOrderRequest struct {
	DishIDs      []string   `json:"dishIds"`
	ScheduledFor *time.Time `json:"scheduledFor,omitempty"`
}

// SearchOrdersRequest is the body of POST /api/v1/orders/search.
// Every filter is optional.
type SearchOrdersRequest struct {
	Statuses []string   `json:"statuses,omitempty"`
	DateFrom *time.Time `json:"dateFrom,omitempty"`
	DateTo   *time.Time `json:"dateTo,omitempty"`
	UserID   *string    `json:"userId,omitempty"`
}

// CreateDishRequest is the body of POST /api/v1/dishes.
type CreateDishRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Category    string  `json:"category,omitempty"`
}

// OrderDTO is the wire representation of an order.
type OrderDTO struct {
	ID              string     `json:"id"`
	CreatedBy       string     `json:"createdBy"`
	Status          string     `json:"status"`
	Active          bool       `json:"active"`
	IsProcessing    bool       `json:"isProcessing"`
	CreatedAt       time.Time  `json:"createdAt"`
	ScheduledFor    *time.Time `json:"scheduledFor,omitempty"`
	StatusUpdatedAt time.Time  `json:"statusUpdatedAt"`
	DishIDs         []string   `json:"dishIds"`
}

// DishDTO is the wire representation of a catalog entry.
type DishDTO struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Category    string  `json:"category,omitempty"`
	Available   bool    `json:"available"`
}

// ErrorEntryDTO is the wire representation of a diagnostic log entry.
type ErrorEntryDTO struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Operation string    `json:"operation"`
	OrderID   *string   `json:"orderId,omitempty"`
	Message   string    `json:"message"`
	UserID    string    `json:"userId"`
}

func toOrderDTO(response queries.OrderResponse) OrderDTO {
	dishIDs := make([]string, len(response.DishIDs))
	for i, dishID := range response.DishIDs {
		dishIDs[i] = dishID.String()
	}

	return OrderDTO{
		ID:              response.ID.String(),
		CreatedBy:       response.CreatedBy.String(),
		Status:          response.Status,
		Active:          response.Active,
		IsProcessing:    response.IsProcessing,
		CreatedAt:       response.CreatedAt,
		ScheduledFor:    response.ScheduledFor,
		StatusUpdatedAt: response.StatusUpdatedAt,
		DishIDs:         dishIDs,
	}
}

func toDishDTO(response queries.DishResponse) DishDTO {
	return DishDTO{
		ID:          response.ID.String(),
		Name:        response.Name,
		Description: response.Description,
		Price:       response.Price,
		Category:    response.Category,
		Available:   response.Available,
	}
}

func toErrorEntryDTO(response queries.ErrorResponse) ErrorEntryDTO {
	var orderID *string
	if response.OrderID != nil {
		s := response.OrderID.String()
		orderID = &s
	}

	return ErrorEntryDTO{
		ID:        response.ID.String(),
		Timestamp: response.Timestamp,
		Operation: response.Operation,
		OrderID:   orderID,
		Message:   response.Message,
		UserID:    response.UserID.String(),
	}
}
