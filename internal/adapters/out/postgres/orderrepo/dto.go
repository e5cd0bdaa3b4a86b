// Package orderrepo provides data transfer objects and mapping functions
// for order persistence. It implements the repository pattern for the
// order aggregate, converting between domain entities and database rows.
package orderrepo

import (
	"sort"
	"time"

	"foodorders/internal/core/domain/model/kernel"
	"foodorders/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order
// aggregates. Status is stored as its string name so the table stays
// readable; the lifecycle columns are indexed for the release sweep's
// predicate.
type OrderDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedBy       uuid.UUID `gorm:"type:uuid;index"`
	Status          string    `gorm:"index"`
	Active          bool
	IsProcessing    bool
	CreatedAt       time.Time
	ScheduledFor    *time.Time `gorm:"index"`
	StatusUpdatedAt time.Time

	Items []OrderItemDTO `gorm:"foreignKey:OrderID;references:ID"`
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one ordered unit of a dish. Position preserves
// the order of entries as submitted, duplicates included.
type OrderItemDTO struct {
	ID       uint      `gorm:"primaryKey;autoIncrement"`
	OrderID  uuid.UUID `gorm:"type:uuid;index"`
	DishID   uuid.UUID `gorm:"type:uuid"`
	Position int
}

// TableName overrides GORM's default naming to use "order_items".
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := aggregate.Items()
	itemDTOs := make([]OrderItemDTO, 0, len(items))
	for i, dishID := range items {
		itemDTOs = append(itemDTOs, OrderItemDTO{
			OrderID:  aggregate.ID().Bytes(),
			DishID:   dishID.Bytes(),
			Position: i,
		})
	}

	return OrderDTO{
		ID:              aggregate.ID().Bytes(),
		CreatedBy:       aggregate.CreatedBy().Bytes(),
		Status:          aggregate.Status().String(),
		Active:          aggregate.IsActive(),
		IsProcessing:    aggregate.IsProcessing(),
		CreatedAt:       aggregate.CreatedAt(),
		ScheduledFor:    aggregate.ScheduledFor(),
		StatusUpdatedAt: aggregate.StatusUpdatedAt(),
		Items:           itemDTOs,
	}
}

// toDomain converts a database row back to an order aggregate.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	createdBy, err := kernel.UUIDFromBytes(dto.CreatedBy[:])
	if err != nil {
		return nil, err
	}
	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	sort.Slice(dto.Items, func(i, j int) bool {
		return dto.Items[i].Position < dto.Items[j].Position
	})
	items := make([]kernel.UUID, 0, len(dto.Items))
	for _, item := range dto.Items {
		dishID, itemErr := kernel.UUIDFromBytes(item.DishID[:])
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, dishID)
	}

	return order.RestoreOrder(id, createdBy, items, status,
		dto.Active, dto.IsProcessing, dto.CreatedAt, dto.ScheduledFor, dto.StatusUpdatedAt)
}
