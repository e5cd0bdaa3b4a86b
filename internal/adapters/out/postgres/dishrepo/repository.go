package dishrepo

import (
	"context"
	"errors"

	"foodorders/internal/core/domain/model/dish"
	"foodorders/internal/core/domain/model/kernel"
	"foodorders/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormDishRepository implements ports.DishRepository using GORM.
type GormDishRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormDishRepository creates a new GORM dish repository. The tracker
// may be nil for read-mostly uses outside a unit of work.
func NewGormDishRepository(db *gorm.DB, tracker aggregateTracker) *GormDishRepository {
	return &GormDishRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new catalog entry to the database.
func (r *GormDishRepository) Add(ctx context.Context, aggregate *dish.Dish) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	if r.tracker != nil {
		r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	}
	return nil
}

// Get retrieves a dish by ID.
func (r *GormDishRepository) Get(ctx context.Context, id kernel.UUID) (*dish.Dish, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DishDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("dishID", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByIDs retrieves the dishes for the given identifiers. Missing
// identifiers are absent from the result.
func (r *GormDishRepository) GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*dish.Dish, error) {
	rawIDs := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		rawIDs = append(rawIDs, id.Bytes())
	}

	var dtos []DishDTO
	if err := r.db.WithContext(ctx).Where("id IN ?", rawIDs).Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAll retrieves the full catalog, grouped by category then name.
func (r *GormDishRepository) GetAll(ctx context.Context) ([]*dish.Dish, error) {
	var dtos []DishDTO
	if err := r.db.WithContext(ctx).Order("category, name").Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

func toDomainSlice(dtos []DishDTO) ([]*dish.Dish, error) {
	dishes := make([]*dish.Dish, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		dishes = append(dishes, aggregate)
	}
	return dishes, nil
}
