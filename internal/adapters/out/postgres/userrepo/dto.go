// Package userrepo implements the repository pattern for user references.
package userrepo

import (
	"foodorders/internal/core/domain/model/kernel"
	"foodorders/internal/core/domain/model/user"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// UserDTO represents the database structure for persisting user
// references. Permissions are stored as a native text array.
type UserDTO struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey"`
	FirstName   string
	LastName    string
	Permissions pq.StringArray `gorm:"type:text[]"`
}

// TableName overrides GORM's default naming to use "users".
func (UserDTO) TableName() string {
	return "users"
}

func fromDomain(aggregate *user.User) UserDTO {
	return UserDTO{
		ID:          aggregate.ID().Bytes(),
		FirstName:   aggregate.FirstName(),
		LastName:    aggregate.LastName(),
		Permissions: aggregate.Permissions(),
	}
}

func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return user.RestoreUser(id, dto.FirstName, dto.LastName, dto.Permissions)
}
