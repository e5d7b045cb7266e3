// Package arearepo provides data transfer objects and mapping functions for
// delivery area persistence.
package arearepo

import (
	"dispatch/internal/core/domain/model/area"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AreaDTO represents the database structure for persisting area aggregates.
type AreaDTO struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"type:varchar(255);not null;uniqueIndex"`
}

// TableName specifies the database table name for area entities.
func (AreaDTO) TableName() string {
	return "areas"
}

func fromDomain(aggregate *area.Area) AreaDTO {
	return AreaDTO{
		ID:   aggregate.ID().Bytes(),
		Name: aggregate.Name(),
	}
}

func toDomain(dto AreaDTO) (*area.Area, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return area.RestoreArea(id, dto.Name)
}
