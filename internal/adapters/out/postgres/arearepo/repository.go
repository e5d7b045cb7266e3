package arearepo

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/area"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormAreaRepository implements ports.AreaRepository using GORM.
type GormAreaRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormAreaRepository creates a new GORM area repository.
func NewGormAreaRepository(db *gorm.DB, tracker aggregateTracker) *GormAreaRepository {
	return &GormAreaRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new area to the database.
func (r *GormAreaRepository) Add(ctx context.Context, aggregate *area.Area) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing area to the database.
func (r *GormAreaRepository) Update(ctx context.Context, aggregate *area.Area) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	result := r.db.WithContext(ctx).Save(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Delete removes an area from the database.
func (r *GormAreaRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&AreaDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("area", id.String())
	}

	return nil
}

// Get retrieves an area by ID.
func (r *GormAreaRepository) Get(ctx context.Context, id kernel.UUID) (*area.Area, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto AreaDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("area", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves all areas ordered by name.
func (r *GormAreaRepository) GetAll(ctx context.Context) ([]*area.Area, error) {
	var dtos []AreaDTO
	if err := r.db.WithContext(ctx).Order("name").Find(&dtos).Error; err != nil {
		return nil, err
	}

	areas := make([]*area.Area, 0, len(dtos))
	for _, dto := range dtos {
		a, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		areas = append(areas, a)
	}

	return areas, nil
}
