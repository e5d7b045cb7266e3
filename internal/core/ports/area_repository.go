package ports

import (
	"context"

	"dispatch/internal/core/domain/model/area"
	"dispatch/internal/core/domain/model/kernel"
)

// AreaRepository defines the persistence contract for area aggregates.
type AreaRepository interface {
	// Add persists a new area aggregate to storage.
	Add(ctx context.Context, aggregate *area.Area) error

	// Update persists changes to an existing area aggregate.
	Update(ctx context.Context, aggregate *area.Area) error

	// Delete removes an area aggregate from storage.
	Delete(ctx context.Context, id kernel.UUID) error

	// Get retrieves an area aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*area.Area, error)

	// GetAll retrieves all areas ordered by name.
	GetAll(ctx context.Context) ([]*area.Area, error)
}
