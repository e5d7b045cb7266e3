package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/partner"
)

// PartnerRepository defines the persistence contract for delivery partner
// aggregates. Provides methods for storing, retrieving, and querying
// partners with their complete state including served areas, shift and
// metrics.
type PartnerRepository interface {
	// Add persists a new partner aggregate to storage.
	// The partner must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *partner.Partner) error

	// Update persists changes to an existing partner aggregate.
	// The partner must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *partner.Partner) error

	// Delete removes a partner aggregate from storage.
	Delete(ctx context.Context, id kernel.UUID) error

	// Get retrieves a partner aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*partner.Partner, error)

	// GetByEmail retrieves a partner aggregate by its contact email.
	// Used to enforce email uniqueness on registration.
	GetByEmail(ctx context.Context, email string) (*partner.Partner, error)

	// GetAllActiveWithCapacity retrieves all partners eligible for a
	// dispatch run: status Active and current load strictly below
	// partner.MaxLoad, with served areas and shift resolved.
	GetAllActiveWithCapacity(ctx context.Context) ([]*partner.Partner, error)
}
