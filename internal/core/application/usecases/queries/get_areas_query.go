package queries

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrGetAreasQueryIsNotConstructed = errors.New(
	"GetAreasQuery must be created via NewGetAreasQuery constructor",
)

// GetAreasQuery retrieves all delivery areas.
type GetAreasQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAreasQuery creates a query to retrieve all delivery areas.
func NewGetAreasQuery() GetAreasQuery {
	return GetAreasQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAreasQueryIsNotConstructed if validation fails.
func (q GetAreasQuery) Validate() error {
	return q.guard.Validate(ErrGetAreasQueryIsNotConstructed)
}

// AreaResponse is the read model for a single delivery area.
type AreaResponse struct {
	ID   kernel.UUID
	Name string
}
