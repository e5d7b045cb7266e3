package queries

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrGetAvailablePartnersQueryIsNotConstructed = errors.New(
	"GetAvailablePartnersQuery must be created via NewGetAvailablePartnersQuery constructor",
)

// GetAvailablePartnersQuery retrieves the partners that could take an order
// at a given time of day: active, with free capacity, and with a shift
// covering the time.
//
// Example:
//
//	at, _ := kernel.ParseTimeOfDay("14:30")
//	query, err := NewGetAvailablePartnersQuery(at)
//	if err != nil {
//	    return fmt.Errorf("invalid query: %w", err)
//	}
//
//	handler := NewGetAvailablePartnersQueryHandler(db)
//	partners, err := handler.Handle(ctx, query)
type GetAvailablePartnersQuery struct { //nolint:recvcheck //using for validation
	at kernel.TimeOfDay

	guard guard.ConstructorGuard
}

// NewGetAvailablePartnersQuery creates a query for availability at the given
// time of day.
func NewGetAvailablePartnersQuery(at kernel.TimeOfDay) (GetAvailablePartnersQuery, error) {
	availableQuery := GetAvailablePartnersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := availableQuery.setAt(at); err != nil {
		return GetAvailablePartnersQuery{}, err
	}

	return availableQuery, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAvailablePartnersQueryIsNotConstructed if validation fails.
func (q GetAvailablePartnersQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailablePartnersQueryIsNotConstructed)
}

// At returns the time of day availability is checked for.
func (q GetAvailablePartnersQuery) At() kernel.TimeOfDay {
	return q.at
}

func (q *GetAvailablePartnersQuery) setAt(at kernel.TimeOfDay) error {
	if err := at.Validate(); err != nil {
		return err
	}

	q.at = at
	return nil
}
