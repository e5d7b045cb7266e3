package queries

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrGetPartnerMetricsQueryIsNotConstructed = errors.New(
	"GetPartnerMetricsQuery must be created via NewGetPartnerMetricsQuery constructor",
)

// GetPartnerMetricsQuery retrieves one partner's performance figures:
// rating, completion counters, current load and total dispatch records.
type GetPartnerMetricsQuery struct { //nolint:recvcheck //using for validation
	partnerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetPartnerMetricsQuery creates a query for a partner's metrics.
func NewGetPartnerMetricsQuery(partnerID kernel.UUID) (GetPartnerMetricsQuery, error) {
	metricsQuery := GetPartnerMetricsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := metricsQuery.setPartnerID(partnerID); err != nil {
		return GetPartnerMetricsQuery{}, err
	}

	return metricsQuery, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetPartnerMetricsQueryIsNotConstructed if validation fails.
func (q GetPartnerMetricsQuery) Validate() error {
	return q.guard.Validate(ErrGetPartnerMetricsQueryIsNotConstructed)
}

// PartnerID returns the unique identifier for the partner.
func (q GetPartnerMetricsQuery) PartnerID() kernel.UUID {
	return q.partnerID
}

func (q *GetPartnerMetricsQuery) setPartnerID(partnerID kernel.UUID) error {
	if err := partnerID.Validate(); err != nil {
		return err
	}

	q.partnerID = partnerID
	return nil
}

// PartnerMetricsResponse is the read model for one partner's performance.
type PartnerMetricsResponse struct {
	PartnerID       kernel.UUID
	Rating          float64
	CompletedOrders int
	CancelledOrders int
	CurrentLoad     int
	TotalDispatches int64
}
