package queries

import (
	"context"
	"database/sql"
	"errors"

	"dispatch/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetPartnerMetricsQueryHandler retrieves one partner's performance figures.
// Combines the partner row with the count of dispatch records naming the
// partner.
type GetPartnerMetricsQueryHandler struct {
	db *gorm.DB
}

// NewGetPartnerMetricsQueryHandler creates a handler for partner metric
// queries. Requires a GORM database connection for query execution.
func NewGetPartnerMetricsQueryHandler(db *gorm.DB) GetPartnerMetricsQueryHandler {
	return GetPartnerMetricsQueryHandler{db: db}
}

// Handle executes the partner metrics query.
// Returns errs.ErrObjectNotFound when the partner does not exist.
func (h GetPartnerMetricsQueryHandler) Handle(
	ctx context.Context,
	query GetPartnerMetricsQuery,
) (PartnerMetricsResponse, error) {
	if err := query.Validate(); err != nil {
		return PartnerMetricsResponse{}, err
	}

	metrics := PartnerMetricsResponse{PartnerID: query.PartnerID()}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			rating,
			completed_orders,
			cancelled_orders,
			current_load
		FROM partners
		WHERE id = ?
	`, query.PartnerID().Bytes()).Row()

	err := row.Scan(
		&metrics.Rating,
		&metrics.CompletedOrders,
		&metrics.CancelledOrders,
		&metrics.CurrentLoad,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return PartnerMetricsResponse{}, errs.NewObjectNotFoundError(
			"partnerId", query.PartnerID().String())
	}
	if err != nil {
		return PartnerMetricsResponse{}, err
	}

	if err = h.db.WithContext(ctx).Raw(`
		SELECT COUNT(*) FROM assignments WHERE partner_id = ?
	`, query.PartnerID().Bytes()).Scan(&metrics.TotalDispatches).Error; err != nil {
		return PartnerMetricsResponse{}, err
	}

	return metrics, nil
}
