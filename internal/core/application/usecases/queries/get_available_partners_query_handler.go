package queries

import (
	"context"

	"dispatch/internal/core/domain/model/partner"

	"gorm.io/gorm"
)

// GetAvailablePartnersQueryHandler retrieves the partners available at a
// given time of day. Shift boundaries are inclusive on both ends, and the
// "HH:MM" shift columns compare correctly as text.
type GetAvailablePartnersQueryHandler struct {
	db *gorm.DB
}

// NewGetAvailablePartnersQueryHandler creates a handler for availability
// queries. Requires a GORM database connection for query execution.
func NewGetAvailablePartnersQueryHandler(db *gorm.DB) GetAvailablePartnersQueryHandler {
	return GetAvailablePartnersQueryHandler{db: db}
}

// Handle executes the availability query.
// Returns active partners with free capacity whose shift covers the
// requested time; partners without a shift never appear.
func (h GetAvailablePartnersQueryHandler) Handle(
	ctx context.Context,
	query GetAvailablePartnersQuery,
) ([]PartnerResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	at := query.At().String()

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			email,
			phone,
			status,
			current_load,
			area_ids,
			shift_start,
			shift_end
		FROM partners
		WHERE status = ?
		  AND current_load < ?
		  AND shift_start IS NOT NULL
		  AND shift_start <= ?
		  AND shift_end >= ?
		ORDER BY name, id
	`, partner.Active.String(), partner.MaxLoad, at, at).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	partners := make([]PartnerResponse, 0)

	for rows.Next() {
		partnerResp, scanErr := scanPartnerRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		partners = append(partners, partnerResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return partners, nil
}
