package queries

import (
	"context"
	"database/sql"
	"strings"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/partner"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// GetPartnersQueryHandler retrieves pages of delivery partners from the
// database. Uses direct SQL queries for optimal read performance in the
// CQRS pattern.
type GetPartnersQueryHandler struct {
	db *gorm.DB
}

// NewGetPartnersQueryHandler creates a handler for partner listing queries.
// Requires a GORM database connection for query execution.
func NewGetPartnersQueryHandler(db *gorm.DB) GetPartnersQueryHandler {
	return GetPartnersQueryHandler{db: db}
}

// Handle executes the query to retrieve a page of partners.
// Applies the optional status filter and the case-insensitive name/email
// search, counts the total matches, and returns the page sorted by name.
func (h GetPartnersQueryHandler) Handle(
	ctx context.Context,
	query GetPartnersQuery,
) (PartnersPageResponse, error) {
	if err := query.Validate(); err != nil {
		return PartnersPageResponse{}, err
	}

	where, args := buildPartnerFilters(query)

	var total int64
	if err := h.db.WithContext(ctx).
		Raw("SELECT COUNT(*) FROM partners"+where, args...).
		Scan(&total).Error; err != nil {
		return PartnersPageResponse{}, err
	}

	offset := (query.Page() - 1) * query.PageSize()
	pageArgs := append(args, query.PageSize(), offset)

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
		FROM partners`+where+`
		ORDER BY name, id
		LIMIT ? OFFSET ?
	`, pageArgs...).Rows()
	if err != nil {
		return PartnersPageResponse{}, err
	}
	defer rows.Close()

	partners := make([]PartnerResponse, 0)

	for rows.Next() {
		partnerResp, scanErr := scanPartnerRow(rows)
		if scanErr != nil {
			return PartnersPageResponse{}, scanErr
		}
		partners = append(partners, partnerResp)
	}

	if err = rows.Err(); err != nil {
		return PartnersPageResponse{}, err
	}

	return PartnersPageResponse{
		Partners: partners,
		Total:    total,
		Page:     query.Page(),
		PageSize: query.PageSize(),
	}, nil
}

func buildPartnerFilters(query GetPartnersQuery) (string, []any) {
	conditions := make([]string, 0)
	args := make([]any, 0)

	if query.Status() != partner.Unknown {
		conditions = append(conditions, "status = ?")
		args = append(args, query.Status().String())
	}
	if query.Search() != "" {
		conditions = append(conditions, "(name ILIKE ? OR email ILIKE ?)")
		term := "%" + query.Search() + "%"
		args = append(args, term, term)
	}

	if len(conditions) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

func scanPartnerRow(rows *sql.Rows) (PartnerResponse, error) {
	var partnerResp PartnerResponse
	var id uuid.UUID
	var areaIDs pq.StringArray

	if err := rows.Scan(
		&id,
		&partnerResp.Name,
		&partnerResp.Email,
		&partnerResp.Phone,
		&partnerResp.Status,
		&partnerResp.CurrentLoad,
		&areaIDs,
		&partnerResp.ShiftStart,
		&partnerResp.ShiftEnd,
	); err != nil {
		return PartnerResponse{}, err
	}

	partnerID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return PartnerResponse{}, err
	}
	partnerResp.ID = partnerID

	partnerResp.AreaIDs = make([]kernel.UUID, 0, len(areaIDs))
	for _, raw := range areaIDs {
		areaID, idErr := kernel.UUIDFromString(raw)
		if idErr != nil {
			return PartnerResponse{}, idErr
		}
		partnerResp.AreaIDs = append(partnerResp.AreaIDs, areaID)
	}

	return partnerResp, nil
}
