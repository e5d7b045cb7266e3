package queries

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAreasQueryHandler retrieves all delivery areas from the database.
type GetAreasQueryHandler struct {
	db *gorm.DB
}

// NewGetAreasQueryHandler creates a handler for area listing queries.
// Requires a GORM database connection for query execution.
func NewGetAreasQueryHandler(db *gorm.DB) GetAreasQueryHandler {
	return GetAreasQueryHandler{db: db}
}

// Handle executes the query to retrieve all areas sorted by name.
func (h GetAreasQueryHandler) Handle(
	ctx context.Context,
	query GetAreasQuery,
) ([]AreaResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name
		FROM areas
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	areas := make([]AreaResponse, 0)

	for rows.Next() {
		var areaResp AreaResponse
		var id uuid.UUID

		if err = rows.Scan(&id, &areaResp.Name); err != nil {
			return nil, err
		}

		areaID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		areaResp.ID = areaID
		areas = append(areas, areaResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return areas, nil
}
