package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetRecentAssignmentsQueryHandler retrieves the latest assignment records
// for dashboard display.
type GetRecentAssignmentsQueryHandler struct {
	db *gorm.DB
}

// NewGetRecentAssignmentsQueryHandler creates a handler for recent
// assignment queries. Requires a GORM database connection for query
// execution.
func NewGetRecentAssignmentsQueryHandler(db *gorm.DB) GetRecentAssignmentsQueryHandler {
	return GetRecentAssignmentsQueryHandler{db: db}
}

// Handle executes the query to retrieve the five newest assignment records.
func (h GetRecentAssignmentsQueryHandler) Handle(
	ctx context.Context,
	query GetRecentAssignmentsQuery,
) ([]AssignmentResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			partner_id,
			status,
			reason,
			created_at
		FROM assignments
		ORDER BY created_at DESC, id
		LIMIT ?
	`, recentAssignmentsLimit).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]AssignmentResponse, 0, recentAssignmentsLimit)

	for rows.Next() {
		record, scanErr := scanAssignmentRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}
