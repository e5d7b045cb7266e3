package queries

import (
	"context"

	"dispatch/internal/core/domain/model/assignment"

	"gorm.io/gorm"
)

// GetAssignmentMetricsQueryHandler aggregates dispatch outcome counts from
// the assignments table.
type GetAssignmentMetricsQueryHandler struct {
	db *gorm.DB
}

// NewGetAssignmentMetricsQueryHandler creates a handler for dispatch metric
// queries. Requires a GORM database connection for query execution.
func NewGetAssignmentMetricsQueryHandler(db *gorm.DB) GetAssignmentMetricsQueryHandler {
	return GetAssignmentMetricsQueryHandler{db: db}
}

// Handle executes the metrics query.
// Returns total, succeeded and failed counts over all assignment records.
func (h GetAssignmentMetricsQueryHandler) Handle(
	ctx context.Context,
	query GetAssignmentMetricsQuery,
) (AssignmentMetricsResponse, error) {
	if err := query.Validate(); err != nil {
		return AssignmentMetricsResponse{}, err
	}

	var metrics AssignmentMetricsResponse

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = ?),
			COUNT(*) FILTER (WHERE status = ?)
		FROM assignments
	`, assignment.Success.String(), assignment.Failed.String()).Row()

	if err := row.Scan(&metrics.Total, &metrics.Succeeded, &metrics.Failed); err != nil {
		return AssignmentMetricsResponse{}, err
	}

	return metrics, nil
}
