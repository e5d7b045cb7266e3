package queries

import (
	"context"
	"database/sql"
	"strings"

	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// GetAssignmentsQueryHandler retrieves pages of assignment records from the
// database. Records are returned newest first.
type GetAssignmentsQueryHandler struct {
	db *gorm.DB
}

// NewGetAssignmentsQueryHandler creates a handler for assignment listing
// queries. Requires a GORM database connection for query execution.
func NewGetAssignmentsQueryHandler(db *gorm.DB) GetAssignmentsQueryHandler {
	return GetAssignmentsQueryHandler{db: db}
}

// Handle executes the query to retrieve a page of assignment records.
// Applies the optional status list, order, partner and time range filters,
// counts the total matches, and returns the page newest first.
func (h GetAssignmentsQueryHandler) Handle(
	ctx context.Context,
	query GetAssignmentsQuery,
) (AssignmentsPageResponse, error) {
	if err := query.Validate(); err != nil {
		return AssignmentsPageResponse{}, err
	}

	where, args := buildAssignmentFilters(query)

	var total int64
	if err := h.db.WithContext(ctx).
		Raw("SELECT COUNT(*) FROM assignments"+where, args...).
		Scan(&total).Error; err != nil {
		return AssignmentsPageResponse{}, err
	}

	offset := (query.Page() - 1) * query.PageSize()
	pageArgs := append(args, query.PageSize(), offset)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			partner_id,
			status,
			reason,
			created_at
		FROM assignments`+where+`
		ORDER BY created_at DESC, id
		LIMIT ? OFFSET ?
	`, pageArgs...).Rows()
	if err != nil {
		return AssignmentsPageResponse{}, err
	}
	defer rows.Close()

	records := make([]AssignmentResponse, 0)

	for rows.Next() {
		record, scanErr := scanAssignmentRow(rows)
		if scanErr != nil {
			return AssignmentsPageResponse{}, scanErr
		}
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return AssignmentsPageResponse{}, err
	}

	return AssignmentsPageResponse{
		Assignments: records,
		Total:       total,
		Page:        query.Page(),
		PageSize:    query.PageSize(),
	}, nil
}

func buildAssignmentFilters(query GetAssignmentsQuery) (string, []any) {
	conditions := make([]string, 0)
	args := make([]any, 0)

	if statuses := query.Statuses(); len(statuses) > 0 {
		names := make([]string, 0, len(statuses))
		for _, status := range statuses {
			names = append(names, status.String())
		}
		conditions = append(conditions, "status = ANY(?)")
		args = append(args, pq.Array(names))
	}
	if query.OrderID() != nil {
		conditions = append(conditions, "order_id = ?")
		args = append(args, query.OrderID().Bytes())
	}
	if query.PartnerID() != nil {
		conditions = append(conditions, "partner_id = ?")
		args = append(args, query.PartnerID().Bytes())
	}
	if query.From() != nil {
		conditions = append(conditions, "created_at >= ?")
		args = append(args, *query.From())
	}
	if query.To() != nil {
		conditions = append(conditions, "created_at <= ?")
		args = append(args, *query.To())
	}

	if len(conditions) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

func scanAssignmentRow(rows *sql.Rows) (AssignmentResponse, error) {
	var record AssignmentResponse
	var id, orderID uuid.UUID
	var partnerID *uuid.UUID
	var reason *string

	if err := rows.Scan(
		&id,
		&orderID,
		&partnerID,
		&record.Status,
		&reason,
		&record.CreatedAt,
	); err != nil {
		return AssignmentResponse{}, err
	}

	recordID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return AssignmentResponse{}, err
	}
	record.ID = recordID

	recordOrderID, err := kernel.UUIDFromBytes(orderID[:])
	if err != nil {
		return AssignmentResponse{}, err
	}
	record.OrderID = recordOrderID

	if partnerID != nil {
		raw := *partnerID
		recordPartnerID, idErr := kernel.UUIDFromBytes(raw[:])
		if idErr != nil {
			return AssignmentResponse{}, idErr
		}
		record.PartnerID = &recordPartnerID
	}
	if reason != nil {
		record.Reason = *reason
	}

	return record, nil
}
