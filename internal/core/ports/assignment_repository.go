package ports

import (
	"context"

	"dispatch/internal/core/domain/model/assignment"
)

// AssignmentRepository defines the persistence contract for assignment
// outcome records. Records are append-only: there is no update or delete.
type AssignmentRepository interface {
	// Add appends a new assignment outcome record to storage.
	Add(ctx context.Context, aggregate *assignment.Assignment) error
}
