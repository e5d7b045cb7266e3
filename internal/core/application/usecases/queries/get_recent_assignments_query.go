package queries

import (
	"errors"

	"dispatch/internal/pkg/guard"
)

var ErrGetRecentAssignmentsQueryIsNotConstructed = errors.New(
	"GetRecentAssignmentsQuery must be created via NewGetRecentAssignmentsQuery constructor",
)

// recentAssignmentsLimit is the number of records shown on the dashboard.
const recentAssignmentsLimit = 5

// GetRecentAssignmentsQuery retrieves the five most recent assignment
// records, newest first.
type GetRecentAssignmentsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetRecentAssignmentsQuery creates a query for the latest assignment
// records.
func NewGetRecentAssignmentsQuery() GetRecentAssignmentsQuery {
	return GetRecentAssignmentsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetRecentAssignmentsQueryIsNotConstructed if validation fails.
func (q GetRecentAssignmentsQuery) Validate() error {
	return q.guard.Validate(ErrGetRecentAssignmentsQueryIsNotConstructed)
}
