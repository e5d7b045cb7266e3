package queries

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrGetAssignmentsQueryIsNotConstructed = errors.New(
	"GetAssignmentsQuery must be created via NewGetAssignmentsQuery constructor",
)

// GetAssignmentsQuery retrieves a page of assignment records, optionally
// filtered by outcome statuses, order, partner or creation time range.
// Records are the audit trail of dispatch runs.
type GetAssignmentsQuery struct { //nolint:recvcheck //using for validation
	page     int
	pageSize int

	// empty statuses means no status filter; a record matches when its
	// status is any of the listed ones
	statuses  []assignment.Status
	orderID   *kernel.UUID
	partnerID *kernel.UUID
	from      *time.Time
	to        *time.Time

	guard guard.ConstructorGuard
}

// NewGetAssignmentsQuery creates a query to retrieve a filtered page of
// assignment records. Zero page/pageSize fall back to defaults; nil filters
// and an empty status list are disabled.
func NewGetAssignmentsQuery(
	page int,
	pageSize int,
	statuses []assignment.Status,
	orderID *kernel.UUID,
	partnerID *kernel.UUID,
	from *time.Time,
	to *time.Time,
) (GetAssignmentsQuery, error) {
	assignmentsQuery := GetAssignmentsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		assignmentsQuery.setPage(page),
		assignmentsQuery.setPageSize(pageSize),
		assignmentsQuery.setStatuses(statuses),
		assignmentsQuery.setOrderID(orderID),
		assignmentsQuery.setPartnerID(partnerID),
	); err != nil {
		return GetAssignmentsQuery{}, err
	}
	assignmentsQuery.from = from
	assignmentsQuery.to = to

	return assignmentsQuery, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAssignmentsQueryIsNotConstructed if validation fails.
func (q GetAssignmentsQuery) Validate() error {
	return q.guard.Validate(ErrGetAssignmentsQueryIsNotConstructed)
}

// Page returns the requested page number, 1-based.
func (q GetAssignmentsQuery) Page() int {
	return q.page
}

// PageSize returns the requested page size.
func (q GetAssignmentsQuery) PageSize() int {
	return q.pageSize
}

// Statuses returns the outcome filter list, empty when unset.
func (q GetAssignmentsQuery) Statuses() []assignment.Status {
	return q.statuses
}

// OrderID returns the order filter, nil when unset.
func (q GetAssignmentsQuery) OrderID() *kernel.UUID {
	return q.orderID
}

// PartnerID returns the partner filter, nil when unset.
func (q GetAssignmentsQuery) PartnerID() *kernel.UUID {
	return q.partnerID
}

// From returns the lower bound of the creation time filter, nil when unset.
func (q GetAssignmentsQuery) From() *time.Time {
	return q.from
}

// To returns the upper bound of the creation time filter, nil when unset.
func (q GetAssignmentsQuery) To() *time.Time {
	return q.to
}

func (q *GetAssignmentsQuery) setPage(page int) error {
	if page < 0 {
		return errs.NewValueIsOutOfRangeError("page", page, 0, maxPageSize)
	}
	if page == 0 {
		page = defaultPage
	}

	q.page = page
	return nil
}

func (q *GetAssignmentsQuery) setPageSize(pageSize int) error {
	if pageSize < 0 || pageSize > maxPageSize {
		return errs.NewValueIsOutOfRangeError("pageSize", pageSize, 0, maxPageSize)
	}
	if pageSize == 0 {
		pageSize = defaultPageSize
	}

	q.pageSize = pageSize
	return nil
}

func (q *GetAssignmentsQuery) setStatuses(statuses []assignment.Status) error {
	for _, status := range statuses {
		if err := status.Validate(); err != nil {
			return err
		}
	}

	q.statuses = statuses
	return nil
}

func (q *GetAssignmentsQuery) setOrderID(orderID *kernel.UUID) error {
	if orderID != nil {
		if err := orderID.Validate(); err != nil {
			return err
		}
	}

	q.orderID = orderID
	return nil
}

func (q *GetAssignmentsQuery) setPartnerID(partnerID *kernel.UUID) error {
	if partnerID != nil {
		if err := partnerID.Validate(); err != nil {
			return err
		}
	}

	q.partnerID = partnerID
	return nil
}

// AssignmentResponse is the read model for a single assignment record.
type AssignmentResponse struct {
	ID        kernel.UUID
	OrderID   kernel.UUID
	PartnerID *kernel.UUID
	Status    string
	Reason    string
	CreatedAt time.Time
}

// AssignmentsPageResponse is a page of assignment records together with the
// total match count.
type AssignmentsPageResponse struct {
	Assignments []AssignmentResponse
	Total       int64
	Page        int
	PageSize    int
}

// AssignmentMetricsResponse summarizes dispatch outcomes over the whole
// audit trail.
type AssignmentMetricsResponse struct {
	Total     int64
	Succeeded int64
	Failed    int64
}
