package queries

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/partner"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrGetPartnersQueryIsNotConstructed = errors.New(
	"GetPartnersQuery must be created via NewGetPartnersQuery constructor",
)

// GetPartnersQuery retrieves a page of delivery partners, optionally
// filtered by status or a name/email search term.
type GetPartnersQuery struct { //nolint:recvcheck //using for validation
	page     int
	pageSize int

	// Unknown status means no status filter
	status partner.Status
	search string

	guard guard.ConstructorGuard
}

// NewGetPartnersQuery creates a query to retrieve a filtered page of
// partners. Zero page/pageSize fall back to defaults; a status of
// partner.Unknown disables the status filter and an empty search term
// disables the search.
func NewGetPartnersQuery(
	page int,
	pageSize int,
	status partner.Status,
	search string,
) (GetPartnersQuery, error) {
	partnersQuery := GetPartnersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		partnersQuery.setPage(page),
		partnersQuery.setPageSize(pageSize),
		partnersQuery.setStatus(status),
	); err != nil {
		return GetPartnersQuery{}, err
	}
	partnersQuery.search = search

	return partnersQuery, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetPartnersQueryIsNotConstructed if validation fails.
func (q GetPartnersQuery) Validate() error {
	return q.guard.Validate(ErrGetPartnersQueryIsNotConstructed)
}

// Page returns the requested page number, 1-based.
func (q GetPartnersQuery) Page() int {
	return q.page
}

// PageSize returns the requested page size.
func (q GetPartnersQuery) PageSize() int {
	return q.pageSize
}

// Status returns the status filter, partner.Unknown when unset.
func (q GetPartnersQuery) Status() partner.Status {
	return q.status
}

// Search returns the name/email search term, empty when unset.
func (q GetPartnersQuery) Search() string {
	return q.search
}

func (q *GetPartnersQuery) setPage(page int) error {
	if page < 0 {
		return errs.NewValueIsOutOfRangeError("page", page, 0, maxPageSize)
	}
	if page == 0 {
		page = defaultPage
	}

	q.page = page
	return nil
}

func (q *GetPartnersQuery) setPageSize(pageSize int) error {
	if pageSize < 0 || pageSize > maxPageSize {
		return errs.NewValueIsOutOfRangeError("pageSize", pageSize, 0, maxPageSize)
	}
	if pageSize == 0 {
		pageSize = defaultPageSize
	}

	q.pageSize = pageSize
	return nil
}

func (q *GetPartnersQuery) setStatus(status partner.Status) error {
	if status != partner.Unknown {
		if err := status.Validate(); err != nil {
			return err
		}
	}

	q.status = status
	return nil
}

// PartnerResponse is the read model for a single delivery partner.
type PartnerResponse struct {
	ID          kernel.UUID
	Name        string
	Email       string
	Phone       string
	Status      string
	CurrentLoad int
	AreaIDs     []kernel.UUID
	ShiftStart  *string
	ShiftEnd    *string
}

// PartnersPageResponse is a page of partners together with the total match
// count.
type PartnersPageResponse struct {
	Partners []PartnerResponse
	Total    int64
	Page     int
	PageSize int
}
