// Package queries contains read operations for the dispatch system.
// Implements the Query side of the CQRS pattern: handlers read the database
// directly with SQL and return plain read models, bypassing the aggregates.
package queries

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

const (
	defaultPage     = 1
	defaultPageSize = 20
	maxPageSize     = 100
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery retrieves a page of orders, optionally filtered by status,
// delivery area or assigned partner.
//
// Example:
//
//	query, err := NewGetOrdersQuery(1, 20, order.Pending, nil, nil)
//	if err != nil {
//	    return fmt.Errorf("invalid query: %w", err)
//	}
//
//	handler := NewGetOrdersQueryHandler(db)
//	page, err := handler.Handle(ctx, query)
type GetOrdersQuery struct { //nolint:recvcheck //using for validation
	page     int
	pageSize int

	// Unknown status means no status filter
	status    order.Status
	areaID    *kernel.UUID
	partnerID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a query to retrieve a filtered page of orders.
// Zero page/pageSize fall back to defaults; pageSize is capped at 100.
// A status of order.Unknown disables the status filter; nil areaID and
// partnerID disable theirs.
func NewGetOrdersQuery(
	page int,
	pageSize int,
	status order.Status,
	areaID *kernel.UUID,
	partnerID *kernel.UUID,
) (GetOrdersQuery, error) {
	ordersQuery := GetOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		ordersQuery.setPage(page),
		ordersQuery.setPageSize(pageSize),
		ordersQuery.setStatus(status),
		ordersQuery.setAreaID(areaID),
		ordersQuery.setPartnerID(partnerID),
	); err != nil {
		return GetOrdersQuery{}, err
	}

	return ordersQuery, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrdersQueryIsNotConstructed if validation fails.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// Page returns the requested page number, 1-based.
func (q GetOrdersQuery) Page() int {
	return q.page
}

// PageSize returns the requested page size.
func (q GetOrdersQuery) PageSize() int {
	return q.pageSize
}

// Status returns the status filter, order.Unknown when unset.
func (q GetOrdersQuery) Status() order.Status {
	return q.status
}

// AreaID returns the area filter, nil when unset.
func (q GetOrdersQuery) AreaID() *kernel.UUID {
	return q.areaID
}

// PartnerID returns the assigned-partner filter, nil when unset.
func (q GetOrdersQuery) PartnerID() *kernel.UUID {
	return q.partnerID
}

func (q *GetOrdersQuery) setPage(page int) error {
	if page < 0 {
		return errs.NewValueIsOutOfRangeError("page", page, 0, maxPageSize)
	}
	if page == 0 {
		page = defaultPage
	}

	q.page = page
	return nil
}

func (q *GetOrdersQuery) setPageSize(pageSize int) error {
	if pageSize < 0 || pageSize > maxPageSize {
		return errs.NewValueIsOutOfRangeError("pageSize", pageSize, 0, maxPageSize)
	}
	if pageSize == 0 {
		pageSize = defaultPageSize
	}

	q.pageSize = pageSize
	return nil
}

func (q *GetOrdersQuery) setStatus(status order.Status) error {
	if status != order.Unknown {
		if err := status.Validate(); err != nil {
			return err
		}
	}

	q.status = status
	return nil
}

func (q *GetOrdersQuery) setAreaID(areaID *kernel.UUID) error {
	if areaID != nil {
		if err := areaID.Validate(); err != nil {
			return err
		}
	}

	q.areaID = areaID
	return nil
}

func (q *GetOrdersQuery) setPartnerID(partnerID *kernel.UUID) error {
	if partnerID != nil {
		if err := partnerID.Validate(); err != nil {
			return err
		}
	}

	q.partnerID = partnerID
	return nil
}

// OrderResponse is the read model for a single order.
type OrderResponse struct {
	ID           kernel.UUID
	OrderNumber  string
	Customer     CustomerResponse
	AreaID       kernel.UUID
	ScheduledFor string
	TotalAmount  float64
	Status       string
	PartnerID    *kernel.UUID
	Items        []ItemResponse
}

// CustomerResponse is the read model for the customer of an order.
type CustomerResponse struct {
	Name  string
	Phone string
}

// ItemResponse is the read model for a single order line.
type ItemResponse struct {
	Name     string
	Quantity int
	Price    float64
}

// OrdersPageResponse is a page of orders together with the total match count.
type OrdersPageResponse struct {
	Orders   []OrderResponse
	Total    int64
	Page     int
	PageSize int
}
