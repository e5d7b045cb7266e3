package http

import (
	"time"

	"dispatch/internal/core/application/usecases/queries"
)

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateAreaRequest is the JSON body for POST /api/v1/areas.
type CreateAreaRequest struct {
	Name string `json:"name"`
}

// UpdateAreaRequest is the JSON body for PUT /api/v1/areas/:areaId.
type UpdateAreaRequest struct {
	Name string `json:"name"`
}

// AreaResponse is the JSON representation of a delivery area.
type AreaResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CustomerRequest carries the customer an order is delivered to.
type CustomerRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// ItemRequest carries a single order line.
type ItemRequest struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// CreateOrderRequest is the JSON body for POST /api/v1/orders.
type CreateOrderRequest struct {
	OrderNumber  string          `json:"orderNumber"`
	Customer     CustomerRequest `json:"customer"`
	AreaID       string          `json:"areaId"`
	ScheduledFor string          `json:"scheduledFor"`
	TotalAmount  float64         `json:"totalAmount"`
	Items        []ItemRequest   `json:"items"`
}

// UpdateOrderStatusRequest is the JSON body for
// PATCH /api/v1/orders/:orderId/status.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// OrderResponse is the JSON representation of an order.
type OrderResponse struct {
	ID           string          `json:"id"`
	OrderNumber  string          `json:"orderNumber"`
	Customer     CustomerRequest `json:"customer"`
	AreaID       string          `json:"areaId"`
	ScheduledFor string          `json:"scheduledFor"`
	TotalAmount  float64         `json:"totalAmount"`
	Status       string          `json:"status"`
	PartnerID    *string         `json:"partnerId,omitempty"`
	Items        []ItemRequest   `json:"items"`
}

// OrdersPageResponse is a page of orders.
type OrdersPageResponse struct {
	Orders   []OrderResponse `json:"orders"`
	Total    int64           `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"pageSize"`
}

// ShiftRequest carries a working shift in "HH:MM" form.
type ShiftRequest struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// CreatePartnerRequest is the JSON body for POST /api/v1/partners.
type CreatePartnerRequest struct {
	Name    string        `json:"name"`
	Email   string        `json:"email"`
	Phone   string        `json:"phone"`
	AreaIDs []string      `json:"areaIds"`
	Shift   *ShiftRequest `json:"shift,omitempty"`
}

// MetricsRequest carries a partner's performance figures.
type MetricsRequest struct {
	Rating          float64 `json:"rating"`
	CompletedOrders int     `json:"completedOrders"`
	CancelledOrders int     `json:"cancelledOrders"`
}

// UpdatePartnerRequest is the JSON body for PUT /api/v1/partners/:partnerId.
// A nil shift clears the partner's current shift; nil metrics keep the
// current figures.
type UpdatePartnerRequest struct {
	Status  string          `json:"status"`
	AreaIDs []string        `json:"areaIds"`
	Shift   *ShiftRequest   `json:"shift,omitempty"`
	Metrics *MetricsRequest `json:"metrics,omitempty"`
}

// PartnerResponse is the JSON representation of a delivery partner.
type PartnerResponse struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Email       string        `json:"email"`
	Phone       string        `json:"phone"`
	Status      string        `json:"status"`
	CurrentLoad int           `json:"currentLoad"`
	AreaIDs     []string      `json:"areaIds"`
	Shift       *ShiftRequest `json:"shift,omitempty"`
}

// PartnersPageResponse is a page of partners.
type PartnersPageResponse struct {
	Partners []PartnerResponse `json:"partners"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"pageSize"`
}

// PartnerMetricsResponse is the JSON representation of one partner's
// performance figures.
type PartnerMetricsResponse struct {
	PartnerID       string  `json:"partnerId"`
	Rating          float64 `json:"rating"`
	CompletedOrders int     `json:"completedOrders"`
	CancelledOrders int     `json:"cancelledOrders"`
	CurrentLoad     int     `json:"currentLoad"`
	TotalDispatches int64   `json:"totalDispatches"`
}

// AssignmentResponse is the JSON representation of one assignment record.
type AssignmentResponse struct {
	ID        string    `json:"id"`
	OrderID   string    `json:"orderId"`
	PartnerID *string   `json:"partnerId,omitempty"`
	Status    string    `json:"status"`
	Reason    string    `json:"reason,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// AssignmentsPageResponse is a page of assignment records.
type AssignmentsPageResponse struct {
	Assignments []AssignmentResponse `json:"assignments"`
	Total       int64                `json:"total"`
	Page        int                  `json:"page"`
	PageSize    int                  `json:"pageSize"`
}

// AssignmentMetricsResponse summarizes dispatch outcomes.
type AssignmentMetricsResponse struct {
	Total     int64 `json:"total"`
	Succeeded int64 `json:"succeeded"`
	Failed    int64 `json:"failed"`
}

// RunAssignmentResponse is the JSON body returned by
// POST /api/v1/assignments/run.
type RunAssignmentResponse struct {
	Processed int    `json:"processed"`
	Succeeded int    `json:"succeeded"`
	Failed    int    `json:"failed"`
	Message   string `json:"message,omitempty"`
}

func toOrderResponse(o queries.OrderResponse) OrderResponse {
	items := make([]ItemRequest, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, ItemRequest{
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    item.Price,
		})
	}

	resp := OrderResponse{
		ID:          o.ID.String(),
		OrderNumber: o.OrderNumber,
		Customer: CustomerRequest{
			Name:  o.Customer.Name,
			Phone: o.Customer.Phone,
		},
		AreaID:       o.AreaID.String(),
		ScheduledFor: o.ScheduledFor,
		TotalAmount:  o.TotalAmount,
		Status:       o.Status,
		Items:        items,
	}
	if o.PartnerID != nil {
		id := o.PartnerID.String()
		resp.PartnerID = &id
	}
	return resp
}

func toPartnerResponse(p queries.PartnerResponse) PartnerResponse {
	areaIDs := make([]string, 0, len(p.AreaIDs))
	for _, areaID := range p.AreaIDs {
		areaIDs = append(areaIDs, areaID.String())
	}

	resp := PartnerResponse{
		ID:          p.ID.String(),
		Name:        p.Name,
		Email:       p.Email,
		Phone:       p.Phone,
		Status:      p.Status,
		CurrentLoad: p.CurrentLoad,
		AreaIDs:     areaIDs,
	}
	if p.ShiftStart != nil && p.ShiftEnd != nil {
		resp.Shift = &ShiftRequest{Start: *p.ShiftStart, End: *p.ShiftEnd}
	}
	return resp
}

func toAssignmentResponse(a queries.AssignmentResponse) AssignmentResponse {
	resp := AssignmentResponse{
		ID:        a.ID.String(),
		OrderID:   a.OrderID.String(),
		Status:    a.Status,
		Reason:    a.Reason,
		CreatedAt: a.CreatedAt,
	}
	if a.PartnerID != nil {
		id := a.PartnerID.String()
		resp.PartnerID = &id
	}
	return resp
}
