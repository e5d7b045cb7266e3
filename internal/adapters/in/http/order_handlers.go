package http

import (
	"net/http"
	"strconv"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// GetOrders handles GET /api/v1/orders - retrieves a filtered page of orders.
// Query parameters: page, pageSize, status, areaId, assignedTo.
func (s *Server) GetOrders(ctx echo.Context) error {
	page, pageSize, err := parsePagination(ctx)
	if err != nil {
		return writeBadRequest(ctx, "Invalid pagination parameters")
	}

	status := order.Unknown
	if raw := ctx.QueryParam("status"); raw != "" {
		status, err = order.StatusFromString(raw)
		if err != nil {
			return writeBadRequest(ctx, "Invalid status filter")
		}
	}

	areaID, err := parseOptionalIDQuery(ctx, "areaId")
	if err != nil {
		return writeBadRequest(ctx, "Invalid area ID")
	}

	partnerID, err := parseOptionalIDQuery(ctx, "assignedTo")
	if err != nil {
		return writeBadRequest(ctx, "Invalid partner ID")
	}

	query, err := queries.NewGetOrdersQuery(page, pageSize, status, areaID, partnerID)
	if err != nil {
		return writeBadRequest(ctx, "Invalid query: "+err.Error())
	}

	result, err := s.queries.GetOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := OrdersPageResponse{
		Orders:   make([]OrderResponse, 0, len(result.Orders)),
		Total:    result.Total,
		Page:     result.Page,
		PageSize: result.PageSize,
	}
	for _, o := range result.Orders {
		response.Orders = append(response.Orders, toOrderResponse(o))
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/v1/orders - registers a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}

	areaID, err := kernel.UUIDFromString(req.AreaID)
	if err != nil {
		return writeBadRequest(ctx, "Invalid area ID")
	}

	scheduledFor, err := kernel.ParseTimeOfDay(req.ScheduledFor)
	if err != nil {
		return writeBadRequest(ctx, "Invalid scheduled time, expected HH:MM")
	}

	customer, err := order.NewCustomer(req.Customer.Name, req.Customer.Phone)
	if err != nil {
		return writeBadRequest(ctx, "Invalid customer: "+err.Error())
	}

	items := make([]order.Item, 0, len(req.Items))
	for _, itemReq := range req.Items {
		item, itemErr := order.NewItem(itemReq.Name, itemReq.Quantity, itemReq.Price)
		if itemErr != nil {
			return writeBadRequest(ctx, "Invalid order item: "+itemErr.Error())
		}
		items = append(items, item)
	}

	orderID := kernel.NewUUID()

	cmd, err := commands.NewCreateOrderCommand(
		orderID,
		req.OrderNumber,
		customer,
		areaID,
		scheduledFor,
		req.TotalAmount,
		items,
	)
	if err != nil {
		return writeBadRequest(ctx, "Invalid order data: "+err.Error())
	}

	if err = s.commands.CreateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, OrderResponse{
		ID:           orderID.String(),
		OrderNumber:  req.OrderNumber,
		Customer:     req.Customer,
		AreaID:       req.AreaID,
		ScheduledFor: scheduledFor.String(),
		TotalAmount:  req.TotalAmount,
		Status:       order.Pending.String(),
		Items:        req.Items,
	})
}

// GetActiveOrders handles GET /api/v1/orders/active - retrieves in-flight
// orders.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	query := queries.NewGetActiveOrdersQuery()

	orders, err := s.queries.GetActiveOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, toOrderResponse(o))
	}

	return ctx.JSON(http.StatusOK, response)
}

// UpdateOrderStatus handles PATCH /api/v1/orders/:orderId/status - advances
// an order through its fulfillment workflow.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	orderID, err := parseIDParam(ctx, "orderId")
	if err != nil {
		return writeBadRequest(ctx, "Invalid order ID")
	}

	var req UpdateOrderStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}

	status, err := order.StatusFromString(req.Status)
	if err != nil {
		return writeBadRequest(ctx, "Invalid status")
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, status)
	if err != nil {
		return writeBadRequest(ctx, "Invalid status data: "+err.Error())
	}

	if err = s.commands.UpdateOrderStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func parsePagination(ctx echo.Context) (int, int, error) {
	var page, pageSize int
	var err error

	if raw := ctx.QueryParam("page"); raw != "" {
		page, err = strconv.Atoi(raw)
		if err != nil {
			return 0, 0, err
		}
	}
	if raw := ctx.QueryParam("pageSize"); raw != "" {
		pageSize, err = strconv.Atoi(raw)
		if err != nil {
			return 0, 0, err
		}
	}

	return page, pageSize, nil
}

func parseOptionalIDQuery(ctx echo.Context, name string) (*kernel.UUID, error) {
	raw := ctx.QueryParam(name)
	if raw == "" {
		return nil, nil
	}

	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
