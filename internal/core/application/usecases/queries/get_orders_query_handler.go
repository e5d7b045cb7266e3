package queries

import (
	"context"
	"database/sql"
	"strings"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// GetOrdersQueryHandler retrieves pages of orders from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
//
// Example:
//
//	handler := NewGetOrdersQueryHandler(db)
//	query, _ := NewGetOrdersQuery(1, 20, order.Unknown, nil, nil)
//
//	page, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get orders: %v", err)
//	    return err
//	}
//
//	fmt.Printf("Found %d of %d orders\n", len(page.Orders), page.Total)
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order listing queries.
// Requires a GORM database connection for query execution.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve a page of orders.
// Applies the optional status, area and partner filters, counts the total
// matches, and returns the requested page sorted by creation order.
func (h GetOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersQuery,
) (OrdersPageResponse, error) {
	if err := query.Validate(); err != nil {
		return OrdersPageResponse{}, err
	}

	where, args := buildOrderFilters(query)

	var total int64
	if err := h.db.WithContext(ctx).
		Raw("SELECT COUNT(*) FROM orders"+where, args...).
		Scan(&total).Error; err != nil {
		return OrdersPageResponse{}, err
	}

	offset := (query.Page() - 1) * query.PageSize()
	pageArgs := append(args, query.PageSize(), offset)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_number,
			customer_name,
			customer_phone,
			area_id,
			scheduled_for,
			total_amount,
			status,
			partner_id
		FROM orders`+where+`
		ORDER BY created_at, id
		LIMIT ? OFFSET ?
	`, pageArgs...).Rows()
	if err != nil {
		return OrdersPageResponse{}, err
	}
	defer rows.Close()

	orders := make([]OrderResponse, 0)

	for rows.Next() {
		orderResp, scanErr := scanOrderRow(rows)
		if scanErr != nil {
			return OrdersPageResponse{}, scanErr
		}
		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return OrdersPageResponse{}, err
	}

	if err = loadOrderItems(ctx, h.db, orders); err != nil {
		return OrdersPageResponse{}, err
	}

	return OrdersPageResponse{
		Orders:   orders,
		Total:    total,
		Page:     query.Page(),
		PageSize: query.PageSize(),
	}, nil
}

func buildOrderFilters(query GetOrdersQuery) (string, []any) {
	conditions := make([]string, 0)
	args := make([]any, 0)

	if query.Status() != order.Unknown {
		conditions = append(conditions, "status = ?")
		args = append(args, query.Status().String())
	}
	if query.AreaID() != nil {
		conditions = append(conditions, "area_id = ?")
		args = append(args, query.AreaID().Bytes())
	}
	if query.PartnerID() != nil {
		conditions = append(conditions, "partner_id = ?")
		args = append(args, query.PartnerID().Bytes())
	}

	if len(conditions) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

func scanOrderRow(rows *sql.Rows) (OrderResponse, error) {
	var orderResp OrderResponse
	var id, areaID uuid.UUID
	var partnerID *uuid.UUID

	if err := rows.Scan(
		&id,
		&orderResp.OrderNumber,
		&orderResp.Customer.Name,
		&orderResp.Customer.Phone,
		&areaID,
		&orderResp.ScheduledFor,
		&orderResp.TotalAmount,
		&orderResp.Status,
		&partnerID,
	); err != nil {
		return OrderResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderResponse{}, err
	}
	orderResp.ID = orderID

	orderAreaID, err := kernel.UUIDFromBytes(areaID[:])
	if err != nil {
		return OrderResponse{}, err
	}
	orderResp.AreaID = orderAreaID

	if partnerID != nil {
		raw := *partnerID
		orderPartnerID, idErr := kernel.UUIDFromBytes(raw[:])
		if idErr != nil {
			return OrderResponse{}, idErr
		}
		orderResp.PartnerID = &orderPartnerID
	}

	return orderResp, nil
}

// loadOrderItems attaches the order lines to each order read model with a
// single query over all order IDs.
func loadOrderItems(ctx context.Context, db *gorm.DB, orders []OrderResponse) error {
	if len(orders) == 0 {
		return nil
	}

	index := make(map[kernel.UUID]int, len(orders))
	ids := make([]string, 0, len(orders))
	for i, orderResp := range orders {
		index[orderResp.ID] = i
		ids = append(ids, orderResp.ID.String())
	}

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			order_id,
			name,
			quantity,
			price
		FROM order_items
		WHERE order_id = ANY(?::uuid[])
		ORDER BY order_id, id
	`, pq.Array(ids)).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var orderID uuid.UUID
		var item ItemResponse
		if err = rows.Scan(&orderID, &item.Name, &item.Quantity, &item.Price); err != nil {
			return err
		}

		id, idErr := kernel.UUIDFromBytes(orderID[:])
		if idErr != nil {
			return idErr
		}
		if i, ok := index[id]; ok {
			orders[i].Items = append(orders[i].Items, item)
		}
	}

	return rows.Err()
}
