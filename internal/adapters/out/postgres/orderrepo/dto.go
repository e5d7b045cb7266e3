// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. Handles the conversion between the order aggregate and
// its database representation.
package orderrepo

import (
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The status and scheduled time are stored in their uppercase/"HH:MM" wire
// forms; "HH:MM" compares correctly as text in SQL.
type OrderDTO struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey"`
	OrderNumber   string         `gorm:"type:varchar(64);not null;uniqueIndex"`
	CustomerName  string         `gorm:"type:varchar(128);not null"`
	CustomerPhone string         `gorm:"type:varchar(32);not null"`
	AreaID        uuid.UUID      `gorm:"type:uuid;not null;index"`
	ScheduledFor  string         `gorm:"type:varchar(5);not null"`
	TotalAmount   float64        `gorm:"type:numeric(12,2);not null"`
	Status        string         `gorm:"type:varchar(16);not null;index"`
	PartnerID     *uuid.UUID     `gorm:"type:uuid;index"`
	Items         []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt     time.Time      `gorm:"autoCreateTime"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents the database structure for a single order line.
// Lines are written together with their order and never updated afterwards.
type OrderItemDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Name     string    `gorm:"type:varchar(128);not null"`
	Quantity int       `gorm:"not null"`
	Price    float64   `gorm:"type:numeric(12,2);not null"`
}

// TableName specifies the database table name for order line entities.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var partnerID *uuid.UUID
	if aggregate.Partner() != nil {
		raw := aggregate.Partner().Bytes()
		partnerID = &raw
	}

	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			ID:       uuid.New(),
			OrderID:  aggregate.ID().Bytes(),
			Name:     item.Name(),
			Quantity: item.Quantity(),
			Price:    item.Price(),
		})
	}

	return OrderDTO{
		ID:            aggregate.ID().Bytes(),
		OrderNumber:   aggregate.OrderNumber(),
		CustomerName:  aggregate.Customer().Name(),
		CustomerPhone: aggregate.Customer().Phone(),
		AreaID:        aggregate.AreaID().Bytes(),
		ScheduledFor:  aggregate.ScheduledFor().String(),
		TotalAmount:   aggregate.TotalAmount(),
		Status:        aggregate.Status().String(),
		PartnerID:     partnerID,
		Items:         items,
	}
}

// toDomain converts a database DTO back to an order aggregate using
// RestoreOrder, which re-validates the persisted state.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	areaID, err := kernel.UUIDFromBytes(dto.AreaID[:])
	if err != nil {
		return nil, err
	}

	scheduledFor, err := kernel.ParseTimeOfDay(dto.ScheduledFor)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	customer, err := order.NewCustomer(dto.CustomerName, dto.CustomerPhone)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := order.NewItem(itemDTO.Name, itemDTO.Quantity, itemDTO.Price)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	var partnerID *kernel.UUID
	if dto.PartnerID != nil {
		pID, partnerErr := kernel.UUIDFromBytes((*dto.PartnerID)[:])
		if partnerErr != nil {
			return nil, partnerErr
		}
		partnerID = &pID
	}

	return order.RestoreOrder(
		id,
		dto.OrderNumber,
		customer,
		areaID,
		scheduledFor,
		dto.TotalAmount,
		items,
		status,
		partnerID,
	)
}
