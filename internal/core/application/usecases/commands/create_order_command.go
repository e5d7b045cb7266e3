package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrOrderNumberIsRequired = errors.New("order number is required")
	ErrOrderItemsAreRequired = errors.New("at least one order item is required")
	ErrTotalAmountIsInvalid  = errors.New("total amount must be greater than 0")
)

// CreateOrderCommand represents a request to register a new customer order.
// Encapsulates the order reference, customer, delivery area, scheduled time,
// value and order lines.
//
// Example:
//
//	scheduled, _ := kernel.ParseTimeOfDay("14:30")
//	customer, _ := order.NewCustomer("Jane Doe", "+15550100")
//	item, _ := order.NewItem("Margherita", 2, 124.95)
//	cmd, err := NewCreateOrderCommand(
//	    kernel.NewUUID(), "ORD-1001", customer, areaID, scheduled, 249.90, []order.Item{item},
//	)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	orderNumber  string
	customer     order.Customer
	areaID       kernel.UUID
	scheduledFor kernel.TimeOfDay
	totalAmount  float64
	items        []order.Item

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new customer order.
// Validates identifiers, the order number, the customer, the scheduled time,
// the total amount and the order lines. Returns an error if any validation
// fails.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	orderNumber string,
	customer order.Customer,
	areaID kernel.UUID,
	scheduledFor kernel.TimeOfDay,
	totalAmount float64,
	items []order.Item,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setOrderNumber(orderNumber),
		orderCommand.setCustomer(customer),
		orderCommand.setAreaID(areaID),
		orderCommand.setScheduledFor(scheduledFor),
		orderCommand.setTotalAmount(totalAmount),
		orderCommand.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// OrderNumber returns the human-facing order reference.
func (c CreateOrderCommand) OrderNumber() string {
	return c.orderNumber
}

// Customer returns the customer the order is delivered to.
func (c CreateOrderCommand) Customer() order.Customer {
	return c.customer
}

// Items returns the order lines.
func (c CreateOrderCommand) Items() []order.Item {
	return c.items
}

// AreaID returns the delivery area identifier.
func (c CreateOrderCommand) AreaID() kernel.UUID {
	return c.areaID
}

// ScheduledFor returns the scheduled delivery time.
func (c CreateOrderCommand) ScheduledFor() kernel.TimeOfDay {
	return c.scheduledFor
}

// TotalAmount returns the order value.
func (c CreateOrderCommand) TotalAmount() float64 {
	return c.totalAmount
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setOrderNumber(orderNumber string) error {
	if orderNumber == "" {
		return ErrOrderNumberIsRequired
	}

	c.orderNumber = orderNumber
	return nil
}

func (c *CreateOrderCommand) setCustomer(customer order.Customer) error {
	if err := customer.Validate(); err != nil {
		return err
	}

	c.customer = customer
	return nil
}

func (c *CreateOrderCommand) setItems(items []order.Item) error {
	if len(items) == 0 {
		return ErrOrderItemsAreRequired
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	c.items = items
	return nil
}

func (c *CreateOrderCommand) setAreaID(areaID kernel.UUID) error {
	if err := areaID.Validate(); err != nil {
		return err
	}

	c.areaID = areaID
	return nil
}

func (c *CreateOrderCommand) setScheduledFor(scheduledFor kernel.TimeOfDay) error {
	if err := scheduledFor.Validate(); err != nil {
		return err
	}

	c.scheduledFor = scheduledFor
	return nil
}

func (c *CreateOrderCommand) setTotalAmount(totalAmount float64) error {
	if totalAmount <= 0 {
		return ErrTotalAmountIsInvalid
	}

	c.totalAmount = totalAmount
	return nil
}
