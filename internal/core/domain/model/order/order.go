package order

import (
	"errors"
	"fmt"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// Domain errors for order operations.
var (
	// ErrOrderNumberIsRequired is returned when attempting to create an order
	// without an order number.
	ErrOrderNumberIsRequired = errs.NewValueIsRequiredError("orderNumber")
	// ErrOrderItemsAreRequired is returned when attempting to create an order
	// without any order lines.
	ErrOrderItemsAreRequired = errs.NewValueIsRequiredError("items")
	// ErrOrderIsNotConstructed is returned when using an improperly initialized Order.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order represents a customer order in the system. It is the aggregate root
// that manages the order lifecycle from creation through partner assignment
// to delivery.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and non-empty order number
//   - Must reference a valid delivery area
//   - Must carry a valid scheduled delivery time
//   - Must carry a customer and at least one order line
//   - Total amount must be positive
//   - Status transitions follow the Pending -> Assigned -> Picked -> Delivered
//     workflow; assignment is only possible while Pending
//   - Can only be created through the NewOrder/RestoreOrder constructors
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// orderNumber is the human-facing order reference, unique per order
	orderNumber string

	// customer is the person the order is delivered to
	customer Customer

	// items are the order lines; at least one, immutable after creation
	items []Item

	// areaID references the delivery area the order belongs to
	areaID kernel.UUID

	// scheduledFor is the wall-clock time the delivery is scheduled at
	scheduledFor kernel.TimeOfDay

	// totalAmount is the order value (must be positive)
	totalAmount float64

	// status represents the current state in the order lifecycle
	status Status

	// partnerID is the assigned delivery partner's ID (nil if unassigned)
	partnerID *kernel.UUID

	// guard ensures the order was properly constructed
	guard guard.ConstructorGuard
}

// NewOrder creates a new Order instance with validation. This is the only way
// to create a fresh Order, ensuring all business invariants are maintained.
//
// Parameters:
//   - id: Unique identifier for the order (must be valid UUID)
//   - orderNumber: Human-facing order reference (must be non-empty)
//   - customer: The customer the order is delivered to (must be constructed)
//   - areaID: Identifier of the delivery area (must be valid UUID)
//   - scheduledFor: Scheduled delivery time (must be constructed TimeOfDay)
//   - totalAmount: Order value (must be positive)
//   - items: Order lines (at least one, each constructed via NewItem)
//
// Returns:
//   - *Order: The created order if all validations pass
//   - error: Validation error if any parameter is invalid (aggregated for
//     multiple issues)
//
// Example:
//
//	scheduled, _ := kernel.ParseTimeOfDay("14:30")
//	customer, _ := order.NewCustomer("Jane Doe", "+15550100")
//	item, _ := order.NewItem("Margherita", 2, 124.95)
//	order, err := NewOrder(kernel.NewUUID(), "ORD-1001", customer, areaID, scheduled, 249.90, []Item{item})
//	if err != nil {
//	    // Handle validation error
//	}
//
// The constructor ensures the order is created with Pending status and no
// partner assigned.
func NewOrder(
	id kernel.UUID,
	orderNumber string,
	customer Customer,
	areaID kernel.UUID,
	scheduledFor kernel.TimeOfDay,
	totalAmount float64,
	items []Item,
) (*Order, error) {
	order := &Order{
		status: Pending,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		order.setID(id),
		order.setOrderNumber(orderNumber),
		order.setCustomer(customer),
		order.setAreaID(areaID),
		order.setScheduledFor(scheduledFor),
		order.setTotalAmount(totalAmount),
		order.setItems(items),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order aggregate from persistent storage.
// Unlike NewOrder which always starts orders in Pending status, this
// constructor restores an order to its previously persisted state, including
// status and partner assignment.
//
// Parameters:
//   - id: Unique identifier for the order
//   - orderNumber: Human-facing order reference
//   - customer: The customer the order is delivered to
//   - areaID: Identifier of the delivery area
//   - scheduledFor: Scheduled delivery time
//   - totalAmount: Order value
//   - items: Persisted order lines
//   - status: Persisted lifecycle status
//   - partnerID: Assigned partner ID, or nil for unassigned orders
//
// Returns:
//   - *Order: Restored order aggregate
//   - error: Validation error if any parameter is invalid or if the status
//     and partner assignment are inconsistent (e.g. an Assigned order
//     without a partner)
func RestoreOrder(
	id kernel.UUID,
	orderNumber string,
	customer Customer,
	areaID kernel.UUID,
	scheduledFor kernel.TimeOfDay,
	totalAmount float64,
	items []Item,
	status Status,
	partnerID *kernel.UUID,
) (*Order, error) {
	order := &Order{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		order.setID(id),
		order.setOrderNumber(orderNumber),
		order.setCustomer(customer),
		order.setAreaID(areaID),
		order.setScheduledFor(scheduledFor),
		order.setTotalAmount(totalAmount),
		order.setItems(items),
		order.setStatus(status),
		order.setPartnerID(partnerID),
	); err != nil {
		return nil, err
	}

	if err := order.status.ValidateCanHavePartner(order.partnerID != nil); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate checks if the Order was properly constructed through a constructor.
// The zero value of Order is invalid and will fail this validation.
//
// Returns:
//   - error: ErrOrderIsNotConstructed if improperly initialized, nil if valid
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
// Orders are considered equal if they have the same ID.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OrderNumber returns the human-facing order reference.
func (o *Order) OrderNumber() string {
	return o.orderNumber
}

// Customer returns the customer the order is delivered to.
func (o *Order) Customer() Customer {
	return o.customer
}

// Items returns a copy of the order lines.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// AreaID returns the identifier of the delivery area the order belongs to.
func (o *Order) AreaID() kernel.UUID {
	return o.areaID
}

// ScheduledFor returns the scheduled delivery time of the order.
func (o *Order) ScheduledFor() kernel.TimeOfDay {
	return o.scheduledFor
}

// TotalAmount returns the order's value.
func (o *Order) TotalAmount() float64 {
	return o.totalAmount
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Partner returns the assigned delivery partner's ID.
// Returns nil if no partner is assigned.
func (o *Order) Partner() *kernel.UUID {
	return o.partnerID
}

// Assign assigns the order to a delivery partner and updates the status to
// Assigned.
//
// This method enforces the following business rules:
//   - The partner ID must be valid
//   - The order must be in Pending status; an order that already has a
//     partner is never reassigned by the dispatch engine
//
// Parameters:
//   - partnerID: The ID of the delivery partner to assign
//
// Returns:
//   - nil on successful assignment
//   - error if the partner ID is invalid or the status transition is not
//     allowed
//
// After successful assignment, the order's status becomes Assigned and
// Partner() will return the assigned partner's ID.
func (o *Order) Assign(partnerID kernel.UUID) error {
	if err := partnerID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Assign()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.partnerID = &partnerID
	return nil
}

// Pick marks the order as collected by its assigned partner.
//
// Returns:
//   - nil on success
//   - error if the order is not in Assigned status
func (o *Order) Pick() error {
	newStatus, err := o.status.Pick()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Deliver marks the order as delivered to the customer.
// Delivered is the final state in the order lifecycle.
//
// Returns:
//   - nil on success
//   - error if the order is not in Picked status
func (o *Order) Deliver() error {
	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// ChangeStatus transitions the order to the requested status through the
// state machine. It routes to the matching transition method so every status
// change passes the same business rules.
//
// Parameters:
//   - target: The desired status (Picked or Delivered; Assigned requires a
//     partner and must go through Assign)
//
// Returns:
//   - nil on a successful transition
//   - error if the transition is not allowed from the current status or
//     the target status cannot be reached directly
func (o *Order) ChangeStatus(target Status) error {
	switch target {
	case Picked:
		return o.Pick()
	case Delivered:
		return o.Deliver()
	case Unknown, Pending, Assigned:
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("cannot change order status to %s directly", target.String()),
		)
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%d is not a valid status", target),
		)
	}
}

// setID validates and sets the order's unique identifier.
// This is a private method used only during construction.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setOrderNumber validates and sets the human-facing order reference.
// This is a private method used only during construction.
func (o *Order) setOrderNumber(orderNumber string) error {
	if orderNumber == "" {
		return ErrOrderNumberIsRequired
	}
	o.orderNumber = orderNumber
	return nil
}

// setCustomer validates and sets the customer the order is delivered to.
// This is a private method used only during construction.
func (o *Order) setCustomer(customer Customer) error {
	if err := customer.Validate(); err != nil {
		return err
	}
	o.customer = customer
	return nil
}

// setItems validates and sets the order lines. At least one line is
// required. The collection is copied to keep the aggregate isolated from
// the caller.
func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return ErrOrderItemsAreRequired
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}

// setAreaID validates and sets the delivery area reference.
// This is a private method used only during construction.
func (o *Order) setAreaID(areaID kernel.UUID) error {
	if err := areaID.Validate(); err != nil {
		return err
	}
	o.areaID = areaID
	return nil
}

// setScheduledFor validates and sets the scheduled delivery time.
// This is a private method used only during construction.
func (o *Order) setScheduledFor(scheduledFor kernel.TimeOfDay) error {
	if err := scheduledFor.Validate(); err != nil {
		return err
	}
	o.scheduledFor = scheduledFor
	return nil
}

// setTotalAmount validates and sets the order's value.
// Total amount must be positive.
// This is a private method used only during construction.
func (o *Order) setTotalAmount(totalAmount float64) error {
	if totalAmount <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"totalAmount is invalid",
			fmt.Errorf("%v is not greater than 0", totalAmount),
		)
	}
	o.totalAmount = totalAmount
	return nil
}

// setStatus validates and sets the lifecycle status.
// This is a private method used only during restoration.
func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

// setPartnerID validates and sets the assigned partner reference.
// A nil partner ID is allowed for unassigned orders.
// This is a private method used only during restoration.
func (o *Order) setPartnerID(partnerID *kernel.UUID) error {
	if partnerID == nil {
		return nil
	}
	if err := partnerID.Validate(); err != nil {
		return err
	}
	o.partnerID = partnerID
	return nil
}
