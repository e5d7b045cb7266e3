// Package order contains the Order aggregate and its lifecycle state machine.
//
// An order belongs to a delivery area, carries a customer, a scheduled
// delivery time, a total amount and its order lines, and moves through the
// Pending -> Assigned -> Picked -> Delivered workflow. The dispatch engine assigns Pending orders to delivery
// partners; all later transitions are driven by status update operations.
package order
