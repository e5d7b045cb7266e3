package order

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct fulfillment workflow.
//
// State transitions:
//
//	Pending ──> Assigned ──> Picked ──> Delivered
//
// Orders start Pending, get Assigned to a delivery partner by the
// dispatch engine, become Picked when the partner collects the order,
// and end Delivered. Delivered is a final state.
//
// Status is a value object that validates state transitions
// and provides string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is first created.
	// Orders in this status are waiting to be assigned to a delivery partner.
	Pending

	// Assigned indicates the order has been matched to a delivery partner.
	Assigned

	// Picked indicates the assigned partner has collected the order.
	Picked

	// Delivered indicates the order reached the customer.
	// This is a final state with no further transitions allowed.
	Delivered
)

// getStatusStrings returns a map of Status values to their string representations.
// The uppercase form is the wire and persistence format.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "UNKNOWN",
		Pending:   "PENDING",
		Assigned:  "ASSIGNED",
		Picked:    "PICKED",
		Delivered: "DELIVERED",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "PENDING",
		Assigned:  "ASSIGNED",
		Picked:    "PICKED",
		Delivered: "DELIVERED",
	}
}

// StatusFromString parses the uppercase wire form into a Status.
//
// Returns:
//   - the matching Status for "PENDING", "ASSIGNED", "PICKED", "DELIVERED"
//   - error for any other input
//
// Used by the HTTP layer and the persistence DTOs.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}

	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid order status", s),
	)
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Pending, Assigned, Picked, Delivered.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the uppercase name of the status.
//
// Returns:
//   - "PENDING", "ASSIGNED", "PICKED", or "DELIVERED" for valid statuses
//   - "UNKNOWN" for invalid status values
//
// This method implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// ValidateAssign checks if the status allows partner assignment without
// performing the transition.
//
// Only Pending orders can be assigned. The dispatch engine never touches
// an order that already has a partner, so there is no reassignment path.
//
// Returns:
//   - nil if assignment is allowed from the current status
//   - error with details if assignment is not allowed
func (s Status) ValidateAssign() error {
	if s != Pending {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to assign", s.String()),
		)
	}
	return nil
}

// ValidateCanHavePartner validates the consistency between order status and
// partner assignment.
//
// Business rules:
//   - Pending orders must not have a partner assigned
//   - Assigned, Picked and Delivered orders must have a partner assigned
//
// Parameters:
//   - partner: whether the order has a partner assigned
//
// Returns:
//   - error: validation error if status and partner assignment are inconsistent
func (s Status) ValidateCanHavePartner(partner bool) error {
	if partner && s == Pending {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have a partner", s.String()),
		)
	}

	if !partner && s != Pending {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have no partner", s.String()),
		)
	}

	return nil
}

// Assign transitions the status to Assigned.
//
// Valid transitions:
//   - Pending -> Assigned
//
// Returns:
//   - (Assigned, nil) on valid transition
//   - (0, error) if transition is not allowed from current status
//
// This method is used by Order.Assign() to enforce state transitions.
func (s Status) Assign() (Status, error) {
	if err := s.ValidateAssign(); err != nil {
		return 0, err
	}

	return Assigned, nil
}

// Pick transitions the status to Picked.
//
// Valid transitions:
//   - Assigned -> Picked
//
// Returns:
//   - (Picked, nil) on valid transition
//   - (0, error) if transition is not allowed from current status
func (s Status) Pick() (Status, error) {
	if s != Assigned {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to pick", s.String()),
		)
	}

	return Picked, nil
}

// Deliver transitions the status to Delivered.
//
// Valid transitions:
//   - Picked -> Delivered
//
// Returns:
//   - (Delivered, nil) on valid transition
//   - (0, error) if transition is not allowed from current status
//
// Delivered is a final state with no further transitions possible.
func (s Status) Deliver() (Status, error) {
	if s != Picked {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to deliver", s.String()),
		)
	}

	return Delivered, nil
}
