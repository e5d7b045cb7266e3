// Package assignment contains the Assignment outcome record: an append-only
// audit entry written for every order processed by a dispatch run.
package assignment

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// ReasonNoSuitablePartner is the reason recorded on a failed assignment
// when no active partner serves the order's area with a covering shift
// and free capacity.
const ReasonNoSuitablePartner = "No suitable partner available"

// Domain errors for assignment operations.
var (
	// ErrReasonIsRequired is returned when a failed assignment carries no reason.
	ErrReasonIsRequired = errs.NewValueIsRequiredError("reason")
	// ErrAssignmentIsNotConstructed is returned when using an improperly
	// initialized Assignment.
	ErrAssignmentIsNotConstructed = errors.New("Assignment must be created via NewSuccess/NewFailure constructors")
)

// Assignment is the immutable record of one assignment attempt.
// Every order processed by a dispatch run yields exactly one record:
// Success with the matched partner, or Failed with a reason. Records are
// append-only; they are never updated or deleted.
//
// Consistency rules:
//   - Success records must reference a partner and carry no reason
//   - Failed records must carry a reason and reference no partner
type Assignment struct {
	// id uniquely identifies the record
	id kernel.UUID
	// orderID references the processed order
	orderID kernel.UUID
	// partnerID references the matched partner (nil for failed records)
	partnerID *kernel.UUID
	// status is the final outcome of the attempt
	status Status
	// reason explains the failure (empty for success records)
	reason string
	// createdAt is when the record was written
	createdAt time.Time
	// guard ensures the record was properly constructed
	guard guard.ConstructorGuard
}

// NewSuccess creates a Success record for an order matched to a partner.
//
// Parameters:
//   - id: Unique identifier for the record
//   - orderID: The processed order
//   - partnerID: The matched delivery partner
//
// Returns:
//   - *Assignment: the record, timestamped with the current time
//   - error: validation error if any identifier is invalid
func NewSuccess(id, orderID, partnerID kernel.UUID) (*Assignment, error) {
	a := &Assignment{
		status:    Success,
		createdAt: time.Now().UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		a.setID(id),
		a.setOrderID(orderID),
		partnerID.Validate(),
	); err != nil {
		return nil, err
	}

	a.partnerID = &partnerID
	return a, nil
}

// NewFailure creates a Failed record for an order that could not be matched.
//
// Parameters:
//   - id: Unique identifier for the record
//   - orderID: The processed order
//   - reason: Why the match failed (must be non-empty; the engine uses
//     ReasonNoSuitablePartner)
//
// Returns:
//   - *Assignment: the record, timestamped with the current time
//   - error: validation error if any parameter is invalid
func NewFailure(id, orderID kernel.UUID, reason string) (*Assignment, error) {
	a := &Assignment{
		status:    Failed,
		createdAt: time.Now().UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		a.setID(id),
		a.setOrderID(orderID),
		a.setReason(reason),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// RestoreAssignment reconstructs an Assignment record from persistent storage.
//
// Parameters:
//   - id: Unique identifier for the record
//   - orderID: The processed order
//   - partnerID: The matched partner, or nil for failed records
//   - status: Persisted outcome status
//   - reason: Persisted failure reason (empty for success records)
//   - createdAt: When the record was written
//
// Returns:
//   - *Assignment: Restored record
//   - error: Validation error if any parameter is invalid or if the status
//     and partner/reason combination is inconsistent
func RestoreAssignment(
	id kernel.UUID,
	orderID kernel.UUID,
	partnerID *kernel.UUID,
	status Status,
	reason string,
	createdAt time.Time,
) (*Assignment, error) {
	a := &Assignment{
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		a.setID(id),
		a.setOrderID(orderID),
		a.setStatus(status),
	); err != nil {
		return nil, err
	}

	switch status {
	case Success:
		if partnerID == nil {
			return nil, errs.NewValueIsRequiredError("partnerId")
		}
		if err := partnerID.Validate(); err != nil {
			return nil, err
		}
		a.partnerID = partnerID
	case Failed:
		if err := a.setReason(reason); err != nil {
			return nil, err
		}
	case Unknown:
		// unreachable: setStatus rejects Unknown
	}

	return a, nil
}

// IsEqual compares two assignment records by their unique identifiers.
func (a *Assignment) IsEqual(other *Assignment) bool {
	return other != nil && a.id.IsEqual(other.id)
}

// Validate checks if the Assignment was properly constructed through a
// constructor.
//
// Returns:
//   - error: ErrAssignmentIsNotConstructed if improperly initialized, nil if valid
func (a *Assignment) Validate() error {
	if a == nil {
		return ErrAssignmentIsNotConstructed
	}
	return a.guard.Validate(ErrAssignmentIsNotConstructed)
}

// ID returns the record's unique identifier.
func (a *Assignment) ID() kernel.UUID {
	return a.id
}

// OrderID returns the processed order's identifier.
func (a *Assignment) OrderID() kernel.UUID {
	return a.orderID
}

// Partner returns the matched partner's identifier.
// Returns nil for failed records.
func (a *Assignment) Partner() *kernel.UUID {
	return a.partnerID
}

// Status returns the outcome of the assignment attempt.
func (a *Assignment) Status() Status {
	return a.status
}

// Reason returns the failure reason.
// Returns an empty string for success records.
func (a *Assignment) Reason() string {
	return a.reason
}

// CreatedAt returns when the record was written.
func (a *Assignment) CreatedAt() time.Time {
	return a.createdAt
}

// IsSuccess reports whether the order was matched to a partner.
func (a *Assignment) IsSuccess() bool {
	return a.status == Success
}

// setID sets the record's unique identifier with validation.
// This is an internal setter used during construction.
func (a *Assignment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	a.id = id
	return nil
}

// setOrderID sets the processed order reference with validation.
// This is an internal setter used during construction.
func (a *Assignment) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	a.orderID = orderID
	return nil
}

// setStatus sets the outcome status with validation.
// This is an internal setter used during restoration.
func (a *Assignment) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	a.status = status
	return nil
}

// setReason sets the failure reason with validation.
// This is an internal setter used during construction of failed records.
func (a *Assignment) setReason(reason string) error {
	if reason == "" {
		return ErrReasonIsRequired
	}

	a.reason = reason
	return nil
}
