package partner

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// MaxLoad is the maximum number of orders a partner can carry concurrently.
// A partner at MaxLoad is skipped by the dispatch engine until capacity
// frees up.
const MaxLoad = 3

// Domain errors for partner operations.
var (
	// ErrNameIsRequired is returned when attempting to create a partner without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrEmailIsRequired is returned when attempting to create a partner without an email.
	ErrEmailIsRequired = errs.NewValueIsRequiredError("email")
	// ErrPhoneIsRequired is returned when attempting to create a partner without a phone.
	ErrPhoneIsRequired = errs.NewValueIsRequiredError("phone")
	// ErrPartnerIsNotConstructed is returned when using an improperly initialized Partner.
	ErrPartnerIsNotConstructed = errors.New("Partner must be created via NewPartner constructor")
)

// Partner represents a delivery partner in the system.
// It is an aggregate root that manages partner identity, service coverage,
// working hours and concurrent order load.
//
// Key responsibilities:
//   - Managing partner identity (ID, name, email, phone)
//   - Tracking the set of areas the partner serves
//   - Tracking the working shift (optional; no shift means never available)
//   - Enforcing the concurrent load capacity (0 <= load <= MaxLoad)
//   - Carrying performance metrics
//
// Business rules:
//   - Partner must have a valid UUID, non-empty name, email and phone
//   - Load never exceeds MaxLoad and never goes below zero
//   - Only Active partners participate in dispatch runs
//
// Example usage:
//
//	p, err := NewPartner(kernel.NewUUID(), "Ravi Kumar", "ravi@example.com", "+911234567890", areaIDs)
//	if err != nil {
//	    // Handle construction error
//	}
type Partner struct {
	// id uniquely identifies the partner
	id kernel.UUID
	// name is the human-readable name of the partner
	name string
	// email is the partner's contact email, unique across partners
	email string
	// phone is the partner's contact phone number
	phone string
	// status controls eligibility for dispatch runs
	status Status
	// currentLoad is the number of orders concurrently assigned (0..MaxLoad)
	currentLoad int
	// areaIDs is the set of areas the partner serves
	areaIDs []kernel.UUID
	// shift is the working interval; nil means the partner is never available
	shift *Shift
	// metrics holds the partner's performance counters
	metrics Metrics
	// guard ensures the partner was properly constructed
	guard guard.ConstructorGuard
}

// NewPartner creates a new Partner with the specified parameters.
// This is the only way to create a fresh Partner instance.
//
// The constructor validates all input parameters. New partners start Active
// with zero load, zero metrics and no shift.
//
// Parameters:
//   - id: Unique identifier for the partner (must be valid UUID)
//   - name: Human-readable name (must be non-empty)
//   - email: Contact email (must be non-empty)
//   - phone: Contact phone number (must be non-empty)
//   - areaIDs: Areas the partner serves (may be empty; each must be valid)
//
// Returns:
//   - *Partner: A fully initialized partner
//   - error: Validation error if any parameter is invalid (aggregated
//     errors for multiple issues)
func NewPartner(
	id kernel.UUID,
	name string,
	email string,
	phone string,
	areaIDs []kernel.UUID,
) (*Partner, error) {
	partner := &Partner{
		status: Active,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		partner.setID(id),
		partner.setName(name),
		partner.setEmail(email),
		partner.setPhone(phone),
		partner.setAreaIDs(areaIDs),
	); err != nil {
		return nil, err
	}

	return partner, nil
}

// RestorePartner reconstructs a Partner aggregate from persistent storage.
// Unlike NewPartner which creates fresh partners with defaults, this
// constructor restores a partner to its previously persisted state,
// including status, load, shift and metrics.
//
// Parameters:
//   - id: Unique identifier for the partner
//   - name: Human-readable partner name
//   - email: Contact email
//   - phone: Contact phone number
//   - status: Persisted availability status
//   - currentLoad: Persisted concurrent load (0..MaxLoad)
//   - areaIDs: Areas the partner serves
//   - shift: Working shift, or nil if none
//   - metrics: Performance counters
//
// Returns:
//   - *Partner: Restored partner aggregate
//   - error: Validation error if any parameter is invalid
func RestorePartner(
	id kernel.UUID,
	name string,
	email string,
	phone string,
	status Status,
	currentLoad int,
	areaIDs []kernel.UUID,
	shift *Shift,
	metrics Metrics,
) (*Partner, error) {
	partner := &Partner{
		metrics: metrics,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		partner.setID(id),
		partner.setName(name),
		partner.setEmail(email),
		partner.setPhone(phone),
		partner.setStatus(status),
		partner.setCurrentLoad(currentLoad),
		partner.setAreaIDs(areaIDs),
		partner.setShift(shift),
	); err != nil {
		return nil, err
	}

	return partner, nil
}

// IsEqual compares two partners for equality based on their unique identifiers.
//
// Parameters:
//   - other: The partner to compare with (can be nil)
//
// Returns:
//   - bool: true if partners have the same ID, false otherwise
func (p *Partner) IsEqual(other *Partner) bool {
	if other == nil {
		return false
	}
	return p.id.IsEqual(other.id)
}

// Validate checks if the Partner was properly constructed through a
// constructor. The zero value of Partner is invalid and will fail this
// validation.
//
// Returns:
//   - error: ErrPartnerIsNotConstructed if improperly initialized, nil if valid
func (p *Partner) Validate() error {
	if p == nil {
		return ErrPartnerIsNotConstructed
	}
	return p.guard.Validate(ErrPartnerIsNotConstructed)
}

// ID returns the unique identifier of the partner.
func (p *Partner) ID() kernel.UUID {
	return p.id
}

// Name returns the human-readable name of the partner.
func (p *Partner) Name() string {
	return p.name
}

// Email returns the partner's contact email.
func (p *Partner) Email() string {
	return p.email
}

// Phone returns the partner's contact phone number.
func (p *Partner) Phone() string {
	return p.phone
}

// Status returns the partner's availability status.
func (p *Partner) Status() Status {
	return p.status
}

// CurrentLoad returns the number of orders concurrently assigned to the
// partner.
func (p *Partner) CurrentLoad() int {
	return p.currentLoad
}

// AreaIDs returns the areas the partner serves.
// The returned slice is a copy to prevent external modification.
func (p *Partner) AreaIDs() []kernel.UUID {
	out := make([]kernel.UUID, len(p.areaIDs))
	copy(out, p.areaIDs)
	return out
}

// Shift returns the partner's working shift.
// Returns nil if the partner has no shift.
func (p *Partner) Shift() *Shift {
	return p.shift
}

// Metrics returns the partner's performance counters.
func (p *Partner) Metrics() Metrics {
	return p.metrics
}

// IsActive reports whether the partner participates in dispatch runs.
func (p *Partner) IsActive() bool {
	return p.status == Active
}

// Activate marks the partner as working and eligible for assignment.
func (p *Partner) Activate() {
	p.status = Active
}

// Deactivate excludes the partner from dispatch runs.
// The partner keeps its areas, shift and metrics.
func (p *Partner) Deactivate() {
	p.status = Inactive
}

// ServesArea reports whether the partner serves the given area.
//
// Parameters:
//   - areaID: The area to check
//
// Returns:
//   - bool: true if the area is in the partner's served set
func (p *Partner) ServesArea(areaID kernel.UUID) bool {
	for _, id := range p.areaIDs {
		if id.IsEqual(areaID) {
			return true
		}
	}
	return false
}

// IsAvailableAt reports whether the partner's shift covers the given time.
//
// Business rules:
//   - A partner with no shift is never available
//   - Shift boundaries are inclusive: a time equal to the shift's start or
//     end counts as available
//
// Parameters:
//   - t: The time-of-day to check
//
// Returns:
//   - bool: true if the partner's shift covers the time
func (p *Partner) IsAvailableAt(t kernel.TimeOfDay) bool {
	if p.shift == nil {
		return false
	}
	return p.shift.Covers(t)
}

// HasCapacity reports whether the partner can take one more order.
// Returns false once the partner's load reaches MaxLoad.
func (p *Partner) HasCapacity() bool {
	return p.currentLoad < MaxLoad
}

// IncrementLoad records one more concurrently assigned order.
//
// Returns:
//   - nil on success
//   - error if the partner is already at MaxLoad
//
// The dispatch engine calls this after matching an order to the partner;
// the load mutation is visible to subsequent matching decisions within the
// same run.
func (p *Partner) IncrementLoad() error {
	if p.currentLoad >= MaxLoad {
		return errs.NewValueIsOutOfRangeError("currentLoad", p.currentLoad+1, 0, MaxLoad)
	}

	p.currentLoad++
	return nil
}

// DecrementLoad releases one unit of the partner's load.
//
// Returns:
//   - nil on success
//   - error if the load is already zero
//
// Called when an assigned order reaches a terminal state and no longer
// occupies partner capacity.
func (p *Partner) DecrementLoad() error {
	if p.currentLoad <= 0 {
		return errs.NewValueIsOutOfRangeError("currentLoad", p.currentLoad-1, 0, MaxLoad)
	}

	p.currentLoad--
	return nil
}

// SetShift assigns or replaces the partner's working shift.
//
// Parameters:
//   - shift: The new shift (must be properly constructed)
//
// Returns:
//   - error: validation error if the shift is invalid
func (p *Partner) SetShift(shift Shift) error {
	if err := shift.Validate(); err != nil {
		return err
	}

	p.shift = &shift
	return nil
}

// ClearShift removes the partner's working shift.
// A partner without a shift is never available for assignment.
func (p *Partner) ClearShift() {
	p.shift = nil
}

// ReplaceAreas replaces the partner's served area set.
//
// Parameters:
//   - areaIDs: The new set of served areas (may be empty; each must be valid)
//
// Returns:
//   - error: validation error if any area ID is invalid
func (p *Partner) ReplaceAreas(areaIDs []kernel.UUID) error {
	return p.setAreaIDs(areaIDs)
}

// UpdateMetrics replaces the partner's performance counters.
func (p *Partner) UpdateMetrics(metrics Metrics) {
	p.metrics = metrics
}

// setID sets the partner's unique identifier with validation.
// This is an internal setter used during partner construction.
func (p *Partner) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	p.id = id
	return nil
}

// setName sets the partner's name with validation.
// This is an internal setter used during partner construction.
func (p *Partner) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	p.name = name
	return nil
}

// setEmail sets the partner's email with validation.
// This is an internal setter used during partner construction.
func (p *Partner) setEmail(email string) error {
	if email == "" {
		return ErrEmailIsRequired
	}

	p.email = email
	return nil
}

// setPhone sets the partner's phone with validation.
// This is an internal setter used during partner construction.
func (p *Partner) setPhone(phone string) error {
	if phone == "" {
		return ErrPhoneIsRequired
	}

	p.phone = phone
	return nil
}

// setStatus sets the partner's availability status with validation.
// This is an internal setter used during partner restoration.
func (p *Partner) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	p.status = status
	return nil
}

// setCurrentLoad sets the partner's concurrent load with validation.
// This is an internal setter used during partner restoration.
func (p *Partner) setCurrentLoad(currentLoad int) error {
	if currentLoad < 0 || currentLoad > MaxLoad {
		return errs.NewValueIsOutOfRangeError("currentLoad", currentLoad, 0, MaxLoad)
	}

	p.currentLoad = currentLoad
	return nil
}

// setAreaIDs sets the partner's served area collection with validation.
// The collection is copied to keep the aggregate isolated from the caller.
func (p *Partner) setAreaIDs(areaIDs []kernel.UUID) error {
	for _, id := range areaIDs {
		if err := id.Validate(); err != nil {
			return err
		}
	}

	p.areaIDs = make([]kernel.UUID, len(areaIDs))
	copy(p.areaIDs, areaIDs)
	return nil
}

// setShift sets the partner's shift with validation.
// A nil shift is allowed and means the partner is never available.
// This is an internal setter used during partner restoration.
func (p *Partner) setShift(shift *Shift) error {
	if shift == nil {
		return nil
	}
	if err := shift.Validate(); err != nil {
		return err
	}

	p.shift = shift
	return nil
}
