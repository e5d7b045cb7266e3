// Package area contains the Area aggregate: a named service area that
// orders are placed in and delivery partners serve.
package area

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// Domain errors for area operations.
var (
	// ErrNameIsRequired is returned when attempting to create an area without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrAreaIsNotConstructed is returned when using an improperly initialized Area.
	ErrAreaIsNotConstructed = errors.New("Area must be created via NewArea constructor")
)

// Area represents a geographic service area. Orders reference the area they
// are delivered in, and delivery partners declare the set of areas they
// serve. Matching an order to a partner requires the partner to serve the
// order's area.
type Area struct {
	// id uniquely identifies the area
	id kernel.UUID
	// name is the human-readable name of the area
	name string
	// guard ensures the area was properly constructed
	guard guard.ConstructorGuard
}

// NewArea creates a new Area with the specified parameters.
//
// Parameters:
//   - id: Unique identifier for the area (must be valid UUID)
//   - name: Human-readable name (must be non-empty)
//
// Returns:
//   - *Area: A fully initialized area
//   - error: Validation error if any parameter is invalid
func NewArea(id kernel.UUID, name string) (*Area, error) {
	area := &Area{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		area.setID(id),
		area.setName(name),
	); err != nil {
		return nil, err
	}

	return area, nil
}

// RestoreArea reconstructs an Area aggregate from persistent storage.
// Identical to NewArea for this aggregate; kept as a separate constructor
// so persistence code reads the same across aggregates.
func RestoreArea(id kernel.UUID, name string) (*Area, error) {
	return NewArea(id, name)
}

// IsEqual compares two areas by their unique identifiers.
func (a *Area) IsEqual(other *Area) bool {
	return other != nil && a.id.IsEqual(other.id)
}

// Validate checks if the Area was properly constructed through NewArea.
//
// Returns:
//   - error: ErrAreaIsNotConstructed if improperly initialized, nil if valid
func (a *Area) Validate() error {
	if a == nil {
		return ErrAreaIsNotConstructed
	}
	return a.guard.Validate(ErrAreaIsNotConstructed)
}

// ID returns the area's unique identifier.
func (a *Area) ID() kernel.UUID {
	return a.id
}

// Name returns the human-readable name of the area.
func (a *Area) Name() string {
	return a.name
}

// Rename changes the area's name.
//
// Returns:
//   - error: ErrNameIsRequired if the new name is empty
func (a *Area) Rename(name string) error {
	return a.setName(name)
}

// setID sets the area's unique identifier with validation.
// This is an internal setter used during area construction.
func (a *Area) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	a.id = id
	return nil
}

// setName sets the area's name with validation.
func (a *Area) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	a.name = name
	return nil
}
