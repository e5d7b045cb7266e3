package partner

import (
	"errors"
	"fmt"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

// ErrShiftIsNotConstructed is returned when using an improperly initialized Shift.
var ErrShiftIsNotConstructed = errors.New("Shift must be created via NewShift constructor")

// Shift represents a partner's working time-of-day interval [start, end].
// Each partner owns at most one shift; a partner with no shift is never
// available for assignment.
//
// Both boundaries are inclusive: an order scheduled exactly at the shift's
// start or end time is covered.
//
// Shift is an immutable value object. The zero value is invalid and fails
// validation - use NewShift to create instances.
type Shift struct {
	start kernel.TimeOfDay
	end   kernel.TimeOfDay
	guard guard.ConstructorGuard
}

// NewShift creates a Shift from a start and end time.
// Both times must be properly constructed TimeOfDay values.
//
// Returns:
//   - Shift: a valid shift instance
//   - error: validation error if either boundary is invalid
//
// Example:
//
//	start, _ := kernel.ParseTimeOfDay("08:00")
//	end, _ := kernel.ParseTimeOfDay("17:00")
//	shift, err := partner.NewShift(start, end)
func NewShift(start, end kernel.TimeOfDay) (Shift, error) {
	if err := errors.Join(
		start.Validate(),
		end.Validate(),
	); err != nil {
		return Shift{}, err
	}

	return Shift{
		start: start,
		end:   end,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Start returns the shift's start time.
func (s Shift) Start() kernel.TimeOfDay {
	return s.start
}

// End returns the shift's end time.
func (s Shift) End() kernel.TimeOfDay {
	return s.end
}

// Covers reports whether the given time falls within the closed interval
// [start, end]. Equal-to-boundary counts as covered.
func (s Shift) Covers(t kernel.TimeOfDay) bool {
	return !t.Before(s.start) && !t.After(s.end)
}

// String returns the "HH:MM-HH:MM" representation of the shift.
func (s Shift) String() string {
	return fmt.Sprintf("%s-%s", s.start, s.end)
}

// Validate checks if the Shift was created through NewShift.
// Returns ErrShiftIsNotConstructed for zero-value instances.
func (s Shift) Validate() error {
	return s.guard.Validate(ErrShiftIsNotConstructed)
}
