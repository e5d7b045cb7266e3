package kernel

import (
	"fmt"
	"strconv"
	"strings"

	"dispatch/internal/pkg/errs"

	"dispatch/internal/pkg/guard"
)

const (
	hourMin   = 0
	hourMax   = 23
	minuteMin = 0
	minuteMax = 59

	minutesPerHour = 60
)

// ErrTimeOfDayIsNotConstructed is returned when attempting to use an
// improperly initialized TimeOfDay. Instances must be created via
// NewTimeOfDay or ParseTimeOfDay.
var ErrTimeOfDayIsNotConstructed = errs.NewValueIsRequiredError(
	"time of day must be created via NewTimeOfDay or ParseTimeOfDay constructors")

// TimeOfDay represents a naive wall-clock time with minute precision and no
// date or timezone component. It is the unit in which order schedules and
// partner shifts are expressed: an order is scheduled for "14:30", a shift
// runs from "08:00" to "17:00".
//
// TimeOfDay is an immutable value object. The zero value is invalid and
// fails validation - use the constructors to create instances.
//
// Example:
//
//	scheduled, err := kernel.ParseTimeOfDay("14:30")
//	if err != nil {
//	    // handle malformed time string
//	}
//	fmt.Println(scheduled) // Output: 14:30
type TimeOfDay struct { //nolint:recvcheck //using for validation
	minutes int
	guard   guard.ConstructorGuard
}

// NewTimeOfDay creates a TimeOfDay from an hour and minute pair.
// Hour must be within [0..23] and minute within [0..59].
//
// Returns:
//   - TimeOfDay: a valid time-of-day instance
//   - error: range validation error if either component is out of bounds
func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < hourMin || hour > hourMax {
		return TimeOfDay{}, errs.NewValueIsOutOfRangeError("hour", hour, hourMin, hourMax)
	}
	if minute < minuteMin || minute > minuteMax {
		return TimeOfDay{}, errs.NewValueIsOutOfRangeError("minute", minute, minuteMin, minuteMax)
	}

	return TimeOfDay{
		minutes: hour*minutesPerHour + minute,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// ParseTimeOfDay parses a "HH:MM" string into a TimeOfDay.
// This is the wire format used by the HTTP layer and the database.
//
// Example:
//
//	t, err := kernel.ParseTimeOfDay("09:00")
//	if err != nil {
//	    return fmt.Errorf("invalid scheduled time: %w", err)
//	}
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return TimeOfDay{}, errs.NewValueIsInvalidErrorWithCause(
			"time of day",
			fmt.Errorf("%q is not in HH:MM format", s),
		)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return TimeOfDay{}, errs.NewValueIsInvalidErrorWithCause("time of day", err)
	}

	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return TimeOfDay{}, errs.NewValueIsInvalidErrorWithCause("time of day", err)
	}

	return NewTimeOfDay(hour, minute)
}

// Hour returns the hour component in [0..23].
func (t TimeOfDay) Hour() int {
	return t.minutes / minutesPerHour
}

// Minute returns the minute component in [0..59].
func (t TimeOfDay) Minute() int {
	return t.minutes % minutesPerHour
}

// String returns the "HH:MM" representation, e.g. "09:05".
// Implements fmt.Stringer; also used as the persistence format.
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// Before reports whether t is strictly earlier than other.
func (t TimeOfDay) Before(other TimeOfDay) bool {
	return t.minutes < other.minutes
}

// After reports whether t is strictly later than other.
func (t TimeOfDay) After(other TimeOfDay) bool {
	return t.minutes > other.minutes
}

// IsEqual reports whether two times of day represent the same minute.
func (t TimeOfDay) IsEqual(other TimeOfDay) bool {
	return t.minutes == other.minutes
}

// Validate checks if the TimeOfDay was created through a constructor.
// Returns ErrTimeOfDayIsNotConstructed for zero-value instances. The guard
// matters here because "00:00" is a legitimate time and cannot be told
// apart from the zero value by the minutes field alone.
func (t TimeOfDay) Validate() error {
	return t.guard.Validate(ErrTimeOfDayIsNotConstructed)
}
