package partner

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Status represents the availability state of a delivery partner.
//
// Only Active partners participate in dispatch runs. Inactive partners keep
// their data (areas, shift, metrics) but are never matched to orders.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Active indicates the partner is working and eligible for assignment.
	Active

	// Inactive indicates the partner is not working.
	// Inactive partners are excluded from dispatch runs.
	Inactive
)

// getStatusStrings returns a map of Status values to their string representations.
// The uppercase form is the wire and persistence format.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:  "UNKNOWN",
		Active:   "ACTIVE",
		Inactive: "INACTIVE",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Active:   "ACTIVE",
		Inactive: "INACTIVE",
	}
}

// StatusFromString parses the uppercase wire form into a Status.
//
// Returns:
//   - the matching Status for "ACTIVE" or "INACTIVE"
//   - error for any other input
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}

	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid partner status", s),
	)
}

// Validate checks if the Status value is valid.
// Valid statuses are: Active, Inactive.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the uppercase name of the status.
// Implements the fmt.Stringer interface and is safe to call on any
// Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}
