package assignment

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Status represents the outcome of one assignment attempt.
// Unlike order and partner statuses there are no transitions: an assignment
// record is written once with its final status and never changes.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Success indicates the order was matched to a delivery partner.
	Success

	// Failed indicates no suitable partner was found for the order.
	Failed
)

// getStatusStrings returns a map of Status values to their string representations.
// The uppercase form is the wire and persistence format.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown: "UNKNOWN",
		Success: "SUCCESS",
		Failed:  "FAILED",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Success: "SUCCESS",
		Failed:  "FAILED",
	}
}

// StatusFromString parses the uppercase wire form into a Status.
//
// Returns:
//   - the matching Status for "SUCCESS" or "FAILED"
//   - error for any other input
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}

	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid assignment status", s),
	)
}

// Validate checks if the Status value is valid.
// Valid statuses are: Success, Failed.
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
