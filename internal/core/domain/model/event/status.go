package event

import (
	"fmt"
	"strings"

	"deliveryrates/internal/pkg/errs"
)

// Status is the lifecycle state reported by a delivery event.
//
//	Pending ──┬──> Delivered
//	          └──> Cancelled
//
// Delivered and Cancelled are terminal. The zero value Unknown is invalid
// and exists to catch uninitialized values.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Pending marks the start of a delivery.
	Pending

	// Delivered marks a delivery that reached its destination.
	Delivered

	// Cancelled marks a delivery that was called off.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "UNKNOWN",
		Pending:   "PENDING",
		Delivered: "DELIVERED",
		Cancelled: "CANCELLED",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "PENDING",
		Delivered: "DELIVERED",
		Cancelled: "CANCELLED",
	}
}

// ParseStatus converts a status name such as "DELIVERED" into a Status.
// Matching ignores case and surrounding whitespace. "UNKNOWN" is rejected.
func ParseStatus(s string) (Status, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for status, str := range getValidStatusStrings() {
		if str == name {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate returns an error unless s is Pending, Delivered or Cancelled.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// IsTerminal reports whether s ends a delivery's lifecycle.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// String returns the upper case status name, "UNKNOWN" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}
