package order

import (
	"fmt"

	"fooddelivery/internal/pkg/errs"
)

// Status is the assignment state of an order.
//
// State transitions:
//
//	Pending ──> Assigned
//
// There is no way back: an assigned order stays assigned and is never
// offered to a scheduling call again.
type Status int

const (
	// Unknown catches uninitialized Status values.
	Unknown Status = iota

	// Pending orders wait for a scheduling call to claim them.
	Pending

	// Assigned orders were claimed by exactly one scheduling call.
	Assigned
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:  "Unknown",
		Pending:  "Pending",
		Assigned: "Assigned",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:  "Pending",
		Assigned: "Assigned",
	}
}

// Validate checks that the status is Pending or Assigned. Statuses read back
// from storage go through it.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ParseStatus is the inverse of String for valid statuses.
func ParseStatus(value string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == value {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", value))
}

// Assign transitions Pending to Assigned. Assigning an already assigned order
// is rejected so that no order is claimed twice.
func (s Status) Assign() (Status, error) {
	if s != Pending {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to assign", s.String()),
		)
	}

	return Assigned, nil
}
