package order

import (
	"fmt"

	"coffeeshop/internal/pkg/errs"
)

// Status represents the lifecycle state of a coffee order.
//
// State transitions:
//
//	Ordered --(Prepare)--> Prepared --(Serve)--> Served
//
// Both transitions are deliberately unguarded: Prepare and Serve overwrite
// the current status regardless of where the order is in its lifecycle.
// Calling Serve on a fresh order, or Prepare on an already served one, is
// permitted and always succeeds. Sequencing is the caller's responsibility.
//
// Status is a value object that provides string representations for
// persistence and display, and validation for values reconstructed from
// external sources.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Ordered is the initial status when an order is first placed.
	// Orders in this status are waiting to be brewed.
	Ordered

	// Prepared indicates the drink has been brewed and is ready to hand over.
	Prepared

	// Served indicates the drink has been handed to the customer.
	Served
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:  "Unknown",
		Ordered:  "Ordered",
		Prepared: "Prepared",
		Served:   "Served",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Ordered:  "Ordered",
		Prepared: "Prepared",
		Served:   "Served",
	}
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Ordered, Prepared, Served.
// Unknown (0) and any other values are invalid.
//
// Validate guards values coming from external sources (database, API)
// before use. It has no role in transitions, which are total.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
//
// Returns "Ordered", "Prepared", or "Served" for valid statuses and
// "Unknown" for anything else. Implements fmt.Stringer and is safe to call
// on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Prepare transitions the status to Prepared.
//
// The transition is unconditional: it returns Prepared from any current
// status, including Served. Out-of-order calls are not rejected, so the
// operation is total and idempotent.
func (s Status) Prepare() Status {
	return Prepared
}

// Serve transitions the status to Served.
//
// Like Prepare, the transition is unconditional and total. Serving an order
// that was never prepared moves it straight to Served.
func (s Status) Serve() Status {
	return Served
}
