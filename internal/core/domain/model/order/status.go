package order

import (
	"fmt"

	"shopadmin/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct fulfillment workflow.
//
// State transitions:
//
//	Pending ──┬──> Confirmed ──┬──> Processing ──> Shipping ──> Delivered ──> Completed
//	          │                └────────────────> Shipping
//	          └──> Cancelled
//	(Confirmed and Processing may also move to Cancelled;
//	 Completed and Cancelled are terminal)
//
// The adjacency table below is the single source of truth for which
// transitions are legal. Conditional business rules (shipper assigned,
// payment settled) are layered on top as per-edge guards evaluated by the
// Order aggregate, never as an independent rule set.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status: the order awaits admin confirmation.
	Pending

	// Confirmed indicates an admin has confirmed the order.
	Confirmed

	// Processing indicates the order is being prepared for shipment.
	Processing

	// Shipping indicates the order has been handed to a shipper.
	Shipping

	// Delivered indicates the shipper has delivered the order.
	Delivered

	// Completed indicates the order is settled and closed.
	// This is a final state with no further transitions allowed.
	Completed

	// Cancelled indicates the order was cancelled.
	// This is a final state with no further transitions allowed.
	Cancelled
)

// validNext is the canonical allowed-transition table.
// An edge's absence is what forbids a transition; there is no second
// rule set that forbids edges independently.
func validNext() map[Status][]Status {
	return map[Status][]Status{
		Pending:    {Confirmed, Cancelled},
		Confirmed:  {Processing, Shipping, Cancelled},
		Processing: {Shipping, Cancelled},
		Shipping:   {Delivered},
		Delivered:  {Completed},
		Completed:  {},
		Cancelled:  {},
	}
}

// getStatusStrings returns a map of Status values to their code names.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Pending:    "Pending",
		Confirmed:  "Confirmed",
		Processing: "Processing",
		Shipping:   "Shipping",
		Delivered:  "Delivered",
		Completed:  "Completed",
		Cancelled:  "Cancelled",
	}
}

// getDisplayNames returns a map of Status values to the display names the
// storefront was launched with. These strings are seeded into the
// order_statuses table and shown verbatim in the admin UI.
func getDisplayNames() map[Status]string {
	return map[Status]string{
		Pending:    "Chờ xác nhận",
		Confirmed:  "Đã xác nhận",
		Processing: "Đang xử lý",
		Shipping:   "Đang giao",
		Delivered:  "Đã giao",
		Completed:  "Đã hoàn thành",
		Cancelled:  "Đã hủy",
	}
}

// Validate checks if the Status value is valid.
//
// Valid statuses are Pending through Cancelled.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getDisplayNames()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the code name of the status, or "Unknown" for invalid values.
// This method implements the fmt.Stringer interface.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// DisplayName returns the seeded display name of the status.
// Returns an empty string for invalid values.
func (s Status) DisplayName() string {
	return getDisplayNames()[s]
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// CanTransitionTo reports whether the adjacency table contains an edge
// from s to target. Guard predicates are not evaluated here; use
// Order.ValidateStatusChange for the full rule set.
func (s Status) CanTransitionTo(target Status) bool {
	for _, next := range validNext()[s] {
		if next == target {
			return true
		}
	}
	return false
}

// NextStatuses returns the set of statuses reachable from s according to
// the adjacency table. The returned slice is a copy and may be modified.
func (s Status) NextStatuses() []Status {
	next := validNext()[s]
	out := make([]Status, len(next))
	copy(out, next)
	return out
}

// AllStatuses returns every valid status in workflow order.
func AllStatuses() []Status {
	return []Status{Pending, Confirmed, Processing, Shipping, Delivered, Completed, Cancelled}
}

// StatusFromName resolves a status from either its code name or its
// seeded display name. Returns Unknown and an error for unrecognized names.
func StatusFromName(name string) (Status, error) {
	for status, code := range getStatusStrings() {
		if status != Unknown && code == name {
			return status, nil
		}
	}
	for status, display := range getDisplayNames() {
		if display == name {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status name",
		fmt.Errorf("%q is not a known order status", name),
	)
}
