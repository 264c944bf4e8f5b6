package order

import (
	"fmt"
	"strings"

	"kandypack/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with an explicit transition table so that
// adding a state requires one table edit, not an audit of every call site.
//
// State transitions (cancellation is reachable from any non-terminal state,
// terminal states only allow their self-loop):
//
//	pending ──> confirmed ──> placed ──> scheduled ──> in_transit ──> delivered
//	    │            │            │           │             │
//	    └────────────┴────────────┴───────────┴─────────────┴──> cancelled
//
// The table deliberately preserves the lateral moves of the deployed guard
// (e.g. confirmed -> in_transit without passing through scheduled); tightening
// them would reject transitions the rest of the system performs today.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values. A transition
	// from Unknown is treated as a first assignment and accepts any valid
	// target status.
	Unknown Status = iota

	// Pending is the initial status when an order is first created.
	Pending

	// Confirmed indicates the customer confirmed the order.
	Confirmed

	// Placed indicates the order has been allocated to a train trip.
	Placed

	// Scheduled indicates last-mile truck scheduling has been arranged.
	Scheduled

	// InTransit indicates the order left the warehouse on its trip.
	InTransit

	// Delivered indicates the order reached the customer. Terminal.
	Delivered

	// Cancelled indicates the order was withdrawn. Terminal.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Pending:   "pending",
		Confirmed: "confirmed",
		Placed:    "placed",
		Scheduled: "scheduled",
		InTransit: "in_transit",
		Delivered: "delivered",
		Cancelled: "cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "pending",
		Confirmed: "confirmed",
		Placed:    "placed",
		Scheduled: "scheduled",
		InTransit: "in_transit",
		Delivered: "delivered",
		Cancelled: "cancelled",
	}
}

// getTransitions returns the allowed lifecycle edges per status.
// Self-loops are allowed on every state so that idempotent updates do not
// fail; terminal states allow nothing else.
func getTransitions() map[Status][]Status {
	return map[Status][]Status{
		Pending:   {Pending, Confirmed, Placed, Cancelled},
		Confirmed: {Confirmed, Placed, Scheduled, InTransit, Delivered, Cancelled},
		Placed:    {Placed, Scheduled, InTransit, Delivered, Cancelled},
		Scheduled: {Scheduled, InTransit, Delivered, Cancelled},
		InTransit: {InTransit, Delivered, Cancelled},
		Delivered: {Delivered},
		Cancelled: {Cancelled},
	}
}

// StatusFromString parses a status from its string form, case-insensitively.
// Returns an error for empty or unknown strings.
func StatusFromString(s string) (Status, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	for status, str := range getValidStatusStrings() {
		if str == normalized {
			return status, nil
		}
	}

	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// Validate checks if the Status value is valid.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the lowercase name of the status.
// Implements fmt.Stringer; safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status permits no further lifecycle moves.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// CanTransitionTo reports whether the lifecycle permits moving to next.
//
// Rules:
//   - next must be a valid status; Unknown as a target is always rejected
//   - Unknown as the current status is the implicit start state: any valid
//     target is accepted (first assignment)
//   - otherwise the transition must be an edge in the table
func (s Status) CanTransitionTo(next Status) bool {
	if next.Validate() != nil {
		return false
	}

	if s.Validate() != nil {
		return true
	}

	for _, allowed := range getTransitions()[s] {
		if allowed == next {
			return true
		}
	}

	return false
}

// ValidatePlace checks whether an order in this status may be allocated to a
// train trip. Placement is a narrower business rule than the generic table:
// only unplaced orders (pending or confirmed) qualify.
func (s Status) ValidatePlace() error {
	if s != Pending && s != Confirmed {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to place on a trip", s.String()),
		)
	}
	return nil
}

// Place transitions the status to Placed.
//
// Valid transitions:
//   - pending -> placed (direct placement)
//   - confirmed -> placed (placement after confirmation)
//
// Returns (0, error) if placement is not allowed from the current status.
func (s Status) Place() (Status, error) {
	if err := s.ValidatePlace(); err != nil {
		return 0, err
	}

	return Placed, nil
}
