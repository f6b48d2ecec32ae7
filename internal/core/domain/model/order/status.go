package order

import (
	"fmt"

	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct delivery workflow.
//
// State transitions:
//
//	Pending ──┬──> InProgress ──┬──> Delivered
//	          │                 │
//	          └─────────────────┴──> Failed
//
// Delivered and Failed are terminal. The urgent priority flag is modeled
// separately on the Order aggregate, so illegal combinations such as
// "urgent and delivered" cannot be represented.
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is first placed.
	// Orders in this status are waiting to be dispatched to a dealer.
	Pending

	// InProgress indicates the order has been assigned to a dealer
	// and is being fulfilled. At most one order per dealer may be in
	// this status at any instant.
	InProgress

	// Delivered indicates the order was successfully delivered.
	// This is a final state with no further transitions allowed.
	Delivered

	// Failed indicates the order was not delivered, either because it
	// failed during fulfillment or was never dispatched.
	// This is a final state with no further transitions allowed.
	Failed
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Pending:    "Pending",
		InProgress: "InProgress",
		Delivered:  "Delivered",
		Failed:     "Failed",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "Pending",
		InProgress: "InProgress",
		Delivered:  "Delivered",
		Failed:     "Failed",
	}
}

// getTransitionTable returns the set of permitted transitions, compiled once
// per call site. Re-requesting the current state is handled as an idempotent
// no-op by Order.Transition and is not part of the table.
func getTransitionTable() map[Status][]Status {
	return map[Status][]Status{
		Pending:    {InProgress, Failed},
		InProgress: {Delivered, Failed},
		Delivered:  {},
		Failed:     {},
	}
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Pending, InProgress, Delivered, Failed.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
//
// Returns "Unknown" for invalid status values. This method implements the
// fmt.Stringer interface and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// StatusFromString parses a status from its string name.
//
// Matching is exact; "Unknown" and unrecognized names are rejected.
func StatusFromString(name string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == name {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid status name", name),
	)
}

// IsTerminal reports whether the status admits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Failed
}

// CanTransitionTo reports whether the transition from s to target is
// permitted by the lifecycle table. The self-transition is not part of the
// table; callers treat it as an idempotent no-op.
func (s Status) CanTransitionTo(target Status) bool {
	for _, allowed := range getTransitionTable()[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// ValidateAssign checks if the status allows dispatch to a dealer.
//
// Only Pending orders can be assigned; assignment is the single path from
// Pending to InProgress.
func (s Status) ValidateAssign() error {
	if s != Pending {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to assign", s.String()),
		)
	}
	return nil
}

// ValidateCanHaveDealer validates the consistency between order status and
// dealer assignment.
//
// Business rules:
//   - Pending orders must not have a dealer assigned
//   - InProgress and Delivered orders must have a dealer assigned
//   - Failed orders may have a dealer (failed in flight) or not (never dispatched)
func (s Status) ValidateCanHaveDealer(dealer bool) error {
	if dealer && s == Pending {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have a dealer", s.String()),
		)
	}

	if !dealer && (s == InProgress || s == Delivered) {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have no dealer", s.String()),
		)
	}

	return nil
}

// AllowsUrgentFlag reports whether the urgent priority flag may be set
// while in this status. Urgency only makes sense before the order reaches
// a terminal state.
func (s Status) AllowsUrgentFlag() bool {
	return s == Pending || s == InProgress
}
