package order

import (
	"errors"
	"fmt"

	"fishmarket/internal/pkg/errs"
)

// ErrInvalidTransition is returned when a requested status change is not an
// edge of the transition graph. The order is left unchanged; callers should
// re-fetch current state before retrying.
var ErrInvalidTransition = errors.New("status transition is not allowed")

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure orders
// follow the correct fulfillment workflow.
//
// State transitions:
//
//	pending ──> confirmed ──> preparing ──> out_for_delivery ──> delivered
//	   │            │             │                │
//	   └────────────┴─────────────┴────────────────┴──> cancelled
//
// delivered and cancelled are terminal. Status is a value object that
// validates state transitions and provides the lowercase snake_case string
// vocabulary used for persistence, which must be preserved for compatibility
// with existing stored data.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is placed.
	// Orders in this status are waiting for admin confirmation.
	Pending

	// Confirmed indicates the admin has accepted the order.
	Confirmed

	// Preparing indicates the order is being weighed, cut and packed.
	Preparing

	// OutForDelivery indicates the order has left with a delivery agent.
	// Entering this status issues the delivery verification code.
	OutForDelivery

	// Delivered indicates the customer confirmed receipt via the
	// verification code. This is a terminal state.
	Delivered

	// Cancelled indicates the order was abandoned before delivery.
	// This is a terminal state.
	Cancelled
)

// getStatusStrings returns the persistence vocabulary for every Status value.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "unknown",
		Pending:        "pending",
		Confirmed:      "confirmed",
		Preparing:      "preparing",
		OutForDelivery: "out_for_delivery",
		Delivered:      "delivered",
		Cancelled:      "cancelled",
	}
}

// getValidStatusStrings returns only valid Status values to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:        "pending",
		Confirmed:      "confirmed",
		Preparing:      "preparing",
		OutForDelivery: "out_for_delivery",
		Delivered:      "delivered",
		Cancelled:      "cancelled",
	}
}

// transitions is the allowed-next set for each status. Terminal statuses map
// to an empty set.
func transitions() map[Status][]Status {
	return map[Status][]Status{
		Pending:        {Confirmed, Cancelled},
		Confirmed:      {Preparing, Cancelled},
		Preparing:      {OutForDelivery, Cancelled},
		OutForDelivery: {Delivered, Cancelled},
		Delivered:      {},
		Cancelled:      {},
	}
}

// StatusFromString maps the stored lowercase snake_case representation back to
// a Status. Returns an error for unrecognized values.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a known order status", s))
}

// Validate checks if the Status value is one of the six defined states.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the lowercase snake_case name of the status, e.g.
// "out_for_delivery". This exact vocabulary is what the store persists.
// Implements fmt.Stringer and is safe on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// CanTransitionTo reports whether target is in the allowed-next set for s,
// without performing the transition.
func (s Status) CanTransitionTo(target Status) bool {
	for _, next := range transitions()[s] {
		if next == target {
			return true
		}
	}
	return false
}

// TransitionTo moves the status along an edge of the transition graph.
//
// Returns (target, nil) on a legal transition, or (0, error) wrapping
// ErrInvalidTransition otherwise. This method only enforces graph edges;
// the verification-code gate on the delivered transition lives on the Order
// aggregate, which owns the stored code.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return 0, err
	}

	if !s.CanTransitionTo(target) {
		return 0, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, s, target)
	}

	return target, nil
}
