package parcel

import (
	"fmt"

	"fasttrack/internal/pkg/errs"
)

// Status represents the lifecycle state of a parcel.
// It implements a state machine with defined transitions to ensure
// parcels follow the physical delivery workflow.
//
// State transitions:
//
//	Pending ──> Assigned ──> PickedUp ──> InTransit ──> Delivered
//	   │            │            │            │
//	   │            └────────────┴────────────┴──> Returned
//	   └──> Cancelled
//
// Delivered, Returned, and Cancelled are terminal: no outgoing
// transitions are permitted once reached. A transition to the current
// status is an idempotent no-op success, because the admin UI may
// resubmit an identical status with new notes.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPending is the initial status of every created parcel,
	// waiting to be attached to a pickup request.
	StatusPending

	// StatusAssigned indicates a courier was assigned via an approved
	// pickup request.
	StatusAssigned

	// StatusPickedUp indicates the courier collected the parcel.
	StatusPickedUp

	// StatusInTransit indicates the parcel is moving through the network.
	StatusInTransit

	// StatusDelivered indicates successful delivery. Terminal.
	StatusDelivered

	// StatusReturned indicates the parcel went back to the sender. Terminal.
	StatusReturned

	// StatusCancelled indicates the parcel was cancelled before assignment. Terminal.
	StatusCancelled
)

// statusNames maps statuses to the wire vocabulary shared with the REST API
// and the database. The snake_case names are part of the public contract.
var statusNames = map[Status]string{
	StatusUnknown:   "unknown",
	StatusPending:   "pending",
	StatusAssigned:  "assigned",
	StatusPickedUp:  "picked_up",
	StatusInTransit: "in_transit",
	StatusDelivered: "delivered",
	StatusReturned:  "returned",
	StatusCancelled: "cancelled",
}

// legalTransitions is the directed status graph. A missing key means the
// status is terminal. Self-transitions are handled separately in
// ValidateTransition.
var legalTransitions = map[Status][]Status{
	StatusPending:   {StatusAssigned, StatusCancelled},
	StatusAssigned:  {StatusPickedUp, StatusReturned},
	StatusPickedUp:  {StatusInTransit, StatusReturned},
	StatusInTransit: {StatusDelivered, StatusReturned},
}

// ParseStatus converts a wire-format name ("pending", "picked_up", ...)
// into a Status. Returns a ValueIsInvalidError for unknown names.
func ParseStatus(s string) (Status, error) {
	for status, name := range statusNames {
		if status != StatusUnknown && name == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a parcel status", s),
	)
}

// String returns the wire-format name of the status.
// Implements fmt.Stringer; safe on any value, including invalid ones.
func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "unknown"
}

// Validate checks that the Status is one of the defined lifecycle values.
func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok || s == StatusUnknown {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid parcel status", s),
		)
	}
	return nil
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusReturned || s == StatusCancelled
}

// CanTransitionTo reports whether the move to next is in the legal graph.
// Self-transitions report true; see ValidateTransition.
func (s Status) CanTransitionTo(next Status) bool {
	return ValidateTransition(s, next) == nil
}

// ValidateTransition enforces the parcel status graph. It returns nil for
// every edge in the legal table and for self-transitions (idempotent
// resubmission), and an InvalidTransitionError for everything else,
// including any transition out of a terminal status.
func ValidateTransition(current, next Status) error {
	if err := current.Validate(); err != nil {
		return err
	}
	if err := next.Validate(); err != nil {
		return err
	}

	if current == next {
		return nil
	}

	for _, allowed := range legalTransitions[current] {
		if next == allowed {
			return nil
		}
	}

	return errs.NewInvalidTransitionError(current.String(), next.String())
}
