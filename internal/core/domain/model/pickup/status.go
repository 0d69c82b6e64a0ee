package pickup

import (
	"fmt"

	"fasttrack/internal/pkg/errs"
)

// Status represents the lifecycle state of a pickup request.
//
// State transitions:
//
//	Pending ──> Approved ──> Completed
//	   │
//	   ├──> Rejected
//	   └──> Cancelled
//
// Only an admin decides pending -> approved/rejected; cancellation is
// merchant-initiated. No other transitions exist: a rejected request can
// never be approved afterwards.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusPending is the initial status, awaiting an admin decision.
	StatusPending

	// StatusApproved means an admin accepted the request and assigned a courier.
	StatusApproved

	// StatusRejected means an admin declined the request. Terminal.
	StatusRejected

	// StatusCompleted means the courier collected all parcels. Terminal.
	StatusCompleted

	// StatusCancelled means the merchant withdrew the request. Terminal.
	StatusCancelled
)

var statusNames = map[Status]string{
	StatusUnknown:   "unknown",
	StatusPending:   "pending",
	StatusApproved:  "approved",
	StatusRejected:  "rejected",
	StatusCompleted: "completed",
	StatusCancelled: "cancelled",
}

var legalTransitions = map[Status][]Status{
	StatusPending:  {StatusApproved, StatusRejected, StatusCancelled},
	StatusApproved: {StatusCompleted},
}

// ParseStatus converts a wire-format name into a Status.
func ParseStatus(s string) (Status, error) {
	for status, name := range statusNames {
		if status != StatusUnknown && name == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a pickup request status", s),
	)
}

// String returns the wire-format name of the status.
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
			fmt.Errorf("%d is not a valid pickup request status", s),
		)
	}
	return nil
}

// IsOpen reports whether the request still holds its parcels: a parcel
// attached to an open (pending or approved) request cannot be attached to
// another one.
func (s Status) IsOpen() bool {
	return s == StatusPending || s == StatusApproved
}

// ValidateTransition enforces the workflow graph, returning an
// InvalidTransitionError for anything outside it. Unlike parcel statuses,
// resubmitting the same decision is not idempotent here: re-deciding a
// decided request is a workflow error the admin must see.
func ValidateTransition(current, next Status) error {
	if err := current.Validate(); err != nil {
		return err
	}
	if err := next.Validate(); err != nil {
		return err
	}

	for _, allowed := range legalTransitions[current] {
		if next == allowed {
			return nil
		}
	}

	return errs.NewInvalidTransitionError(current.String(), next.String())
}
