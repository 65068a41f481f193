package order

import (
	"fmt"
	"strings"

	"ordering/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
//	PLACED -> PAID -> PROCESSING -> SHIPPED -> COMPLETED
//	   \________\__________\
//	                        +--> CANCELLED
//
// The diagram shows the usual flow. Cancel refuses SHIPPED and COMPLETED;
// TransitionTo accepts any known target, including the current status.
type Status int

const (
	// Unknown catches uninitialized Status values.
	Unknown Status = iota
	Placed
	Paid
	Processing
	Shipped
	Completed
	Cancelled
)

var statusNames = map[Status]string{
	Placed:     "PLACED",
	Paid:       "PAID",
	Processing: "PROCESSING",
	Shipped:    "SHIPPED",
	Completed:  "COMPLETED",
	Cancelled:  "CANCELLED",
}

// Statuses returns every valid status in lifecycle order.
func Statuses() []Status {
	return []Status{Placed, Paid, Processing, Shipped, Completed, Cancelled}
}

// ParseStatus converts a status name such as "SHIPPED" into a Status.
// Matching ignores case and surrounding whitespace.
func ParseStatus(name string) (Status, error) {
	normalized := strings.ToUpper(strings.TrimSpace(name))
	for status, statusName := range statusNames {
		if statusName == normalized {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid status", name),
	)
}

// Validate rejects Unknown and out-of-range values.
func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the persisted and wire name of the status, or "UNKNOWN".
func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "UNKNOWN"
}

// CanCancel reports whether an order in this status may be cancelled.
func (s Status) CanCancel() bool {
	return s != Shipped && s != Completed
}

// CanTransitionTo reports whether an explicit status update from s to target is allowed.
// No transition is restricted.
func (s Status) CanTransitionTo(_ Status) bool {
	return true
}

// Cancel returns Cancelled, or an IllegalStateError carrying s when cancellation is refused.
func (s Status) Cancel() (Status, error) {
	if !s.CanCancel() {
		return Unknown, errs.NewIllegalStateError("cancel order", s)
	}
	return Cancelled, nil
}

// TransitionTo returns target once it is known to be a valid status.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return Unknown, err
	}
	if !s.CanTransitionTo(target) {
		return Unknown, errs.NewIllegalStateError("change status to "+target.String(), s)
	}
	return target, nil
}
