package order

import (
	"fmt"

	"eats/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure orders
// follow the kitchen-to-doorstep workflow.
//
// State transitions:
//
//	Pending ──> Cooking ──> Cooked ──> PickedUp ──> Delivered
//
// The chain is strictly linear: every transition advances exactly one step
// and Delivered is terminal. Which principal may request a given step is a
// separate concern, enforced by the access policy; both checks must pass for
// a status edit to succeed.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// Pending is the initial status set at creation; the restaurant has not
	// started cooking yet.
	Pending

	// Cooking means the restaurant accepted the order and is preparing it.
	Cooking

	// Cooked means the food is ready and waiting for a driver.
	Cooked

	// PickedUp means the assigned driver has collected the order.
	PickedUp

	// Delivered is the final status: the order reached the customer.
	Delivered
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "Unknown",
		Pending:       "Pending",
		Cooking:       "Cooking",
		Cooked:        "Cooked",
		PickedUp:      "PickedUp",
		Delivered:     "Delivered",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "Pending",
		Cooking:   "Cooking",
		Cooked:    "Cooked",
		PickedUp:  "PickedUp",
		Delivered: "Delivered",
	}
}

// Validate checks if the Status value is valid.
// Valid statuses are Pending, Cooking, Cooked, PickedUp and Delivered.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// It implements fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// StatusFromString parses a status name as carried on the wire.
func StatusFromString(str string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == str {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status is invalid",
		fmt.Errorf("%q is not a valid status", str))
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == Delivered
}

// TransitionTo validates the move from the current status to target and
// returns the new status. Exactly one forward step is permitted; skipping
// ahead, moving backwards and leaving Delivered are all rejected.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return 0, err
	}

	if err := s.Validate(); err != nil {
		return 0, err
	}

	if target != s+1 {
		return 0, errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("cannot transition from %s to %s", s.String(), target.String()))
	}

	return target, nil
}
