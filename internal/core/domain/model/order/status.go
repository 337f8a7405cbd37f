package order

import (
	"fmt"

	"cargo/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	AwaitingPrice ──> Open ──> Taken ──> Done
//
// Open -> Taken is the only transition with competing initiators; the
// persistence layer resolves that race with a conditional update keyed on
// the status value.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// AwaitingPrice is the initial status; the dispatcher has not set a fee yet.
	AwaitingPrice

	// Open means the fee is set and carriers may accept the order.
	Open

	// Taken means exactly one carrier won the order and paid its fee.
	Taken

	// Done is the final state, set by the assigned carrier.
	Done
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:       "Unknown",
		AwaitingPrice: "AwaitingPrice",
		Open:          "Open",
		Taken:         "Taken",
		Done:          "Done",
	}
}

// ParseStatus converts the textual name back to a Status.
func ParseStatus(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if status != Unknown && name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is one of the four lifecycle states.
func (s Status) Validate() error {
	if s < AwaitingPrice || s > Done {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String implements fmt.Stringer and is safe on invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Price transitions AwaitingPrice -> Open. Any later status means the fee is
// already fixed, which is reported as ErrAlreadyPriced.
func (s Status) Price() (Status, error) {
	if s != AwaitingPrice {
		if s.Validate() == nil {
			return Unknown, errs.NewInvalidStateErrorWithReason("order", s.String(), "set fee", errs.ErrAlreadyPriced)
		}
		return Unknown, errs.NewInvalidStateError("order", s.String(), "set fee")
	}
	return Open, nil
}

// Take transitions Open -> Taken.
func (s Status) Take() (Status, error) {
	if s != Open {
		return Unknown, errs.NewInvalidStateError("order", s.String(), "accept")
	}
	return Taken, nil
}

// Complete transitions Taken -> Done.
func (s Status) Complete() (Status, error) {
	if s != Taken {
		return Unknown, errs.NewInvalidStateError("order", s.String(), "complete")
	}
	return Done, nil
}

// ValidateCanHaveFee enforces "fee is null iff status is AwaitingPrice".
func (s Status) ValidateCanHaveFee(hasFee bool) error {
	if hasFee == (s == AwaitingPrice) {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not consistent with fee presence %t", s.String(), hasFee),
		)
	}
	return nil
}

// ValidateCanHaveCarrier enforces "carrier is null iff status is AwaitingPrice or Open".
func (s Status) ValidateCanHaveCarrier(hasCarrier bool) error {
	unassigned := s == AwaitingPrice || s == Open
	if hasCarrier == unassigned {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not consistent with carrier presence %t", s.String(), hasCarrier),
		)
	}
	return nil
}
