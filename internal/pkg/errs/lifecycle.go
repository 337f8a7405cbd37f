package errs

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidState        = errors.New("invalid state")
	ErrAlreadyPriced       = errors.New("order is already priced")
	ErrAlreadyReviewed     = errors.New("proof is already reviewed")
	ErrForbidden           = errors.New("forbidden")
	ErrOrderUnavailable    = errors.New("order is unavailable")
	ErrInsufficientBalance = errors.New("insufficient balance")
)

// InvalidStateError reports an operation that is not legal for the current
// lifecycle state of an entity. Reason optionally narrows the failure down to
// one of the specializations (ErrAlreadyPriced, ErrAlreadyReviewed) and is
// reachable through errors.Is together with ErrInvalidState.
type InvalidStateError struct {
	Entity    string
	State     string
	Operation string
	Reason    error
}

func NewInvalidStateError(entity, state, operation string) *InvalidStateError {
	return &InvalidStateError{Entity: entity, State: state, Operation: operation}
}

func NewInvalidStateErrorWithReason(entity, state, operation string, reason error) *InvalidStateError {
	return &InvalidStateError{Entity: entity, State: state, Operation: operation, Reason: reason}
}

func (e *InvalidStateError) Error() string {
	if e.Reason != nil {
		return fmt.Sprintf("%s: %v (%s is %s, cannot %s)", ErrInvalidState, e.Reason, e.Entity, e.State, e.Operation)
	}
	return fmt.Sprintf("%s: %s is %s, cannot %s", ErrInvalidState, e.Entity, e.State, e.Operation)
}

func (e *InvalidStateError) Unwrap() []error {
	if e.Reason != nil {
		return []error{ErrInvalidState, e.Reason}
	}
	return []error{ErrInvalidState}
}

// ForbiddenError reports an actor acting outside of its permissions.
type ForbiddenError struct {
	ActorID any
	Reason  string
}

func NewForbiddenError(actorID any, reason string) *ForbiddenError {
	return &ForbiddenError{ActorID: actorID, Reason: reason}
}

func (e *ForbiddenError) Error() string {
	return fmt.Sprintf("%s: actor %v: %s", ErrForbidden, e.ActorID, e.Reason)
}

func (e *ForbiddenError) Unwrap() error {
	return ErrForbidden
}

// OrderUnavailableError covers both "never existed" and "already claimed by
// someone else" so a losing carrier cannot tell the two apart.
type OrderUnavailableError struct {
	OrderID any
	Cause   error
}

func NewOrderUnavailableError(orderID any) *OrderUnavailableError {
	return &OrderUnavailableError{OrderID: orderID}
}

func NewOrderUnavailableErrorWithCause(orderID any, cause error) *OrderUnavailableError {
	return &OrderUnavailableError{OrderID: orderID, Cause: cause}
}

func (e *OrderUnavailableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: order %v is already assigned or does not exist (cause: %v)",
			ErrOrderUnavailable, e.OrderID, e.Cause)
	}
	return fmt.Sprintf("%s: order %v is already assigned or does not exist", ErrOrderUnavailable, e.OrderID)
}

func (e *OrderUnavailableError) Unwrap() error {
	return ErrOrderUnavailable
}

// InsufficientBalanceError carries the amounts a caller needs to tell the
// carrier how much is missing.
type InsufficientBalanceError struct {
	CarrierID any
	Required  int64
	Available int64
}

func NewInsufficientBalanceError(carrierID any, required, available int64) *InsufficientBalanceError {
	return &InsufficientBalanceError{CarrierID: carrierID, Required: required, Available: available}
}

// Shortfall is the amount the carrier has to top up before retrying.
func (e *InsufficientBalanceError) Shortfall() int64 {
	if e.Available >= e.Required {
		return 0
	}
	return e.Required - e.Available
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("%s: need %d, have %d, short by %d",
		ErrInsufficientBalance, e.Required, e.Available, e.Shortfall())
}

func (e *InsufficientBalanceError) Unwrap() error {
	return ErrInsufficientBalance
}
