// Package guard provides ConstructorGuard, a marker that lets value objects,
// aggregates, commands and queries detect zero-value instances that bypassed
// their constructors.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller does not
// supply a more specific error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded as a private field and set only by the owning
// constructor. A zero value therefore always fails Validate.
//
// Example usage:
//
//	var ErrSetFeeCommandIsNotConstructed = errors.New("SetFeeCommand must be created via NewSetFeeCommand")
//
//	type SetFeeCommand struct {
//	    orderID int64
//	    fee     int64
//	    guard   guard.ConstructorGuard
//	}
//
//	func (c SetFeeCommand) Validate() error {
//	    return c.guard.Validate(ErrSetFeeCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard marks the enclosing object as properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when nil)
// if the guard is a zero value, nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
