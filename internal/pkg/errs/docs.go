// Package errs provides standardized error types for the cargo dispatch core.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes the error taxonomy every core operation reports:
//   - ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError: malformed input
//   - ObjectNotFoundError: the referenced entity is absent
//   - ObjectAlreadyExistsError: a registration collides with an existing entity
//   - InvalidStateError: the operation is not legal for the current lifecycle state
//     (ErrAlreadyPriced and ErrAlreadyReviewed are its specializations)
//   - ForbiddenError: the actor lacks permission or is not the assigned party
//   - OrderUnavailableError: the order was already claimed or never existed
//   - InsufficientBalanceError: the carrier cannot cover a debit, carries the shortfall
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// Callers classify failures with errors.Is against the sentinels and extract
// details with errors.As against the struct types.
package errs
