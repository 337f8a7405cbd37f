package queries

import (
	"errors"
	"time"

	"cargo/internal/pkg/errs"
	"cargo/internal/pkg/guard"
)

var (
	ErrGetCarrierQueryIsNotConstructed = errors.New(
		"GetCarrierQuery must be created via NewGetCarrierQuery constructor",
	)
	ErrListAccountsQueryIsNotConstructed = errors.New(
		"ListAccountsQuery must be created via NewListAccountsQuery constructor",
	)
)

// CarrierView is a carrier with its current balance.
type CarrierView struct {
	ID              int64
	FullName        string
	Vehicle         string
	ContactUsername string
	ContactPhone    string
	Balance         int64
	Status          string
	CreatedAt       time.Time
}

// RequesterView is a registered customer.
type RequesterView struct {
	ID              int64
	FullName        string
	ContactUsername string
	ContactPhone    string
	Status          string
	CreatedAt       time.Time
}

type GetCarrierQuery struct {
	carrierID int64

	guard guard.ConstructorGuard
}

func NewGetCarrierQuery(carrierID int64) (GetCarrierQuery, error) {
	if carrierID <= 0 {
		return GetCarrierQuery{}, errs.NewValueIsOutOfRangeError("carrier id", carrierID, 1, "unbounded")
	}
	return GetCarrierQuery{carrierID: carrierID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetCarrierQuery) Validate() error {
	return q.guard.Validate(ErrGetCarrierQueryIsNotConstructed)
}

func (q GetCarrierQuery) CarrierID() int64 {
	return q.carrierID
}

// ListAccountsQuery pages through carriers or requesters in registration
// order.
type ListAccountsQuery struct {
	limit  int
	offset int

	guard guard.ConstructorGuard
}

func NewListAccountsQuery(limit, offset int) (ListAccountsQuery, error) {
	if offset < 0 {
		return ListAccountsQuery{}, errs.NewValueIsOutOfRangeError("offset", offset, 0, "unbounded")
	}
	return ListAccountsQuery{limit: clampLimit(limit), offset: offset, guard: guard.NewConstructorGuard()}, nil
}

func (q ListAccountsQuery) Validate() error {
	return q.guard.Validate(ErrListAccountsQueryIsNotConstructed)
}

func (q ListAccountsQuery) Limit() int { return q.limit }
func (q ListAccountsQuery) Offset() int { return q.offset }
