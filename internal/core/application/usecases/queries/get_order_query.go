package queries

import (
	"errors"
	"time"

	"cargo/internal/pkg/errs"
	"cargo/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

type GetOrderQuery struct {
	orderID int64

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(orderID int64) (GetOrderQuery, error) {
	if orderID <= 0 {
		return GetOrderQuery{}, errs.NewValueIsOutOfRangeError("order id", orderID, 1, "unbounded")
	}
	return GetOrderQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) OrderID() int64 {
	return q.orderID
}

// OrderView is the read model of an order. Fee and CarrierID are nil until
// the order is priced and taken respectively.
type OrderView struct {
	ID              int64
	RequesterID     int64
	CreatorRole     string
	Origin          string
	Destination     string
	Cargo           string
	WeightKg        decimal.Decimal
	Vehicle         string
	PickupDate      string
	ContactUsername string
	ContactPhone    string
	CreatedAt       time.Time
	Fee             *int64
	Status          string
	CarrierID       *int64
}
