package commands

import (
	"errors"

	"cargo/internal/pkg/guard"
)

var ErrCompleteOrderCommandIsNotConstructed = errors.New(
	"CompleteOrderCommand must be created via NewCompleteOrderCommand constructor",
)

// CompleteOrderCommand is the assigned carrier reporting delivery.
type CompleteOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   int64
	carrierID int64

	guard guard.ConstructorGuard
}

func NewCompleteOrderCommand(orderID, carrierID int64) (CompleteOrderCommand, error) {
	cmd := CompleteOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCarrierID(carrierID),
	); err != nil {
		return CompleteOrderCommand{}, err
	}

	return cmd, nil
}

func (c CompleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrCompleteOrderCommandIsNotConstructed)
}

func (c CompleteOrderCommand) OrderID() int64 { return c.orderID }
func (c CompleteOrderCommand) CarrierID() int64 { return c.carrierID }

func (c *CompleteOrderCommand) setOrderID(id int64) error {
	if err := requirePositiveID("order id", id); err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *CompleteOrderCommand) setCarrierID(id int64) error {
	if err := requirePositiveID("carrier id", id); err != nil {
		return err
	}
	c.carrierID = id
	return nil
}
