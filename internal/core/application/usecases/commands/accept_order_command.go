package commands

import (
	"errors"

	"cargo/internal/pkg/guard"
)

var ErrAcceptOrderCommandIsNotConstructed = errors.New(
	"AcceptOrderCommand must be created via NewAcceptOrderCommand constructor",
)

// AcceptOrderCommand is a carrier claiming an Open order.
type AcceptOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   int64
	carrierID int64

	guard guard.ConstructorGuard
}

func NewAcceptOrderCommand(orderID, carrierID int64) (AcceptOrderCommand, error) {
	cmd := AcceptOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCarrierID(carrierID),
	); err != nil {
		return AcceptOrderCommand{}, err
	}

	return cmd, nil
}

func (c AcceptOrderCommand) Validate() error {
	return c.guard.Validate(ErrAcceptOrderCommandIsNotConstructed)
}

func (c AcceptOrderCommand) OrderID() int64 { return c.orderID }
func (c AcceptOrderCommand) CarrierID() int64 { return c.carrierID }

func (c *AcceptOrderCommand) setOrderID(id int64) error {
	if err := requirePositiveID("order id", id); err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *AcceptOrderCommand) setCarrierID(id int64) error {
	if err := requirePositiveID("carrier id", id); err != nil {
		return err
	}
	c.carrierID = id
	return nil
}
