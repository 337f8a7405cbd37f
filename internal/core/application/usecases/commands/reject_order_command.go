package commands

import (
	"errors"

	"cargo/internal/pkg/guard"
)

var ErrRejectOrderCommandIsNotConstructed = errors.New(
	"RejectOrderCommand must be created via NewRejectOrderCommand constructor",
)

// RejectOrderCommand is a carrier declining an Open order. It is an acknowledgment only.
type RejectOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   int64
	carrierID int64

	guard guard.ConstructorGuard
}

func NewRejectOrderCommand(orderID, carrierID int64) (RejectOrderCommand, error) {
	cmd := RejectOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCarrierID(carrierID),
	); err != nil {
		return RejectOrderCommand{}, err
	}

	return cmd, nil
}

func (c RejectOrderCommand) Validate() error {
	return c.guard.Validate(ErrRejectOrderCommandIsNotConstructed)
}

func (c RejectOrderCommand) OrderID() int64 { return c.orderID }
func (c RejectOrderCommand) CarrierID() int64 { return c.carrierID }

func (c *RejectOrderCommand) setOrderID(id int64) error {
	if err := requirePositiveID("order id", id); err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *RejectOrderCommand) setCarrierID(id int64) error {
	if err := requirePositiveID("carrier id", id); err != nil {
		return err
	}
	c.carrierID = id
	return nil
}
