package commands

import (
	"errors"

	"cargo/internal/pkg/guard"
)

var ErrSetFeeCommandIsNotConstructed = errors.New(
	"SetFeeCommand must be created via NewSetFeeCommand constructor",
)

// SetFeeCommand is a dispatcher pricing an AwaitingPrice order.
//
// Example:
//
//	cmd, err := NewSetFeeCommand(orderID, 10000, dispatcherID)
//	if err := handler.Handle(ctx, cmd); errors.Is(err, errs.ErrAlreadyPriced) {
//	    // another dispatcher was first; the first fee stands
//	}
type SetFeeCommand struct { //nolint:recvcheck //using for validation
	orderID int64
	fee     int64
	actorID int64

	guard guard.ConstructorGuard
}

func NewSetFeeCommand(orderID, fee, actorID int64) (SetFeeCommand, error) {
	cmd := SetFeeCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setFee(fee),
		cmd.setActorID(actorID),
	); err != nil {
		return SetFeeCommand{}, err
	}

	return cmd, nil
}

func (c SetFeeCommand) Validate() error {
	return c.guard.Validate(ErrSetFeeCommandIsNotConstructed)
}

func (c SetFeeCommand) OrderID() int64 { return c.orderID }
func (c SetFeeCommand) Fee() int64 { return c.fee }
func (c SetFeeCommand) ActorID() int64 { return c.actorID }

func (c *SetFeeCommand) setOrderID(id int64) error {
	if err := requirePositiveID("order id", id); err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *SetFeeCommand) setFee(fee int64) error {
	if err := requirePositiveAmount("fee", fee); err != nil {
		return err
	}
	c.fee = fee
	return nil
}

func (c *SetFeeCommand) setActorID(id int64) error {
	if err := requirePositiveID("actor id", id); err != nil {
		return err
	}
	c.actorID = id
	return nil
}
