package commands

import (
	"errors"

	"cargo/internal/pkg/guard"
)

var ErrTopUpBalanceCommandIsNotConstructed = errors.New(
	"TopUpBalanceCommand must be created via NewTopUpBalanceCommand constructor",
)

// TopUpBalanceCommand is a dispatcher crediting a carrier directly, for example after a cash payment.
type TopUpBalanceCommand struct { //nolint:recvcheck //using for validation
	carrierID int64
	amount    int64
	actorID   int64

	guard guard.ConstructorGuard
}

func NewTopUpBalanceCommand(carrierID, amount, actorID int64) (TopUpBalanceCommand, error) {
	cmd := TopUpBalanceCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCarrierID(carrierID),
		cmd.setAmount(amount),
		cmd.setActorID(actorID),
	); err != nil {
		return TopUpBalanceCommand{}, err
	}

	return cmd, nil
}

func (c TopUpBalanceCommand) Validate() error {
	return c.guard.Validate(ErrTopUpBalanceCommandIsNotConstructed)
}

func (c TopUpBalanceCommand) CarrierID() int64 { return c.carrierID }
func (c TopUpBalanceCommand) Amount() int64 { return c.amount }
func (c TopUpBalanceCommand) ActorID() int64 { return c.actorID }

func (c *TopUpBalanceCommand) setCarrierID(id int64) error {
	if err := requirePositiveID("carrier id", id); err != nil {
		return err
	}
	c.carrierID = id
	return nil
}

func (c *TopUpBalanceCommand) setAmount(amount int64) error {
	if err := requirePositiveAmount("amount", amount); err != nil {
		return err
	}
	c.amount = amount
	return nil
}

func (c *TopUpBalanceCommand) setActorID(id int64) error {
	if err := requirePositiveID("actor id", id); err != nil {
		return err
	}
	c.actorID = id
	return nil
}
