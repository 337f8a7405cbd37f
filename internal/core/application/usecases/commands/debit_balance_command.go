package commands

import (
	"errors"

	"cargo/internal/pkg/guard"
)

var ErrDebitBalanceCommandIsNotConstructed = errors.New(
	"DebitBalanceCommand must be created via NewDebitBalanceCommand constructor",
)

// DebitBalanceCommand is a dispatcher's manual correction of a carrier balance. The debit never drives the balance below zero.
type DebitBalanceCommand struct { //nolint:recvcheck //using for validation
	carrierID int64
	amount    int64
	actorID   int64

	guard guard.ConstructorGuard
}

func NewDebitBalanceCommand(carrierID, amount, actorID int64) (DebitBalanceCommand, error) {
	cmd := DebitBalanceCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCarrierID(carrierID),
		cmd.setAmount(amount),
		cmd.setActorID(actorID),
	); err != nil {
		return DebitBalanceCommand{}, err
	}

	return cmd, nil
}

func (c DebitBalanceCommand) Validate() error {
	return c.guard.Validate(ErrDebitBalanceCommandIsNotConstructed)
}

func (c DebitBalanceCommand) CarrierID() int64 { return c.carrierID }
func (c DebitBalanceCommand) Amount() int64 { return c.amount }
func (c DebitBalanceCommand) ActorID() int64 { return c.actorID }

func (c *DebitBalanceCommand) setCarrierID(id int64) error {
	if err := requirePositiveID("carrier id", id); err != nil {
		return err
	}
	c.carrierID = id
	return nil
}

func (c *DebitBalanceCommand) setAmount(amount int64) error {
	if err := requirePositiveAmount("amount", amount); err != nil {
		return err
	}
	c.amount = amount
	return nil
}

func (c *DebitBalanceCommand) setActorID(id int64) error {
	if err := requirePositiveID("actor id", id); err != nil {
		return err
	}
	c.actorID = id
	return nil
}
