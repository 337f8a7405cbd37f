package commands

import (
	"errors"
	"fmt"
	"strings"

	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/pkg/errs"
	"cargo/internal/pkg/guard"
)

var ErrSetStatusCommandIsNotConstructed = errors.New(
	"SetStatusCommand must be created via NewSetStatusCommand constructor",
)

// Party selects which kind of account a status change or broadcast targets.
type Party string

const (
	Carriers   Party = "carriers"
	Requesters Party = "requesters"
	Everyone   Party = "all"
)

func ParseParty(raw string) (Party, error) {
	switch p := Party(strings.ToLower(strings.TrimSpace(raw))); p {
	case Carriers, Requesters, Everyone:
		return p, nil
	case "":
		return "", errs.NewValueIsRequiredError("party")
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("party", fmt.Errorf("%q is not carriers, requesters or all", raw))
	}
}

// SetStatusCommand blocks or unblocks a carrier or requester account.
type SetStatusCommand struct { //nolint:recvcheck //using for validation
	party     Party
	accountID int64
	status    kernel.AccountStatus
	actorID   int64

	guard guard.ConstructorGuard
}

func NewSetStatusCommand(party Party, accountID int64, status kernel.AccountStatus, actorID int64) (SetStatusCommand, error) {
	cmd := SetStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setParty(party),
		cmd.setAccountID(accountID),
		cmd.setStatus(status),
		cmd.setActorID(actorID),
	); err != nil {
		return SetStatusCommand{}, err
	}

	return cmd, nil
}

func (c SetStatusCommand) Validate() error {
	return c.guard.Validate(ErrSetStatusCommandIsNotConstructed)
}

func (c SetStatusCommand) Party() Party { return c.party }
func (c SetStatusCommand) AccountID() int64 { return c.accountID }
func (c SetStatusCommand) Status() kernel.AccountStatus { return c.status }
func (c SetStatusCommand) ActorID() int64 { return c.actorID }

func (c *SetStatusCommand) setParty(party Party) error {
	p, err := ParseParty(string(party))
	if err != nil {
		return err
	}
	if p == Everyone {
		return errs.NewValueIsInvalidErrorWithCause("party", errors.New("status changes target a single account"))
	}
	c.party = p
	return nil
}

func (c *SetStatusCommand) setAccountID(id int64) error {
	if err := requirePositiveID("account id", id); err != nil {
		return err
	}
	c.accountID = id
	return nil
}

func (c *SetStatusCommand) setStatus(status kernel.AccountStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}
	c.status = status
	return nil
}

func (c *SetStatusCommand) setActorID(id int64) error {
	if err := requirePositiveID("actor id", id); err != nil {
		return err
	}
	c.actorID = id
	return nil
}
