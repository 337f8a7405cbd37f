package commands

import (
	"errors"
	"fmt"
	"strings"

	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/pkg/errs"
	"cargo/internal/pkg/guard"
)

var ErrReviewProofCommandIsNotConstructed = errors.New(
	"ReviewProofCommand must be created via NewReviewProofCommand constructor",
)

type Decision string

const (
	Approve Decision = "approve"
	Reject  Decision = "reject"
)

func ParseDecision(raw string) (Decision, error) {
	switch d := Decision(strings.ToLower(strings.TrimSpace(raw))); d {
	case Approve, Reject:
		return d, nil
	case "":
		return "", errs.NewValueIsRequiredError("decision")
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("decision", fmt.Errorf("%q is not approve or reject", raw))
	}
}

// ReviewProofCommand is a dispatcher's verdict on a pending proof. The
// amount is required for approvals and ignored for rejections.
type ReviewProofCommand struct { //nolint:recvcheck //using for validation
	proofID  kernel.UUID
	decision Decision
	amount   int64
	actorID  int64

	guard guard.ConstructorGuard
}

func NewReviewProofCommand(proofID kernel.UUID, decision Decision, amount, actorID int64) (ReviewProofCommand, error) {
	cmd := ReviewProofCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setProofID(proofID),
		cmd.setDecision(decision, amount),
		cmd.setActorID(actorID),
	); err != nil {
		return ReviewProofCommand{}, err
	}

	return cmd, nil
}

func (c ReviewProofCommand) Validate() error {
	return c.guard.Validate(ErrReviewProofCommandIsNotConstructed)
}

func (c ReviewProofCommand) ProofID() kernel.UUID { return c.proofID }
func (c ReviewProofCommand) Decision() Decision { return c.decision }
func (c ReviewProofCommand) Amount() int64 { return c.amount }
func (c ReviewProofCommand) ActorID() int64 { return c.actorID }

func (c *ReviewProofCommand) setProofID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.proofID = id
	return nil
}

func (c *ReviewProofCommand) setDecision(decision Decision, amount int64) error {
	d, err := ParseDecision(string(decision))
	if err != nil {
		return err
	}
	if d == Approve {
		if err := requirePositiveAmount("amount", amount); err != nil {
			return err
		}
		c.amount = amount
	}
	c.decision = d
	return nil
}

func (c *ReviewProofCommand) setActorID(id int64) error {
	if err := requirePositiveID("actor id", id); err != nil {
		return err
	}
	c.actorID = id
	return nil
}
