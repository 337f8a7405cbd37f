package commands

import (
	"errors"
	"time"

	"cargo/internal/pkg/errs"
	"cargo/internal/pkg/guard"
)

var ErrRemindPendingProofsCommandIsNotConstructed = errors.New(
	"RemindPendingProofsCommand must be created via NewRemindPendingProofsCommand constructor",
)

// RemindPendingProofsCommand asks for a reminder about proofs that have
// waited for review since before the cutoff.
type RemindPendingProofsCommand struct { //nolint:recvcheck //using for validation
	cutoff time.Time

	guard guard.ConstructorGuard
}

func NewRemindPendingProofsCommand(now time.Time, threshold time.Duration) (RemindPendingProofsCommand, error) {
	if now.IsZero() {
		return RemindPendingProofsCommand{}, errs.NewValueIsRequiredError("now")
	}
	if threshold < 0 {
		return RemindPendingProofsCommand{}, errs.NewValueIsOutOfRangeError("threshold", threshold, 0, "unbounded")
	}

	return RemindPendingProofsCommand{
		cutoff: now.Add(-threshold),
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c RemindPendingProofsCommand) Validate() error {
	return c.guard.Validate(ErrRemindPendingProofsCommandIsNotConstructed)
}

func (c RemindPendingProofsCommand) Cutoff() time.Time { return c.cutoff }
