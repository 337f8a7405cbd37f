package commands

import (
	"errors"

	"cargo/internal/core/domain/model/requester"
	"cargo/internal/pkg/guard"
)

var ErrRegisterRequesterCommandIsNotConstructed = errors.New(
	"RegisterRequesterCommand must be created via NewRegisterRequesterCommand constructor",
)

type RegisterRequesterCommand struct { //nolint:recvcheck //using for validation
	profile requester.Profile

	guard guard.ConstructorGuard
}

func NewRegisterRequesterCommand(profile requester.Profile) (RegisterRequesterCommand, error) {
	cmd := RegisterRequesterCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := requirePositiveID("requester id", profile.ID); err != nil {
		return RegisterRequesterCommand{}, err
	}
	cmd.profile = profile

	return cmd, nil
}

func (c RegisterRequesterCommand) Validate() error {
	return c.guard.Validate(ErrRegisterRequesterCommandIsNotConstructed)
}

func (c RegisterRequesterCommand) Profile() requester.Profile {
	return c.profile
}
