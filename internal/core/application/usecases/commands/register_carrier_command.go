package commands

import (
	"errors"

	"cargo/internal/core/domain/model/carrier"
	"cargo/internal/pkg/guard"
)

var ErrRegisterCarrierCommandIsNotConstructed = errors.New(
	"RegisterCarrierCommand must be created via NewRegisterCarrierCommand constructor",
)

// RegisterCarrierCommand signs up a carrier. Profile fields are validated by
// carrier.NewCarrier.
type RegisterCarrierCommand struct { //nolint:recvcheck //using for validation
	profile carrier.Profile

	guard guard.ConstructorGuard
}

func NewRegisterCarrierCommand(profile carrier.Profile) (RegisterCarrierCommand, error) {
	cmd := RegisterCarrierCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := requirePositiveID("carrier id", profile.ID); err != nil {
		return RegisterCarrierCommand{}, err
	}
	cmd.profile = profile

	return cmd, nil
}

func (c RegisterCarrierCommand) Validate() error {
	return c.guard.Validate(ErrRegisterCarrierCommandIsNotConstructed)
}

func (c RegisterCarrierCommand) Profile() carrier.Profile {
	return c.profile
}
