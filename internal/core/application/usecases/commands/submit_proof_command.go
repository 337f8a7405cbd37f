package commands

import (
	"errors"
	"strings"

	"cargo/internal/pkg/errs"
	"cargo/internal/pkg/guard"
)

var ErrSubmitProofCommandIsNotConstructed = errors.New(
	"SubmitProofCommand must be created via NewSubmitProofCommand constructor",
)

// SubmitProofCommand is a carrier asking for a top-up. The artifact is an
// opaque reference to the payment screenshot held by the chat client.
type SubmitProofCommand struct { //nolint:recvcheck //using for validation
	carrierID int64
	artifact  string

	guard guard.ConstructorGuard
}

func NewSubmitProofCommand(carrierID int64, artifact string) (SubmitProofCommand, error) {
	cmd := SubmitProofCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCarrierID(carrierID),
		cmd.setArtifact(artifact),
	); err != nil {
		return SubmitProofCommand{}, err
	}

	return cmd, nil
}

func (c SubmitProofCommand) Validate() error {
	return c.guard.Validate(ErrSubmitProofCommandIsNotConstructed)
}

func (c SubmitProofCommand) CarrierID() int64 { return c.carrierID }
func (c SubmitProofCommand) Artifact() string { return c.artifact }

func (c *SubmitProofCommand) setCarrierID(id int64) error {
	if err := requirePositiveID("carrier id", id); err != nil {
		return err
	}
	c.carrierID = id
	return nil
}

func (c *SubmitProofCommand) setArtifact(artifact string) error {
	artifact = strings.TrimSpace(artifact)
	if artifact == "" {
		return errs.NewValueIsRequiredError("artifact")
	}
	c.artifact = artifact
	return nil
}
