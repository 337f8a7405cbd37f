package commands

import (
	"errors"

	"cargo/internal/core/domain/model/order"
	"cargo/internal/pkg/guard"
)

var ErrSubmitOrderCommandIsNotConstructed = errors.New(
	"SubmitOrderCommand must be created via NewSubmitOrderCommand constructor",
)

// SubmitOrderCommand carries a new delivery request from a requester, or
// from a carrier submitting on a customer's behalf.
//
// Field-level validation of the draft (route, cargo, weight, vehicle,
// contact) belongs to order.NewOrder and runs in the handler, so all field
// errors are reported together.
//
// Example:
//
//	cmd, err := NewSubmitOrderCommand(order.Draft{
//	    RequesterID: 42, Origin: "Tashkent", Destination: "Samarkand",
//	    Cargo: "furniture", Weight: "350", Vehicle: "Bongo", Phone: "+998901234567",
//	})
//	orderID, err := handler.Handle(ctx, cmd)
type SubmitOrderCommand struct { //nolint:recvcheck //using for validation
	draft order.Draft

	guard guard.ConstructorGuard
}

func NewSubmitOrderCommand(draft order.Draft) (SubmitOrderCommand, error) {
	cmd := SubmitOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDraft(draft),
	); err != nil {
		return SubmitOrderCommand{}, err
	}

	return cmd, nil
}

func (c SubmitOrderCommand) Validate() error {
	return c.guard.Validate(ErrSubmitOrderCommandIsNotConstructed)
}

func (c SubmitOrderCommand) Draft() order.Draft {
	return c.draft
}

func (c SubmitOrderCommand) SubmitterID() int64 {
	return c.draft.RequesterID
}

func (c *SubmitOrderCommand) setDraft(draft order.Draft) error {
	role, err := order.ParseCreatorRole(string(draft.CreatorRole))
	if err != nil {
		return err
	}
	if err := requirePositiveID("submitter id", draft.RequesterID); err != nil {
		return err
	}

	draft.CreatorRole = role
	c.draft = draft
	return nil
}
