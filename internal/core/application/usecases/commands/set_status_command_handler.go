package commands

import (
	"context"

	"cargo/internal/core/domain/model/notification"
	"cargo/internal/core/domain/services"
)

// SetStatusCommandHandler blocks or unblocks an account. Blocked carriers
// stop receiving open orders and cannot accept; blocked requesters cannot
// submit.
type SetStatusCommandHandler struct {
	uowFactory  UoWFactory
	roster      services.DispatcherRoster
	broadcaster Broadcaster
}

func NewSetStatusCommandHandler(
	uowFactory UoWFactory,
	roster services.DispatcherRoster,
	broadcaster Broadcaster,
) SetStatusCommandHandler {
	return SetStatusCommandHandler{
		uowFactory:  uowFactory,
		roster:      roster,
		broadcaster: broadcaster,
	}
}

func (h SetStatusCommandHandler) Handle(ctx context.Context, command SetStatusCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	if err := h.roster.Ensure(command.ActorID(), "change account status"); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	var err error
	if command.Party() == Carriers {
		err = uow.CarrierRepository().UpdateStatus(ctx, command.AccountID(), command.Status())
	} else {
		err = uow.RequesterRepository().UpdateStatus(ctx, command.AccountID(), command.Status())
	}
	if err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	h.broadcaster.SendOne(ctx, command.AccountID(), notification.Event{
		Kind: notification.AccountStatus,
		Text: command.Status().String(),
	})

	return nil
}
