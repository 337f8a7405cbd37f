package commands

import (
	"context"

	"cargo/internal/core/domain/model/notification"
	"cargo/internal/core/domain/model/order"
	"cargo/internal/core/domain/services"
	"cargo/internal/pkg/errs"
)

// CompleteOrderCommandHandler marks a Taken order Done on behalf of its
// carrier and tells the requester.
type CompleteOrderCommandHandler struct {
	uowFactory  UoWFactory
	roster      services.DispatcherRoster
	broadcaster Broadcaster
}

func NewCompleteOrderCommandHandler(
	uowFactory UoWFactory,
	roster services.DispatcherRoster,
	broadcaster Broadcaster,
) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{
		uowFactory:  uowFactory,
		roster:      roster,
		broadcaster: broadcaster,
	}
}

// Handle returns ErrForbidden when the order belongs to another carrier and
// ErrInvalidState when it is not Taken.
func (h CompleteOrderCommandHandler) Handle(ctx context.Context, command CompleteOrderCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	o, err := uow.OrderRepository().Get(ctx, command.OrderID())
	if err != nil {
		return err
	}

	if err := o.Complete(command.CarrierID()); err != nil {
		return err
	}

	swapped, err := uow.OrderRepository().CompareAndSwap(ctx, o, order.Taken)
	if err != nil {
		return err
	}
	if !swapped {
		return errs.NewInvalidStateError("order", "no longer taken", "complete")
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	done := notification.Event{Kind: notification.OrderCompleted, OrderID: o.ID(), CarrierID: command.CarrierID()}
	h.broadcaster.SendOne(ctx, o.RequesterID(), done)
	h.broadcaster.Send(ctx, h.roster.IDs(), done)

	return nil
}
