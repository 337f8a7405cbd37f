package commands

import (
	"context"
	"time"

	"cargo/internal/core/domain/model/notification"
	"cargo/internal/core/domain/model/order"
	"cargo/internal/core/domain/services"
)

// SubmitOrderCommandHandler registers a new order in AwaitingPrice and asks
// the dispatchers to price it.
type SubmitOrderCommandHandler struct {
	uowFactory  UoWFactory
	roster      services.DispatcherRoster
	broadcaster Broadcaster
}

func NewSubmitOrderCommandHandler(
	uowFactory UoWFactory,
	roster services.DispatcherRoster,
	broadcaster Broadcaster,
) SubmitOrderCommandHandler {
	return SubmitOrderCommandHandler{
		uowFactory:  uowFactory,
		roster:      roster,
		broadcaster: broadcaster,
	}
}

// Handle returns the id of the stored order.
// The submitter must be registered in the role the draft names and must not
// be blocked.
func (h SubmitOrderCommandHandler) Handle(ctx context.Context, command SubmitOrderCommand) (int64, error) {
	if err := command.Validate(); err != nil {
		return 0, err
	}

	o, err := order.NewOrder(command.Draft(), time.Now())
	if err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := h.ensureSubmitter(ctx, uow, o); err != nil {
		return 0, err
	}

	if err := uow.OrderRepository().Add(ctx, o); err != nil {
		return 0, err
	}

	if err := uow.Commit(ctx); err != nil {
		return 0, err
	}

	h.broadcaster.Send(ctx, h.roster.IDs(), notification.Event{
		Kind:    notification.OrderSubmitted,
		OrderID: o.ID(),
	})

	return o.ID(), nil
}

func (h SubmitOrderCommandHandler) ensureSubmitter(ctx context.Context, uow UoW, o *order.Order) error {
	if o.CreatorRole() == order.CreatedByCarrier {
		c, err := uow.CarrierRepository().Get(ctx, o.RequesterID())
		if err != nil {
			return err
		}
		return c.EnsureActive()
	}

	r, err := uow.RequesterRepository().Get(ctx, o.RequesterID())
	if err != nil {
		return err
	}
	return r.EnsureActive()
}
