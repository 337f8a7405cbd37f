package commands

import (
	"context"

	"cargo/internal/core/domain/model/notification"
	"cargo/internal/core/domain/model/order"
	"cargo/internal/core/domain/services"
	"cargo/internal/metrics"
	"cargo/internal/pkg/errs"
)

// SetFeeCommandHandler is the fee gate: it moves an order from AwaitingPrice
// to Open exactly once and announces it to every active carrier.
type SetFeeCommandHandler struct {
	uowFactory  UoWFactory
	roster      services.DispatcherRoster
	broadcaster Broadcaster
	metrics     *metrics.Dispatch
}

func NewSetFeeCommandHandler(
	uowFactory UoWFactory,
	roster services.DispatcherRoster,
	broadcaster Broadcaster,
	m *metrics.Dispatch,
) SetFeeCommandHandler {
	return SetFeeCommandHandler{
		uowFactory:  uowFactory,
		roster:      roster,
		broadcaster: broadcaster,
		metrics:     m,
	}
}

// Handle prices the order. Two dispatchers racing on the same order both
// pass the in-memory check; the status-conditional write lets only the
// first through and the second gets ErrAlreadyPriced.
func (h SetFeeCommandHandler) Handle(ctx context.Context, command SetFeeCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	if err := h.roster.Ensure(command.ActorID(), "set fees"); err != nil {
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

	if err := o.SetFee(command.Fee()); err != nil {
		return err
	}

	swapped, err := uow.OrderRepository().CompareAndSwap(ctx, o, order.AwaitingPrice)
	if err != nil {
		return err
	}
	if !swapped {
		return errs.NewInvalidStateErrorWithReason("order", "priced", "set fee", errs.ErrAlreadyPriced)
	}

	carriers, err := uow.CarrierRepository().ListActiveIDs(ctx)
	if err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	h.metrics.ObserveFeeSet()
	h.broadcaster.Send(ctx, carriers, notification.Event{
		Kind:    notification.OrderOpened,
		OrderID: o.ID(),
		Amount:  command.Fee(),
	})

	return nil
}
