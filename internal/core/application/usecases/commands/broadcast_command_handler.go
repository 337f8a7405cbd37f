package commands

import (
	"context"

	"cargo/internal/core/application/fanout"
	"cargo/internal/core/domain/model/notification"
	"cargo/internal/core/domain/services"
)

type BroadcastCommandHandler struct {
	uowFactory  UoWFactory
	roster      services.DispatcherRoster
	broadcaster Broadcaster
}

func NewBroadcastCommandHandler(
	uowFactory UoWFactory,
	roster services.DispatcherRoster,
	broadcaster Broadcaster,
) BroadcastCommandHandler {
	return BroadcastCommandHandler{
		uowFactory:  uowFactory,
		roster:      roster,
		broadcaster: broadcaster,
	}
}

// Handle sends the text to every active account of the audience and reports
// how many deliveries succeeded. Blocked accounts are skipped.
func (h BroadcastCommandHandler) Handle(ctx context.Context, command BroadcastCommand) (fanout.Report, error) {
	if err := command.Validate(); err != nil {
		return fanout.Report{}, err
	}

	if err := h.roster.Ensure(command.ActorID(), "broadcast"); err != nil {
		return fanout.Report{}, err
	}

	recipients, err := h.recipients(ctx, command.Audience())
	if err != nil {
		return fanout.Report{}, err
	}

	return h.broadcaster.Send(ctx, recipients, notification.Event{
		Kind: notification.BroadcastMessage,
		Text: command.Text(),
	}), nil
}

func (h BroadcastCommandHandler) recipients(ctx context.Context, audience Party) ([]int64, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	var ids []int64
	if audience == Carriers || audience == Everyone {
		carriers, err := uow.CarrierRepository().ListActiveIDs(ctx)
		if err != nil {
			return nil, err
		}
		ids = append(ids, carriers...)
	}
	if audience == Requesters || audience == Everyone {
		requesters, err := uow.RequesterRepository().ListActiveIDs(ctx)
		if err != nil {
			return nil, err
		}
		ids = append(ids, requesters...)
	}

	return ids, nil
}
