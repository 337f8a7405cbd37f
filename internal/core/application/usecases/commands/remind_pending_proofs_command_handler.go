package commands

import (
	"context"

	"cargo/internal/core/domain/model/notification"
	"cargo/internal/core/domain/services"
)

type RemindPendingProofsCommandHandler struct {
	uowFactory  UoWFactory
	roster      services.DispatcherRoster
	broadcaster Broadcaster
}

func NewRemindPendingProofsCommandHandler(
	uowFactory UoWFactory,
	roster services.DispatcherRoster,
	broadcaster Broadcaster,
) RemindPendingProofsCommandHandler {
	return RemindPendingProofsCommandHandler{
		uowFactory:  uowFactory,
		roster:      roster,
		broadcaster: broadcaster,
	}
}

// Handle counts stale pending proofs and, when there are any, tells every
// dispatcher. It returns the count.
func (h RemindPendingProofsCommandHandler) Handle(ctx context.Context, command RemindPendingProofsCommand) (int, error) {
	if err := command.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	n, err := uow.ProofRepository().CountPendingBefore(ctx, command.Cutoff())
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, nil
	}

	h.broadcaster.Send(ctx, h.roster.IDs(), notification.Event{
		Kind:  notification.ProofsPending,
		Count: n,
	})

	return n, nil
}
