package commands

import (
	"context"

	"cargo/internal/core/domain/model/notification"
	"cargo/internal/core/domain/services"
	"cargo/internal/metrics"
)

// TopUpBalanceCommandHandler credits a carrier on a dispatcher's say-so and
// returns the new balance.
type TopUpBalanceCommandHandler struct {
	uowFactory  CarrierUoWFactory
	roster      services.DispatcherRoster
	broadcaster Broadcaster
	metrics     *metrics.Dispatch
}

func NewTopUpBalanceCommandHandler(
	uowFactory CarrierUoWFactory,
	roster services.DispatcherRoster,
	broadcaster Broadcaster,
	m *metrics.Dispatch,
) TopUpBalanceCommandHandler {
	return TopUpBalanceCommandHandler{
		uowFactory:  uowFactory,
		roster:      roster,
		broadcaster: broadcaster,
		metrics:     m,
	}
}

func (h TopUpBalanceCommandHandler) Handle(ctx context.Context, command TopUpBalanceCommand) (int64, error) {
	if err := command.Validate(); err != nil {
		return 0, err
	}

	if err := h.roster.Ensure(command.ActorID(), "credit balances"); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	balance, err := uow.CarrierRepository().Credit(ctx, command.CarrierID(), command.Amount())
	if err != nil {
		return 0, err
	}

	if err := uow.Commit(ctx); err != nil {
		return 0, err
	}

	h.metrics.ObserveLedger(metrics.DirectionCredit, metrics.SourceTopUp, command.Amount())
	h.broadcaster.SendOne(ctx, command.CarrierID(), notification.Event{
		Kind:    notification.BalanceCredited,
		Amount:  command.Amount(),
		Balance: balance,
	})

	return balance, nil
}
