package commands

import (
	"context"

	"cargo/internal/core/domain/model/notification"
	"cargo/internal/core/domain/services"
	"cargo/internal/metrics"
)

// DebitBalanceCommandHandler subtracts from a carrier balance only when the
// balance covers the amount. A shortfall is reported as
// *errs.InsufficientBalanceError and leaves the balance untouched.
type DebitBalanceCommandHandler struct {
	uowFactory  CarrierUoWFactory
	roster      services.DispatcherRoster
	broadcaster Broadcaster
	metrics     *metrics.Dispatch
}

func NewDebitBalanceCommandHandler(
	uowFactory CarrierUoWFactory,
	roster services.DispatcherRoster,
	broadcaster Broadcaster,
	m *metrics.Dispatch,
) DebitBalanceCommandHandler {
	return DebitBalanceCommandHandler{
		uowFactory:  uowFactory,
		roster:      roster,
		broadcaster: broadcaster,
		metrics:     m,
	}
}

func (h DebitBalanceCommandHandler) Handle(ctx context.Context, command DebitBalanceCommand) (int64, error) {
	if err := command.Validate(); err != nil {
		return 0, err
	}

	if err := h.roster.Ensure(command.ActorID(), "debit balances"); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	balance, err := uow.CarrierRepository().DebitIfSufficient(ctx, command.CarrierID(), command.Amount())
	if err != nil {
		return 0, err
	}

	if err := uow.Commit(ctx); err != nil {
		return 0, err
	}

	h.metrics.ObserveLedger(metrics.DirectionDebit, metrics.SourceCorrection, command.Amount())
	h.broadcaster.SendOne(ctx, command.CarrierID(), notification.Event{
		Kind:    notification.BalanceDebited,
		Amount:  command.Amount(),
		Balance: balance,
	})

	return balance, nil
}
