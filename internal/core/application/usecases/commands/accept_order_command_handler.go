package commands

import (
	"context"
	"errors"

	"cargo/internal/core/domain/model/notification"
	"cargo/internal/core/domain/model/order"
	"cargo/internal/core/domain/services"
	"cargo/internal/metrics"
	"cargo/internal/pkg/errs"
)

// AcceptResult is what the winning carrier is told.
type AcceptResult struct {
	OrderID int64
	Fee     int64
	Balance int64
}

// AcceptOrderCommandHandler runs the first-accept-wins protocol.
//
// The status flip and the fee debit happen in one transaction:
//  1. CompareAndSwap the order from Open to Taken. Losing this race means
//     another carrier won and the caller gets ErrOrderUnavailable.
//  2. Debit the fee only if the balance still covers it. If it does not,
//     the transaction is rolled back, the order stays Open and the caller
//     gets ErrInsufficientBalance.
//
// No observer ever sees an order Taken by a carrier that was not charged.
//
// Example:
//
//	cmd, _ := NewAcceptOrderCommand(orderID, carrierID)
//	res, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrOrderUnavailable):
//	    // someone else got it
//	case errors.Is(err, errs.ErrInsufficientBalance):
//	    var shortfall *errs.InsufficientBalanceError
//	    errors.As(err, &shortfall)
//	case err == nil:
//	    fmt.Printf("fee %d charged, balance %d", res.Fee, res.Balance)
//	}
type AcceptOrderCommandHandler struct {
	uowFactory  UoWFactory
	roster      services.DispatcherRoster
	broadcaster Broadcaster
	metrics     *metrics.Dispatch
}

func NewAcceptOrderCommandHandler(
	uowFactory UoWFactory,
	roster services.DispatcherRoster,
	broadcaster Broadcaster,
	m *metrics.Dispatch,
) AcceptOrderCommandHandler {
	return AcceptOrderCommandHandler{
		uowFactory:  uowFactory,
		roster:      roster,
		broadcaster: broadcaster,
		metrics:     m,
	}
}

func (h AcceptOrderCommandHandler) Handle(ctx context.Context, command AcceptOrderCommand) (AcceptResult, error) {
	if err := command.Validate(); err != nil {
		return AcceptResult{}, err
	}

	res, o, err := h.accept(ctx, command)
	h.metrics.ObserveAccept(acceptOutcome(err))
	if err != nil {
		return AcceptResult{}, err
	}

	h.metrics.ObserveLedger(metrics.DirectionDebit, metrics.SourceFee, res.Fee)

	taken := notification.Event{Kind: notification.OrderTaken, OrderID: res.OrderID, CarrierID: command.CarrierID()}
	h.broadcaster.SendOne(ctx, o.RequesterID(), taken)
	h.broadcaster.Send(ctx, h.roster.IDs(), taken)
	h.broadcaster.SendOne(ctx, command.CarrierID(), notification.Event{
		Kind:    notification.BalanceDebited,
		OrderID: res.OrderID,
		Amount:  res.Fee,
		Balance: res.Balance,
	})

	return res, nil
}

func (h AcceptOrderCommandHandler) accept(ctx context.Context, command AcceptOrderCommand) (AcceptResult, *order.Order, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return AcceptResult{}, nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	c, err := uow.CarrierRepository().Get(ctx, command.CarrierID())
	if err != nil {
		return AcceptResult{}, nil, err
	}
	if err := c.EnsureActive(); err != nil {
		return AcceptResult{}, nil, err
	}

	o, err := uow.OrderRepository().Get(ctx, command.OrderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return AcceptResult{}, nil, errs.NewOrderUnavailableErrorWithCause(command.OrderID(), err)
	}
	if err != nil {
		return AcceptResult{}, nil, err
	}

	fee, err := services.NewOrderAcceptor().Accept(o, c)
	if err != nil {
		return AcceptResult{}, nil, err
	}

	swapped, err := uow.OrderRepository().CompareAndSwap(ctx, o, order.Open)
	if err != nil {
		return AcceptResult{}, nil, err
	}
	if !swapped {
		return AcceptResult{}, nil, errs.NewOrderUnavailableError(o.ID())
	}

	// A shortfall here leaves the swap uncommitted; the deferred rollback undoes it.
	balance, err := uow.CarrierRepository().DebitIfSufficient(ctx, c.ID(), fee)
	if err != nil {
		return AcceptResult{}, nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		return AcceptResult{}, nil, err
	}

	return AcceptResult{OrderID: o.ID(), Fee: fee, Balance: balance}, o, nil
}

func acceptOutcome(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeOK
	case errors.Is(err, errs.ErrOrderUnavailable):
		return metrics.OutcomeUnavailable
	case errors.Is(err, errs.ErrInsufficientBalance):
		return metrics.OutcomeShortfall
	case errors.Is(err, errs.ErrForbidden):
		return metrics.OutcomeRejected
	default:
		return metrics.OutcomeFailed
	}
}
