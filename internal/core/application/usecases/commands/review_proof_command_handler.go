package commands

import (
	"context"
	"time"

	"cargo/internal/core/domain/model/notification"
	"cargo/internal/core/domain/model/topup"
	"cargo/internal/core/domain/services"
	"cargo/internal/metrics"
	"cargo/internal/pkg/errs"
)

// ReviewResult reports the verdict and, for approvals, the credited balance.
type ReviewResult struct {
	CarrierID int64
	Status    topup.Status
	Amount    int64
	Balance   int64
}

// ReviewProofCommandHandler settles a pending proof. An approval credits the
// carrier in the same transaction that marks the proof reviewed, so a
// replayed or concurrent review can never credit twice.
type ReviewProofCommandHandler struct {
	uowFactory  UoWFactory
	roster      services.DispatcherRoster
	broadcaster Broadcaster
	metrics     *metrics.Dispatch
}

func NewReviewProofCommandHandler(
	uowFactory UoWFactory,
	roster services.DispatcherRoster,
	broadcaster Broadcaster,
	m *metrics.Dispatch,
) ReviewProofCommandHandler {
	return ReviewProofCommandHandler{
		uowFactory:  uowFactory,
		roster:      roster,
		broadcaster: broadcaster,
		metrics:     m,
	}
}

func (h ReviewProofCommandHandler) Handle(ctx context.Context, command ReviewProofCommand) (ReviewResult, error) {
	if err := command.Validate(); err != nil {
		return ReviewResult{}, err
	}

	if err := h.roster.Ensure(command.ActorID(), "review top-up proofs"); err != nil {
		return ReviewResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ReviewResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	p, err := uow.ProofRepository().Get(ctx, command.ProofID())
	if err != nil {
		return ReviewResult{}, err
	}

	now := time.Now()
	if command.Decision() == Approve {
		err = p.Approve(command.ActorID(), command.Amount(), now)
	} else {
		err = p.Reject(command.ActorID(), now)
	}
	if err != nil {
		return ReviewResult{}, err
	}

	swapped, err := uow.ProofRepository().CompareAndSwap(ctx, p, topup.Pending)
	if err != nil {
		return ReviewResult{}, err
	}
	if !swapped {
		return ReviewResult{}, errs.NewInvalidStateErrorWithReason("proof", "reviewed", string(command.Decision()), errs.ErrAlreadyReviewed)
	}

	res := ReviewResult{CarrierID: p.CarrierID(), Status: p.Status()}
	if amount, ok := p.Amount(); ok {
		balance, err := uow.CarrierRepository().Credit(ctx, p.CarrierID(), amount)
		if err != nil {
			return ReviewResult{}, err
		}
		res.Amount = amount
		res.Balance = balance
	}

	if err := uow.Commit(ctx); err != nil {
		return ReviewResult{}, err
	}

	h.metrics.ObserveReview(res.Status.String())
	h.metrics.ObserveLedger(metrics.DirectionCredit, metrics.SourceProof, res.Amount)
	h.broadcaster.SendOne(ctx, res.CarrierID, notification.Event{
		Kind:    notification.ProofReviewed,
		ProofID: p.ID().String(),
		Amount:  res.Amount,
		Balance: res.Balance,
		Text:    res.Status.String(),
	})

	return res, nil
}
