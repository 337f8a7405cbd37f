package commands

import (
	"context"
	"time"

	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/core/domain/model/notification"
	"cargo/internal/core/domain/model/topup"
	"cargo/internal/core/domain/services"
)

// SubmitProofCommandHandler stores a pending top-up proof and asks the
// dispatchers to review it.
type SubmitProofCommandHandler struct {
	uowFactory  UoWFactory
	roster      services.DispatcherRoster
	broadcaster Broadcaster
}

func NewSubmitProofCommandHandler(
	uowFactory UoWFactory,
	roster services.DispatcherRoster,
	broadcaster Broadcaster,
) SubmitProofCommandHandler {
	return SubmitProofCommandHandler{
		uowFactory:  uowFactory,
		roster:      roster,
		broadcaster: broadcaster,
	}
}

func (h SubmitProofCommandHandler) Handle(ctx context.Context, command SubmitProofCommand) (kernel.UUID, error) {
	if err := command.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	c, err := uow.CarrierRepository().Get(ctx, command.CarrierID())
	if err != nil {
		return kernel.UUID{}, err
	}
	if err := c.EnsureActive(); err != nil {
		return kernel.UUID{}, err
	}

	p, err := topup.NewProof(command.CarrierID(), command.Artifact(), time.Now())
	if err != nil {
		return kernel.UUID{}, err
	}

	if err := uow.ProofRepository().Add(ctx, p); err != nil {
		return kernel.UUID{}, err
	}

	if err := uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	h.broadcaster.Send(ctx, h.roster.IDs(), notification.Event{
		Kind:      notification.ProofSubmitted,
		CarrierID: command.CarrierID(),
		ProofID:   p.ID().String(),
	})

	return p.ID(), nil
}
