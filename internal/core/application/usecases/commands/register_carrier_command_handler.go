package commands

import (
	"context"

	"cargo/internal/core/domain/model/carrier"
	"cargo/internal/metrics"
)

// RegisterCarrierCommandHandler creates a carrier whose opening balance is
// the signup bonus. The bonus is written by the same insert that creates
// the carrier, so a carrier never exists without it.
type RegisterCarrierCommandHandler struct {
	uowFactory  CarrierUoWFactory
	signupBonus int64
	metrics     *metrics.Dispatch
}

// NewRegisterCarrierCommandHandler falls back to carrier.DefaultSignupBonus
// for a negative bonus. Zero is a valid bonus.
func NewRegisterCarrierCommandHandler(
	uowFactory CarrierUoWFactory,
	signupBonus int64,
	m *metrics.Dispatch,
) RegisterCarrierCommandHandler {
	if signupBonus < 0 {
		signupBonus = carrier.DefaultSignupBonus
	}
	return RegisterCarrierCommandHandler{
		uowFactory:  uowFactory,
		signupBonus: signupBonus,
		metrics:     m,
	}
}

// Handle returns the opening balance. A repeated registration of the same
// id fails with ErrObjectAlreadyExists and grants no second bonus.
func (h RegisterCarrierCommandHandler) Handle(ctx context.Context, command RegisterCarrierCommand) (int64, error) {
	if err := command.Validate(); err != nil {
		return 0, err
	}

	c, err := carrier.NewCarrier(command.Profile(), h.signupBonus)
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

	if err := uow.CarrierRepository().Add(ctx, c); err != nil {
		return 0, err
	}

	if err := uow.Commit(ctx); err != nil {
		return 0, err
	}

	h.metrics.ObserveLedger(metrics.DirectionCredit, metrics.SourceSignup, c.Balance())

	return c.Balance(), nil
}
