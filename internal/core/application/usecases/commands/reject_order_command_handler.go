package commands

import "context"

// RejectOrderCommandHandler confirms that the order exists and changes
// nothing. The order stays available to other carriers.
type RejectOrderCommandHandler struct {
	uowFactory UoWFactory
}

func NewRejectOrderCommandHandler(uowFactory UoWFactory) RejectOrderCommandHandler {
	return RejectOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h RejectOrderCommandHandler) Handle(ctx context.Context, command RejectOrderCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	_, err := uow.OrderRepository().Get(ctx, command.OrderID())
	return err
}
