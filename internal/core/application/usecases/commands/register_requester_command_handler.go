package commands

import (
	"context"

	"cargo/internal/core/domain/model/requester"
)

type RegisterRequesterCommandHandler struct {
	uowFactory UoWFactory
}

func NewRegisterRequesterCommandHandler(uowFactory UoWFactory) RegisterRequesterCommandHandler {
	return RegisterRequesterCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h RegisterRequesterCommandHandler) Handle(ctx context.Context, command RegisterRequesterCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	r, err := requester.NewRequester(command.Profile())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.RequesterRepository().Add(ctx, r); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
