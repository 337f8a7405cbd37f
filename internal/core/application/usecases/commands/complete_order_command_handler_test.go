package commands_test

import (
	"testing"

	"cargo/internal/core/application/fanout"
	"cargo/internal/core/application/usecases/commands"
	"cargo/internal/core/domain/model/notification"
	"cargo/internal/core/domain/model/order"
	"cargo/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func takenOrder(t *testing.T, by int64) *order.Order {
	t.Helper()
	o := newTestOrder(t, 10000)
	require.NoError(t, o.Take(by))
	return o
}

func TestCompleteOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCompleteOrderCommand(orderID, carrierID)
	o := takenOrder(t, carrierID)
	r := newRepos()

	mock.InOrder(
		r.uow.On("Begin", ctx).Return(nil).Once(),
		r.orders.On("Get", ctx, orderID).Return(o, nil).Once(),
		r.orders.On("CompareAndSwap", ctx, o, order.Taken).Return(true, nil).Once(),
		r.uow.On("Commit", ctx).Return(nil).Once(),
	)

	done := notification.Event{Kind: notification.OrderCompleted, OrderID: orderID, CarrierID: carrierID}
	b := new(MockBroadcaster)
	b.On("SendOne", ctx, requesterID, done).Return(fanout.Report{Delivered: 1}).Once()
	b.On("Send", ctx, []int64{dispatcherID}, done).Return(fanout.Report{Delivered: 1}).Once()

	err := commands.NewCompleteOrderCommandHandler(r.factory, roster, b).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Done, o.Status())
	r.assertExpectations(t)
	b.AssertExpectations(t)
}

func TestCompleteOrderCommandHandler_Handle_Refusals(t *testing.T) {
	tests := []struct {
		name    string
		order   func(t *testing.T) *order.Order
		wantErr error
	}{
		{"another carrier", func(t *testing.T) *order.Order { return takenOrder(t, rivalID) }, errs.ErrForbidden},
		{"still open", func(t *testing.T) *order.Order { return newTestOrder(t, 10000) }, errs.ErrInvalidState},
		{"already done", func(t *testing.T) *order.Order {
			o := takenOrder(t, carrierID)
			require.NoError(t, o.Complete(carrierID))
			return o
		}, errs.ErrInvalidState},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := t.Context()
			cmd, _ := commands.NewCompleteOrderCommand(orderID, carrierID)
			r := newRepos()

			r.uow.On("Begin", ctx).Return(nil).Once()
			r.orders.On("Get", ctx, orderID).Return(tt.order(t), nil).Once()

			err := commands.NewCompleteOrderCommandHandler(r.factory, roster, quietBroadcaster()).Handle(ctx, cmd)

			require.ErrorIs(t, err, tt.wantErr)
			r.orders.AssertNotCalled(t, "CompareAndSwap", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestCompleteOrderCommandHandler_Handle_UnknownOrder(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCompleteOrderCommand(orderID, carrierID)
	r := newRepos()

	r.uow.On("Begin", ctx).Return(nil).Once()
	r.orders.On("Get", ctx, orderID).Return(nil, errs.NewObjectNotFoundError("order", orderID)).Once()

	err := commands.NewCompleteOrderCommandHandler(r.factory, roster, quietBroadcaster()).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestRejectOrderCommandHandler_Handle(t *testing.T) {
	t.Run("acknowledges without changes", func(t *testing.T) {
		ctx := t.Context()
		cmd, _ := commands.NewRejectOrderCommand(orderID, carrierID)
		o := newTestOrder(t, 10000)
		r := newRepos()

		r.uow.On("Begin", ctx).Return(nil).Once()
		r.orders.On("Get", ctx, orderID).Return(o, nil).Once()

		err := commands.NewRejectOrderCommandHandler(r.factory).Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, order.Open, o.Status())
		r.orders.AssertNotCalled(t, "CompareAndSwap", mock.Anything, mock.Anything, mock.Anything)
		r.uow.AssertNotCalled(t, "Commit", mock.Anything)
	})

	t.Run("unknown order", func(t *testing.T) {
		ctx := t.Context()
		cmd, _ := commands.NewRejectOrderCommand(orderID, carrierID)
		r := newRepos()

		r.uow.On("Begin", ctx).Return(nil).Once()
		r.orders.On("Get", ctx, orderID).Return(nil, errs.NewObjectNotFoundError("order", orderID)).Once()

		err := commands.NewRejectOrderCommandHandler(r.factory).Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("not constructed", func(t *testing.T) {
		err := commands.NewRejectOrderCommandHandler(newRepos().factory).Handle(t.Context(), commands.RejectOrderCommand{})

		require.ErrorIs(t, err, commands.ErrRejectOrderCommandIsNotConstructed)
	})
}
