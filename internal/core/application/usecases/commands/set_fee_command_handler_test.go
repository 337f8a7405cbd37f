package commands_test

import (
	"testing"

	"cargo/internal/core/application/fanout"
	"cargo/internal/core/application/usecases/commands"
	"cargo/internal/core/domain/model/notification"
	"cargo/internal/core/domain/model/order"
	"cargo/internal/metrics"
	"cargo/internal/pkg/errs"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewSetFeeCommand(t *testing.T) {
	cmd, err := commands.NewSetFeeCommand(orderID, 10000, dispatcherID)
	require.NoError(t, err)
	assert.Equal(t, int64(10000), cmd.Fee())

	_, err = commands.NewSetFeeCommand(orderID, 0, dispatcherID)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestSetFeeCommandHandler_Handle_Success(t *testing.T) {
	// Given
	ctx := t.Context()
	cmd, _ := commands.NewSetFeeCommand(orderID, 10000, dispatcherID)
	o := newTestOrder(t, 0)
	r := newRepos()
	m := metrics.NewDispatch(nil)

	mock.InOrder(
		r.uow.On("Begin", ctx).Return(nil).Once(),
		r.orders.On("Get", ctx, orderID).Return(o, nil).Once(),
		r.orders.On("CompareAndSwap", ctx, o, order.AwaitingPrice).Return(true, nil).Once(),
		r.carriers.On("ListActiveIDs", ctx).Return([]int64{carrierID, rivalID}, nil).Once(),
		r.uow.On("Commit", ctx).Return(nil).Once(),
	)

	b := new(MockBroadcaster)
	b.On("Send", ctx, []int64{carrierID, rivalID}, notification.Event{
		Kind: notification.OrderOpened, OrderID: orderID, Amount: 10000,
	}).Return(fanout.Report{Delivered: 2}).Once()

	// When
	err := commands.NewSetFeeCommandHandler(r.factory, roster, b, m).Handle(ctx, cmd)

	// Then
	require.NoError(t, err)
	assert.Equal(t, order.Open, o.Status())
	r.assertExpectations(t)
	b.AssertExpectations(t)
	assert.InDelta(t, 1, testutil.ToFloat64(m.FeesSet), 0)
}

func TestSetFeeCommandHandler_Handle_NotDispatcher(t *testing.T) {
	cmd, _ := commands.NewSetFeeCommand(orderID, 10000, carrierID)
	r := newRepos()

	err := commands.NewSetFeeCommandHandler(r.factory, roster, quietBroadcaster(), nil).Handle(t.Context(), cmd)

	require.ErrorIs(t, err, errs.ErrForbidden)
	r.factory.AssertNotCalled(t, "Create")
}

func TestSetFeeCommandHandler_Handle_UnknownOrder(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewSetFeeCommand(orderID, 10000, dispatcherID)
	r := newRepos()

	r.uow.On("Begin", ctx).Return(nil).Once()
	r.orders.On("Get", ctx, orderID).Return(nil, errs.NewObjectNotFoundError("order", orderID)).Once()

	err := commands.NewSetFeeCommandHandler(r.factory, roster, quietBroadcaster(), nil).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestSetFeeCommandHandler_Handle_AlreadyPriced(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewSetFeeCommand(orderID, 15000, dispatcherID)
	o := newTestOrder(t, 10000)
	r := newRepos()
	b := quietBroadcaster()

	r.uow.On("Begin", ctx).Return(nil).Once()
	r.orders.On("Get", ctx, orderID).Return(o, nil).Once()

	err := commands.NewSetFeeCommandHandler(r.factory, roster, b, nil).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrAlreadyPriced)
	require.ErrorIs(t, err, errs.ErrInvalidState)
	fee, _ := o.Fee()
	assert.Equal(t, int64(10000), fee)
	r.orders.AssertNotCalled(t, "CompareAndSwap", mock.Anything, mock.Anything, mock.Anything)
	b.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
}

func TestSetFeeCommandHandler_Handle_ConcurrentPricingLoses(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewSetFeeCommand(orderID, 15000, dispatcherID)
	o := newTestOrder(t, 0)
	r := newRepos()

	r.uow.On("Begin", ctx).Return(nil).Once()
	r.orders.On("Get", ctx, orderID).Return(o, nil).Once()
	r.orders.On("CompareAndSwap", ctx, o, order.AwaitingPrice).Return(false, nil).Once()

	err := commands.NewSetFeeCommandHandler(r.factory, roster, quietBroadcaster(), nil).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrAlreadyPriced)
	r.uow.AssertNotCalled(t, "Commit", mock.Anything)
}
