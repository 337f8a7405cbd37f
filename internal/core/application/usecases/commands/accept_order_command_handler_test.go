package commands_test

import (
	"errors"
	"testing"

	"cargo/internal/core/application/fanout"
	"cargo/internal/core/application/usecases/commands"
	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/core/domain/model/notification"
	"cargo/internal/core/domain/model/order"
	"cargo/internal/metrics"
	"cargo/internal/pkg/errs"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewAcceptOrderCommand(t *testing.T) {
	cmd, err := commands.NewAcceptOrderCommand(orderID, carrierID)
	require.NoError(t, err)
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, carrierID, cmd.CarrierID())

	_, err = commands.NewAcceptOrderCommand(0, -1)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestAcceptOrderCommandHandler_Handle_Success(t *testing.T) {
	// Given
	ctx := t.Context()
	cmd, _ := commands.NewAcceptOrderCommand(orderID, carrierID)
	o := newTestOrder(t, 10000)
	c := newTestCarrier(t, carrierID, 99000)
	r := newRepos()
	m := metrics.NewDispatch(nil)

	mock.InOrder(
		r.uow.On("Begin", ctx).Return(nil).Once(),
		r.carriers.On("Get", ctx, carrierID).Return(c, nil).Once(),
		r.orders.On("Get", ctx, orderID).Return(o, nil).Once(),
		r.orders.On("CompareAndSwap", ctx, o, order.Open).Return(true, nil).Once(),
		r.carriers.On("DebitIfSufficient", ctx, carrierID, int64(10000)).Return(int64(89000), nil).Once(),
		r.uow.On("Commit", ctx).Return(nil).Once(),
	)

	taken := notification.Event{Kind: notification.OrderTaken, OrderID: orderID, CarrierID: carrierID}
	b := new(MockBroadcaster)
	b.On("SendOne", ctx, requesterID, taken).Return(fanout.Report{Delivered: 1}).Once()
	b.On("Send", ctx, []int64{dispatcherID}, taken).Return(fanout.Report{Delivered: 1}).Once()
	b.On("SendOne", ctx, carrierID, notification.Event{
		Kind: notification.BalanceDebited, OrderID: orderID, Amount: 10000, Balance: 89000,
	}).Return(fanout.Report{Delivered: 1}).Once()

	// When
	res, err := commands.NewAcceptOrderCommandHandler(r.factory, roster, b, m).Handle(ctx, cmd)

	// Then
	require.NoError(t, err)
	assert.Equal(t, commands.AcceptResult{OrderID: orderID, Fee: 10000, Balance: 89000}, res)
	assert.Equal(t, order.Taken, o.Status())
	r.assertExpectations(t)
	b.AssertExpectations(t)
	assert.InDelta(t, 1, testutil.ToFloat64(m.OrderAccepts.WithLabelValues(metrics.OutcomeOK)), 0)
	assert.InDelta(t, 10000, testutil.ToFloat64(m.LedgerMovements.WithLabelValues(metrics.DirectionDebit, metrics.SourceFee)), 0)
}

func TestAcceptOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	r := newRepos()
	_, err := commands.NewAcceptOrderCommandHandler(r.factory, roster, quietBroadcaster(), nil).
		Handle(t.Context(), commands.AcceptOrderCommand{})

	require.ErrorIs(t, err, commands.ErrAcceptOrderCommandIsNotConstructed)
	r.factory.AssertNotCalled(t, "Create")
}

func TestAcceptOrderCommandHandler_Handle_UnknownCarrier(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewAcceptOrderCommand(orderID, carrierID)
	r := newRepos()

	r.uow.On("Begin", ctx).Return(nil).Once()
	r.carriers.On("Get", ctx, carrierID).Return(nil, errs.NewObjectNotFoundError("carrier", carrierID)).Once()

	_, err := commands.NewAcceptOrderCommandHandler(r.factory, roster, quietBroadcaster(), nil).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	r.orders.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	r.uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestAcceptOrderCommandHandler_Handle_BlockedCarrier(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewAcceptOrderCommand(orderID, carrierID)
	c := newTestCarrier(t, carrierID, 99000)
	require.NoError(t, c.SetStatus(kernel.AccountBlocked))
	r := newRepos()
	m := metrics.NewDispatch(nil)

	r.uow.On("Begin", ctx).Return(nil).Once()
	r.carriers.On("Get", ctx, carrierID).Return(c, nil).Once()

	_, err := commands.NewAcceptOrderCommandHandler(r.factory, roster, quietBroadcaster(), m).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrForbidden)
	r.orders.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	r.orders.AssertNotCalled(t, "CompareAndSwap", mock.Anything, mock.Anything, mock.Anything)
	assert.InDelta(t, 1, testutil.ToFloat64(m.OrderAccepts.WithLabelValues(metrics.OutcomeRejected)), 0)
}

func TestAcceptOrderCommandHandler_Handle_BlockedCarrierMissingOrder(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewAcceptOrderCommand(orderID, carrierID)
	c := newTestCarrier(t, carrierID, 99000)
	require.NoError(t, c.SetStatus(kernel.AccountBlocked))
	r := newRepos()

	r.uow.On("Begin", ctx).Return(nil).Once()
	r.carriers.On("Get", ctx, carrierID).Return(c, nil).Once()
	r.orders.On("Get", ctx, orderID).Return(nil, errs.NewObjectNotFoundError("order", orderID)).Maybe()

	_, err := commands.NewAcceptOrderCommandHandler(r.factory, roster, quietBroadcaster(), nil).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrForbidden)
	assert.NotErrorIs(t, err, errs.ErrOrderUnavailable)
}

func TestAcceptOrderCommandHandler_Handle_MissingOrderIsUnavailable(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewAcceptOrderCommand(orderID, carrierID)
	r := newRepos()

	r.uow.On("Begin", ctx).Return(nil).Once()
	r.carriers.On("Get", ctx, carrierID).Return(newTestCarrier(t, carrierID, 99000), nil).Once()
	r.orders.On("Get", ctx, orderID).Return(nil, errs.NewObjectNotFoundError("order", orderID)).Once()

	_, err := commands.NewAcceptOrderCommandHandler(r.factory, roster, quietBroadcaster(), nil).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrOrderUnavailable)
}

func TestAcceptOrderCommandHandler_Handle_NotOpen(t *testing.T) {
	tests := []struct {
		name  string
		order func(t *testing.T) *order.Order
	}{
		{"awaiting price", func(t *testing.T) *order.Order { return newTestOrder(t, 0) }},
		{"taken by rival", func(t *testing.T) *order.Order {
			o := newTestOrder(t, 10000)
			require.NoError(t, o.Take(rivalID))
			return o
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := t.Context()
			cmd, _ := commands.NewAcceptOrderCommand(orderID, carrierID)
			r := newRepos()

			r.uow.On("Begin", ctx).Return(nil).Once()
			r.carriers.On("Get", ctx, carrierID).Return(newTestCarrier(t, carrierID, 99000), nil).Once()
			r.orders.On("Get", ctx, orderID).Return(tt.order(t), nil).Once()

			_, err := commands.NewAcceptOrderCommandHandler(r.factory, roster, quietBroadcaster(), nil).Handle(ctx, cmd)

			require.ErrorIs(t, err, errs.ErrOrderUnavailable)
			r.carriers.AssertNotCalled(t, "DebitIfSufficient", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestAcceptOrderCommandHandler_Handle_InsufficientBalanceBeforeSwap(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewAcceptOrderCommand(orderID, carrierID)
	o := newTestOrder(t, 10000)
	r := newRepos()

	r.uow.On("Begin", ctx).Return(nil).Once()
	r.carriers.On("Get", ctx, carrierID).Return(newTestCarrier(t, carrierID, 0), nil).Once()
	r.orders.On("Get", ctx, orderID).Return(o, nil).Once()

	_, err := commands.NewAcceptOrderCommandHandler(r.factory, roster, quietBroadcaster(), nil).Handle(ctx, cmd)

	var shortfall *errs.InsufficientBalanceError
	require.ErrorAs(t, err, &shortfall)
	assert.Equal(t, int64(10000), shortfall.Required)
	assert.Equal(t, int64(0), shortfall.Available)
	assert.Equal(t, int64(10000), shortfall.Shortfall())
	assert.Equal(t, order.Open, o.Status())
	r.orders.AssertNotCalled(t, "CompareAndSwap", mock.Anything, mock.Anything, mock.Anything)
}

func TestAcceptOrderCommandHandler_Handle_LostRace(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewAcceptOrderCommand(orderID, carrierID)
	o := newTestOrder(t, 10000)
	r := newRepos()
	b := quietBroadcaster()
	m := metrics.NewDispatch(nil)

	r.uow.On("Begin", ctx).Return(nil).Once()
	r.carriers.On("Get", ctx, carrierID).Return(newTestCarrier(t, carrierID, 99000), nil).Once()
	r.orders.On("Get", ctx, orderID).Return(o, nil).Once()
	r.orders.On("CompareAndSwap", ctx, o, order.Open).Return(false, nil).Once()

	_, err := commands.NewAcceptOrderCommandHandler(r.factory, roster, b, m).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrOrderUnavailable)
	r.carriers.AssertNotCalled(t, "DebitIfSufficient", mock.Anything, mock.Anything, mock.Anything)
	r.uow.AssertNotCalled(t, "Commit", mock.Anything)
	b.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
	assert.InDelta(t, 1, testutil.ToFloat64(m.OrderAccepts.WithLabelValues(metrics.OutcomeUnavailable)), 0)
}

func TestAcceptOrderCommandHandler_Handle_DebitShortfallRollsBack(t *testing.T) {
	// Given: the balance was drained between the read and the debit
	ctx := t.Context()
	cmd, _ := commands.NewAcceptOrderCommand(orderID, carrierID)
	o := newTestOrder(t, 10000)
	r := newRepos()
	b := quietBroadcaster()

	mock.InOrder(
		r.uow.On("Begin", ctx).Return(nil).Once(),
		r.carriers.On("Get", ctx, carrierID).Return(newTestCarrier(t, carrierID, 99000), nil).Once(),
		r.orders.On("Get", ctx, orderID).Return(o, nil).Once(),
		r.orders.On("CompareAndSwap", ctx, o, order.Open).Return(true, nil).Once(),
		r.carriers.On("DebitIfSufficient", ctx, carrierID, int64(10000)).
			Return(int64(0), errs.NewInsufficientBalanceError(carrierID, 10000, 3000)).Once(),
	)

	// When
	_, err := commands.NewAcceptOrderCommandHandler(r.factory, roster, b, nil).Handle(ctx, cmd)

	// Then
	require.ErrorIs(t, err, errs.ErrInsufficientBalance)
	r.assertExpectations(t)
	r.orders.AssertNumberOfCalls(t, "CompareAndSwap", 1)
	r.uow.AssertNotCalled(t, "Commit", mock.Anything)
	r.uow.AssertCalled(t, "Rollback", ctx)
	b.AssertNotCalled(t, "SendOne", mock.Anything, mock.Anything, mock.Anything)
}

func TestAcceptOrderCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewAcceptOrderCommand(orderID, carrierID)
	o := newTestOrder(t, 10000)
	r := newRepos()
	b := quietBroadcaster()

	r.uow.On("Begin", ctx).Return(nil).Once()
	r.carriers.On("Get", ctx, carrierID).Return(newTestCarrier(t, carrierID, 99000), nil).Once()
	r.orders.On("Get", ctx, orderID).Return(o, nil).Once()
	r.orders.On("CompareAndSwap", ctx, o, order.Open).Return(true, nil).Once()
	r.carriers.On("DebitIfSufficient", ctx, carrierID, int64(10000)).Return(int64(89000), nil).Once()
	r.uow.On("Commit", ctx).Return(errors.New("commit error")).Once()

	_, err := commands.NewAcceptOrderCommandHandler(r.factory, roster, b, nil).Handle(ctx, cmd)

	require.EqualError(t, err, "commit error")
	b.AssertNotCalled(t, "SendOne", mock.Anything, mock.Anything, mock.Anything)
}

func TestAcceptOrderCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewAcceptOrderCommand(orderID, carrierID)
	r := newRepos()
	r.uow.On("Begin", ctx).Return(errors.New("begin error")).Once()

	_, err := commands.NewAcceptOrderCommandHandler(r.factory, roster, quietBroadcaster(), nil).Handle(ctx, cmd)

	require.EqualError(t, err, "begin error")
}
