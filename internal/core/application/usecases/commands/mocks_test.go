package commands_test

import (
	"context"
	"testing"
	"time"

	"cargo/internal/core/application/fanout"
	"cargo/internal/core/application/usecases/commands"
	"cargo/internal/core/domain/model/carrier"
	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/core/domain/model/notification"
	"cargo/internal/core/domain/model/order"
	"cargo/internal/core/domain/model/requester"
	"cargo/internal/core/domain/model/topup"
	"cargo/internal/core/domain/services"
	"cargo/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	dispatcherID int64 = 1
	requesterID  int64 = 42
	carrierID    int64 = 501
	rivalID      int64 = 502
	orderID      int64 = 7
)

var roster = services.NewDispatcherRoster([]int64{dispatcherID})

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) CompareAndSwap(ctx context.Context, o *order.Order, from order.Status) (bool, error) {
	args := m.Called(ctx, o, from)
	return args.Bool(0), args.Error(1)
}

type MockCarrierRepository struct{ mock.Mock }

func (m *MockCarrierRepository) Add(ctx context.Context, c *carrier.Carrier) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCarrierRepository) Get(ctx context.Context, id int64) (*carrier.Carrier, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*carrier.Carrier), args.Error(1)
}

func (m *MockCarrierRepository) Credit(ctx context.Context, id int64, amount int64) (int64, error) {
	args := m.Called(ctx, id, amount)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCarrierRepository) DebitIfSufficient(ctx context.Context, id int64, amount int64) (int64, error) {
	args := m.Called(ctx, id, amount)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCarrierRepository) UpdateStatus(ctx context.Context, id int64, status kernel.AccountStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockCarrierRepository) ListActiveIDs(ctx context.Context) ([]int64, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

type MockRequesterRepository struct{ mock.Mock }

func (m *MockRequesterRepository) Add(ctx context.Context, r *requester.Requester) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRequesterRepository) Get(ctx context.Context, id int64) (*requester.Requester, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*requester.Requester), args.Error(1)
}

func (m *MockRequesterRepository) UpdateStatus(ctx context.Context, id int64, status kernel.AccountStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockRequesterRepository) ListActiveIDs(ctx context.Context) ([]int64, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

type MockProofRepository struct{ mock.Mock }

func (m *MockProofRepository) Add(ctx context.Context, p *topup.Proof) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProofRepository) Get(ctx context.Context, id kernel.UUID) (*topup.Proof, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*topup.Proof), args.Error(1)
}

func (m *MockProofRepository) CompareAndSwap(ctx context.Context, p *topup.Proof, from topup.Status) (bool, error) {
	args := m.Called(ctx, p, from)
	return args.Bool(0), args.Error(1)
}

func (m *MockProofRepository) CountPendingBefore(ctx context.Context, cutoff time.Time) (int, error) {
	args := m.Called(ctx, cutoff)
	return args.Int(0), args.Error(1)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) CarrierRepository() ports.CarrierRepository {
	args := m.Called()
	return args.Get(0).(ports.CarrierRepository)
}

func (m *MockUoW) RequesterRepository() ports.RequesterRepository {
	args := m.Called()
	return args.Get(0).(ports.RequesterRepository)
}

func (m *MockUoW) ProofRepository() ports.ProofRepository {
	args := m.Called()
	return args.Get(0).(ports.ProofRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockCarrierUoWFactory struct{ mock.Mock }

func (m *MockCarrierUoWFactory) Create() commands.CarrierUoW {
	args := m.Called()
	return args.Get(0).(commands.CarrierUoW)
}

type MockBroadcaster struct{ mock.Mock }

func (m *MockBroadcaster) Send(ctx context.Context, recipients []int64, event notification.Event) fanout.Report {
	args := m.Called(ctx, recipients, event)
	return args.Get(0).(fanout.Report)
}

func (m *MockBroadcaster) SendOne(ctx context.Context, recipient int64, event notification.Event) fanout.Report {
	args := m.Called(ctx, recipient, event)
	return args.Get(0).(fanout.Report)
}

// repos bundles the per-aggregate mocks behind one MockUoW.
type repos struct {
	orders     *MockOrderRepository
	carriers   *MockCarrierRepository
	requesters *MockRequesterRepository
	proofs     *MockProofRepository
	uow        *MockUoW
	factory    *MockUoWFactory
}

func newRepos() repos {
	r := repos{
		orders:     new(MockOrderRepository),
		carriers:   new(MockCarrierRepository),
		requesters: new(MockRequesterRepository),
		proofs:     new(MockProofRepository),
		uow:        new(MockUoW),
		factory:    new(MockUoWFactory),
	}
	r.uow.On("OrderRepository").Return(r.orders).Maybe()
	r.uow.On("CarrierRepository").Return(r.carriers).Maybe()
	r.uow.On("RequesterRepository").Return(r.requesters).Maybe()
	r.uow.On("ProofRepository").Return(r.proofs).Maybe()
	r.uow.On("Rollback", mock.Anything).Return(nil).Maybe()
	r.factory.On("Create").Return(r.uow).Maybe()
	return r
}

func (r repos) carrierFactory() *MockCarrierUoWFactory {
	f := new(MockCarrierUoWFactory)
	f.On("Create").Return(r.uow).Maybe()
	return f
}

func (r repos) assertExpectations(t *testing.T) {
	t.Helper()
	r.orders.AssertExpectations(t)
	r.carriers.AssertExpectations(t)
	r.requesters.AssertExpectations(t)
	r.proofs.AssertExpectations(t)
	r.uow.AssertExpectations(t)
}

func quietBroadcaster() *MockBroadcaster {
	b := new(MockBroadcaster)
	b.On("Send", mock.Anything, mock.Anything, mock.Anything).Return(fanout.Report{}).Maybe()
	b.On("SendOne", mock.Anything, mock.Anything, mock.Anything).Return(fanout.Report{}).Maybe()
	return b
}

func newTestCarrier(t *testing.T, id, balance int64) *carrier.Carrier {
	t.Helper()
	c, err := carrier.NewCarrier(carrier.Profile{
		ID:       id,
		FullName: "Bakhodir Karimov",
		Vehicle:  "Isuzu NPR",
		Phone:    "+998901234567",
	}, balance)
	require.NoError(t, err)
	return c
}

func newTestRequester(t *testing.T, id int64) *requester.Requester {
	t.Helper()
	r, err := requester.NewRequester(requester.Profile{ID: id, FullName: "Dilnoza", Phone: "+998901112233"})
	require.NoError(t, err)
	return r
}

func testDraft() order.Draft {
	return order.Draft{
		RequesterID: requesterID,
		Origin:      "Tashkent",
		Destination: "Samarkand",
		Cargo:       "furniture",
		Weight:      "350",
		Vehicle:     "Bongo",
		Phone:       "+998901234567",
	}
}

// newTestOrder returns a stored order with id orderID. A positive fee
// opens it.
func newTestOrder(t *testing.T, fee int64) *order.Order {
	t.Helper()
	o, err := order.NewOrder(testDraft(), time.Now())
	require.NoError(t, err)
	require.NoError(t, o.AssignIdentity(orderID))
	if fee > 0 {
		require.NoError(t, o.SetFee(fee))
	}
	return o
}
