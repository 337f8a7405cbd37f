package postgres_test

import (
	"context"
	"testing"
	"time"

	adapter "cargo/internal/adapters/out/postgres"
	"cargo/internal/adapters/out/postgres/orderrepo"
	"cargo/internal/adapters/out/postgres/pgtest"
	"cargo/internal/core/domain/model/order"
	"cargo/internal/core/ports"
	"cargo/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background())
	suite.container = container
	suite.Require().NoError(err)
	suite.db = db
	suite.factory = adapter.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE " + pgtest.AllTables + " RESTART IDENTITY").Error)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) newOrder() *order.Order {
	o, err := order.NewOrder(order.Draft{
		RequesterID: 42,
		Origin:      "A",
		Destination: "B",
		Cargo:       "crates",
		Weight:      "500",
		Vehicle:     "Isuzu",
		Phone:       "+998900000000",
	}, time.Now())
	suite.Require().NoError(err)
	return o
}

func (suite *UnitOfWorkIntegrationTestSuite) history(orderID int64) []orderrepo.OrderHistoryDTO {
	var rows []orderrepo.OrderHistoryDTO
	suite.Require().NoError(suite.db.Order("id").Find(&rows, "order_id = ?", orderID).Error)
	return rows
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsAndRecordsHistory() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	o := suite.newOrder()
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	suite.Require().NoError(o.SetFee(10000))
	ok, err := uow.OrderRepository().CompareAndSwap(ctx, o, order.AwaitingPrice)
	suite.Require().NoError(err)
	suite.Require().True(ok)
	suite.Require().NoError(uow.Commit(ctx))

	rows := suite.history(o.ID())
	suite.Require().Len(rows, 1)
	suite.Equal(int(order.Unknown), rows[0].FromStatus)
	suite.Equal(int(order.Open), rows[0].ToStatus)
	suite.Equal(int64(10000), *rows[0].Fee)

	suite.ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsEverything() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	o := suite.newOrder()
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	suite.Require().NoError(uow.Rollback(ctx))

	_, err := suite.factory.Create().OrderRepository().Get(ctx, o.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	suite.Empty(suite.history(o.ID()))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRolledBackSwap_RestoresOpenOrder() {
	ctx := context.Background()

	setup := suite.factory.Create()
	suite.Require().NoError(setup.Begin(ctx))
	o := suite.newOrder()
	suite.Require().NoError(setup.OrderRepository().Add(ctx, o))
	suite.Require().NoError(o.SetFee(5000))
	_, err := setup.OrderRepository().CompareAndSwap(ctx, o, order.AwaitingPrice)
	suite.Require().NoError(err)
	suite.Require().NoError(setup.Commit(ctx))

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(o.Take(501))
	ok, err := uow.OrderRepository().CompareAndSwap(ctx, o, order.Open)
	suite.Require().NoError(err)
	suite.Require().True(ok)
	suite.Require().NoError(uow.Rollback(ctx))

	suite.Len(suite.history(o.ID()), 1)
	stored, err := suite.factory.Create().OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Open, stored.Status())
	_, assigned := stored.Carrier()
	suite.False(assigned)
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
