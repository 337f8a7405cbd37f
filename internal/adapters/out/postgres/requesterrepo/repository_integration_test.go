package requesterrepo_test

import (
	"context"
	"testing"

	"cargo/internal/adapters/out/postgres/pgtest"
	"cargo/internal/adapters/out/postgres/requesterrepo"
	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/core/domain/model/requester"
	"cargo/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type RequesterRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *requesterrepo.GormRequesterRepository
}

func (suite *RequesterRepositoryIntegrationTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background())
	suite.container = container
	suite.Require().NoError(err)
	suite.db = db
}

func (suite *RequesterRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE " + pgtest.AllTables + " RESTART IDENTITY").Error)
	suite.repository = requesterrepo.NewGormRequesterRepository(suite.db)
}

func (suite *RequesterRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *RequesterRepositoryIntegrationTestSuite) TestLifecycle() {
	ctx := context.Background()
	r, err := requester.NewRequester(requester.Profile{ID: 42, FullName: "Dilnoza", Username: "dil", Phone: "+998901112233"})
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.Add(ctx, r))
	suite.Require().ErrorIs(suite.repository.Add(ctx, r), errs.ErrObjectAlreadyExists)

	got, err := suite.repository.Get(ctx, 42)
	suite.Require().NoError(err)
	suite.Equal(r.Profile(), got.Profile())

	ids, err := suite.repository.ListActiveIDs(ctx)
	suite.Require().NoError(err)
	suite.Equal([]int64{42}, ids)

	suite.Require().NoError(suite.repository.UpdateStatus(ctx, 42, kernel.AccountBlocked))
	got, _ = suite.repository.Get(ctx, 42)
	suite.Require().ErrorIs(got.EnsureActive(), errs.ErrForbidden)

	ids, err = suite.repository.ListActiveIDs(ctx)
	suite.Require().NoError(err)
	suite.Empty(ids)

	_, err = suite.repository.Get(ctx, 7)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestRequesterRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(RequesterRepositoryIntegrationTestSuite))
}
