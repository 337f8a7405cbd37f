package proofrepo_test

import (
	"context"
	"testing"
	"time"

	"cargo/internal/adapters/out/postgres/pgtest"
	"cargo/internal/adapters/out/postgres/proofrepo"
	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/core/domain/model/topup"
	"cargo/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type ProofRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *proofrepo.GormProofRepository
}

func (suite *ProofRepositoryIntegrationTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background())
	suite.container = container
	suite.Require().NoError(err)
	suite.db = db
}

func (suite *ProofRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE " + pgtest.AllTables + " RESTART IDENTITY").Error)
	suite.repository = proofrepo.NewGormProofRepository(suite.db)
}

func (suite *ProofRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ProofRepositoryIntegrationTestSuite) TestAddGet() {
	ctx := context.Background()
	p, err := topup.NewProof(501, "receipt-1", time.Now())
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.Add(ctx, p))
	got, err := suite.repository.Get(ctx, p.ID())

	suite.Require().NoError(err)
	suite.True(p.ID().IsEqual(got.ID()))
	suite.Equal(topup.Pending, got.Status())
	suite.Equal("receipt-1", got.Artifact())

	_, err = suite.repository.Get(ctx, kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ProofRepositoryIntegrationTestSuite) TestCompareAndSwap_OnlyOnce() {
	ctx := context.Background()
	p, _ := topup.NewProof(501, "receipt-1", time.Now())
	suite.Require().NoError(suite.repository.Add(ctx, p))

	first, _ := suite.repository.Get(ctx, p.ID())
	second, _ := suite.repository.Get(ctx, p.ID())
	suite.Require().NoError(first.Approve(1, 50000, time.Now()))
	suite.Require().NoError(second.Approve(2, 50000, time.Now()))

	ok, err := suite.repository.CompareAndSwap(ctx, first, topup.Pending)
	suite.Require().NoError(err)
	suite.True(ok)

	ok, err = suite.repository.CompareAndSwap(ctx, second, topup.Pending)
	suite.Require().NoError(err)
	suite.False(ok)

	stored, _ := suite.repository.Get(ctx, p.ID())
	amount, _ := stored.Amount()
	suite.Equal(int64(50000), amount)
	suite.Equal(int64(1), *stored.Snapshot().ReviewerID)
}

func (suite *ProofRepositoryIntegrationTestSuite) TestCountPendingBefore() {
	ctx := context.Background()
	now := time.Now().UTC()
	old, _ := topup.NewProof(501, "old", now.Add(-2*time.Hour))
	fresh, _ := topup.NewProof(501, "fresh", now)
	reviewed, _ := topup.NewProof(502, "reviewed", now.Add(-3*time.Hour))
	suite.Require().NoError(reviewed.Reject(1, now))
	for _, p := range []*topup.Proof{old, fresh, reviewed} {
		suite.Require().NoError(suite.repository.Add(ctx, p))
	}

	n, err := suite.repository.CountPendingBefore(ctx, now.Add(-time.Hour))

	suite.Require().NoError(err)
	suite.Equal(1, n)
}

func TestProofRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ProofRepositoryIntegrationTestSuite))
}
