package queries_test

import (
	"context"
	"testing"
	"time"

	"evaluation/internal/adapters/out/postgres/awardrepo"
	"evaluation/internal/core/application/usecases/queries"
	"evaluation/internal/core/domain/model/award"
	"evaluation/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetContractAwardsQueryHandlerTestSuite struct {
	suite.Suite
	container    *postgres.PostgresContainer
	db           *gorm.DB
	handler      queries.GetContractAwardsQueryHandler
	countHandler queries.CountPendingAwardsQueryHandler
}

func (suite *GetContractAwardsQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&awardrepo.AwardDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetContractAwardsQueryHandler(db)
	suite.countHandler = queries.NewCountPendingAwardsQueryHandler(db)
}

func (suite *GetContractAwardsQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetContractAwardsQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE awards").Error
	suite.Require().NoError(err)
}

func (suite *GetContractAwardsQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query, err := queries.NewGetContractAwardsQuery("ocds-cp-1", "EV")
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetContractAwardsQueryHandlerTestSuite) TestHandle_WithAwards_ReturnsStatesOfRequestedStage() {
	ctx := context.Background()

	pending := suite.saveTestAward(ctx, "ocds-cp-1", "EV", "lot-1")
	decided := suite.saveTestAward(ctx, "ocds-cp-1", "EV", "lot-2")
	suite.decide(ctx, decided, award.DetailsActive)
	suite.saveTestAward(ctx, "ocds-cp-1", "AC", "lot-1")
	suite.saveTestAward(ctx, "ocds-cp-2", "EV", "lot-1")

	query, err := queries.NewGetContractAwardsQuery("ocds-cp-1", "EV")
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Len(result, 2)

	states := make(map[kernel.UUID]queries.GetContractAwardsQueryResponse, len(result))
	for _, r := range result {
		states[r.AwardID] = r
	}

	pendingState, exists := states[pending.ID()]
	suite.Require().True(exists)
	suite.Equal("pending", pendingState.Status)
	suite.Equal("empty", pendingState.StatusDetails)

	decidedState, exists := states[decided.ID()]
	suite.Require().True(exists)
	suite.Equal("pending", decidedState.Status)
	suite.Equal("active", decidedState.StatusDetails)
}

func (suite *GetContractAwardsQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetContractAwardsQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetContractAwardsQuery constructor")
}

func (suite *GetContractAwardsQueryHandlerTestSuite) TestCountPendingAwards_CountsUndecidedOnly() {
	ctx := context.Background()

	suite.saveTestAward(ctx, "ocds-cp-1", "EV", "lot-1")
	suite.saveTestAward(ctx, "ocds-cp-2", "EV", "lot-1")
	decided := suite.saveTestAward(ctx, "ocds-cp-3", "EV", "lot-1")
	suite.decide(ctx, decided, award.DetailsUnsuccessful)

	count, err := suite.countHandler.Handle(ctx, queries.NewCountPendingAwardsQuery())

	suite.Require().NoError(err)
	suite.Equal(int64(2), count)
}

func (suite *GetContractAwardsQueryHandlerTestSuite) TestCountPendingAwards_InvalidQuery_ReturnsError() {
	_, err := suite.countHandler.Handle(context.Background(), queries.CountPendingAwardsQuery{})

	suite.Require().Error(err)
	suite.Contains(err.Error(), "must be created via NewCountPendingAwardsQuery constructor")
}

func (suite *GetContractAwardsQueryHandlerTestSuite) saveTestAward(
	ctx context.Context,
	contractID string,
	stage string,
	lotID string,
) *award.Award {
	value, err := kernel.NewMoney(25000, "EUR")
	suite.Require().NoError(err)

	a, err := award.NewAward(
		kernel.NewUUID(), kernel.NewUUID(),
		contractID, stage, "owner-1", lotID,
		value,
		[]award.Supplier{{
			Name:       "Supplier 1001",
			Identifier: award.Identifier{Scheme: "MD-IDNO", ID: "1001"},
			Scale:      "sme",
		}},
		"supply of laptops",
		time.Date(2026, 4, 1, 9, 30, 0, 0, time.UTC),
	)
	suite.Require().NoError(err)

	repo := awardrepo.NewGormAwardRepository(suite.db, &noopAggregateTracker{})
	suite.Require().NoError(repo.Add(ctx, a))
	return a
}

func (suite *GetContractAwardsQueryHandlerTestSuite) decide(
	ctx context.Context,
	a *award.Award,
	details award.StatusDetails,
) {
	suite.Require().NoError(a.ApplyStatusDetails(details))

	repo := awardrepo.NewGormAwardRepository(suite.db, &noopAggregateTracker{})
	suite.Require().NoError(repo.Update(ctx, a))
}

func TestGetContractAwardsQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetContractAwardsQueryHandlerTestSuite))
}

// noopAggregateTracker satisfies the repository's tracker dependency where
// aggregate tracking is irrelevant to the test.
type noopAggregateTracker struct{}

func (t *noopAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {}
