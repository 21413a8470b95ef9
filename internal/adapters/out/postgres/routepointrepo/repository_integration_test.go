package routepointrepo_test

import (
	"context"
	"testing"
	"time"

	"routetrail/internal/adapters/out/postgres/routepointrepo"
	"routetrail/internal/core/domain/model/kernel"
	"routetrail/internal/core/domain/model/point"
	"routetrail/internal/core/domain/model/status"
	"routetrail/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

type RoutePointRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *routepointrepo.GormRoutePointRepository
	tracker    *MockAggregateTracker
	planID     kernel.UUID
}

func (suite *RoutePointRepositoryIntegrationTestSuite) SetupSuite() {
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

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&routepointrepo.RoutePointDTO{}))
}

func (suite *RoutePointRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE route_points").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.repository = routepointrepo.NewGormRoutePointRepository(suite.db, suite.tracker)
	suite.planID = kernel.NewUUID()
}

func (suite *RoutePointRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *RoutePointRepositoryIntegrationTestSuite) addPoint(order int) *point.RoutePoint {
	geo, err := kernel.NewGeoPoint(43.238, 76.945)
	suite.Require().NoError(err)
	p, err := point.NewRoutePoint(kernel.NewUUID(), suite.planID, order, point.Details{
		Doc:          "INV-" + time.Now().Format("150405.000000"),
		Payment:      decimal.RequireFromString("1250.75"),
		Counterparty: "Magnum LLP",
		Geo:          &geo,
	})
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(context.Background(), p))
	return p
}

func (suite *RoutePointRepositoryIntegrationTestSuite) TestAddAndGet() {
	p := suite.addPoint(1)

	found, err := suite.repository.Get(context.Background(), p.ID())

	suite.Require().NoError(err)
	suite.Equal(1, found.Order())
	suite.Equal(status.Planned, found.Status())
	suite.True(decimal.RequireFromString("1250.75").Equal(found.Details().Payment))
	suite.Equal("Magnum LLP", found.Details().Counterparty)
	suite.Require().NotNil(found.Details().Geo)
	suite.InDelta(43.238, found.Details().Geo.Lat(), 1e-9)
	suite.tracker.AssertCalled(suite.T(), "TrackAggregate", p.ID(), p)
}

func (suite *RoutePointRepositoryIntegrationTestSuite) TestAdd_DuplicateOrder() {
	suite.addPoint(1)
	dup, err := point.NewRoutePoint(kernel.NewUUID(), suite.planID, 1, point.Details{})
	suite.Require().NoError(err)

	err = suite.repository.Add(context.Background(), dup)

	suite.Require().ErrorIs(err, errs.ErrConflict)
}

func (suite *RoutePointRepositoryIntegrationTestSuite) TestGetForUpdate_Missing() {
	_, err := suite.repository.GetForUpdate(context.Background(), kernel.NewUUID())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *RoutePointRepositoryIntegrationTestSuite) TestListByPlan_OrderedByOrder() {
	third := suite.addPoint(3)
	first := suite.addPoint(1)
	second := suite.addPoint(2)
	otherPlan, err := point.NewRoutePoint(kernel.NewUUID(), kernel.NewUUID(), 1, point.Details{})
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(context.Background(), otherPlan))

	points, err := suite.repository.ListByPlan(context.Background(), suite.planID)

	suite.Require().NoError(err)
	suite.Require().Len(points, 3)
	suite.True(points[0].ID().IsEqual(first.ID()))
	suite.True(points[1].ID().IsEqual(second.ID()))
	suite.True(points[2].ID().IsEqual(third.ID()))
}

func (suite *RoutePointRepositoryIntegrationTestSuite) TestUpdateOrder_CollisionIsConflict() {
	first := suite.addPoint(1)
	suite.addPoint(2)

	err := suite.repository.UpdateOrder(context.Background(), first.ID(), 2)

	suite.Require().ErrorIs(err, errs.ErrConflict)
}

func (suite *RoutePointRepositoryIntegrationTestSuite) TestUpdateOrder_ParkAndSwap() {
	ctx := context.Background()
	first := suite.addPoint(1)
	second := suite.addPoint(2)

	suite.Require().NoError(suite.repository.UpdateOrder(ctx, first.ID(), 0))
	suite.Require().NoError(suite.repository.UpdateOrder(ctx, second.ID(), 1))
	suite.Require().NoError(suite.repository.UpdateOrder(ctx, first.ID(), 2))

	points, err := suite.repository.ListByPlan(ctx, suite.planID)
	suite.Require().NoError(err)
	suite.True(points[0].ID().IsEqual(second.ID()))
	suite.True(points[1].ID().IsEqual(first.ID()))
}

func (suite *RoutePointRepositoryIntegrationTestSuite) TestUpdate_MirrorsStatusButKeepsOrder() {
	ctx := context.Background()
	p := suite.addPoint(1)
	suite.Require().NoError(suite.repository.UpdateOrder(ctx, p.ID(), 5))

	completed, err := status.NewPointStatus("completed")
	suite.Require().NoError(err)
	at := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	suite.Require().NoError(p.ApplyStatus(completed, at, nil))
	suite.Require().NoError(suite.repository.Update(ctx, p))

	found, err := suite.repository.Get(ctx, p.ID())
	suite.Require().NoError(err)
	suite.Equal(status.Completed, found.Status())
	suite.Equal(5, found.Order())
	suite.Require().NotNil(found.DepartureTime())
	suite.True(at.Equal(*found.DepartureTime()))
	suite.Require().NotNil(found.DurationMinutes())
	suite.Equal(0, *found.DurationMinutes())
}

func TestRoutePointRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(RoutePointRepositoryIntegrationTestSuite))
}
