package postgres_test

import (
	"context"
	"errors"
	"testing"
	"time"

	postgres_adapter "routetrail/internal/adapters/out/postgres"
	"routetrail/internal/adapters/out/postgres/pgshared"
	"routetrail/internal/adapters/out/postgres/refdata"
	"routetrail/internal/core/domain/model/kernel"
	"routetrail/internal/core/domain/model/ledger"
	"routetrail/internal/core/domain/model/point"
	"routetrail/internal/core/domain/model/status"
	"routetrail/internal/core/ports"
	"routetrail/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type MockStatusEventPublisher struct {
	mock.Mock
}

func (m *MockStatusEventPublisher) PublishStatusChanged(ctx context.Context, entry *ledger.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

// UnitOfWorkIntegrationTestSuite exercises the unit of work against a real
// PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	publisher *MockStatusEventPublisher
	factory   ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(postgres_adapter.Migrate(db))
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec(`TRUNCATE TABLE route_plans, route_points, loadings, status_log_entries,
		drivers, vehicles, addresses, stores, loading_places`).Error
	suite.Require().NoError(err)

	suite.publisher = new(MockStatusEventPublisher)
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(suite.db, suite.publisher, nil)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "Multiple begin calls should be safe")
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))

	suite.Require().Error(uow.Commit(ctx), "Should error when committing without active transaction")
	suite.Require().Error(uow.Rollback(ctx), "Should error when rolling back without active transaction")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PublishesAppendedEntries() {
	ctx := context.Background()
	p, entry := suite.recordArrival(ctx)
	suite.publisher.On("PublishStatusChanged", ctx, entry).Return(nil).Once()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.StatusLogRepository().Append(ctx, entry))
	suite.Require().NoError(uow.RoutePointRepository().Update(ctx, p))
	suite.publisher.AssertNotCalled(suite.T(), "PublishStatusChanged", mock.Anything, mock.Anything)
	suite.Require().NoError(uow.Commit(ctx))

	suite.publisher.AssertExpectations(suite.T())
	found, err := suite.factory.Create().RoutePointRepository().Get(ctx, p.ID())
	suite.Require().NoError(err)
	suite.Equal(status.Arrived, found.Status())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsLogAndMirrorTogether() {
	ctx := context.Background()
	p, entry := suite.recordArrival(ctx)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.StatusLogRepository().Append(ctx, entry))
	suite.Require().NoError(uow.RoutePointRepository().Update(ctx, p))
	suite.Require().NoError(uow.Rollback(ctx))

	suite.publisher.AssertNotCalled(suite.T(), "PublishStatusChanged", mock.Anything, mock.Anything)
	entries, err := suite.factory.Create().StatusLogRepository().ListByEntity(ctx, entry.Ref())
	suite.Require().NoError(err)
	suite.Empty(entries)
	found, err := suite.factory.Create().RoutePointRepository().Get(ctx, p.ID())
	suite.Require().NoError(err)
	suite.Equal(status.Planned, found.Status())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PublishFailureKeepsCommit() {
	ctx := context.Background()
	p, entry := suite.recordArrival(ctx)
	suite.publisher.On("PublishStatusChanged", ctx, entry).Return(errors.New("broker down")).Once()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.StatusLogRepository().Append(ctx, entry))
	suite.Require().NoError(uow.RoutePointRepository().Update(ctx, p))
	suite.Require().NoError(uow.Commit(ctx))

	entries, err := suite.factory.Create().StatusLogRepository().ListByEntity(ctx, entry.Ref())
	suite.Require().NoError(err)
	suite.Len(entries, 1)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestReferenceDirectory() {
	ctx := context.Background()
	vehicleID := kernel.NewUUID()
	addressID := kernel.NewUUID()
	storeID := kernel.NewUUID()
	lat, lng := 43.25, 76.92
	suite.Require().NoError(suite.db.Create(&refdata.VehicleDTO{ID: vehicleID.Bytes(), PlateNumber: "777ABC02"}).Error)
	suite.Require().NoError(suite.db.Create(&refdata.AddressDTO{
		ID:  addressID.Bytes(),
		Raw: "Almaty, Abaya 10",
		Geo: pgshared.GeoDTO{Latitude: &lat, Longitude: &lng},
	}).Error)
	rawAddressID := addressID.Bytes()
	suite.Require().NoError(suite.db.Create(&refdata.StoreDTO{ID: storeID.Bytes(), Name: "Small", AddressID: &rawAddressID}).Error)

	directory := suite.factory.Create().ReferenceDirectory()

	suite.Require().NoError(directory.VehicleExists(ctx, vehicleID))
	suite.Require().ErrorIs(directory.VehicleExists(ctx, kernel.NewUUID()), errs.ErrObjectNotFound)
	suite.Require().ErrorIs(directory.LoadingPlaceExists(ctx, kernel.NewUUID()), errs.ErrObjectNotFound)

	address, err := directory.StoreAddress(ctx, storeID)
	suite.Require().NoError(err)
	suite.Equal("Almaty, Abaya 10", address.Raw)
	suite.Require().NotNil(address.Geo)
	suite.InDelta(76.92, address.Geo.Lng(), 1e-9)
}

// recordArrival stores a planned point and returns it with an arrival applied
// but not yet persisted, together with the matching ledger entry.
func (suite *UnitOfWorkIntegrationTestSuite) recordArrival(ctx context.Context) (*point.RoutePoint, *ledger.Entry) {
	p, err := point.NewRoutePoint(kernel.NewUUID(), kernel.NewUUID(), 1, point.Details{Doc: "INV-1"})
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.RoutePointRepository().Add(ctx, p))
	suite.Require().NoError(uow.Commit(ctx))

	tagged, err := status.NewPointStatus("arrived")
	suite.Require().NoError(err)
	at := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	ref, err := ledger.NewEntityRef(status.KindRoutePoint, p.ID())
	suite.Require().NoError(err)
	entry, err := ledger.NewEntry(ref, tagged, at, nil, "")
	suite.Require().NoError(err)
	suite.Require().NoError(p.ApplyStatus(tagged, at, nil))

	return p, entry
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
