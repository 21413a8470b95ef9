package commands_test

import (
	"context"
	"time"

	"routetrail/internal/core/application/usecases/commands"
	"routetrail/internal/core/domain/model/kernel"
	"routetrail/internal/core/domain/model/ledger"
	"routetrail/internal/core/domain/model/loading"
	"routetrail/internal/core/domain/model/plan"
	"routetrail/internal/core/domain/model/point"
	"routetrail/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockRoutePlanRepository struct{ mock.Mock }

func (m *MockRoutePlanRepository) Add(ctx context.Context, p *plan.RoutePlan) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockRoutePlanRepository) Update(ctx context.Context, p *plan.RoutePlan) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockRoutePlanRepository) Get(ctx context.Context, id kernel.UUID) (*plan.RoutePlan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*plan.RoutePlan), args.Error(1)
}

func (m *MockRoutePlanRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*plan.RoutePlan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*plan.RoutePlan), args.Error(1)
}

func (m *MockRoutePlanRepository) Ensure(
	ctx context.Context,
	vehicleID kernel.UUID,
	date time.Time,
) (*plan.RoutePlan, error) {
	args := m.Called(ctx, vehicleID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*plan.RoutePlan), args.Error(1)
}

func (m *MockRoutePlanRepository) ListByDate(ctx context.Context, date time.Time) ([]*plan.RoutePlan, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*plan.RoutePlan), args.Error(1)
}

type MockRoutePointRepository struct{ mock.Mock }

func (m *MockRoutePointRepository) Add(ctx context.Context, p *point.RoutePoint) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockRoutePointRepository) Update(ctx context.Context, p *point.RoutePoint) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockRoutePointRepository) Get(ctx context.Context, id kernel.UUID) (*point.RoutePoint, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*point.RoutePoint), args.Error(1)
}

func (m *MockRoutePointRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*point.RoutePoint, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*point.RoutePoint), args.Error(1)
}

func (m *MockRoutePointRepository) ListByPlan(ctx context.Context, planID kernel.UUID) ([]*point.RoutePoint, error) {
	args := m.Called(ctx, planID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*point.RoutePoint), args.Error(1)
}

func (m *MockRoutePointRepository) UpdateOrder(ctx context.Context, id kernel.UUID, order int) error {
	args := m.Called(ctx, id, order)
	return args.Error(0)
}

type MockLoadingRepository struct{ mock.Mock }

func (m *MockLoadingRepository) Add(ctx context.Context, l *loading.Loading) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *MockLoadingRepository) Update(ctx context.Context, l *loading.Loading) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *MockLoadingRepository) Get(ctx context.Context, id kernel.UUID) (*loading.Loading, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*loading.Loading), args.Error(1)
}

func (m *MockLoadingRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*loading.Loading, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*loading.Loading), args.Error(1)
}

func (m *MockLoadingRepository) ListByPlan(ctx context.Context, planID kernel.UUID) ([]*loading.Loading, error) {
	args := m.Called(ctx, planID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*loading.Loading), args.Error(1)
}

type MockStatusLogRepository struct{ mock.Mock }

func (m *MockStatusLogRepository) Append(ctx context.Context, entry *ledger.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockStatusLogRepository) ListByEntity(ctx context.Context, ref ledger.EntityRef) ([]*ledger.Entry, error) {
	args := m.Called(ctx, ref)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*ledger.Entry), args.Error(1)
}

func (m *MockStatusLogRepository) Head(ctx context.Context, ref ledger.EntityRef) (*ledger.Entry, error) {
	args := m.Called(ctx, ref)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.Entry), args.Error(1)
}

type MockReferenceDirectory struct{ mock.Mock }

func (m *MockReferenceDirectory) VehicleExists(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockReferenceDirectory) Address(ctx context.Context, id kernel.UUID) (ports.Address, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(ports.Address), args.Error(1)
}

func (m *MockReferenceDirectory) StoreAddress(ctx context.Context, storeID kernel.UUID) (ports.Address, error) {
	args := m.Called(ctx, storeID)
	return args.Get(0).(ports.Address), args.Error(1)
}

func (m *MockReferenceDirectory) LoadingPlaceExists(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockGeocoder struct{ mock.Mock }

func (m *MockGeocoder) Geocode(ctx context.Context, query string) (*kernel.GeoPoint, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*kernel.GeoPoint), args.Error(1)
}

// MockUoW satisfies every narrowed unit of work of the package.
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

func (m *MockUoW) RoutePlanRepository() ports.RoutePlanRepository {
	args := m.Called()
	return args.Get(0).(ports.RoutePlanRepository)
}

func (m *MockUoW) RoutePointRepository() ports.RoutePointRepository {
	args := m.Called()
	return args.Get(0).(ports.RoutePointRepository)
}

func (m *MockUoW) LoadingRepository() ports.LoadingRepository {
	args := m.Called()
	return args.Get(0).(ports.LoadingRepository)
}

func (m *MockUoW) StatusLogRepository() ports.StatusLogRepository {
	args := m.Called()
	return args.Get(0).(ports.StatusLogRepository)
}

func (m *MockUoW) ReferenceDirectory() ports.ReferenceDirectory {
	args := m.Called()
	return args.Get(0).(ports.ReferenceDirectory)
}

type MockRoutePlanUoWFactory struct{ mock.Mock }

func (m *MockRoutePlanUoWFactory) Create() commands.RoutePlanUoW {
	args := m.Called()
	return args.Get(0).(commands.RoutePlanUoW)
}

type MockRoutePointUoWFactory struct{ mock.Mock }

func (m *MockRoutePointUoWFactory) Create() commands.RoutePointUoW {
	args := m.Called()
	return args.Get(0).(commands.RoutePointUoW)
}

type MockLoadingUoWFactory struct{ mock.Mock }

func (m *MockLoadingUoWFactory) Create() commands.LoadingUoW {
	args := m.Called()
	return args.Get(0).(commands.LoadingUoW)
}

type MockStatusUoWFactory struct{ mock.Mock }

func (m *MockStatusUoWFactory) Create() commands.StatusUoW {
	args := m.Called()
	return args.Get(0).(commands.StatusUoW)
}

type MockLifecycleUoWFactory struct{ mock.Mock }

func (m *MockLifecycleUoWFactory) Create() commands.LifecycleUoW {
	args := m.Called()
	return args.Get(0).(commands.LifecycleUoW)
}

// repos bundles the repository mocks a test wires into a MockUoW.
type repos struct {
	plans    *MockRoutePlanRepository
	points   *MockRoutePointRepository
	loadings *MockLoadingRepository
	log      *MockStatusLogRepository
	refs     *MockReferenceDirectory
}

// newWiredUoW returns a unit of work whose repository accessors may be called
// any number of times.
func newWiredUoW() (*MockUoW, repos) {
	r := repos{
		plans:    new(MockRoutePlanRepository),
		points:   new(MockRoutePointRepository),
		loadings: new(MockLoadingRepository),
		log:      new(MockStatusLogRepository),
		refs:     new(MockReferenceDirectory),
	}
	uow := new(MockUoW)
	uow.On("RoutePlanRepository").Return(r.plans).Maybe()
	uow.On("RoutePointRepository").Return(r.points).Maybe()
	uow.On("LoadingRepository").Return(r.loadings).Maybe()
	uow.On("StatusLogRepository").Return(r.log).Maybe()
	uow.On("ReferenceDirectory").Return(r.refs).Maybe()
	return uow, r
}

func (r repos) assertExpectations(t mock.TestingT) {
	r.plans.AssertExpectations(t)
	r.points.AssertExpectations(t)
	r.loadings.AssertExpectations(t)
	r.log.AssertExpectations(t)
	r.refs.AssertExpectations(t)
}

func testPlan(vehicleID kernel.UUID) *plan.RoutePlan {
	p, err := plan.NewRoutePlan(kernel.NewUUID(), vehicleID, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), "")
	if err != nil {
		panic(err)
	}
	return p
}

func testPoint(planID kernel.UUID, order int) *point.RoutePoint {
	p, err := point.NewRoutePoint(kernel.NewUUID(), planID, order, point.Details{Doc: "INV"})
	if err != nil {
		panic(err)
	}
	return p
}
