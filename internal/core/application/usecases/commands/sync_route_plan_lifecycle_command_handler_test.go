package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"routetrail/internal/core/application/usecases/commands"
	"routetrail/internal/core/domain/model/kernel"
	"routetrail/internal/core/domain/model/loading"
	"routetrail/internal/core/domain/model/plan"
	"routetrail/internal/core/domain/model/point"
	"routetrail/internal/core/domain/model/status"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var syncDate = time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

func completedPoint(t *testing.T, planID kernel.UUID, order int, arrival, departure time.Time) *point.RoutePoint {
	t.Helper()
	p := testPoint(planID, order)
	arrived, err := status.NewPointStatus("arrived")
	require.NoError(t, err)
	completed, err := status.NewPointStatus("completed")
	require.NoError(t, err)
	require.NoError(t, p.ApplyStatus(arrived, arrival, nil))
	require.NoError(t, p.ApplyStatus(completed, departure, nil))
	return p
}

func TestSyncRoutePlanLifecycleCommandHandler_Handle_CompletesFinishedPlan(t *testing.T) {
	ctx := context.Background()
	routePlan := testPlan(kernel.NewUUID())
	firstArrival := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	lastDeparture := time.Date(2024, 5, 1, 14, 0, 0, 0, time.UTC)
	p1 := completedPoint(t, routePlan.ID(), 1, firstArrival, firstArrival.Add(20*time.Minute))
	p2 := completedPoint(t, routePlan.ID(), 2, lastDeparture.Add(-time.Hour), lastDeparture)

	cmd, err := commands.NewSyncRoutePlanLifecycleCommand(syncDate)
	require.NoError(t, err)

	listUoW, listRepos := newWiredUoW()
	syncUoW, syncRepos := newWiredUoW()
	factory := new(MockLifecycleUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(listUoW).Once(),
		listUoW.On("Begin", ctx).Return(nil).Once(),
		listRepos.plans.On("ListByDate", ctx, syncDate).Return([]*plan.RoutePlan{routePlan}, nil).Once(),
		listUoW.On("Rollback", ctx).Return(nil).Once(),
		factory.On("Create").Return(syncUoW).Once(),
		syncUoW.On("Begin", ctx).Return(nil).Once(),
		syncRepos.plans.On("GetForUpdate", ctx, routePlan.ID()).Return(routePlan, nil).Once(),
		syncRepos.points.On("ListByPlan", ctx, routePlan.ID()).Return([]*point.RoutePoint{p1, p2}, nil).Once(),
		syncRepos.loadings.On("ListByPlan", ctx, routePlan.ID()).Return([]*loading.Loading{}, nil).Once(),
		syncRepos.plans.On("Update", ctx, routePlan).Return(nil).Once(),
		syncUoW.On("Commit", ctx).Return(nil).Once(),
		syncUoW.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewSyncRoutePlanLifecycleCommandHandler(factory, nil)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, plan.Completed, routePlan.Lifecycle())
	require.NotNil(t, routePlan.StartTime())
	assert.True(t, firstArrival.Equal(*routePlan.StartTime()))
	require.NotNil(t, routePlan.EndTime())
	assert.True(t, lastDeparture.Equal(*routePlan.EndTime()))
	syncRepos.assertExpectations(t)
	factory.AssertExpectations(t)
}

func TestSyncRoutePlanLifecycleCommandHandler_Handle_LoadingStartsPlan(t *testing.T) {
	ctx := context.Background()
	routePlan := testPlan(kernel.NewUUID())
	p1 := testPoint(routePlan.ID(), 1)
	l, err := loading.NewLoading(kernel.NewUUID(), routePlan.ID(), loading.Details{})
	require.NoError(t, err)
	enRoute, err := status.NewLoadingStatus("en_route")
	require.NoError(t, err)
	require.NoError(t, l.ApplyStatus(enRoute, syncDate.Add(7*time.Hour), nil))

	cmd, err := commands.NewSyncRoutePlanLifecycleCommand(syncDate)
	require.NoError(t, err)

	listUoW, listRepos := newWiredUoW()
	syncUoW, syncRepos := newWiredUoW()
	factory := new(MockLifecycleUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(listUoW).Once(),
		listUoW.On("Begin", ctx).Return(nil).Once(),
		listRepos.plans.On("ListByDate", ctx, syncDate).Return([]*plan.RoutePlan{routePlan}, nil).Once(),
		listUoW.On("Rollback", ctx).Return(nil).Once(),
		factory.On("Create").Return(syncUoW).Once(),
		syncUoW.On("Begin", ctx).Return(nil).Once(),
		syncRepos.plans.On("GetForUpdate", ctx, routePlan.ID()).Return(routePlan, nil).Once(),
		syncRepos.points.On("ListByPlan", ctx, routePlan.ID()).Return([]*point.RoutePoint{p1}, nil).Once(),
		syncRepos.loadings.On("ListByPlan", ctx, routePlan.ID()).Return([]*loading.Loading{l}, nil).Once(),
		syncRepos.plans.On("Update", ctx, routePlan).Return(nil).Once(),
		syncUoW.On("Commit", ctx).Return(nil).Once(),
		syncUoW.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewSyncRoutePlanLifecycleCommandHandler(factory, nil)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, plan.InProgress, routePlan.Lifecycle())
	assert.Nil(t, routePlan.StartTime())
}

func TestSyncRoutePlanLifecycleCommandHandler_Handle_UnchangedPlanIsNotWritten(t *testing.T) {
	ctx := context.Background()
	routePlan := testPlan(kernel.NewUUID())
	p1 := testPoint(routePlan.ID(), 1)

	cmd, err := commands.NewSyncRoutePlanLifecycleCommand(syncDate)
	require.NoError(t, err)

	listUoW, listRepos := newWiredUoW()
	syncUoW, syncRepos := newWiredUoW()
	factory := new(MockLifecycleUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(listUoW).Once(),
		listUoW.On("Begin", ctx).Return(nil).Once(),
		listRepos.plans.On("ListByDate", ctx, syncDate).Return([]*plan.RoutePlan{routePlan}, nil).Once(),
		listUoW.On("Rollback", ctx).Return(nil).Once(),
		factory.On("Create").Return(syncUoW).Once(),
		syncUoW.On("Begin", ctx).Return(nil).Once(),
		syncRepos.plans.On("GetForUpdate", ctx, routePlan.ID()).Return(routePlan, nil).Once(),
		syncRepos.points.On("ListByPlan", ctx, routePlan.ID()).Return([]*point.RoutePoint{p1}, nil).Once(),
		syncRepos.loadings.On("ListByPlan", ctx, routePlan.ID()).Return([]*loading.Loading{}, nil).Once(),
		syncUoW.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewSyncRoutePlanLifecycleCommandHandler(factory, nil)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, plan.Planned, routePlan.Lifecycle())
	syncRepos.plans.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	syncUoW.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestSyncRoutePlanLifecycleCommandHandler_Handle_FailingPlanDoesNotStopOthers(t *testing.T) {
	ctx := context.Background()
	broken := testPlan(kernel.NewUUID())
	healthy := testPlan(kernel.NewUUID())
	p1 := completedPoint(t, healthy.ID(), 1, syncDate.Add(9*time.Hour), syncDate.Add(10*time.Hour))

	cmd, err := commands.NewSyncRoutePlanLifecycleCommand(syncDate)
	require.NoError(t, err)

	listUoW, listRepos := newWiredUoW()
	brokenUoW, brokenRepos := newWiredUoW()
	healthyUoW, healthyRepos := newWiredUoW()
	factory := new(MockLifecycleUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(listUoW).Once(),
		listUoW.On("Begin", ctx).Return(nil).Once(),
		listRepos.plans.On("ListByDate", ctx, syncDate).Return([]*plan.RoutePlan{broken, healthy}, nil).Once(),
		listUoW.On("Rollback", ctx).Return(nil).Once(),
		factory.On("Create").Return(brokenUoW).Once(),
		brokenUoW.On("Begin", ctx).Return(nil).Once(),
		brokenRepos.plans.On("GetForUpdate", ctx, broken.ID()).Return(nil, errors.New("lock timeout")).Once(),
		brokenUoW.On("Rollback", ctx).Return(nil).Once(),
		factory.On("Create").Return(healthyUoW).Once(),
		healthyUoW.On("Begin", ctx).Return(nil).Once(),
		healthyRepos.plans.On("GetForUpdate", ctx, healthy.ID()).Return(healthy, nil).Once(),
		healthyRepos.points.On("ListByPlan", ctx, healthy.ID()).Return([]*point.RoutePoint{p1}, nil).Once(),
		healthyRepos.loadings.On("ListByPlan", ctx, healthy.ID()).Return([]*loading.Loading{}, nil).Once(),
		healthyRepos.plans.On("Update", ctx, healthy).Return(nil).Once(),
		healthyUoW.On("Commit", ctx).Return(nil).Once(),
		healthyUoW.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewSyncRoutePlanLifecycleCommandHandler(factory, nil)
	err = handler.Handle(ctx, cmd)

	require.EqualError(t, err, "lock timeout")
	assert.Equal(t, plan.Completed, healthy.Lifecycle())
	healthyUoW.AssertExpectations(t)
}
