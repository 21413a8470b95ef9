package commands_test

import (
	"context"
	"testing"

	"routetrail/internal/core/application/usecases/commands"
	"routetrail/internal/core/domain/model/kernel"
	"routetrail/internal/core/domain/model/point"
	"routetrail/internal/core/domain/services"
	"routetrail/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMoveRoutePointCommandHandler_Handle_MovesDown(t *testing.T) {
	ctx := context.Background()
	routePlan := testPlan(kernel.NewUUID())
	p1 := testPoint(routePlan.ID(), 1)
	p2 := testPoint(routePlan.ID(), 2)
	p3 := testPoint(routePlan.ID(), 3)

	cmd, err := commands.NewMoveRoutePointCommand(p1.ID(), 3)
	require.NoError(t, err)

	uow, r := newWiredUoW()
	factory := new(MockRoutePointUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		r.points.On("Get", ctx, p1.ID()).Return(p1, nil).Once(),
		r.plans.On("GetForUpdate", ctx, routePlan.ID()).Return(routePlan, nil).Once(),
		r.points.On("ListByPlan", ctx, routePlan.ID()).Return([]*point.RoutePoint{p1, p2, p3}, nil).Once(),
		r.points.On("UpdateOrder", ctx, p1.ID(), services.ParkingOrder).Return(nil).Once(),
		r.points.On("UpdateOrder", ctx, p2.ID(), 1).Return(nil).Once(),
		r.points.On("UpdateOrder", ctx, p3.ID(), 2).Return(nil).Once(),
		r.points.On("UpdateOrder", ctx, p1.ID(), 3).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewMoveRoutePointCommandHandler(factory, services.NewOrderIndex())
	moved, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, p1.ID(), moved.ID())
	assert.Equal(t, 3, moved.Order())
	r.assertExpectations(t)
	uow.AssertExpectations(t)
}

func TestMoveRoutePointCommandHandler_Handle_MovesUpAndClampsToEnd(t *testing.T) {
	ctx := context.Background()
	routePlan := testPlan(kernel.NewUUID())
	p1 := testPoint(routePlan.ID(), 1)
	p2 := testPoint(routePlan.ID(), 2)
	p3 := testPoint(routePlan.ID(), 3)

	cmd, err := commands.NewMoveRoutePointCommand(p3.ID(), 1)
	require.NoError(t, err)

	uow, r := newWiredUoW()
	factory := new(MockRoutePointUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		r.points.On("Get", ctx, p3.ID()).Return(p3, nil).Once(),
		r.plans.On("GetForUpdate", ctx, routePlan.ID()).Return(routePlan, nil).Once(),
		r.points.On("ListByPlan", ctx, routePlan.ID()).Return([]*point.RoutePoint{p1, p2, p3}, nil).Once(),
		r.points.On("UpdateOrder", ctx, p3.ID(), services.ParkingOrder).Return(nil).Once(),
		r.points.On("UpdateOrder", ctx, p2.ID(), 3).Return(nil).Once(),
		r.points.On("UpdateOrder", ctx, p1.ID(), 2).Return(nil).Once(),
		r.points.On("UpdateOrder", ctx, p3.ID(), 1).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewMoveRoutePointCommandHandler(factory, services.NewOrderIndex())
	moved, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, p3.ID(), moved.ID())
	assert.Equal(t, 1, moved.Order())
	r.assertExpectations(t)
}

func TestMoveRoutePointCommandHandler_Handle_SameOrderWritesNothing(t *testing.T) {
	ctx := context.Background()
	routePlan := testPlan(kernel.NewUUID())
	p1 := testPoint(routePlan.ID(), 1)
	p2 := testPoint(routePlan.ID(), 2)

	// past the end clamps to 2, where the point already is
	cmd, err := commands.NewMoveRoutePointCommand(p2.ID(), 9)
	require.NoError(t, err)

	uow, r := newWiredUoW()
	factory := new(MockRoutePointUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		r.points.On("Get", ctx, p2.ID()).Return(p2, nil).Once(),
		r.plans.On("GetForUpdate", ctx, routePlan.ID()).Return(routePlan, nil).Once(),
		r.points.On("ListByPlan", ctx, routePlan.ID()).Return([]*point.RoutePoint{p1, p2}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewMoveRoutePointCommandHandler(factory, services.NewOrderIndex())
	moved, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Same(t, p2, moved)
	assert.Equal(t, 2, moved.Order())
	r.points.AssertNotCalled(t, "UpdateOrder", mock.Anything, mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestMoveRoutePointCommandHandler_Handle_PointNotFound(t *testing.T) {
	ctx := context.Background()
	pointID := kernel.NewUUID()

	cmd, err := commands.NewMoveRoutePointCommand(pointID, 1)
	require.NoError(t, err)

	uow, r := newWiredUoW()
	factory := new(MockRoutePointUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		r.points.On("Get", ctx, pointID).Return(nil, errs.NewObjectNotFoundError("route point", pointID.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewMoveRoutePointCommandHandler(factory, services.NewOrderIndex())
	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	r.plans.AssertNotCalled(t, "GetForUpdate", mock.Anything, mock.Anything)
}

func TestMoveRoutePointCommandHandler_Handle_OwnerCheckRejects(t *testing.T) {
	ctx := context.Background()
	routePlan := testPlan(kernel.NewUUID())
	p1 := testPoint(routePlan.ID(), 1)

	cmd, err := commands.NewMoveRoutePointCommand(p1.ID(), 1)
	require.NoError(t, err)
	cmd = cmd.WithOwnerCheck(func(kernel.UUID) bool { return false })

	uow, r := newWiredUoW()
	factory := new(MockRoutePointUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		r.points.On("Get", ctx, p1.ID()).Return(p1, nil).Once(),
		r.plans.On("GetForUpdate", ctx, routePlan.ID()).Return(routePlan, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewMoveRoutePointCommandHandler(factory, services.NewOrderIndex())
	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrAccessDenied)
	r.points.AssertNotCalled(t, "ListByPlan", mock.Anything, mock.Anything)
}

func TestMoveRoutePointCommandHandler_Handle_ValidationError(t *testing.T) {
	factory := new(MockRoutePointUoWFactory)
	handler := commands.NewMoveRoutePointCommandHandler(factory, services.NewOrderIndex())

	_, err := handler.Handle(context.Background(), commands.MoveRoutePointCommand{})

	require.ErrorIs(t, err, commands.ErrMoveRoutePointCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
