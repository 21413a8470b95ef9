package commands

import (
	"context"
	"errors"

	"routetrail/internal/core/domain/model/kernel"
	"routetrail/internal/core/domain/model/ledger"
	"routetrail/internal/core/domain/model/loading"
	"routetrail/internal/core/domain/model/point"
	"routetrail/internal/core/domain/model/status"
	"routetrail/internal/core/domain/services"
	"routetrail/internal/pkg/errs"
)

// RecordStatusCommandHandler appends a ledger entry and mirrors it onto the
// entity in one transaction. The entity row stays locked until commit, so
// concurrent reports for the same entity are applied one after another.
type RecordStatusCommandHandler struct {
	uowFactory StatusUoWFactory
	recorder   services.StatusRecorder
}

func NewRecordStatusCommandHandler(
	uowFactory StatusUoWFactory,
	recorder services.StatusRecorder,
) RecordStatusCommandHandler {
	return RecordStatusCommandHandler{
		uowFactory: uowFactory,
		recorder:   recorder,
	}
}

// RecordStatusResult is the stored entry, with its sequence number assigned,
// and the entity it was mirrored onto. Exactly one of Point and Loading is set.
type RecordStatusResult struct {
	Entry   *ledger.Entry
	Point   *point.RoutePoint
	Loading *loading.Loading
}

func (h *RecordStatusCommandHandler) Handle(ctx context.Context, cmd RecordStatusCommand) (RecordStatusResult, error) {
	if err := cmd.Validate(); err != nil {
		return RecordStatusResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return RecordStatusResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	tracked, err := h.lockEntity(ctx, uow, cmd)
	if err != nil {
		return RecordStatusResult{}, err
	}

	routePlan, err := uow.RoutePlanRepository().Get(ctx, tracked.planID)
	if err != nil {
		return RecordStatusResult{}, err
	}
	if err = cmd.OwnerCheck().authorize(routePlan.VehicleID()); err != nil {
		return RecordStatusResult{}, err
	}

	ref, err := ledger.NewEntityRef(tracked.entity.Kind(), tracked.entity.ID())
	if err != nil {
		return RecordStatusResult{}, err
	}
	head, err := uow.StatusLogRepository().Head(ctx, ref)
	if err != nil {
		return RecordStatusResult{}, err
	}

	report := cmd.Report()
	entry, err := h.recorder.Record(tracked.entity, head, report.Status, report.Timestamp, report.Geo, report.Note)
	if err != nil {
		return RecordStatusResult{}, err
	}

	if err = uow.StatusLogRepository().Append(ctx, entry); err != nil {
		return RecordStatusResult{}, err
	}

	if err = tracked.save(ctx); err != nil {
		return RecordStatusResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return RecordStatusResult{}, err
	}

	return RecordStatusResult{
		Entry:   entry,
		Point:   tracked.point,
		Loading: tracked.loading,
	}, nil
}

type trackedEntity struct {
	entity  services.Trackable
	point   *point.RoutePoint
	loading *loading.Loading
	planID  kernel.UUID
	save    func(ctx context.Context) error
}

func (h *RecordStatusCommandHandler) lockEntity(
	ctx context.Context,
	uow StatusUoW,
	cmd RecordStatusCommand,
) (trackedEntity, error) {
	kind := cmd.Kind()
	if kind != nil {
		switch *kind {
		case status.KindRoutePoint:
			return lockPoint(ctx, uow, cmd.EntityID())
		case status.KindLoading:
			return lockLoading(ctx, uow, cmd.EntityID())
		default:
			return trackedEntity{}, status.ErrKindIsInvalid
		}
	}

	tracked, err := lockPoint(ctx, uow, cmd.EntityID())
	if err == nil || !errors.Is(err, errs.ErrObjectNotFound) {
		return tracked, err
	}

	tracked, err = lockLoading(ctx, uow, cmd.EntityID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return trackedEntity{}, errs.NewObjectNotFoundErrorWithCause("route point or loading", cmd.EntityID().String(), err)
	}
	return tracked, err
}

func lockPoint(ctx context.Context, uow StatusUoW, id kernel.UUID) (trackedEntity, error) {
	repo := uow.RoutePointRepository()
	p, err := repo.GetForUpdate(ctx, id)
	if err != nil {
		return trackedEntity{}, err
	}
	return trackedEntity{
		entity: p,
		point:  p,
		planID: p.RoutePlanID(),
		save:   func(ctx context.Context) error { return repo.Update(ctx, p) },
	}, nil
}

func lockLoading(ctx context.Context, uow StatusUoW, id kernel.UUID) (trackedEntity, error) {
	repo := uow.LoadingRepository()
	l, err := repo.GetForUpdate(ctx, id)
	if err != nil {
		return trackedEntity{}, err
	}
	return trackedEntity{
		entity:  l,
		loading: l,
		planID:  l.RoutePlanID(),
		save:    func(ctx context.Context) error { return repo.Update(ctx, l) },
	}, nil
}

var (
	_ services.Trackable = (*point.RoutePoint)(nil)
	_ services.Trackable = (*loading.Loading)(nil)
)
