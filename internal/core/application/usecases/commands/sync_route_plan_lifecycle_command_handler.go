package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"routetrail/internal/core/domain/model/kernel"
	"routetrail/internal/core/domain/model/plan"
	"routetrail/internal/core/domain/model/status"
)

// SyncRoutePlanLifecycleCommandHandler moves plans from planned to in progress
// and on to completed. Each plan is synchronized in its own transaction; a
// failing plan does not hold back the others.
type SyncRoutePlanLifecycleCommandHandler struct {
	uowFactory LifecycleUoWFactory
	logger     *slog.Logger
}

func NewSyncRoutePlanLifecycleCommandHandler(
	uowFactory LifecycleUoWFactory,
	logger *slog.Logger,
) SyncRoutePlanLifecycleCommandHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return SyncRoutePlanLifecycleCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "route-plan-lifecycle"),
	}
}

// Handle returns the joined errors of the plans that could not be synchronized.
func (h *SyncRoutePlanLifecycleCommandHandler) Handle(ctx context.Context, cmd SyncRoutePlanLifecycleCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	planIDs, err := h.openPlans(ctx, cmd.Date())
	if err != nil {
		return err
	}

	var (
		failures []error
		changed  int
	)
	for _, planID := range planIDs {
		updated, syncErr := h.syncPlan(ctx, planID)
		if syncErr != nil {
			h.logger.ErrorContext(ctx, "failed to sync route plan", "plan_id", planID.String(), "error", syncErr)
			failures = append(failures, syncErr)
			continue
		}
		if updated {
			changed++
		}
	}

	if changed > 0 {
		h.logger.InfoContext(ctx, "route plans synchronized",
			"date", cmd.Date().Format(time.DateOnly), "changed", changed)
	}

	return errors.Join(failures...)
}

func (h *SyncRoutePlanLifecycleCommandHandler) openPlans(ctx context.Context, date time.Time) ([]kernel.UUID, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	plans, err := uow.RoutePlanRepository().ListByDate(ctx, date)
	if err != nil {
		return nil, err
	}

	ids := make([]kernel.UUID, 0, len(plans))
	for _, p := range plans {
		ids = append(ids, p.ID())
	}
	return ids, nil
}

func (h *SyncRoutePlanLifecycleCommandHandler) syncPlan(ctx context.Context, planID kernel.UUID) (bool, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	planRepo := uow.RoutePlanRepository()
	routePlan, err := planRepo.GetForUpdate(ctx, planID)
	if err != nil {
		return false, err
	}

	progress, err := h.progressOf(ctx, uow, planID)
	if err != nil {
		return false, err
	}

	changed, err := routePlan.Sync(progress)
	if err != nil {
		return false, err
	}
	if !changed {
		return false, nil
	}

	if err = planRepo.Update(ctx, routePlan); err != nil {
		return false, err
	}

	return true, uow.Commit(ctx)
}

func (h *SyncRoutePlanLifecycleCommandHandler) progressOf(
	ctx context.Context,
	uow LifecycleUoW,
	planID kernel.UUID,
) (plan.Progress, error) {
	points, err := uow.RoutePointRepository().ListByPlan(ctx, planID)
	if err != nil {
		return plan.Progress{}, err
	}
	loadings, err := uow.LoadingRepository().ListByPlan(ctx, planID)
	if err != nil {
		return plan.Progress{}, err
	}

	progress := plan.Progress{Points: len(points)}
	for _, p := range points {
		if p.Status() != status.Planned {
			progress.Started = true
		}
		if p.Status().IsTerminal() {
			progress.TerminalPoints++
		}
		if at := p.ArrivalTime(); at != nil && (progress.EarliestArrival == nil || at.Before(*progress.EarliestArrival)) {
			progress.EarliestArrival = at
		}
		if at := p.DepartureTime(); at != nil && (progress.LatestDeparture == nil || at.After(*progress.LatestDeparture)) {
			progress.LatestDeparture = at
		}
	}
	for _, l := range loadings {
		if l.Status() != status.Planned {
			progress.Started = true
		}
	}

	return progress, nil
}
