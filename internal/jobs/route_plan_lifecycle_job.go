package jobs

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"routetrail/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultLifecycleSchedule runs the sync at the top of every minute.
const DefaultLifecycleSchedule = "0 * * * * *"

type lifecycleSyncer interface {
	Handle(ctx context.Context, cmd commands.SyncRoutePlanLifecycleCommand) error
}

// RoutePlanLifecycleJob keeps plan statuses in step with their points and
// loadings. Each run covers today and yesterday, so plans worked past
// midnight still get closed.
type RoutePlanLifecycleJob struct {
	handler  lifecycleSyncer
	schedule string
	now      func() time.Time
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewRoutePlanLifecycleJob creates the job. schedule is a six-field cron
// expression with seconds; empty means DefaultLifecycleSchedule.
func NewRoutePlanLifecycleJob(handler lifecycleSyncer, schedule string, logger *slog.Logger) *RoutePlanLifecycleJob {
	if schedule == "" {
		schedule = DefaultLifecycleSchedule
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &RoutePlanLifecycleJob{
		handler:  handler,
		schedule: schedule,
		now:      time.Now,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "route_plan_lifecycle_job"),
	}
}

// Start schedules the job.
func (j *RoutePlanLifecycleJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		if err := j.RunOnce(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Route plan lifecycle job failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Route plan lifecycle job started", "schedule", j.schedule)
	return nil
}

// RunOnce syncs yesterday's and today's plans. A failing day does not stop
// the other one.
func (j *RoutePlanLifecycleJob) RunOnce(ctx context.Context) error {
	today := j.now().UTC()
	var problems []error
	for _, day := range []time.Time{today.AddDate(0, 0, -1), today} {
		cmd, err := commands.NewSyncRoutePlanLifecycleCommand(day)
		if err != nil {
			problems = append(problems, err)
			continue
		}
		if err = j.handler.Handle(ctx, cmd); err != nil {
			problems = append(problems, err)
		}
	}
	return errors.Join(problems...)
}

// Stop stops the scheduler and waits for a running sync to finish.
func (j *RoutePlanLifecycleJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Route plan lifecycle job stopped")
}
