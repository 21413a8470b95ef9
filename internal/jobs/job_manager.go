package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	lifecycleJob *RoutePlanLifecycleJob
}

// NewJobManager creates a job manager. lifecycleSchedule may be empty to use
// DefaultLifecycleSchedule.
func NewJobManager(
	lifecycleHandler lifecycleSyncer,
	lifecycleSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		lifecycleJob: NewRoutePlanLifecycleJob(lifecycleHandler, lifecycleSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.lifecycleJob.Start(); err != nil {
		return fmt.Errorf("failed to start route plan lifecycle job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.lifecycleJob.Stop()
}
