// Package jobs provides scheduled background tasks.
//
// Jobs are cron-based (github.com/robfig/cron/v3, six-field expressions with
// seconds) and only drive command handlers; they hold no state of their own.
//
// # Available Jobs
//
//  1. RoutePlanLifecycleJob - moves route plans to in_progress once work has
//     started and to completed once every point is done. Runs every minute
//     unless LIFECYCLE_CRON says otherwise.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(syncHandler, cfg.LifecycleCron, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed run is logged and retried on the next tick. Plans are synced in
// separate transactions, so one broken plan never blocks the rest.
package jobs
