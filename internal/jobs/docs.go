// Package jobs provides scheduled background tasks for the order desk.
//
// Jobs are built on github.com/robfig/cron/v3 and managed through JobManager:
//
//	jobManager := jobs.NewJobManager(&refreshHandler, cfg.CacheRefreshSchedule, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatalf("Failed to start jobs: %v", err)
//	}
//	defer jobManager.StopAll()
//
// ActiveOrdersRefreshJob reloads the active-order cache from the store on a schedule
// (DefaultRefreshSchedule unless configured). Overlapping ticks are skipped and failures
// are only logged.
package jobs
