// Package jobs runs spreadsheet synchronization in the background.
//
// Every trigger goes through SyncRunner, which serializes runs, logs their
// outcome and records metrics. Two background triggers are available:
//
//  1. ScheduledSyncJob - runs on a robfig/cron schedule such as "*/15 * * * *"
//     or "@every 10m". A tick is skipped while the previous run is still going.
//  2. SpreadsheetWatchJob - watches the local workbook with fsnotify and syncs
//     shortly after it is written or replaced.
//
// # Usage
//
//	runner := jobs.NewSyncRunner(syncHandler, metrics, logger)
//	manager := jobs.NewJobManager(logger,
//		jobs.NewScheduledSyncJob(runner, "@every 15m", logger),
//		jobs.NewSpreadsheetWatchJob(runner, "/data/General.xlsx", 2*time.Second, logger),
//	)
//
//	if err := manager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer manager.StopAll()
//
// # Error Handling
//
// A failed run is logged and counted, never retried before the next trigger.
// A job that fails to start stops the jobs started before it.
package jobs
