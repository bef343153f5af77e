package jobs

import (
	"context"
	"log/slog"
	"time"

	"tracking/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// scheduledRunTimeout bounds one scheduled download and import.
const scheduledRunTimeout = 5 * time.Minute

// ScheduledSyncJob imports the spreadsheet on a cron schedule.
type ScheduledSyncJob struct {
	syncer   Syncer
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewScheduledSyncJob accepts standard five-field specs and descriptors
// such as "@hourly" or "@every 15m".
func NewScheduledSyncJob(syncer Syncer, schedule string, logger *slog.Logger) *ScheduledSyncJob {
	return &ScheduledSyncJob{
		syncer:   syncer,
		schedule: schedule,
		cron:     cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:   logger.With("component", "scheduled_sync_job"),
	}
}

func (j *ScheduledSyncJob) Name() string {
	return "scheduled sync"
}

// Start registers the schedule and starts the cron loop.
func (j *ScheduledSyncJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), scheduledRunTimeout)
		defer cancel()

		// SyncRunner logs the failure.
		_, _ = j.syncer.Run(ctx, commands.TriggerSchedule)
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Scheduled sync job started", "schedule", j.schedule)
	return nil
}

// Stop waits for a running sync to finish.
func (j *ScheduledSyncJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Scheduled sync job stopped")
}
