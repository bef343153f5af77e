package jobs

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"tracking/internal/core/application/usecases/commands"
	"tracking/internal/pkg/metrics"
)

// SyncHandler is satisfied by commands.SyncOrdersCommandHandler.
type SyncHandler interface {
	Handle(ctx context.Context, command commands.SyncOrdersCommand) (commands.SyncOrdersResult, error)
}

// Syncer runs one synchronization on behalf of a trigger.
type Syncer interface {
	Run(ctx context.Context, trigger string) (commands.SyncOrdersResult, error)
}

// SyncRunner allows one synchronization at a time. Concurrent callers wait.
type SyncRunner struct {
	handler SyncHandler
	metrics *metrics.Metrics
	logger  *slog.Logger

	mu sync.Mutex
}

var _ Syncer = (*SyncRunner)(nil)

// NewSyncRunner creates a runner. A nil metrics disables recording.
func NewSyncRunner(handler SyncHandler, m *metrics.Metrics, logger *slog.Logger) *SyncRunner {
	return &SyncRunner{
		handler: handler,
		metrics: m,
		logger:  logger.With("component", "sync_runner"),
	}
}

func (r *SyncRunner) Run(ctx context.Context, trigger string) (commands.SyncOrdersResult, error) {
	cmd, err := commands.NewSyncOrdersCommand(trigger)
	if err != nil {
		return commands.SyncOrdersResult{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	started := time.Now()
	result, err := r.handler.Handle(ctx, cmd)
	elapsed := time.Since(started)

	outcome := metrics.OutcomeSuccess
	switch {
	case err != nil:
		outcome = metrics.OutcomeFailure
		r.logger.ErrorContext(ctx, "Spreadsheet sync failed", "trigger", trigger, "error", err)
	case result.Empty:
		outcome = metrics.OutcomeEmpty
		r.logger.WarnContext(ctx, "Spreadsheet had no rows", "trigger", trigger)
	default:
		r.logger.InfoContext(ctx, "Spreadsheet sync completed",
			"trigger", trigger,
			"rows", result.Rows,
			"created", result.Created,
			"updated", result.Updated,
			"skipped_archived", result.SkippedArchived,
			"new_channels", result.NewChannels,
			"elapsed", elapsed,
		)
	}

	if r.metrics != nil {
		r.metrics.ObserveSync(trigger, outcome, metrics.SyncCounts{
			Created:         result.Created,
			Updated:         result.Updated,
			SkippedArchived: result.SkippedArchived,
		}, elapsed)
	}

	return result, err
}
