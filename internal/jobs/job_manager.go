package jobs

import (
	"fmt"
	"log/slog"
)

// Job is a background trigger the manager can start and stop.
type Job interface {
	Name() string
	Start() error
	Stop()
}

// JobManager coordinates the enabled background jobs.
type JobManager struct {
	jobs    []Job
	started []Job
	logger  *slog.Logger
}

// NewJobManager takes the jobs enabled by configuration.
func NewJobManager(logger *slog.Logger, jobs ...Job) *JobManager {
	return &JobManager{
		jobs:   jobs,
		logger: logger.With("component", "job_manager"),
	}
}

// StartAll starts jobs in order. If one fails, the ones already started are stopped.
func (jm *JobManager) StartAll() error {
	for _, j := range jm.jobs {
		if err := j.Start(); err != nil {
			jm.logger.Error("Job failed to start", "job", j.Name(), "error", err)
			jm.StopAll()
			return fmt.Errorf("failed to start %s job: %w", j.Name(), err)
		}
		jm.started = append(jm.started, j)
	}
	return nil
}

// StopAll stops started jobs in reverse order.
func (jm *JobManager) StopAll() {
	for i := len(jm.started) - 1; i >= 0; i-- {
		jm.started[i].Stop()
	}
	jm.started = nil
}

// Len reports how many jobs are enabled.
func (jm *JobManager) Len() int {
	return len(jm.jobs)
}
