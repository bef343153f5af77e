package jobs_test

import (
	"testing"
	"time"

	"tracking/internal/core/application/usecases/commands"
	"tracking/internal/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduledSyncJob_RunsOnSchedule(t *testing.T) {
	syncer := &recordingSyncer{}
	job := jobs.NewScheduledSyncJob(syncer, "@every 1s", discardLogger())

	require.NoError(t, job.Start())
	defer job.Stop()

	assert.Eventually(t, func() bool {
		runs := syncer.Runs()
		return len(runs) > 0 && runs[0] == commands.TriggerSchedule
	}, 3*time.Second, 50*time.Millisecond)
}

func TestScheduledSyncJob_InvalidSchedule(t *testing.T) {
	job := jobs.NewScheduledSyncJob(&recordingSyncer{}, "every so often", discardLogger())

	assert.Error(t, job.Start())
}
