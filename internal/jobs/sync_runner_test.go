package jobs_test

import (
	"errors"
	"testing"

	"tracking/internal/core/application/usecases/commands"
	"tracking/internal/jobs"
	"tracking/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSyncRunner_Run_RecordsOutcome(t *testing.T) {
	handler := new(MockSyncHandler)
	handler.On("Handle", mock.Anything, mock.MatchedBy(func(c commands.SyncOrdersCommand) bool {
		return c.Trigger() == commands.TriggerManual
	})).Return(commands.SyncOrdersResult{Rows: 3, Created: 2, Updated: 1}, nil).Once()
	handler.On("Handle", mock.Anything, mock.Anything).Return(commands.SyncOrdersResult{Empty: true}, nil).Once()
	handler.On("Handle", mock.Anything, mock.Anything).Return(commands.SyncOrdersResult{}, errors.New("graph down")).Once()

	m := metrics.New()
	runner := jobs.NewSyncRunner(handler, m, discardLogger())

	result, err := runner.Run(t.Context(), commands.TriggerManual)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Created)

	result, err = runner.Run(t.Context(), commands.TriggerSchedule)
	require.NoError(t, err)
	assert.True(t, result.Empty)

	_, err = runner.Run(t.Context(), commands.TriggerSchedule)
	assert.EqualError(t, err, "graph down")

	count, err := testutil.GatherAndCount(m.Registry(), "tracking_sync_runs_total")
	require.NoError(t, err)
	assert.Equal(t, 3, count)
	handler.AssertExpectations(t)
}

func TestSyncRunner_Run_RequiresTrigger(t *testing.T) {
	handler := new(MockSyncHandler)
	runner := jobs.NewSyncRunner(handler, nil, discardLogger())

	_, err := runner.Run(t.Context(), "")

	assert.Error(t, err)
	handler.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}
