package jobs_test

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"tracking/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/mock"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type MockSyncHandler struct {
	mock.Mock
}

func (m *MockSyncHandler) Handle(ctx context.Context, cmd commands.SyncOrdersCommand) (commands.SyncOrdersResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.SyncOrdersResult), args.Error(1)
}

// recordingSyncer counts runs per trigger.
type recordingSyncer struct {
	mu   sync.Mutex
	runs []string
}

func (s *recordingSyncer) Run(_ context.Context, trigger string) (commands.SyncOrdersResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.runs = append(s.runs, trigger)
	return commands.SyncOrdersResult{}, nil
}

func (s *recordingSyncer) Runs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.runs...)
}

type fakeJob struct {
	name     string
	startErr error
	log      *[]string
}

func (j *fakeJob) Name() string { return j.name }

func (j *fakeJob) Start() error {
	if j.startErr != nil {
		return j.startErr
	}
	*j.log = append(*j.log, "start "+j.name)
	return nil
}

func (j *fakeJob) Stop() { *j.log = append(*j.log, "stop "+j.name) }
