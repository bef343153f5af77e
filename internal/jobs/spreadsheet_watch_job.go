package jobs

import (
	"context"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"tracking/internal/core/application/usecases/commands"

	"github.com/fsnotify/fsnotify"
)

// SpreadsheetWatchJob syncs after the local workbook changes. Events are
// debounced because spreadsheet tools write a file in several steps.
type SpreadsheetWatchJob struct {
	syncer   Syncer
	path     string
	debounce time.Duration
	logger   *slog.Logger

	watcher *fsnotify.Watcher
	done    chan struct{}
	wg      sync.WaitGroup
}

func NewSpreadsheetWatchJob(syncer Syncer, path string, debounce time.Duration, logger *slog.Logger) *SpreadsheetWatchJob {
	return &SpreadsheetWatchJob{
		syncer:   syncer,
		path:     filepath.Clean(path),
		debounce: debounce,
		logger:   logger.With("component", "spreadsheet_watch_job"),
	}
}

func (j *SpreadsheetWatchJob) Name() string {
	return "spreadsheet watch"
}

// Start watches the workbook's directory, so replacing the file through a
// rename is noticed too.
func (j *SpreadsheetWatchJob) Start() error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err = watcher.Add(filepath.Dir(j.path)); err != nil {
		_ = watcher.Close()
		return err
	}

	j.watcher = watcher
	j.done = make(chan struct{})
	j.wg.Add(1)
	go j.loop()

	j.logger.InfoContext(context.Background(), "Spreadsheet watch job started", "path", j.path)
	return nil
}

func (j *SpreadsheetWatchJob) Stop() {
	if j.watcher == nil {
		return
	}
	close(j.done)
	_ = j.watcher.Close()
	j.wg.Wait()
	j.watcher = nil
	j.logger.InfoContext(context.Background(), "Spreadsheet watch job stopped")
}

func (j *SpreadsheetWatchJob) loop() {
	defer j.wg.Done()

	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-j.done:
			return
		case event, ok := <-j.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != j.path || !event.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			if timer == nil {
				timer = time.AfterFunc(j.debounce, j.fire)
			} else {
				timer.Reset(j.debounce)
			}
		case err, ok := <-j.watcher.Errors:
			if !ok {
				return
			}
			j.logger.ErrorContext(context.Background(), "Spreadsheet watcher error", "error", err)
		}
	}
}

func (j *SpreadsheetWatchJob) fire() {
	select {
	case <-j.done:
		return
	default:
	}

	ctx, cancel := context.WithTimeout(context.Background(), scheduledRunTimeout)
	defer cancel()
	_, _ = j.syncer.Run(ctx, commands.TriggerWatch)
}
