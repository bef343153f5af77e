package commands

import (
	"errors"

	"tracking/internal/pkg/errs"
	"tracking/internal/pkg/guard"
)

// Sync triggers.
const (
	TriggerManual   = "manual"
	TriggerStartup  = "startup"
	TriggerSchedule = "schedule"
	TriggerWatch    = "watch"
	TriggerCLI      = "cli"
)

var ErrSyncOrdersCommandIsNotConstructed = errors.New(
	"SyncOrdersCommand must be created via NewSyncOrdersCommand constructor",
)

// SyncOrdersCommand imports the upstream spreadsheet into active tracking.
// Trigger names what started the run and is only used for logs and metrics.
//
// Example:
//
//	cmd, _ := NewSyncOrdersCommand(TriggerSchedule)
//	result, err := handler.Handle(ctx, cmd)
//	if err == nil && result.Empty {
//	    log.Println("spreadsheet had no rows")
//	}
type SyncOrdersCommand struct {
	trigger string

	guard guard.ConstructorGuard
}

// NewSyncOrdersCommand creates a sync command.
func NewSyncOrdersCommand(trigger string) (SyncOrdersCommand, error) {
	if trigger == "" {
		return SyncOrdersCommand{}, errs.NewValueIsRequiredError("trigger")
	}

	return SyncOrdersCommand{
		trigger: trigger,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SyncOrdersCommand) Validate() error {
	return c.guard.Validate(ErrSyncOrdersCommandIsNotConstructed)
}

func (c SyncOrdersCommand) Trigger() string {
	return c.trigger
}
