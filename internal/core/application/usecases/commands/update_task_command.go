package commands

import (
	"errors"

	"tracking/internal/core/domain/model/access"
	"tracking/internal/pkg/errs"
	"tracking/internal/pkg/guard"
)

var ErrUpdateTaskCommandIsNotConstructed = errors.New(
	"UpdateTaskCommand must be created via NewUpdateTaskCommand constructor",
)

// UpdateTaskCommand ticks or unticks one checklist item.
type UpdateTaskCommand struct {
	actor     *access.User
	taskID    int64
	completed bool

	guard guard.ConstructorGuard
}

func NewUpdateTaskCommand(actor *access.User, taskID int64, completed bool) (UpdateTaskCommand, error) {
	var idErr error
	if taskID <= 0 {
		idErr = errs.NewValueIsRequiredError("tarea_id")
	}

	if err := errors.Join(validateActor(actor), idErr); err != nil {
		return UpdateTaskCommand{}, err
	}

	return UpdateTaskCommand{
		actor:     actor,
		taskID:    taskID,
		completed: completed,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateTaskCommand) Validate() error {
	return c.guard.Validate(ErrUpdateTaskCommandIsNotConstructed)
}

func (c UpdateTaskCommand) Actor() *access.User { return c.actor }

func (c UpdateTaskCommand) TaskID() int64 { return c.taskID }

func (c UpdateTaskCommand) Completed() bool { return c.completed }
