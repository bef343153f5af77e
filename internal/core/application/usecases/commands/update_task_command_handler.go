package commands

import (
	"context"

	"tracking/internal/core/domain/model/access"
)

// UpdateTaskCommandHandler changes task completion. Checklist progress counts
// as a status change and needs update_status.
type UpdateTaskCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewUpdateTaskCommandHandler(uowFactory OrderUoWFactory) UpdateTaskCommandHandler {
	return UpdateTaskCommandHandler{uowFactory: uowFactory}
}

func (h UpdateTaskCommandHandler) Handle(ctx context.Context, command UpdateTaskCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}
	if err := command.Actor().Require(access.PermUpdateStatus); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()

	o, err := repo.GetByTask(ctx, command.TaskID())
	if err != nil {
		return err
	}
	if err = requireVisible(command.Actor(), o); err != nil {
		return err
	}

	if err = o.MarkTask(command.TaskID(), command.Completed()); err != nil {
		return err
	}

	if err = repo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
