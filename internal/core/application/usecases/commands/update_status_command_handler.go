package commands

import (
	"context"

	"tracking/internal/core/domain/model/access"
	"tracking/internal/core/domain/model/order"
)

// UpdateStatusCommandHandler applies a status change. An order inside a
// block never diverges from its siblings: the whole block moves together.
type UpdateStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewUpdateStatusCommandHandler(uowFactory OrderUoWFactory) UpdateStatusCommandHandler {
	return UpdateStatusCommandHandler{uowFactory: uowFactory}
}

// Handle returns the identifiers whose status changed.
func (h UpdateStatusCommandHandler) Handle(ctx context.Context, command UpdateStatusCommand) ([]string, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}
	if err := command.Actor().Require(access.PermUpdateStatus); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()

	target, err := repo.Get(ctx, command.Identifier())
	if err != nil {
		return nil, err
	}
	if err = requireVisible(command.Actor(), target); err != nil {
		return nil, err
	}

	members := []*order.Order{target}
	if target.InBlock() {
		members, err = repo.GetByBlock(ctx, *target.BlockID())
		if err != nil {
			return nil, err
		}
	}

	updated := make([]string, 0, len(members))
	for _, o := range members {
		if err = o.ChangeStatus(command.Status()); err != nil {
			return nil, err
		}
		if err = repo.Update(ctx, o); err != nil {
			return nil, err
		}
		updated = append(updated, o.Identifier())
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return updated, nil
}
