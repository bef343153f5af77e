package commands

import (
	"context"
	"strings"

	"tracking/internal/core/domain/model/access"
	"tracking/internal/pkg/errs"
)

// UngroupOrdersCommandHandler clears block membership and deletes blocks left
// without members. Every block touched is checked, not only the first one.
type UngroupOrdersCommandHandler struct {
	uowFactory BlockUoWFactory
}

func NewUngroupOrdersCommandHandler(uowFactory BlockUoWFactory) UngroupOrdersCommandHandler {
	return UngroupOrdersCommandHandler{uowFactory: uowFactory}
}

// Handle returns the IDs of the deleted blocks.
func (h UngroupOrdersCommandHandler) Handle(ctx context.Context, command UngroupOrdersCommand) ([]int64, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}
	if err := command.Actor().Require(access.PermGroupOrders); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	orders, err := orderRepo.GetMany(ctx, command.Identifiers())
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, errs.NewObjectNotFoundError("ocs", strings.Join(command.Identifiers(), ", "))
	}

	var touched []int64
	for _, o := range orders {
		if !o.InBlock() {
			continue
		}
		touched = append(touched, *o.BlockID())
		o.LeaveBlock()
		if err = orderRepo.Update(ctx, o); err != nil {
			return nil, err
		}
	}

	var deleted []int64
	if len(touched) > 0 {
		deleted, err = uow.BlockRepository().DeleteIfEmpty(ctx, uniqueBlockIDs(touched))
		if err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return deleted, nil
}
