package commands

import (
	"context"
	"time"

	"tracking/internal/core/domain/model/access"
	"tracking/internal/core/domain/model/block"
)

// CreateBlockResult describes the new block.
type CreateBlockResult struct {
	BlockID int64
	Name    string
	Grouped []string
}

// CreateBlockCommandHandler moves orders into a fresh block. Orders leaving
// an older block may empty it; such blocks are deleted.
type CreateBlockCommandHandler struct {
	uowFactory BlockUoWFactory
	clock      func() time.Time
}

func NewCreateBlockCommandHandler(uowFactory BlockUoWFactory, clock func() time.Time) CreateBlockCommandHandler {
	return CreateBlockCommandHandler{uowFactory: uowFactory, clock: clock}
}

func (h CreateBlockCommandHandler) Handle(ctx context.Context, command CreateBlockCommand) (CreateBlockResult, error) {
	if err := command.Validate(); err != nil {
		return CreateBlockResult{}, err
	}
	if err := command.Actor().Require(access.PermGroupOrders); err != nil {
		return CreateBlockResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CreateBlockResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	blockRepo := uow.BlockRepository()

	orders, err := orderRepo.GetMany(ctx, command.Identifiers())
	if err != nil {
		return CreateBlockResult{}, err
	}
	if len(orders) < block.MinMembers {
		return CreateBlockResult{}, ErrBlockNeedsMoreOrders
	}

	b := block.NewBlock(h.clock())
	if err = blockRepo.Add(ctx, b); err != nil {
		return CreateBlockResult{}, err
	}

	var previous []int64
	grouped := make([]string, 0, len(orders))
	for _, o := range orders {
		if o.InBlock() {
			previous = append(previous, *o.BlockID())
		}
		if err = o.JoinBlock(b.ID()); err != nil {
			return CreateBlockResult{}, err
		}
		if err = orderRepo.Update(ctx, o); err != nil {
			return CreateBlockResult{}, err
		}
		grouped = append(grouped, o.Identifier())
	}

	if len(previous) > 0 {
		if _, err = blockRepo.DeleteIfEmpty(ctx, uniqueBlockIDs(previous)); err != nil {
			return CreateBlockResult{}, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return CreateBlockResult{}, err
	}

	return CreateBlockResult{BlockID: b.ID(), Name: b.Name(), Grouped: grouped}, nil
}
