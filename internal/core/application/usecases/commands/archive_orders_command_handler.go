package commands

import (
	"context"
	"strings"
	"time"

	"tracking/internal/core/domain/model/access"
	"tracking/internal/core/domain/model/archive"
	"tracking/internal/pkg/errs"
)

// ArchiveOrdersCommandHandler snapshots active orders into history and
// removes them with their tasks. Blocks left without members are deleted.
//
// The snapshot is taken from the stored order, never from client input, so a
// history entry always reflects what was tracked.
type ArchiveOrdersCommandHandler struct {
	uowFactory ArchiveUoWFactory
	clock      func() time.Time
}

func NewArchiveOrdersCommandHandler(uowFactory ArchiveUoWFactory, clock func() time.Time) ArchiveOrdersCommandHandler {
	return ArchiveOrdersCommandHandler{uowFactory: uowFactory, clock: clock}
}

// Handle returns the archived identifiers. Identifiers that are not active
// are skipped; if none is active the result is an ObjectNotFoundError.
func (h ArchiveOrdersCommandHandler) Handle(ctx context.Context, command ArchiveOrdersCommand) ([]string, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}
	if err := command.Actor().Require(access.PermArchiveOrders); err != nil {
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
	archiveRepo := uow.ArchiveRepository()

	orders, err := orderRepo.GetMany(ctx, command.Identifiers())
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, errs.NewObjectNotFoundError("orden", strings.Join(command.Identifiers(), ", "))
	}

	now := h.clock()
	archived := make([]string, 0, len(orders))
	var blocks []int64

	for _, o := range orders {
		entry, entryErr := archive.NewEntryFromOrder(o, now)
		if entryErr != nil {
			return nil, entryErr
		}
		if err = archiveRepo.Add(ctx, entry); err != nil {
			return nil, err
		}
		if err = orderRepo.Delete(ctx, o.Identifier()); err != nil {
			return nil, err
		}
		if o.InBlock() {
			blocks = append(blocks, *o.BlockID())
		}
		archived = append(archived, o.Identifier())
	}

	if len(blocks) > 0 {
		if _, err = uow.BlockRepository().DeleteIfEmpty(ctx, uniqueBlockIDs(blocks)); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return archived, nil
}
