package commands

import (
	"context"

	"tracking/internal/core/domain/model/order"
	"tracking/internal/core/domain/services"
	"tracking/internal/core/ports"
)

// SyncOrdersResult summarizes one import.
type SyncOrdersResult struct {
	// Empty is set when the sheet had no rows. Nothing was written.
	Empty bool

	Rows            int
	Created         int
	Updated         int
	SkippedArchived int
	NewChannels     []string
}

// SyncOrdersCommandHandler reconciles the spreadsheet against tracked orders
// in a single transaction: missing channels are inserted first, then new
// orders are created and the details of tracked ones overwritten. Staff-owned
// columns are never written, so edits committed during an import survive it.
type SyncOrdersCommandHandler struct {
	uowFactory SyncUoWFactory
	source     ports.SpreadsheetSource
	reconciler services.Reconciler
}

// NewSyncOrdersCommandHandler creates a handler that reads rows from source.
func NewSyncOrdersCommandHandler(
	uowFactory SyncUoWFactory,
	source ports.SpreadsheetSource,
	reconciler services.Reconciler,
) SyncOrdersCommandHandler {
	return SyncOrdersCommandHandler{
		uowFactory: uowFactory,
		source:     source,
		reconciler: reconciler,
	}
}

// Handle fetches the sheet and applies it. The spreadsheet is downloaded
// before the transaction starts.
func (h SyncOrdersCommandHandler) Handle(ctx context.Context, command SyncOrdersCommand) (SyncOrdersResult, error) {
	if err := command.Validate(); err != nil {
		return SyncOrdersResult{}, err
	}

	rows, err := h.source.Rows(ctx)
	if err != nil {
		return SyncOrdersResult{}, err
	}
	if len(rows) == 0 {
		return SyncOrdersResult{Empty: true}, nil
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return SyncOrdersResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	archived, err := uow.ArchiveRepository().Identifiers(ctx)
	if err != nil {
		return SyncOrdersResult{}, err
	}

	current, err := orderRepo.GetAll(ctx)
	if err != nil {
		return SyncOrdersResult{}, err
	}
	tracked := make(map[string]*order.Order, len(current))
	for _, o := range current {
		tracked[o.Identifier()] = o
	}

	plan, err := h.reconciler.Plan(rows, archived, tracked)
	if err != nil {
		return SyncOrdersResult{}, err
	}

	added, err := uow.ChannelRepository().AddMissing(ctx, plan.Channels)
	if err != nil {
		return SyncOrdersResult{}, err
	}

	for _, o := range plan.Creates {
		if err = orderRepo.Add(ctx, o); err != nil {
			return SyncOrdersResult{}, err
		}
	}
	for _, o := range plan.Updates {
		if err = orderRepo.UpdateDetails(ctx, o); err != nil {
			return SyncOrdersResult{}, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return SyncOrdersResult{}, err
	}

	return SyncOrdersResult{
		Rows:            len(rows),
		Created:         len(plan.Creates),
		Updated:         len(plan.Updates),
		SkippedArchived: plan.SkippedArchived,
		NewChannels:     added,
	}, nil
}
