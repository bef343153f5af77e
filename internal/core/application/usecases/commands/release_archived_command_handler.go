package commands

import (
	"context"
	"errors"

	"tracking/internal/core/domain/model/access"
	"tracking/internal/core/domain/model/checklist"
	"tracking/internal/pkg/errs"
)

// ReleaseArchivedCommandHandler restores an archived order with a fresh
// checklist and deletes the history entry.
type ReleaseArchivedCommandHandler struct {
	uowFactory ArchiveUoWFactory
	catalog    checklist.Catalog
}

func NewReleaseArchivedCommandHandler(uowFactory ArchiveUoWFactory, catalog checklist.Catalog) ReleaseArchivedCommandHandler {
	return ReleaseArchivedCommandHandler{uowFactory: uowFactory, catalog: catalog}
}

// Handle returns the restored identifier. It fails with a ConflictError when
// the identifier is already active again, e.g. after a later import.
func (h ReleaseArchivedCommandHandler) Handle(ctx context.Context, command ReleaseArchivedCommand) (string, error) {
	if err := command.Validate(); err != nil {
		return "", err
	}
	if err := command.Actor().Require(access.PermArchiveOrders); err != nil {
		return "", err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return "", err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	archiveRepo := uow.ArchiveRepository()

	entry, err := archiveRepo.Get(ctx, command.EntryID())
	if err != nil {
		return "", err
	}

	_, err = orderRepo.Get(ctx, entry.Identifier)
	switch {
	case err == nil:
		return "", errs.NewConflictError("orden", entry.Identifier)
	case !errors.Is(err, errs.ErrObjectNotFound):
		return "", err
	}

	restored, err := entry.Restore(h.catalog.TasksFor(entry.Details.Client))
	if err != nil {
		return "", err
	}

	if err = orderRepo.Add(ctx, restored); err != nil {
		return "", err
	}
	if err = archiveRepo.Delete(ctx, entry.ID); err != nil {
		return "", err
	}

	if err = uow.Commit(ctx); err != nil {
		return "", err
	}

	return restored.Identifier(), nil
}
