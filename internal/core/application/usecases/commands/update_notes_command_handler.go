package commands

import (
	"context"

	"tracking/internal/core/domain/model/access"
	"tracking/internal/core/domain/model/order"
)

// NotesCommandHandler edits order notes. Both commands share the edit_notes
// permission and the same transaction shape.
type NotesCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewNotesCommandHandler(uowFactory OrderUoWFactory) NotesCommandHandler {
	return NotesCommandHandler{uowFactory: uowFactory}
}

// HandleUpdate stores new notes.
func (h NotesCommandHandler) HandleUpdate(ctx context.Context, command UpdateNotesCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}
	if err := command.Actor().Require(access.PermEditNotes); err != nil {
		return err
	}

	return h.apply(ctx, command.Actor(), command.Identifier(), func(o *order.Order) {
		o.SetNotes(command.Notes())
	})
}

// HandleClear removes the notes.
func (h NotesCommandHandler) HandleClear(ctx context.Context, command ClearNotesCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}
	if err := command.Actor().Require(access.PermEditNotes); err != nil {
		return err
	}

	return h.apply(ctx, command.Actor(), command.Identifier(), (*order.Order).ClearNotes)
}

func (h NotesCommandHandler) apply(ctx context.Context, actor *access.User, identifier string, change func(*order.Order)) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()

	o, err := repo.Get(ctx, identifier)
	if err != nil {
		return err
	}
	if err = requireVisible(actor, o); err != nil {
		return err
	}

	change(o)

	if err = repo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
