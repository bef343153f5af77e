package commands

import (
	"context"

	"tracking/internal/core/domain/model/access"
)

// UserGrantsCommandHandler edits what a normal user may do and see. Only a
// super user may call it, and super users themselves cannot be edited.
type UserGrantsCommandHandler struct {
	uowFactory AccessUoWFactory
}

func NewUserGrantsCommandHandler(uowFactory AccessUoWFactory) UserGrantsCommandHandler {
	return UserGrantsCommandHandler{uowFactory: uowFactory}
}

// HandlePermissions returns the updated user.
func (h UserGrantsCommandHandler) HandlePermissions(ctx context.Context, command UpdateUserPermissionsCommand) (*access.User, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	return h.apply(ctx, command.Actor(), command.UserID(), func(u *access.User) error {
		return u.GrantPermissions(command.Permissions())
	})
}

// HandleChannels returns the updated user.
func (h UserGrantsCommandHandler) HandleChannels(ctx context.Context, command UpdateUserChannelsCommand) (*access.User, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	return h.apply(ctx, command.Actor(), command.UserID(), func(u *access.User) error {
		return u.AllowChannels(command.Channels())
	})
}

func (h UserGrantsCommandHandler) apply(
	ctx context.Context,
	actor *access.User,
	userID int64,
	change func(*access.User) error,
) (*access.User, error) {
	if err := actor.RequireSuper(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.UserRepository()

	user, err := repo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err = change(user); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, user); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return user, nil
}
