package commands

import (
	"context"
	"errors"

	"tracking/internal/core/domain/model/access"
	"tracking/internal/pkg/guard"
)

var ErrSeedPermissionsCommandIsNotConstructed = errors.New(
	"SeedPermissionsCommand must be created via NewSeedPermissionsCommand constructor",
)

// SeedPermissionsCommand makes sure the permission catalog exists.
type SeedPermissionsCommand struct {
	guard guard.ConstructorGuard
}

func NewSeedPermissionsCommand() SeedPermissionsCommand {
	return SeedPermissionsCommand{guard: guard.NewConstructorGuard()}
}

func (c SeedPermissionsCommand) Validate() error {
	return c.guard.Validate(ErrSeedPermissionsCommandIsNotConstructed)
}

// SeedPermissionsCommandHandler inserts access.DefaultPermissions. Running it
// again is a no-op.
type SeedPermissionsCommandHandler struct {
	uowFactory AccessUoWFactory
}

func NewSeedPermissionsCommandHandler(uowFactory AccessUoWFactory) SeedPermissionsCommandHandler {
	return SeedPermissionsCommandHandler{uowFactory: uowFactory}
}

func (h SeedPermissionsCommandHandler) Handle(ctx context.Context, command SeedPermissionsCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.PermissionRepository().Seed(ctx, access.DefaultPermissions()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
