package commands

import (
	"errors"

	"tracking/internal/core/domain/model/access"
	"tracking/internal/pkg/errs"
	"tracking/internal/pkg/guard"
)

var (
	ErrUpdateUserPermissionsCommandIsNotConstructed = errors.New(
		"UpdateUserPermissionsCommand must be created via NewUpdateUserPermissionsCommand constructor",
	)
	ErrUpdateUserChannelsCommandIsNotConstructed = errors.New(
		"UpdateUserChannelsCommand must be created via NewUpdateUserChannelsCommand constructor",
	)
)

// UpdateUserPermissionsCommand replaces the permissions of a normal user.
type UpdateUserPermissionsCommand struct {
	actor       *access.User
	userID      int64
	permissions []access.Permission

	guard guard.ConstructorGuard
}

func NewUpdateUserPermissionsCommand(actor *access.User, userID int64, names []string) (UpdateUserPermissionsCommand, error) {
	if err := errors.Join(validateActor(actor), requireUserID(userID)); err != nil {
		return UpdateUserPermissionsCommand{}, err
	}

	permissions := make([]access.Permission, 0, len(names))
	for _, n := range cleanIdentifiers(names) {
		permissions = append(permissions, access.Permission(n))
	}

	return UpdateUserPermissionsCommand{
		actor:       actor,
		userID:      userID,
		permissions: permissions,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateUserPermissionsCommand) Validate() error {
	return c.guard.Validate(ErrUpdateUserPermissionsCommandIsNotConstructed)
}

func (c UpdateUserPermissionsCommand) Actor() *access.User { return c.actor }

func (c UpdateUserPermissionsCommand) UserID() int64 { return c.userID }

func (c UpdateUserPermissionsCommand) Permissions() []access.Permission { return c.permissions }

// UpdateUserChannelsCommand replaces the visible channels of a normal user.
type UpdateUserChannelsCommand struct {
	actor    *access.User
	userID   int64
	channels []string

	guard guard.ConstructorGuard
}

func NewUpdateUserChannelsCommand(actor *access.User, userID int64, names []string) (UpdateUserChannelsCommand, error) {
	if err := errors.Join(validateActor(actor), requireUserID(userID)); err != nil {
		return UpdateUserChannelsCommand{}, err
	}

	return UpdateUserChannelsCommand{
		actor:    actor,
		userID:   userID,
		channels: cleanIdentifiers(names),
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateUserChannelsCommand) Validate() error {
	return c.guard.Validate(ErrUpdateUserChannelsCommandIsNotConstructed)
}

func (c UpdateUserChannelsCommand) Actor() *access.User { return c.actor }

func (c UpdateUserChannelsCommand) UserID() int64 { return c.userID }

func (c UpdateUserChannelsCommand) Channels() []string { return c.channels }

func requireUserID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsRequiredError("user_id")
	}
	return nil
}
