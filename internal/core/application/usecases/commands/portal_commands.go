package commands

import (
	"errors"

	"tracking/internal/core/domain/model/access"
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/portal"
	"tracking/internal/pkg/guard"
)

var ErrPortalCommandIsNotConstructed = errors.New(
	"portal commands must be created via their New... constructor",
)

// AddPortalClientCommand adds a customer to the portal directory.
type AddPortalClientCommand struct {
	actor *access.User
	name  string

	guard guard.ConstructorGuard
}

func NewAddPortalClientCommand(actor *access.User, name string) (AddPortalClientCommand, error) {
	if err := validateActor(actor); err != nil {
		return AddPortalClientCommand{}, err
	}
	return AddPortalClientCommand{actor: actor, name: name, guard: guard.NewConstructorGuard()}, nil
}

func (c AddPortalClientCommand) Validate() error {
	return c.guard.Validate(ErrPortalCommandIsNotConstructed)
}

// DeletePortalClientCommand removes a customer and all of its portals.
type DeletePortalClientCommand struct {
	actor    *access.User
	clientID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeletePortalClientCommand(actor *access.User, clientID string) (DeletePortalClientCommand, error) {
	id, idErr := kernel.UUIDFromString(clientID)
	if err := errors.Join(validateActor(actor), idErr); err != nil {
		return DeletePortalClientCommand{}, err
	}
	return DeletePortalClientCommand{actor: actor, clientID: id, guard: guard.NewConstructorGuard()}, nil
}

func (c DeletePortalClientCommand) Validate() error {
	return c.guard.Validate(ErrPortalCommandIsNotConstructed)
}

// AddPortalCommand appends a portal to a customer.
type AddPortalCommand struct {
	actor    *access.User
	clientID kernel.UUID
	fields   portal.Fields

	guard guard.ConstructorGuard
}

func NewAddPortalCommand(actor *access.User, clientID string, fields portal.Fields) (AddPortalCommand, error) {
	id, idErr := kernel.UUIDFromString(clientID)
	if err := errors.Join(validateActor(actor), idErr); err != nil {
		return AddPortalCommand{}, err
	}
	return AddPortalCommand{actor: actor, clientID: id, fields: fields, guard: guard.NewConstructorGuard()}, nil
}

func (c AddPortalCommand) Validate() error {
	return c.guard.Validate(ErrPortalCommandIsNotConstructed)
}

// UpdatePortalCommand patches a portal's credentials.
type UpdatePortalCommand struct {
	actor    *access.User
	portalID kernel.UUID
	fields   portal.Fields

	guard guard.ConstructorGuard
}

func NewUpdatePortalCommand(actor *access.User, portalID string, fields portal.Fields) (UpdatePortalCommand, error) {
	id, idErr := kernel.UUIDFromString(portalID)
	if err := errors.Join(validateActor(actor), idErr); err != nil {
		return UpdatePortalCommand{}, err
	}
	return UpdatePortalCommand{actor: actor, portalID: id, fields: fields, guard: guard.NewConstructorGuard()}, nil
}

func (c UpdatePortalCommand) Validate() error {
	return c.guard.Validate(ErrPortalCommandIsNotConstructed)
}

// DeletePortalCommand removes one portal.
type DeletePortalCommand struct {
	actor    *access.User
	portalID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeletePortalCommand(actor *access.User, portalID string) (DeletePortalCommand, error) {
	id, idErr := kernel.UUIDFromString(portalID)
	if err := errors.Join(validateActor(actor), idErr); err != nil {
		return DeletePortalCommand{}, err
	}
	return DeletePortalCommand{actor: actor, portalID: id, guard: guard.NewConstructorGuard()}, nil
}

func (c DeletePortalCommand) Validate() error {
	return c.guard.Validate(ErrPortalCommandIsNotConstructed)
}
