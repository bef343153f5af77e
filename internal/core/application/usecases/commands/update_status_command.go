package commands

import (
	"errors"
	"strings"

	"tracking/internal/core/domain/model/access"
	"tracking/internal/core/domain/model/order"
	"tracking/internal/pkg/errs"
	"tracking/internal/pkg/guard"
)

var ErrUpdateStatusCommandIsNotConstructed = errors.New(
	"UpdateStatusCommand must be created via NewUpdateStatusCommand constructor",
)

// UpdateStatusCommand moves an order, and every other member of its block,
// to a new workflow state.
//
// Example:
//
//	cmd, err := NewUpdateStatusCommand(user, "OC-1001", "En Ruta")
//	if err != nil {
//	    return err // blank identifier or unknown status
//	}
//	updated, err := handler.Handle(ctx, cmd)
type UpdateStatusCommand struct { //nolint:recvcheck //using for validation
	actor      *access.User
	identifier string
	status     order.Status

	guard guard.ConstructorGuard
}

// NewUpdateStatusCommand parses the raw status name.
func NewUpdateStatusCommand(actor *access.User, identifier, status string) (UpdateStatusCommand, error) {
	cmd := UpdateStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setIdentifier(identifier),
		cmd.setStatus(status),
	); err != nil {
		return UpdateStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateStatusCommandIsNotConstructed)
}

func (c UpdateStatusCommand) Actor() *access.User {
	return c.actor
}

func (c UpdateStatusCommand) Identifier() string {
	return c.identifier
}

func (c UpdateStatusCommand) Status() order.Status {
	return c.status
}

func (c *UpdateStatusCommand) setActor(actor *access.User) error {
	if err := validateActor(actor); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *UpdateStatusCommand) setIdentifier(identifier string) error {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return errs.NewValueIsRequiredError("orden_compra")
	}
	c.identifier = identifier
	return nil
}

func (c *UpdateStatusCommand) setStatus(status string) error {
	s, err := order.ParseStatus(status)
	if err != nil {
		return err
	}
	c.status = s
	return nil
}
