package commands

import (
	"errors"

	"tracking/internal/core/domain/model/access"
	"tracking/internal/pkg/errs"
	"tracking/internal/pkg/guard"
)

var ErrUngroupOrdersCommandIsNotConstructed = errors.New(
	"UngroupOrdersCommand must be created via NewUngroupOrdersCommand constructor",
)

// UngroupOrdersCommand takes orders out of their blocks.
type UngroupOrdersCommand struct {
	actor       *access.User
	identifiers []string

	guard guard.ConstructorGuard
}

func NewUngroupOrdersCommand(actor *access.User, identifiers []string) (UngroupOrdersCommand, error) {
	ids := cleanIdentifiers(identifiers)

	var idsErr error
	if len(ids) == 0 {
		idsErr = errs.NewValueIsRequiredError("ocs")
	}

	if err := errors.Join(validateActor(actor), idsErr); err != nil {
		return UngroupOrdersCommand{}, err
	}

	return UngroupOrdersCommand{
		actor:       actor,
		identifiers: ids,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c UngroupOrdersCommand) Validate() error {
	return c.guard.Validate(ErrUngroupOrdersCommandIsNotConstructed)
}

func (c UngroupOrdersCommand) Actor() *access.User { return c.actor }

func (c UngroupOrdersCommand) Identifiers() []string { return c.identifiers }
