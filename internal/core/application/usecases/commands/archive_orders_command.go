package commands

import (
	"errors"

	"tracking/internal/core/domain/model/access"
	"tracking/internal/pkg/errs"
	"tracking/internal/pkg/guard"
)

var ErrArchiveOrdersCommandIsNotConstructed = errors.New(
	"ArchiveOrdersCommand must be created via NewArchiveOrdersCommand constructor",
)

// ArchiveOrdersCommand moves one order, or a whole block of them, into the
// permanent history.
type ArchiveOrdersCommand struct {
	actor       *access.User
	identifiers []string

	guard guard.ConstructorGuard
}

// NewArchiveOrdersCommand drops blank and repeated identifiers. At least one
// must remain.
func NewArchiveOrdersCommand(actor *access.User, identifiers []string) (ArchiveOrdersCommand, error) {
	ids := cleanIdentifiers(identifiers)

	var idsErr error
	if len(ids) == 0 {
		idsErr = errs.NewValueIsRequiredError("Orden de compra")
	}

	if err := errors.Join(validateActor(actor), idsErr); err != nil {
		return ArchiveOrdersCommand{}, err
	}

	return ArchiveOrdersCommand{
		actor:       actor,
		identifiers: ids,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c ArchiveOrdersCommand) Validate() error {
	return c.guard.Validate(ErrArchiveOrdersCommandIsNotConstructed)
}

func (c ArchiveOrdersCommand) Actor() *access.User { return c.actor }

func (c ArchiveOrdersCommand) Identifiers() []string { return c.identifiers }
