package commands

import (
	"errors"
	"fmt"

	"tracking/internal/core/domain/model/access"
	"tracking/internal/core/domain/model/block"
	"tracking/internal/pkg/errs"
	"tracking/internal/pkg/guard"
)

var (
	ErrCreateBlockCommandIsNotConstructed = errors.New(
		"CreateBlockCommand must be created via NewCreateBlockCommand constructor",
	)

	// ErrBlockNeedsMoreOrders is returned when fewer than block.MinMembers
	// orders are given or found.
	ErrBlockNeedsMoreOrders = errs.NewValueIsInvalidErrorWithCause("ordenes_compra",
		fmt.Errorf("at least %d orders are needed to create a block", block.MinMembers))
)

// CreateBlockCommand groups active orders into a new shipment block.
type CreateBlockCommand struct {
	actor       *access.User
	identifiers []string

	guard guard.ConstructorGuard
}

func NewCreateBlockCommand(actor *access.User, identifiers []string) (CreateBlockCommand, error) {
	ids := cleanIdentifiers(identifiers)

	var idsErr error
	if len(ids) < block.MinMembers {
		idsErr = ErrBlockNeedsMoreOrders
	}

	if err := errors.Join(validateActor(actor), idsErr); err != nil {
		return CreateBlockCommand{}, err
	}

	return CreateBlockCommand{
		actor:       actor,
		identifiers: ids,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c CreateBlockCommand) Validate() error {
	return c.guard.Validate(ErrCreateBlockCommandIsNotConstructed)
}

func (c CreateBlockCommand) Actor() *access.User { return c.actor }

func (c CreateBlockCommand) Identifiers() []string { return c.identifiers }
