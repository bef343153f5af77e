package commands

import (
	"errors"
	"strings"

	"tracking/internal/core/domain/model/access"
	"tracking/internal/pkg/errs"
	"tracking/internal/pkg/guard"
)

var (
	ErrUpdateNotesCommandIsNotConstructed = errors.New(
		"UpdateNotesCommand must be created via NewUpdateNotesCommand constructor",
	)
	ErrClearNotesCommandIsNotConstructed = errors.New(
		"ClearNotesCommand must be created via NewClearNotesCommand constructor",
	)
)

// UpdateNotesCommand replaces the staff notes of one order.
type UpdateNotesCommand struct {
	actor      *access.User
	identifier string
	notes      string

	guard guard.ConstructorGuard
}

func NewUpdateNotesCommand(actor *access.User, identifier, notes string) (UpdateNotesCommand, error) {
	identifier = strings.TrimSpace(identifier)

	if err := errors.Join(validateActor(actor), requireIdentifier(identifier)); err != nil {
		return UpdateNotesCommand{}, err
	}

	return UpdateNotesCommand{
		actor:      actor,
		identifier: identifier,
		notes:      notes,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateNotesCommand) Validate() error {
	return c.guard.Validate(ErrUpdateNotesCommandIsNotConstructed)
}

func (c UpdateNotesCommand) Actor() *access.User { return c.actor }

func (c UpdateNotesCommand) Identifier() string { return c.identifier }

func (c UpdateNotesCommand) Notes() string { return c.notes }

// ClearNotesCommand empties the staff notes of one order.
type ClearNotesCommand struct {
	actor      *access.User
	identifier string

	guard guard.ConstructorGuard
}

func NewClearNotesCommand(actor *access.User, identifier string) (ClearNotesCommand, error) {
	identifier = strings.TrimSpace(identifier)

	if err := errors.Join(validateActor(actor), requireIdentifier(identifier)); err != nil {
		return ClearNotesCommand{}, err
	}

	return ClearNotesCommand{
		actor:      actor,
		identifier: identifier,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c ClearNotesCommand) Validate() error {
	return c.guard.Validate(ErrClearNotesCommandIsNotConstructed)
}

func (c ClearNotesCommand) Actor() *access.User { return c.actor }

func (c ClearNotesCommand) Identifier() string { return c.identifier }

func requireIdentifier(identifier string) error {
	if identifier == "" {
		return errs.NewValueIsRequiredError("orden_compra")
	}
	return nil
}
