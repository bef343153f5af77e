package commands

import (
	"errors"

	"tracking/internal/core/domain/model/access"
	"tracking/internal/pkg/errs"
	"tracking/internal/pkg/guard"
)

var ErrReleaseArchivedCommandIsNotConstructed = errors.New(
	"ReleaseArchivedCommand must be created via NewReleaseArchivedCommand constructor",
)

// ReleaseArchivedCommand brings a history entry back into active tracking.
type ReleaseArchivedCommand struct {
	actor   *access.User
	entryID int64

	guard guard.ConstructorGuard
}

func NewReleaseArchivedCommand(actor *access.User, entryID int64) (ReleaseArchivedCommand, error) {
	var idErr error
	if entryID <= 0 {
		idErr = errs.NewValueIsRequiredError("historial_id")
	}

	if err := errors.Join(validateActor(actor), idErr); err != nil {
		return ReleaseArchivedCommand{}, err
	}

	return ReleaseArchivedCommand{
		actor:   actor,
		entryID: entryID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c ReleaseArchivedCommand) Validate() error {
	return c.guard.Validate(ErrReleaseArchivedCommandIsNotConstructed)
}

func (c ReleaseArchivedCommand) Actor() *access.User { return c.actor }

func (c ReleaseArchivedCommand) EntryID() int64 { return c.entryID }
