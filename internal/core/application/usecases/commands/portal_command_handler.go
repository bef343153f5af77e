package commands

import (
	"context"

	"tracking/internal/core/domain/model/access"
	"tracking/internal/core/domain/model/portal"
	"tracking/internal/core/ports"
)

// PortalCommandHandler edits the portal directory. Every change requires
// manage_portals and runs as one read-modify-write of the directory document.
type PortalCommandHandler struct {
	directory ports.PortalDirectory
}

func NewPortalCommandHandler(directory ports.PortalDirectory) PortalCommandHandler {
	return PortalCommandHandler{directory: directory}
}

func (h PortalCommandHandler) AddClient(ctx context.Context, command AddPortalClientCommand) (portal.Client, error) {
	var added portal.Client
	err := h.update(ctx, command.Validate(), command.actor, func(d *portal.Directory) (err error) {
		added, err = d.AddClient(command.name)
		return err
	})
	return added, err
}

func (h PortalCommandHandler) DeleteClient(ctx context.Context, command DeletePortalClientCommand) error {
	return h.update(ctx, command.Validate(), command.actor, func(d *portal.Directory) error {
		return d.DeleteClient(command.clientID)
	})
}

func (h PortalCommandHandler) AddPortal(ctx context.Context, command AddPortalCommand) (portal.Portal, error) {
	var added portal.Portal
	err := h.update(ctx, command.Validate(), command.actor, func(d *portal.Directory) (err error) {
		added, err = d.AddPortal(command.clientID, command.fields)
		return err
	})
	return added, err
}

func (h PortalCommandHandler) UpdatePortal(ctx context.Context, command UpdatePortalCommand) (portal.Portal, error) {
	var updated portal.Portal
	err := h.update(ctx, command.Validate(), command.actor, func(d *portal.Directory) (err error) {
		updated, err = d.UpdatePortal(command.portalID, command.fields)
		return err
	})
	return updated, err
}

func (h PortalCommandHandler) DeletePortal(ctx context.Context, command DeletePortalCommand) error {
	return h.update(ctx, command.Validate(), command.actor, func(d *portal.Directory) error {
		return d.DeletePortal(command.portalID)
	})
}

func (h PortalCommandHandler) update(
	ctx context.Context,
	validation error,
	actor *access.User,
	fn func(*portal.Directory) error,
) error {
	if validation != nil {
		return validation
	}
	if err := actor.Require(access.PermManagePortals); err != nil {
		return err
	}
	return h.directory.Update(ctx, fn)
}
