package queries

import (
	"context"
	"errors"

	"tracking/internal/core/domain/model/access"
	"tracking/internal/core/domain/model/portal"
	"tracking/internal/core/ports"
	"tracking/internal/pkg/guard"
)

var ErrListPortalsQueryIsNotConstructed = errors.New(
	"ListPortalsQuery must be created via NewListPortalsQuery constructor",
)

// ListPortalsQuery returns the portal directory. Any signed-in user may read it.
type ListPortalsQuery struct {
	guard guard.ConstructorGuard
}

func NewListPortalsQuery(viewer *access.User) (ListPortalsQuery, error) {
	if err := validateViewer(viewer); err != nil {
		return ListPortalsQuery{}, err
	}
	return ListPortalsQuery{guard: guard.NewConstructorGuard()}, nil
}

func (q ListPortalsQuery) Validate() error {
	return q.guard.Validate(ErrListPortalsQueryIsNotConstructed)
}

type ListPortalsQueryHandler struct {
	directory ports.PortalDirectory
}

func NewListPortalsQueryHandler(directory ports.PortalDirectory) ListPortalsQueryHandler {
	return ListPortalsQueryHandler{directory: directory}
}

func (h ListPortalsQueryHandler) Handle(ctx context.Context, query ListPortalsQuery) ([]portal.Client, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	directory, err := h.directory.Load(ctx)
	if err != nil {
		return nil, err
	}
	return directory.Clients(), nil
}
