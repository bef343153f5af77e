package ports

import (
	"context"

	"tracking/internal/core/domain/model/portal"
)

// PortalDirectory stores the portal directory as one document.
type PortalDirectory interface {
	// Load returns the current directory.
	Load(ctx context.Context) (*portal.Directory, error)

	// Update loads the directory, applies fn and saves the result when fn
	// succeeds. Concurrent updates are serialized.
	Update(ctx context.Context, fn func(*portal.Directory) error) error
}
