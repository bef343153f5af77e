package ports

import (
	"context"

	"tracking/internal/core/domain/model/access"
)

// UserRepository defines the persistence contract for users and their grants.
type UserRepository interface {
	Add(ctx context.Context, user *access.User) error

	// Update replaces the user's permissions and channels. Names with no
	// matching permission or channel row are dropped.
	Update(ctx context.Context, user *access.User) error

	Get(ctx context.Context, id int64) (*access.User, error)

	// GetByEmail matches case-insensitively.
	GetByEmail(ctx context.Context, email string) (*access.User, error)
}

// ChannelRepository defines the persistence contract for distribution channels.
type ChannelRepository interface {
	// AddMissing inserts the names that do not exist yet and returns them.
	AddMissing(ctx context.Context, names []string) ([]string, error)
}

// PermissionRepository defines the persistence contract for the permission catalog.
type PermissionRepository interface {
	// Seed inserts the permissions that do not exist yet.
	Seed(ctx context.Context, permissions []access.PermissionInfo) error
}
