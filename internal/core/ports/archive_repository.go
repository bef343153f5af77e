package ports

import (
	"context"

	"tracking/internal/core/domain/model/archive"
)

// ArchiveRepository defines the persistence contract for the order history.
type ArchiveRepository interface {
	// Add persists an entry and assigns its ID.
	Add(ctx context.Context, entry *archive.Entry) error

	// Get retrieves an entry by ID.
	Get(ctx context.Context, id int64) (*archive.Entry, error)

	// Delete removes an entry.
	Delete(ctx context.Context, id int64) error

	// Identifiers returns the set of identifiers present in history.
	Identifiers(ctx context.Context) (map[string]struct{}, error)
}
