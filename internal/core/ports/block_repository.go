package ports

import (
	"context"

	"tracking/internal/core/domain/model/block"
)

// BlockRepository defines the persistence contract for shipment blocks.
type BlockRepository interface {
	// Add persists a new block and assigns its ID.
	Add(ctx context.Context, aggregate *block.Block) error

	// DeleteIfEmpty removes the blocks among ids that no longer have members
	// and returns the IDs it removed.
	DeleteIfEmpty(ctx context.Context, ids []int64) ([]int64, error)
}
