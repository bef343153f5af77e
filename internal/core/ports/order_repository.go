// Package ports defines the contracts between the tracking core and its
// infrastructure: repositories, the unit of work, the spreadsheet source and
// the portal directory store.
package ports

import (
	"context"

	"tracking/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for active orders and
// their checklist tasks.
type OrderRepository interface {
	// Add persists a new order together with its tasks. Task IDs are assigned
	// by storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the staff-owned state of an existing order: status,
	// notes, block membership and task completion. Spreadsheet details are
	// not written.
	Update(ctx context.Context, aggregate *order.Order) error

	// UpdateDetails persists only the spreadsheet details of an existing
	// order, so an import never reverts staff edits committed meanwhile.
	UpdateDetails(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by identifier.
	// Returns errs.ObjectNotFoundError when it is not tracked.
	Get(ctx context.Context, identifier string) (*order.Order, error)

	// GetMany retrieves the tracked subset of identifiers. Unknown identifiers
	// are silently absent from the result.
	GetMany(ctx context.Context, identifiers []string) ([]*order.Order, error)

	// GetAll retrieves every active order.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// GetByBlock retrieves the members of a block.
	GetByBlock(ctx context.Context, blockID int64) ([]*order.Order, error)

	// GetByTask retrieves the order owning a checklist task.
	GetByTask(ctx context.Context, taskID int64) (*order.Order, error)

	// Delete removes an order and its tasks.
	Delete(ctx context.Context, identifier string) error
}
