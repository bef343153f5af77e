// Package archive models the permanent history of completed orders
// (a "historial"). Entries are immutable snapshots taken when an order leaves
// active tracking; releasing an entry turns it back into an active order.
package archive

import (
	"time"

	"tracking/internal/core/domain/model/order"
)

// Entry is an archived order. ID is zero until persisted.
type Entry struct {
	ID          int64
	Identifier  string
	Details     order.Details
	FinalStatus order.Status
	Notes       string
	ArchivedAt  time.Time
}

// NewEntryFromOrder snapshots an active order at archive time.
func NewEntryFromOrder(o *order.Order, now time.Time) (*Entry, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	return &Entry{
		Identifier:  o.Identifier(),
		Details:     o.Details(),
		FinalStatus: o.Status(),
		Notes:       o.Notes(),
		ArchivedAt:  now,
	}, nil
}

// Restore rebuilds an active, ungrouped order from the entry with a fresh
// checklist. Every archived attribute is carried back.
func (e *Entry) Restore(taskDescriptions []string) (*order.Order, error) {
	status := e.FinalStatus
	if status.Validate() != nil {
		status = order.Pending
	}

	return order.RestoreOrder(e.Identifier, e.Details, status, e.Notes, nil, order.NewTasks(taskDescriptions))
}
