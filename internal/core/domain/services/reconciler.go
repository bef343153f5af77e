package services

import (
	"strings"

	"tracking/internal/core/domain/model/access"
	"tracking/internal/core/domain/model/checklist"
	"tracking/internal/core/domain/model/order"
)

// ImportRow is one spreadsheet row after cell parsing. Cells that were absent
// or empty are blank strings.
type ImportRow struct {
	PurchaseOrder string
	SalesOrder    string

	// SpreadsheetStatus is the sheet's own "estatus" column. A non-blank value
	// means the row is closed on the sheet and is not tracked.
	SpreadsheetStatus string

	Details order.Details
}

// Plan is the outcome of reconciling one import.
type Plan struct {
	// Creates are new orders with their checklist, in first-seen row order.
	Creates []*order.Order

	// Updates are already tracked orders whose details were overwritten.
	Updates []*order.Order

	// Channels is the sorted set of channels named anywhere in the import.
	Channels []string

	// SkippedArchived counts active rows ignored because they are in history.
	SkippedArchived int
}

// Reconciler maps spreadsheet rows onto tracked orders.
//
// Rules, applied per row:
//   - a row whose identifier cannot be derived is dropped
//   - a row with a spreadsheet status is dropped
//   - a row whose identifier has been archived is skipped
//   - a tracked identifier gets its details overwritten; status, notes,
//     block membership and tasks stay as they are
//   - an unknown identifier becomes a new Pendiente order with the
//     checklist of its client
//
// When an identifier repeats within one import the last row wins.
type Reconciler struct {
	catalog checklist.Catalog
}

// NewReconciler creates a reconciler that draws new checklists from catalog.
func NewReconciler(catalog checklist.Catalog) Reconciler {
	return Reconciler{catalog: catalog}
}

// Plan reconciles rows against the archived identifiers and the currently
// tracked orders (keyed by identifier). Tracked orders are modified in place.
func (r Reconciler) Plan(rows []ImportRow, archived map[string]struct{}, tracked map[string]*order.Order) (Plan, error) {
	var (
		plan     Plan
		channels = make([]string, 0, len(rows))
		created  = make(map[string]*order.Order)
		updated  = make(map[string]struct{})
		skipped  = make(map[string]struct{})
	)

	for _, row := range rows {
		details := row.Details
		details.Channel = access.NormalizeChannel(details.Channel)
		channels = append(channels, details.Channel)

		id, ok := order.DeriveIdentifier(row.PurchaseOrder, row.SalesOrder)
		if !ok || strings.TrimSpace(row.SpreadsheetStatus) != "" {
			continue
		}
		if _, ok := archived[id]; ok {
			if _, seen := skipped[id]; !seen {
				skipped[id] = struct{}{}
				plan.SkippedArchived++
			}
			continue
		}

		if o, ok := tracked[id]; ok {
			o.ApplyDetails(details)
			if _, seen := updated[id]; !seen {
				updated[id] = struct{}{}
				plan.Updates = append(plan.Updates, o)
			}
			continue
		}

		if o, ok := created[id]; ok {
			o.ApplyDetails(details)
			continue
		}

		o, err := order.NewOrder(id, details, r.catalog.TasksFor(details.Client))
		if err != nil {
			return Plan{}, err
		}
		created[id] = o
		plan.Creates = append(plan.Creates, o)
	}

	plan.Channels = access.UniqueChannels(channels)
	return plan, nil
}
