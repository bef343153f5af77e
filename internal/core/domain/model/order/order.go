package order

import (
	"errors"
	"fmt"

	"tracking/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrIdentifierIsRequired is returned for a blank business identifier.
	ErrIdentifierIsRequired = errs.NewValueIsRequiredError("identifier")
)

// Order is the aggregate root for an actively tracked delivery order.
//
// Invariants:
//   - identifier is non-blank and unique among active orders
//   - status is always a valid workflow state
//   - tasks belong to exactly one order and are deleted with it
type Order struct {
	// identifier is the purchase order or, failing that, the sales order
	identifier string

	// details are the spreadsheet-sourced attributes
	details Details

	// status is the workflow state shared with the rest of the block, if any
	status Status

	// notes are free text written by staff
	notes string

	// blockID references the block this order belongs to (nil if ungrouped)
	blockID *int64

	// tasks is the per-client checklist
	tasks []Task

	isConstructed bool
}

// NewOrder creates an order in Pendiente with a fresh checklist.
//
// Example:
//
//	id, ok := order.DeriveIdentifier(row.PurchaseOrder, row.SalesOrder)
//	if !ok {
//	    return nil // row has no usable key
//	}
//	o, err := order.NewOrder(id, details, catalog.TasksFor(details.Client))
func NewOrder(identifier string, details Details, taskDescriptions []string) (*Order, error) {
	o := &Order{
		status:        Pending,
		details:       details.Normalized(),
		tasks:         NewTasks(taskDescriptions),
		isConstructed: true,
	}

	if err := o.setIdentifier(identifier); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds an order from persistence or from an archived entry.
func RestoreOrder(
	identifier string,
	details Details,
	status Status,
	notes string,
	blockID *int64,
	tasks []Task,
) (*Order, error) {
	o := &Order{
		details:       details.Normalized(),
		notes:         notes,
		blockID:       blockID,
		tasks:         tasks,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setIdentifier(identifier),
		o.setStatus(status),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// Identifier returns the business key.
func (o *Order) Identifier() string {
	return o.identifier
}

// Details returns the spreadsheet attributes.
func (o *Order) Details() Details {
	return o.details
}

// Status returns the workflow state.
func (o *Order) Status() Status {
	return o.status
}

// Notes returns the staff notes.
func (o *Order) Notes() string {
	return o.notes
}

// BlockID returns the block the order belongs to, or nil.
func (o *Order) BlockID() *int64 {
	return o.blockID
}

// Tasks returns a copy of the checklist.
func (o *Order) Tasks() []Task {
	out := make([]Task, len(o.tasks))
	copy(out, o.tasks)
	return out
}

// ApplyDetails replaces the spreadsheet attributes. Staff-owned state
// (status, notes, block, checklist) is left untouched.
func (o *Order) ApplyDetails(details Details) {
	o.details = details.Normalized()
}

// ChangeStatus moves the order to a new workflow state.
func (o *Order) ChangeStatus(status Status) error {
	return o.setStatus(status)
}

// SetNotes replaces the staff notes.
func (o *Order) SetNotes(notes string) {
	o.notes = notes
}

// ClearNotes empties the staff notes.
func (o *Order) ClearNotes() {
	o.notes = ""
}

// JoinBlock makes the order a member of the given block.
func (o *Order) JoinBlock(blockID int64) error {
	if blockID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("block id", fmt.Errorf("%d is not greater than 0", blockID))
	}
	o.blockID = &blockID
	return nil
}

// LeaveBlock removes the order from its block, if any.
func (o *Order) LeaveBlock() {
	o.blockID = nil
}

// InBlock reports whether the order belongs to a block.
func (o *Order) InBlock() bool {
	return o.blockID != nil
}

// AssignTaskIDs records storage IDs for the checklist, in checklist order.
func (o *Order) AssignTaskIDs(ids []int64) {
	for i := range o.tasks {
		if i < len(ids) {
			o.tasks[i].ID = ids[i]
		}
	}
}

// MarkTask sets the completion flag of one checklist item.
func (o *Order) MarkTask(taskID int64, completed bool) error {
	for i := range o.tasks {
		if o.tasks[i].ID == taskID {
			o.tasks[i].Completed = completed
			return nil
		}
	}
	return errs.NewObjectNotFoundError("task", taskID)
}

func (o *Order) setIdentifier(identifier string) error {
	id, ok := DeriveIdentifier(identifier, "")
	if !ok {
		return ErrIdentifierIsRequired
	}
	o.identifier = id
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
