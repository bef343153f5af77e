package order

import (
	"fmt"
	"slices"

	"tracking/internal/pkg/errs"
)

// Status is the workflow state of a tracked order. Values are persisted and
// sent over the wire verbatim, so they keep the labels staff see on screen.
//
//	Pendiente ──> En Preparacion ──> En Ruta ──┬──> Entregado
//	                                           ├──> Rechazo parcial
//	                                           └──> Rechazo total
//
// Staff may move an order to any state (corrections are common), so there is
// no transition table; only membership is validated.
type Status string

const (
	Pending        Status = "Pendiente"
	InPreparation  Status = "En Preparacion"
	InTransit      Status = "En Ruta"
	Delivered      Status = "Entregado"
	PartialRefusal Status = "Rechazo parcial"
	TotalRefusal   Status = "Rechazo total"
)

// Statuses lists every valid status in workflow order.
func Statuses() []Status {
	return []Status{Pending, InPreparation, InTransit, Delivered, PartialRefusal, TotalRefusal}
}

// ParseStatus converts a wire value into a Status.
func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

// Validate checks that the status is one of the workflow states.
func (s Status) Validate() error {
	if !slices.Contains(Statuses(), s) {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", string(s)))
	}
	return nil
}

// IsFinal reports whether the order has left the warehouse for good.
func (s Status) IsFinal() bool {
	return s == Delivered || s == PartialRefusal || s == TotalRefusal
}

func (s Status) String() string {
	return string(s)
}
