package queries

import (
	"errors"

	"tracking/internal/core/domain/model/access"
	"tracking/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetActiveOrdersQueryIsNotConstructed = errors.New(
	"GetActiveOrdersQuery must be created via NewGetActiveOrdersQuery constructor",
)

// GetActiveOrdersQuery lists the active orders the viewer may see.
//
// Example:
//
//	query, _ := NewGetActiveOrdersQuery(user)
//	resp, err := handler.Handle(ctx, query)
//	for _, o := range resp.Orders {
//	    fmt.Println(o.Identifier, o.Status, o.Priority)
//	}
type GetActiveOrdersQuery struct {
	viewer *access.User

	guard guard.ConstructorGuard
}

func NewGetActiveOrdersQuery(viewer *access.User) (GetActiveOrdersQuery, error) {
	if err := validateViewer(viewer); err != nil {
		return GetActiveOrdersQuery{}, err
	}
	return GetActiveOrdersQuery{viewer: viewer, guard: guard.NewConstructorGuard()}, nil
}

func (q GetActiveOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveOrdersQueryIsNotConstructed)
}

// GetActiveOrdersQueryResponse carries the visible orders and the full
// channel list, which feeds the front-end filter.
type GetActiveOrdersQueryResponse struct {
	Orders   []ActiveOrder
	Channels []string
}

// ActiveOrder is one tracked order as displayed on the board.
type ActiveOrder struct {
	Identifier   string
	Client       string
	Channel      string
	SalesOrder   string
	Invoice      string
	DeliveryDate string
	DeliveryTime string
	Locality     string
	Bottles      *int
	Boxes        *int
	Subtotal     decimal.NullDecimal
	Status       string
	Notes        string
	BlockID      *int64
	Priority     string
	Tasks        []ActiveTask
}

// ActiveTask is one checklist item.
type ActiveTask struct {
	ID          int64
	Description string
	Completed   bool
}
