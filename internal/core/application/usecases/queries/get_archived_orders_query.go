package queries

import (
	"errors"
	"time"

	"tracking/internal/core/domain/model/access"
	"tracking/internal/core/domain/model/archive"
	"tracking/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetArchivedOrdersQueryIsNotConstructed = errors.New(
	"GetArchivedOrdersQuery must be created via NewGetArchivedOrdersQuery constructor",
)

// GetArchivedOrdersQuery lists history entries, newest first, matching a
// filter. Non-super viewers only see entries of their channels.
type GetArchivedOrdersQuery struct {
	viewer *access.User
	filter archive.Filter

	guard guard.ConstructorGuard
}

func NewGetArchivedOrdersQuery(viewer *access.User, filter archive.Filter) (GetArchivedOrdersQuery, error) {
	if err := validateViewer(viewer); err != nil {
		return GetArchivedOrdersQuery{}, err
	}
	return GetArchivedOrdersQuery{viewer: viewer, filter: filter, guard: guard.NewConstructorGuard()}, nil
}

func (q GetArchivedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetArchivedOrdersQueryIsNotConstructed)
}

func (q GetArchivedOrdersQuery) Filter() archive.Filter {
	return q.filter
}

// ArchivedOrder is one history row with every archived column.
type ArchivedOrder struct {
	ID           int64
	Identifier   string
	Client       string
	Channel      string
	SalesOrder   string
	Invoice      string
	DeliveryDate string
	DeliveryTime string
	FinalStatus  string
	ArchivedAt   time.Time
	Locality     string
	Bottles      *int
	Boxes        *int
	Subtotal     decimal.NullDecimal
	Notes        string
}
