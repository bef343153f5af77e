package order

import (
	"github.com/shopspring/decimal"
)

// UnassignedDate is stored when the spreadsheet carries no usable delivery date.
const UnassignedDate = "Por Asignar"

// Details holds the attributes copied from the source spreadsheet. Every
// import overwrites them wholesale.
type Details struct {
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
}

// Normalized fills an empty delivery date with UnassignedDate.
func (d Details) Normalized() Details {
	if d.DeliveryDate == "" {
		d.DeliveryDate = UnassignedDate
	}
	return d
}
