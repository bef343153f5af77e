// Package archiverepo persists the order history.
package archiverepo

import (
	"time"

	"tracking/internal/core/domain/model/archive"
	"tracking/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// ArchivedOrderDTO is one history row. Identifier is not unique: an order
// released and archived again leaves two rows.
type ArchivedOrderDTO struct {
	ID           int64               `gorm:"primaryKey;autoIncrement"`
	Identifier   string              `gorm:"type:varchar(255);not null;index"`
	Client       string              `gorm:"type:varchar(255);not null;default:''"`
	Channel      string              `gorm:"type:varchar(255);not null;default:'';index"`
	SalesOrder   string              `gorm:"type:varchar(255);not null;default:''"`
	Invoice      string              `gorm:"type:varchar(255);not null;default:''"`
	DeliveryDate string              `gorm:"type:varchar(32);not null;default:''"`
	DeliveryTime string              `gorm:"type:varchar(64);not null;default:''"`
	FinalStatus  string              `gorm:"type:varchar(32);not null"`
	ArchivedAt   time.Time           `gorm:"not null;index"`
	Locality     string              `gorm:"type:varchar(255);not null;default:''"`
	Bottles      *int                `gorm:"type:int"`
	Boxes        *int                `gorm:"type:int"`
	Subtotal     decimal.NullDecimal `gorm:"type:numeric(14,2)"`
	Notes        string              `gorm:"type:text;not null;default:''"`
}

func (ArchivedOrderDTO) TableName() string {
	return "archived_orders"
}

func fromDomain(e *archive.Entry) ArchivedOrderDTO {
	return ArchivedOrderDTO{
		ID:           e.ID,
		Identifier:   e.Identifier,
		Client:       e.Details.Client,
		Channel:      e.Details.Channel,
		SalesOrder:   e.Details.SalesOrder,
		Invoice:      e.Details.Invoice,
		DeliveryDate: e.Details.DeliveryDate,
		DeliveryTime: e.Details.DeliveryTime,
		FinalStatus:  string(e.FinalStatus),
		ArchivedAt:   e.ArchivedAt,
		Locality:     e.Details.Locality,
		Bottles:      e.Details.Bottles,
		Boxes:        e.Details.Boxes,
		Subtotal:     e.Details.Subtotal,
		Notes:        e.Notes,
	}
}

func toDomain(dto ArchivedOrderDTO) *archive.Entry {
	return &archive.Entry{
		ID:         dto.ID,
		Identifier: dto.Identifier,
		Details: order.Details{
			Client:       dto.Client,
			Channel:      dto.Channel,
			SalesOrder:   dto.SalesOrder,
			Invoice:      dto.Invoice,
			DeliveryDate: dto.DeliveryDate,
			DeliveryTime: dto.DeliveryTime,
			Locality:     dto.Locality,
			Bottles:      dto.Bottles,
			Boxes:        dto.Boxes,
			Subtotal:     dto.Subtotal,
		},
		FinalStatus: order.Status(dto.FinalStatus),
		Notes:       dto.Notes,
		ArchivedAt:  dto.ArchivedAt,
	}
}
