// Package orderrepo persists active orders and their checklist tasks.
package orderrepo

import (
	"tracking/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// OrderDTO is the row of an actively tracked order.
type OrderDTO struct {
	Identifier   string              `gorm:"type:varchar(255);primaryKey"`
	Client       string              `gorm:"type:varchar(255);not null;default:''"`
	Channel      string              `gorm:"type:varchar(255);not null;default:'';index"`
	SalesOrder   string              `gorm:"type:varchar(255);not null;default:''"`
	Invoice      string              `gorm:"type:varchar(255);not null;default:''"`
	DeliveryDate string              `gorm:"type:varchar(32);not null;default:''"`
	DeliveryTime string              `gorm:"type:varchar(64);not null;default:''"`
	Locality     string              `gorm:"type:varchar(255);not null;default:''"`
	Bottles      *int                `gorm:"type:int"`
	Boxes        *int                `gorm:"type:int"`
	Subtotal     decimal.NullDecimal `gorm:"type:numeric(14,2)"`
	Status       string              `gorm:"type:varchar(32);not null"`
	Notes        string              `gorm:"type:text;not null;default:''"`
	BlockID      *int64              `gorm:"index"`
	Tasks        []TaskDTO           `gorm:"foreignKey:OrderIdentifier;references:Identifier;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// TaskDTO is one checklist item. Rows go away with their order.
type TaskDTO struct {
	ID              int64  `gorm:"primaryKey;autoIncrement"`
	OrderIdentifier string `gorm:"type:varchar(255);not null;index"`
	Description     string `gorm:"type:varchar(255);not null"`
	Completed       bool   `gorm:"not null;default:false"`
}

func (TaskDTO) TableName() string {
	return "tasks"
}

func fromDomain(o *order.Order) OrderDTO {
	d := o.Details()

	tasks := make([]TaskDTO, 0, len(o.Tasks()))
	for _, t := range o.Tasks() {
		tasks = append(tasks, TaskDTO{
			ID:              t.ID,
			OrderIdentifier: o.Identifier(),
			Description:     t.Description,
			Completed:       t.Completed,
		})
	}

	return OrderDTO{
		Identifier:   o.Identifier(),
		Client:       d.Client,
		Channel:      d.Channel,
		SalesOrder:   d.SalesOrder,
		Invoice:      d.Invoice,
		DeliveryDate: d.DeliveryDate,
		DeliveryTime: d.DeliveryTime,
		Locality:     d.Locality,
		Bottles:      d.Bottles,
		Boxes:        d.Boxes,
		Subtotal:     d.Subtotal,
		Status:       string(o.Status()),
		Notes:        o.Notes(),
		BlockID:      o.BlockID(),
		Tasks:        tasks,
	}
}

func staffColumns(dto OrderDTO) map[string]any {
	return map[string]any{
		"status":   dto.Status,
		"notes":    dto.Notes,
		"block_id": dto.BlockID,
	}
}

func detailColumns(dto OrderDTO) map[string]any {
	return map[string]any{
		"client":        dto.Client,
		"channel":       dto.Channel,
		"sales_order":   dto.SalesOrder,
		"invoice":       dto.Invoice,
		"delivery_date": dto.DeliveryDate,
		"delivery_time": dto.DeliveryTime,
		"locality":      dto.Locality,
		"bottles":       dto.Bottles,
		"boxes":         dto.Boxes,
		"subtotal":      dto.Subtotal,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	tasks := make([]order.Task, 0, len(dto.Tasks))
	for _, t := range dto.Tasks {
		tasks = append(tasks, order.Task{ID: t.ID, Description: t.Description, Completed: t.Completed})
	}

	details := order.Details{
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
	}

	return order.RestoreOrder(dto.Identifier, details, order.Status(dto.Status), dto.Notes, dto.BlockID, tasks)
}
