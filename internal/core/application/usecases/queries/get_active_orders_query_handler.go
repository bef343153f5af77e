package queries

import (
	"context"
	"time"

	"tracking/internal/core/domain/model/order"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// GetActiveOrdersQueryHandler reads active orders with their tasks. Priority
// is computed at read time from the delivery date.
type GetActiveOrdersQueryHandler struct {
	db    *gorm.DB
	clock func() time.Time
}

func NewGetActiveOrdersQueryHandler(db *gorm.DB, clock func() time.Time) GetActiveOrdersQueryHandler {
	return GetActiveOrdersQueryHandler{db: db, clock: clock}
}

func (h GetActiveOrdersQueryHandler) Handle(ctx context.Context, query GetActiveOrdersQuery) (GetActiveOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetActiveOrdersQueryResponse{}, err
	}

	db := h.db.WithContext(ctx)
	now := h.clock()

	rows, err := db.Raw(`
		SELECT
			identifier, client, channel, sales_order, invoice,
			delivery_date, delivery_time, locality,
			bottles, boxes, subtotal,
			status, notes, block_id
		FROM orders
		WHERE (? OR channel = ANY(?::text[]))
		ORDER BY identifier
	`, channelScope(query.viewer)...).Rows()
	if err != nil {
		return GetActiveOrdersQueryResponse{}, err
	}
	defer rows.Close()

	orders := make([]ActiveOrder, 0)
	index := make(map[string]int)
	for rows.Next() {
		var o ActiveOrder
		if err = rows.Scan(
			&o.Identifier, &o.Client, &o.Channel, &o.SalesOrder, &o.Invoice,
			&o.DeliveryDate, &o.DeliveryTime, &o.Locality,
			&o.Bottles, &o.Boxes, &o.Subtotal,
			&o.Status, &o.Notes, &o.BlockID,
		); err != nil {
			return GetActiveOrdersQueryResponse{}, err
		}
		o.Priority = string(order.PriorityFor(o.DeliveryDate, now))
		o.Tasks = make([]ActiveTask, 0)
		index[o.Identifier] = len(orders)
		orders = append(orders, o)
	}
	if err = rows.Err(); err != nil {
		return GetActiveOrdersQueryResponse{}, err
	}

	if len(orders) > 0 {
		if err = h.attachTasks(db, orders, index); err != nil {
			return GetActiveOrdersQueryResponse{}, err
		}
	}

	channels, err := listChannels(db)
	if err != nil {
		return GetActiveOrdersQueryResponse{}, err
	}

	return GetActiveOrdersQueryResponse{Orders: orders, Channels: channels}, nil
}

func (h GetActiveOrdersQueryHandler) attachTasks(db *gorm.DB, orders []ActiveOrder, index map[string]int) error {
	ids := make([]string, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.Identifier)
	}

	rows, err := db.Raw(`
		SELECT id, order_identifier, description, completed
		FROM tasks
		WHERE order_identifier = ANY(?::text[])
		ORDER BY id
	`, pq.Array(ids)).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			t     ActiveTask
			owner string
		)
		if err = rows.Scan(&t.ID, &owner, &t.Description, &t.Completed); err != nil {
			return err
		}
		if i, ok := index[owner]; ok {
			orders[i].Tasks = append(orders[i].Tasks, t)
		}
	}

	return rows.Err()
}
