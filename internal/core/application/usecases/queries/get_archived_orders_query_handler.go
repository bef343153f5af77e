package queries

import (
	"context"
	"strings"

	"gorm.io/gorm"
)

// GetArchivedOrdersQueryHandler reads the history table.
type GetArchivedOrdersQueryHandler struct {
	db *gorm.DB
}

func NewGetArchivedOrdersQueryHandler(db *gorm.DB) GetArchivedOrdersQueryHandler {
	return GetArchivedOrdersQueryHandler{db: db}
}

func (h GetArchivedOrdersQueryHandler) Handle(ctx context.Context, query GetArchivedOrdersQuery) ([]ArchivedOrder, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	where, args := archivedWhere(query)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id, identifier, client, channel, sales_order, invoice,
			delivery_date, delivery_time, final_status, archived_at,
			locality, bottles, boxes, subtotal, notes
		FROM archived_orders
		WHERE `+where+`
		ORDER BY archived_at DESC, id DESC
	`, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]ArchivedOrder, 0)
	for rows.Next() {
		var e ArchivedOrder
		if err = rows.Scan(
			&e.ID, &e.Identifier, &e.Client, &e.Channel, &e.SalesOrder, &e.Invoice,
			&e.DeliveryDate, &e.DeliveryTime, &e.FinalStatus, &e.ArchivedAt,
			&e.Locality, &e.Bottles, &e.Boxes, &e.Subtotal, &e.Notes,
		); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

// archivedWhere renders the filter as SQL. Only fixed fragments are
// concatenated; every value travels as a bind argument.
func archivedWhere(query GetArchivedOrdersQuery) (string, []any) {
	clauses := []string{"(? OR channel = ANY(?::text[]))"}
	args := channelScope(query.viewer)

	f := query.Filter()
	if f.ClientContains != "" {
		clauses = append(clauses, "client ILIKE ?")
		args = append(args, "%"+escapeLike(f.ClientContains)+"%")
	}
	if f.LocalityContains != "" {
		clauses = append(clauses, "locality ILIKE ?")
		args = append(args, "%"+escapeLike(f.LocalityContains)+"%")
	}
	if f.Channel != "" {
		clauses = append(clauses, "channel = ?")
		args = append(args, f.Channel)
	}
	if f.From != nil {
		clauses = append(clauses, "archived_at >= ?")
		args = append(args, *f.From)
	}
	if until := f.Until(); until != nil {
		clauses = append(clauses, "archived_at < ?")
		args = append(args, *until)
	}

	return strings.Join(clauses, " AND "), args
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
