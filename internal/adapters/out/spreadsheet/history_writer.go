package spreadsheet

import (
	"fmt"
	"io"
	"time"
	"unicode/utf8"

	"tracking/internal/core/application/usecases/queries"

	"github.com/xuri/excelize/v2"
)

// HistorySheet is the worksheet name of the history export.
const HistorySheet = "Historial"

var historyColumns = []string{
	"Orden de compra", "Cliente", "Canal", "SO", "Factura", "Fecha Entrega", "Horario",
	"Estado Final", "Fecha Archivado", "Localidad Destino", "No. Botellas", "No. Cajas",
	"Subtotal", "Notas",
}

// HistoryWriter renders history rows as a single-sheet workbook. Archive
// timestamps are shown in loc.
type HistoryWriter struct {
	loc *time.Location
}

func NewHistoryWriter(loc *time.Location) HistoryWriter {
	if loc == nil {
		loc = time.Local
	}
	return HistoryWriter{loc: loc}
}

func (h HistoryWriter) WriteHistory(w io.Writer, rows []queries.ArchivedOrder) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(0), HistorySheet); err != nil {
		return err
	}

	widths := make([]int, len(historyColumns))
	write := func(rowNum int, values []any) error {
		for i, v := range values {
			widths[i] = max(widths[i], utf8.RuneCountInString(display(v)))
		}
		cell, err := excelize.CoordinatesToCellName(1, rowNum)
		if err != nil {
			return err
		}
		return f.SetSheetRow(HistorySheet, cell, &values)
	}

	header := make([]any, len(historyColumns))
	for i, c := range historyColumns {
		header[i] = c
	}
	if err := write(1, header); err != nil {
		return err
	}

	for i, r := range rows {
		if err := write(i+2, h.values(r)); err != nil {
			return err
		}
	}

	for i, width := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err = f.SetColWidth(HistorySheet, col, col, float64(width+2)); err != nil {
			return err
		}
	}

	_, err := f.WriteTo(w)
	return err
}

func (h HistoryWriter) values(r queries.ArchivedOrder) []any {
	var subtotal any
	if r.Subtotal.Valid {
		subtotal = r.Subtotal.Decimal.InexactFloat64()
	}

	return []any{
		r.Identifier,
		r.Client,
		r.Channel,
		r.SalesOrder,
		r.Invoice,
		r.DeliveryDate,
		r.DeliveryTime,
		r.FinalStatus,
		r.ArchivedAt.In(h.loc).Format("2006-01-02 15:04"),
		r.Locality,
		intOrNil(r.Bottles),
		intOrNil(r.Boxes),
		subtotal,
		r.Notes,
	}
}

func intOrNil(n *int) any {
	if n == nil {
		return nil
	}
	return *n
}

func display(v any) string {
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}
