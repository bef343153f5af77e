// Package spreadsheet reads the upstream order workbook and writes the
// history export, both through excelize.
package spreadsheet

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"tracking/internal/core/domain/model/order"
	"tracking/internal/core/domain/services"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// DefaultSheet is the worksheet read when none is configured.
const DefaultSheet = "General"

const (
	colPurchaseOrder = "orden_compra"
	colSalesOrder    = "so"
	colClient        = "cliente"
	colChannel       = "canal"
	colDeliveryDate  = "fecha_entrega"
	colStatus        = "estatus"
	colInvoice       = "factura"
	colDeliveryTime  = "horario"
	colLocality      = "localidad_destino"
	colBottles       = "no_botellas"
	colBoxes         = "no_cajas"
	colSubtotal      = "subtotal"
)

var headerAliases = map[string]string{
	"orden_de_compra":  colPurchaseOrder,
	"fecha_de_entrega": colDeliveryDate,
}

// dayFirstLayouts are tried in order for text delivery dates.
var dayFirstLayouts = []string{
	"02/01/2006",
	"2/1/2006",
	"02/01/06",
	"2/1/06",
	"02-01-2006",
	"2-1-2006",
	"02.01.2006",
	"02/01/2006 15:04",
	"02/01/2006 15:04:05",
	time.DateOnly,
	time.DateTime,
	"2006-01-02T15:04:05",
	"2006/01/02",
}

// Parse reads the header row and every data row of sheet.
//
// Cells are read raw so date cells arrive as Excel serials rather than in
// the workbook's display format.
func Parse(r io.Reader, sheet string) ([]services.ImportRow, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	if sheet == "" {
		sheet = DefaultSheet
	}

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}

	if len(rows) == 0 {
		return []services.ImportRow{}, nil
	}

	header := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		key := NormalizeHeader(name)
		if _, seen := header[key]; !seen {
			header[key] = i
		}
	}

	out := make([]services.ImportRow, 0, len(rows)-1)
	for _, cells := range rows[1:] {
		if blankRow(cells) {
			continue
		}
		out = append(out, parseRow(header, cells))
	}

	return out, nil
}

// NormalizeHeader lower-cases and trims a column title, turns spaces into
// underscores, drops dots and resolves known aliases.
func NormalizeHeader(name string) string {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.ReplaceAll(key, " ", "_")
	key = strings.ReplaceAll(key, ".", "")
	if alias, ok := headerAliases[key]; ok {
		return alias
	}
	return key
}

func parseRow(header map[string]int, cells []string) services.ImportRow {
	cell := func(column string) string {
		i, ok := header[column]
		if !ok || i >= len(cells) {
			return ""
		}
		return strings.TrimSpace(cells[i])
	}

	return services.ImportRow{
		PurchaseOrder:     cell(colPurchaseOrder),
		SalesOrder:        cell(colSalesOrder),
		SpreadsheetStatus: cell(colStatus),
		Details: order.Details{
			Client:       cell(colClient),
			Channel:      cell(colChannel),
			SalesOrder:   cell(colSalesOrder),
			Invoice:      cell(colInvoice),
			DeliveryDate: ParseDeliveryDate(cell(colDeliveryDate)),
			DeliveryTime: cell(colDeliveryTime),
			Locality:     cell(colLocality),
			Bottles:      parseCount(cell(colBottles)),
			Boxes:        parseCount(cell(colBoxes)),
			Subtotal:     parseAmount(cell(colSubtotal)),
		},
	}
}

// ParseDeliveryDate accepts an Excel serial or a day-first text date and
// returns YYYY-MM-DD, or order.UnassignedDate.
func ParseDeliveryDate(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return order.UnassignedDate
	}

	if serial, err := strconv.ParseFloat(raw, 64); err == nil {
		t, convErr := excelize.ExcelDateToTime(serial, false)
		if convErr != nil || serial < 1 {
			return order.UnassignedDate
		}
		return t.Format(time.DateOnly)
	}

	for _, layout := range dayFirstLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format(time.DateOnly)
		}
	}

	return order.UnassignedDate
}

func parseCount(raw string) *int {
	if raw == "" {
		return nil
	}
	f, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", ""), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	n := int(math.Round(f))
	return &n
}

func parseAmount(raw string) decimal.NullDecimal {
	raw = strings.NewReplacer("$", "", ",", "", " ", "").Replace(raw)
	if raw == "" {
		return decimal.NullDecimal{}
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(d)
}

func blankRow(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
