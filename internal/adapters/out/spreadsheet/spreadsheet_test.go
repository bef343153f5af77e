package spreadsheet_test

import (
	"bytes"
	"context"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"tracking/internal/adapters/out/spreadsheet"
	"tracking/internal/core/application/usecases/queries"
	"tracking/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func workbook(t *testing.T, sheet string, rows [][]any) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()
	require.NoError(t, f.SetSheetName(f.GetSheetName(0), sheet))

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	var buf bytes.Buffer
	_, err := f.WriteTo(&buf)
	require.NoError(t, err)
	return buf.Bytes()
}

func sampleRows() [][]any {
	return [][]any{
		{" Orden de Compra ", "SO", "Cliente", "Canal", "Fecha de Entrega", "Estatus", "Factura",
			"Horario", "Localidad Destino", "No. Botellas", "No. Cajas", "Subtotal"},
		{"OC-1", "SO-1", "Cliente_A Norte", " mayoreo ", "14/10/2026", "", "F-1",
			"9-14", "Monterrey", 12, "3", "$1,530.50"},
		{"", "SO-2", "Cliente Sur", "Autoservicio", "mañana", "Cancelado", "",
			"", "", "doce", "", "n/a"},
	}
}

func TestNormalizeHeader(t *testing.T) {
	cases := map[string]string{
		" Orden de Compra ": "orden_compra",
		"Fecha de entrega":  "fecha_entrega",
		"No. Botellas":      "no_botellas",
		"Localidad Destino": "localidad_destino",
		"SO":                "so",
	}
	for in, want := range cases {
		assert.Equal(t, want, spreadsheet.NormalizeHeader(in), in)
	}
}

func TestParseDeliveryDate(t *testing.T) {
	assert.Equal(t, "2026-10-14", spreadsheet.ParseDeliveryDate("14/10/2026"))
	assert.Equal(t, "2026-02-03", spreadsheet.ParseDeliveryDate("3/2/2026"))
	assert.Equal(t, "2026-10-14", spreadsheet.ParseDeliveryDate("2026-10-14"))
	assert.Equal(t, "2026-10-14", spreadsheet.ParseDeliveryDate("46309"))
	assert.Equal(t, order.UnassignedDate, spreadsheet.ParseDeliveryDate(""))
	assert.Equal(t, order.UnassignedDate, spreadsheet.ParseDeliveryDate("pronto"))
	assert.Equal(t, order.UnassignedDate, spreadsheet.ParseDeliveryDate("0"))
}

func TestParse_MapsColumns(t *testing.T) {
	content := workbook(t, "General", sampleRows())

	rows, err := spreadsheet.Parse(bytes.NewReader(content), "")

	require.NoError(t, err)
	require.Len(t, rows, 2)

	first := rows[0]
	assert.Equal(t, "OC-1", first.PurchaseOrder)
	assert.Equal(t, "SO-1", first.SalesOrder)
	assert.Empty(t, first.SpreadsheetStatus)
	assert.Equal(t, "mayoreo", first.Details.Channel)
	assert.Equal(t, "2026-10-14", first.Details.DeliveryDate)
	assert.Equal(t, "Monterrey", first.Details.Locality)
	require.NotNil(t, first.Details.Bottles)
	assert.Equal(t, 12, *first.Details.Bottles)
	require.NotNil(t, first.Details.Boxes)
	assert.Equal(t, 3, *first.Details.Boxes)
	assert.True(t, first.Details.Subtotal.Decimal.Equal(decimal.RequireFromString("1530.50")))

	second := rows[1]
	assert.Empty(t, second.PurchaseOrder)
	assert.Equal(t, "Cancelado", second.SpreadsheetStatus)
	assert.Equal(t, order.UnassignedDate, second.Details.DeliveryDate)
	assert.Nil(t, second.Details.Bottles)
	assert.False(t, second.Details.Subtotal.Valid)
}

func TestParse_MissingColumnsAreBlank(t *testing.T) {
	content := workbook(t, "General", [][]any{
		{"SO", "Cliente"},
		{"SO-9", "Cliente"},
	})

	rows, err := spreadsheet.Parse(bytes.NewReader(content), "General")

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Empty(t, rows[0].PurchaseOrder)
	assert.Equal(t, "SO-9", rows[0].SalesOrder)
	assert.Equal(t, order.UnassignedDate, rows[0].Details.DeliveryDate)
}

func TestParse_EmptySheet(t *testing.T) {
	content := workbook(t, "General", nil)

	rows, err := spreadsheet.Parse(bytes.NewReader(content), "General")

	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestParse_UnknownSheet(t *testing.T) {
	content := workbook(t, "General", sampleRows())

	_, err := spreadsheet.Parse(bytes.NewReader(content), "Otra")

	assert.Error(t, err)
}

func TestFileSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "General.xlsx")
	require.NoError(t, os.WriteFile(path, workbook(t, "Pedidos", sampleRows()), 0o600))

	source := spreadsheet.NewFileSource(path, "Pedidos")
	rows, err := source.Rows(context.Background())

	require.NoError(t, err)
	assert.Len(t, rows, 2)
	assert.Equal(t, path, source.Path())

	_, err = spreadsheet.NewFileSource(filepath.Join(t.TempDir(), "missing.xlsx"), "").Rows(context.Background())
	assert.Error(t, err)
}

func TestSharePointSource_DownloadsSharedWorkbook(t *testing.T) {
	sharingURL := "https://contoso.sharepoint.com/:x:/s/Trafico/abc?e=1"
	content := workbook(t, "General", sampleRows())

	var requested string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requested = r.URL.Path
		_, _ = w.Write(content)
	}))
	defer server.Close()

	source := spreadsheet.NewSharePointSource(server.Client(), server.URL, sharingURL, "General")
	rows, err := source.Rows(context.Background())

	require.NoError(t, err)
	assert.Len(t, rows, 2)
	shareID := "u!" + base64.RawURLEncoding.EncodeToString([]byte(sharingURL))
	assert.Equal(t, "/shares/"+shareID+"/driveItem/content", requested)
}

func TestSharePointSource_GraphError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "itemNotFound", http.StatusNotFound)
	}))
	defer server.Close()

	_, err := spreadsheet.NewSharePointSource(server.Client(), server.URL, "https://x", "").Rows(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestHistoryWriter(t *testing.T) {
	bottles := 6
	rows := []queries.ArchivedOrder{
		{
			Identifier:   "OC-1",
			Client:       "Cliente con nombre largo",
			Channel:      "Mayoreo",
			DeliveryDate: "2026-10-10",
			FinalStatus:  "Entregado",
			ArchivedAt:   time.Date(2026, 10, 14, 9, 30, 0, 0, time.UTC),
			Bottles:      &bottles,
			Subtotal:     decimal.NewNullDecimal(decimal.RequireFromString("99.5")),
		},
	}

	var buf bytes.Buffer
	require.NoError(t, spreadsheet.NewHistoryWriter(time.UTC).WriteHistory(&buf, rows))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.Equal(t, []string{spreadsheet.HistorySheet}, f.GetSheetList())

	got, err := f.GetRows(spreadsheet.HistorySheet)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Orden de compra", got[0][0])
	assert.Equal(t, "Notas", got[0][13])
	assert.Equal(t, "OC-1", got[1][0])
	assert.Equal(t, "2026-10-14 09:30", got[1][8])
	assert.Equal(t, "6", got[1][10])
	assert.Empty(t, got[1][11])

	width, err := f.GetColWidth(spreadsheet.HistorySheet, "B")
	require.NoError(t, err)
	assert.InDelta(t, float64(len("Cliente con nombre largo")+2), width, 0.01)
}
