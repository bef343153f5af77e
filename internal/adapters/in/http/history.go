package http

import (
	"net/http"

	"tracking/internal/core/application/usecases/queries"
	"tracking/internal/core/domain/model/archive"
	"tracking/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// GetHistory handles GET /api/historial.
func (s *Server) GetHistory(c echo.Context, params servers.HistoryParams) error {
	query, err := queries.NewGetArchivedOrdersQuery(currentUser(c), s.historyFilter(params))
	if err != nil {
		return s.fail(c, err, nil)
	}

	rows, err := s.h.History.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err, nil)
	}

	out := make([]servers.HistoryEntry, len(rows))
	for i, r := range rows {
		out[i] = servers.HistoryEntry{
			Id:               r.ID,
			OrdenDeCompra:    r.Identifier,
			Cliente:          r.Client,
			Canal:            r.Channel,
			SO:               r.SalesOrder,
			Factura:          r.Invoice,
			FechaEntrega:     r.DeliveryDate,
			Horario:          r.DeliveryTime,
			EstadoFinal:      r.FinalStatus,
			FechaArchivado:   r.ArchivedAt.In(s.location).Format("2006-01-02 15:04"),
			LocalidadDestino: r.Locality,
			NoBotellas:       r.Bottles,
			NoCajas:          r.Boxes,
			Subtotal:         amount(r.Subtotal),
			Notas:            r.Notes,
		}
	}

	return c.JSON(http.StatusOK, out)
}

// DownloadHistory handles GET /api/historial/descargar.
func (s *Server) DownloadHistory(c echo.Context, params servers.HistoryParams) error {
	query, err := queries.NewExportArchivedOrdersQuery(currentUser(c), s.historyFilter(params))
	if err != nil {
		return s.fail(c, err, nil)
	}

	res, err := s.h.Export.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err, messages{
			http.StatusNotFound: "No hay datos para descargar con los filtros seleccionados.",
		})
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+res.Filename+`"`)
	return c.Blob(http.StatusOK, xlsxContentType, res.Content)
}

func (s *Server) historyFilter(p servers.HistoryParams) archive.Filter {
	return archive.NewFilter(deref(p.Cliente), deref(p.Localidad), deref(p.Canal), deref(p.StartDate), deref(p.EndDate), s.location)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
