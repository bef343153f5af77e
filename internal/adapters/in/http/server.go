// Package http is the echo adapter: the JSON API consumed by the board's
// front-end, Microsoft sign-in, sessions and the operational endpoints.
package http

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"tracking/internal/core/application/usecases/commands"
	"tracking/internal/core/application/usecases/queries"
	"tracking/internal/core/domain/model/access"
	"tracking/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// Server implements servers.ServerInterface on top of the application use cases.
type Server struct {
	h        Handlers
	location *time.Location
	logger   *slog.Logger
}

var _ servers.ServerInterface = (*Server)(nil)

// NewServer creates the API server. History date filters are read in location.
func NewServer(handlers Handlers, location *time.Location, logger *slog.Logger) *Server {
	if location == nil {
		location = time.Local
	}
	return &Server{
		h:        handlers,
		location: location,
		logger:   logger.With("component", "http_server"),
	}
}

// GetLogisticsData handles GET /api/logistica/datos.
func (s *Server) GetLogisticsData(c echo.Context) error {
	query, err := queries.NewGetActiveOrdersQuery(currentUser(c))
	if err != nil {
		return s.fail(c, err, nil)
	}

	res, err := s.h.ActiveOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err, messages{
			http.StatusInternalServerError: "No se pudieron obtener los datos de la base de datos local.",
		})
	}

	data := make([]servers.ActiveOrder, len(res.Orders))
	for i, o := range res.Orders {
		tasks := make([]servers.Task, len(o.Tasks))
		for j, t := range o.Tasks {
			tasks[j] = servers.Task{Id: t.ID, Descripcion: t.Description, Completado: t.Completed}
		}
		data[i] = servers.ActiveOrder{
			OrdenDeCompra:    o.Identifier,
			Cliente:          o.Client,
			Canal:            o.Channel,
			SO:               o.SalesOrder,
			Factura:          o.Invoice,
			FechaDeEntrega:   o.DeliveryDate,
			Horario:          o.DeliveryTime,
			LocalidadDestino: o.Locality,
			NoBotellas:       o.Bottles,
			NoCajas:          o.Boxes,
			Subtotal:         amount(o.Subtotal),
			Estado:           o.Status,
			Notas:            o.Notes,
			Prioridad:        o.Priority,
			BloqueId:         o.BlockID,
			Tareas:           tasks,
		}
	}

	return c.JSON(http.StatusOK, servers.LogisticsData{Data: data, Channels: nonNil(res.Channels)})
}

// SyncLogistics handles POST /api/logistica/sincronizar.
func (s *Server) SyncLogistics(c echo.Context) error {
	res, err := s.h.Sync.Run(c.Request().Context(), commands.TriggerManual)
	if err != nil {
		// SyncRunner already logged the cause.
		return c.JSON(http.StatusInternalServerError, servers.Error{Error: "No se pudo sincronizar con SharePoint."})
	}
	if res.Empty {
		return c.JSON(http.StatusOK, servers.SyncResult{Success: false, Message: "No se encontraron datos."})
	}
	return c.JSON(http.StatusOK, servers.SyncResult{Success: true, Message: "Sincronización completada."})
}

// UpdateStatus handles POST /api/actualizar-estado.
func (s *Server) UpdateStatus(c echo.Context) error {
	var req servers.UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, msgInvalid)
	}

	cmd, err := commands.NewUpdateStatusCommand(currentUser(c), req.OrdenCompra, req.NuevoEstado)
	if err != nil {
		return s.fail(c, err, messages{http.StatusBadRequest: "Orden o estado no válido."})
	}

	updated, err := s.h.Status.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err, messages{http.StatusNotFound: "Orden no encontrada."})
	}

	return c.JSON(http.StatusOK, servers.UpdateStatusResponse{Success: true, UpdatedOcs: updated})
}

// UpdateNotes handles POST /api/actualizar-notas.
func (s *Server) UpdateNotes(c echo.Context) error {
	var req servers.UpdateNotesRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, msgInvalid)
	}

	var notes string
	if req.Notas != nil {
		notes = *req.Notas
	}

	cmd, err := commands.NewUpdateNotesCommand(currentUser(c), req.OrdenCompra, notes)
	if err != nil {
		return s.fail(c, err, messages{http.StatusBadRequest: "Falta el identificador de la orden."})
	}

	if err = s.h.Notes.HandleUpdate(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err, messages{http.StatusNotFound: "Orden no encontrada."})
	}

	return c.JSON(http.StatusOK, servers.Success{Success: true})
}

// UpdateTask handles POST /api/actualizar-tarea.
func (s *Server) UpdateTask(c echo.Context) error {
	var req servers.UpdateTaskRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, msgInvalid)
	}
	if req.TareaId == nil {
		return badRequest(c, "Falta el identificador de la tarea.")
	}

	cmd, err := commands.NewUpdateTaskCommand(currentUser(c), *req.TareaId, req.Completado)
	if err != nil {
		return s.fail(c, err, nil)
	}

	if err = s.h.Tasks.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err, messages{http.StatusNotFound: "Tarea no encontrada."})
	}

	return c.JSON(http.StatusOK, servers.Success{Success: true})
}

// ArchiveOrder handles POST /api/archivar-orden.
func (s *Server) ArchiveOrder(c echo.Context) error {
	var req servers.ArchiveOrderRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, msgInvalid)
	}
	if req.OrdenDeCompra == nil || strings.TrimSpace(*req.OrdenDeCompra) == "" {
		return badRequest(c, "Falta el identificador de la orden.")
	}

	if _, err := s.archive(c, []string{*req.OrdenDeCompra}); err != nil {
		return s.fail(c, err, archiveMessages)
	}

	return c.JSON(http.StatusOK, servers.Success{Success: true, Message: "Orden archivada en el historial permanente."})
}

// ArchiveBlock handles POST /api/archivar-bloque.
func (s *Server) ArchiveBlock(c echo.Context) error {
	var req servers.ArchiveBlockRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, msgInvalid)
	}

	identifiers := make([]string, 0, len(req.OrdersData))
	for _, row := range req.OrdersData {
		if row.OrdenDeCompra != nil {
			identifiers = append(identifiers, *row.OrdenDeCompra)
		}
	}
	if len(req.OrdersData) == 0 {
		return badRequest(c, "No se proporcionaron datos de órdenes.")
	}

	archived, err := s.archive(c, identifiers)
	if err != nil {
		return s.fail(c, err, archiveMessages)
	}

	return c.JSON(http.StatusOK, servers.Success{
		Success: true,
		Message: pluralize(len(archived), "orden del bloque ha sido archivada.", "órdenes del bloque han sido archivadas."),
	})
}

var archiveMessages = messages{
	http.StatusBadRequest: "No se proporcionaron datos de órdenes.",
	http.StatusNotFound:   "No se encontraron las órdenes especificadas.",
}

func (s *Server) archive(c echo.Context, identifiers []string) ([]string, error) {
	cmd, err := commands.NewArchiveOrdersCommand(currentUser(c), identifiers)
	if err != nil {
		return nil, err
	}
	return s.h.Archive.Handle(c.Request().Context(), cmd)
}

// CreateBlock handles POST /api/crear-bloque.
func (s *Server) CreateBlock(c echo.Context) error {
	var req servers.CreateBlockRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, msgInvalid)
	}

	cmd, err := commands.NewCreateBlockCommand(currentUser(c), req.OrdenesCompra)
	if err != nil {
		return s.fail(c, err, messages{http.StatusBadRequest: "Se necesitan al menos 2 órdenes para crear un bloque."})
	}

	res, err := s.h.CreateBlock.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err, messages{
			http.StatusBadRequest: "Se necesitan al menos 2 órdenes activas para crear un bloque.",
			http.StatusNotFound:   "No se encontraron las órdenes especificadas.",
		})
	}

	return c.JSON(http.StatusOK, servers.CreateBlockResponse{
		Success:          true,
		Mensaje:          "Bloque '" + strconv.FormatInt(res.BlockID, 10) + "' creado con éxito.",
		BloqueId:         res.BlockID,
		OrdenesAgrupadas: res.Grouped,
	})
}

// UngroupBlock handles POST /api/desagrupar-bloque.
func (s *Server) UngroupBlock(c echo.Context) error {
	var req servers.UngroupBlockRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, msgInvalid)
	}

	cmd, err := commands.NewUngroupOrdersCommand(currentUser(c), req.Ocs)
	if err != nil {
		return s.fail(c, err, messages{http.StatusBadRequest: "No se proporcionaron OCs para desagrupar."})
	}

	if _, err = s.h.Ungroup.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err, messages{http.StatusNotFound: "No se encontraron las órdenes especificadas."})
	}

	return c.JSON(http.StatusOK, servers.Success{Success: true, Message: "Las órdenes han sido desagrupadas."})
}

// ReleaseArchived handles POST /api/orden/liberar/{historial_id}.
func (s *Server) ReleaseArchived(c echo.Context, historialId int64) error {
	cmd, err := commands.NewReleaseArchivedCommand(currentUser(c), historialId)
	if err != nil {
		return s.fail(c, err, nil)
	}

	identifier, err := s.h.Release.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err, messages{
			http.StatusNotFound: "Registro de historial no encontrado.",
			http.StatusConflict: "La orden ya está en seguimiento activo.",
		})
	}

	return c.JSON(http.StatusOK, servers.Success{
		Success: true,
		Message: "Orden " + identifier + " restaurada al seguimiento activo.",
	})
}

// ClearNotes handles POST /api/orden/clear-notes.
func (s *Server) ClearNotes(c echo.Context) error {
	var req servers.ClearNotesRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, msgInvalid)
	}

	var identifier string
	if req.OrdenCompra != nil {
		identifier = *req.OrdenCompra
	}

	cmd, err := commands.NewClearNotesCommand(currentUser(c), identifier)
	if err != nil {
		return s.fail(c, err, messages{http.StatusBadRequest: "Falta el identificador de la orden."})
	}

	if err = s.h.Notes.HandleClear(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err, messages{http.StatusNotFound: "Orden no encontrada."})
	}

	return c.JSON(http.StatusOK, servers.Success{Success: true, Message: "Notas de la orden limpiadas con éxito."})
}

// currentUser returns the user stored by the session middleware.
func currentUser(c echo.Context) *access.User {
	u, _ := c.Get(userContextKey).(*access.User)
	return u
}

func amount(d decimal.NullDecimal) *float64 {
	if !d.Valid {
		return nil
	}
	f := d.Decimal.InexactFloat64()
	return &f
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func pluralize(n int, one, many string) string {
	if n == 1 {
		return "1 " + one
	}
	return strconv.Itoa(n) + " " + many
}
