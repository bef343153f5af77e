package http

import (
	"net/http"

	"tracking/internal/core/application/usecases/commands"
	"tracking/internal/core/application/usecases/queries"
	"tracking/internal/core/domain/model/portal"
	"tracking/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

var (
	clientMessages = messages{
		http.StatusBadRequest: "El nombre del cliente es obligatorio.",
		http.StatusNotFound:   "Cliente no encontrado.",
		http.StatusConflict:   "Ya existe un cliente con ese nombre.",
	}
	invalidIDMessages = messages{
		http.StatusBadRequest: "Identificador no válido.",
	}
	portalMessages = messages{
		http.StatusBadRequest: "Faltan datos para crear el portal.",
		http.StatusNotFound:   "Portal no encontrado.",
	}
)

// ListPortals handles GET /api/portales.
func (s *Server) ListPortals(c echo.Context) error {
	query, err := queries.NewListPortalsQuery(currentUser(c))
	if err != nil {
		return s.fail(c, err, nil)
	}

	clients, err := s.h.Portals.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err, nil)
	}

	out := make([]servers.PortalClient, len(clients))
	for i, cl := range clients {
		out[i] = toPortalClient(cl)
	}
	return c.JSON(http.StatusOK, out)
}

// AddPortalClient handles POST /api/portales/clientes.
func (s *Server) AddPortalClient(c echo.Context) error {
	var req servers.NewPortalClient
	if err := c.Bind(&req); err != nil {
		return badRequest(c, msgInvalid)
	}

	cmd, err := commands.NewAddPortalClientCommand(currentUser(c), deref(req.Nombre))
	if err != nil {
		return s.fail(c, err, clientMessages)
	}

	client, err := s.h.PortalEditor.AddClient(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err, clientMessages)
	}

	return c.JSON(http.StatusCreated, toPortalClient(client))
}

// DeletePortalClient handles DELETE /api/portales/clientes/{cliente_id}.
func (s *Server) DeletePortalClient(c echo.Context, clienteId string) error {
	cmd, err := commands.NewDeletePortalClientCommand(currentUser(c), clienteId)
	if err != nil {
		return s.fail(c, err, invalidIDMessages)
	}

	if err = s.h.PortalEditor.DeleteClient(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err, clientMessages)
	}

	return c.JSON(http.StatusOK, servers.Success{Success: true, Message: "Cliente eliminado con éxito."})
}

// AddPortal handles POST /api/portales/clientes/{cliente_id}/portals.
func (s *Server) AddPortal(c echo.Context, clienteId string) error {
	var req servers.PortalFields
	if err := c.Bind(&req); err != nil {
		return badRequest(c, msgInvalid)
	}

	cmd, err := commands.NewAddPortalCommand(currentUser(c), clienteId, toFields(req))
	if err != nil {
		return s.fail(c, err, invalidIDMessages)
	}

	p, err := s.h.PortalEditor.AddPortal(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err, messages{
			http.StatusBadRequest: portalMessages[http.StatusBadRequest],
			http.StatusNotFound:   clientMessages[http.StatusNotFound],
		})
	}

	return c.JSON(http.StatusCreated, toPortal(p))
}

// UpdatePortal handles PUT /api/portales/portals/{portal_id}.
func (s *Server) UpdatePortal(c echo.Context, portalId string) error {
	var req servers.PortalFields
	if err := c.Bind(&req); err != nil {
		return badRequest(c, msgInvalid)
	}

	cmd, err := commands.NewUpdatePortalCommand(currentUser(c), portalId, toFields(req))
	if err != nil {
		return s.fail(c, err, invalidIDMessages)
	}

	p, err := s.h.PortalEditor.UpdatePortal(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err, portalMessages)
	}

	return c.JSON(http.StatusOK, toPortal(p))
}

// DeletePortal handles DELETE /api/portales/portals/{portal_id}.
func (s *Server) DeletePortal(c echo.Context, portalId string) error {
	cmd, err := commands.NewDeletePortalCommand(currentUser(c), portalId)
	if err != nil {
		return s.fail(c, err, invalidIDMessages)
	}

	if err = s.h.PortalEditor.DeletePortal(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err, portalMessages)
	}

	return c.JSON(http.StatusOK, servers.Success{Success: true, Message: "Portal eliminado con éxito."})
}

func toFields(req servers.PortalFields) portal.Fields {
	return portal.Fields{Name: req.Nombre, URL: req.Url, User: req.Usuario, Password: req.Contra}
}

func toPortal(p portal.Portal) servers.Portal {
	return servers.Portal{
		Id:      p.ID.String(),
		Nombre:  p.Name,
		Url:     p.URL,
		Usuario: p.User,
		Contra:  p.Password,
	}
}

func toPortalClient(cl portal.Client) servers.PortalClient {
	portals := make([]servers.Portal, len(cl.Portals))
	for i, p := range cl.Portals {
		portals[i] = toPortal(p)
	}
	return servers.PortalClient{Id: cl.ID.String(), Nombre: cl.Name, Portales: portals}
}
