package servers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// (GET /logistica/datos)
	GetLogisticsData(ctx echo.Context) error
	// (POST /logistica/sincronizar)
	SyncLogistics(ctx echo.Context) error
	// (POST /actualizar-estado)
	UpdateStatus(ctx echo.Context) error
	// (POST /actualizar-notas)
	UpdateNotes(ctx echo.Context) error
	// (POST /actualizar-tarea)
	UpdateTask(ctx echo.Context) error
	// (POST /archivar-orden)
	ArchiveOrder(ctx echo.Context) error
	// (POST /archivar-bloque)
	ArchiveBlock(ctx echo.Context) error
	// (POST /crear-bloque)
	CreateBlock(ctx echo.Context) error
	// (POST /desagrupar-bloque)
	UngroupBlock(ctx echo.Context) error
	// (POST /orden/liberar/{historial_id})
	ReleaseArchived(ctx echo.Context, historialId int64) error
	// (POST /orden/clear-notes)
	ClearNotes(ctx echo.Context) error
	// (GET /historial)
	GetHistory(ctx echo.Context, params HistoryParams) error
	// (GET /historial/descargar)
	DownloadHistory(ctx echo.Context, params HistoryParams) error
	// (GET /me)
	GetCurrentUser(ctx echo.Context) error
	// (GET /channels)
	ListChannels(ctx echo.Context) error
	// (GET /users)
	ListUsers(ctx echo.Context) error
	// (POST /users/{user_id}/permissions)
	UpdateUserPermissions(ctx echo.Context, userId int64) error
	// (POST /users/{user_id}/channels)
	UpdateUserChannels(ctx echo.Context, userId int64) error
	// (GET /portales)
	ListPortals(ctx echo.Context) error
	// (POST /portales/clientes)
	AddPortalClient(ctx echo.Context) error
	// (DELETE /portales/clientes/{cliente_id})
	DeletePortalClient(ctx echo.Context, clienteId string) error
	// (POST /portales/clientes/{cliente_id}/portals)
	AddPortal(ctx echo.Context, clienteId string) error
	// (PUT /portales/portals/{portal_id})
	UpdatePortal(ctx echo.Context, portalId string) error
	// (DELETE /portales/portals/{portal_id})
	DeletePortal(ctx echo.Context, portalId string) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func (w *ServerInterfaceWrapper) GetLogisticsData(ctx echo.Context) error {
	return w.Handler.GetLogisticsData(ctx)
}

func (w *ServerInterfaceWrapper) SyncLogistics(ctx echo.Context) error {
	return w.Handler.SyncLogistics(ctx)
}

func (w *ServerInterfaceWrapper) UpdateStatus(ctx echo.Context) error {
	return w.Handler.UpdateStatus(ctx)
}

func (w *ServerInterfaceWrapper) UpdateNotes(ctx echo.Context) error {
	return w.Handler.UpdateNotes(ctx)
}

func (w *ServerInterfaceWrapper) UpdateTask(ctx echo.Context) error {
	return w.Handler.UpdateTask(ctx)
}

func (w *ServerInterfaceWrapper) ArchiveOrder(ctx echo.Context) error {
	return w.Handler.ArchiveOrder(ctx)
}

func (w *ServerInterfaceWrapper) ArchiveBlock(ctx echo.Context) error {
	return w.Handler.ArchiveBlock(ctx)
}

func (w *ServerInterfaceWrapper) CreateBlock(ctx echo.Context) error {
	return w.Handler.CreateBlock(ctx)
}

func (w *ServerInterfaceWrapper) UngroupBlock(ctx echo.Context) error {
	return w.Handler.UngroupBlock(ctx)
}

func (w *ServerInterfaceWrapper) ReleaseArchived(ctx echo.Context) error {
	var historialId int64
	if err := bindPathParameter(ctx, "historial_id", &historialId); err != nil {
		return err
	}
	return w.Handler.ReleaseArchived(ctx, historialId)
}

func (w *ServerInterfaceWrapper) ClearNotes(ctx echo.Context) error {
	return w.Handler.ClearNotes(ctx)
}

func (w *ServerInterfaceWrapper) GetHistory(ctx echo.Context) error {
	params, err := bindHistoryParams(ctx)
	if err != nil {
		return err
	}
	return w.Handler.GetHistory(ctx, params)
}

func (w *ServerInterfaceWrapper) DownloadHistory(ctx echo.Context) error {
	params, err := bindHistoryParams(ctx)
	if err != nil {
		return err
	}
	return w.Handler.DownloadHistory(ctx, params)
}

func (w *ServerInterfaceWrapper) GetCurrentUser(ctx echo.Context) error {
	return w.Handler.GetCurrentUser(ctx)
}

func (w *ServerInterfaceWrapper) ListChannels(ctx echo.Context) error {
	return w.Handler.ListChannels(ctx)
}

func (w *ServerInterfaceWrapper) ListUsers(ctx echo.Context) error {
	return w.Handler.ListUsers(ctx)
}

func (w *ServerInterfaceWrapper) UpdateUserPermissions(ctx echo.Context) error {
	var userId int64
	if err := bindPathParameter(ctx, "user_id", &userId); err != nil {
		return err
	}
	return w.Handler.UpdateUserPermissions(ctx, userId)
}

func (w *ServerInterfaceWrapper) UpdateUserChannels(ctx echo.Context) error {
	var userId int64
	if err := bindPathParameter(ctx, "user_id", &userId); err != nil {
		return err
	}
	return w.Handler.UpdateUserChannels(ctx, userId)
}

func (w *ServerInterfaceWrapper) ListPortals(ctx echo.Context) error {
	return w.Handler.ListPortals(ctx)
}

func (w *ServerInterfaceWrapper) AddPortalClient(ctx echo.Context) error {
	return w.Handler.AddPortalClient(ctx)
}

func (w *ServerInterfaceWrapper) DeletePortalClient(ctx echo.Context) error {
	var clienteId string
	if err := bindPathParameter(ctx, "cliente_id", &clienteId); err != nil {
		return err
	}
	return w.Handler.DeletePortalClient(ctx, clienteId)
}

func (w *ServerInterfaceWrapper) AddPortal(ctx echo.Context) error {
	var clienteId string
	if err := bindPathParameter(ctx, "cliente_id", &clienteId); err != nil {
		return err
	}
	return w.Handler.AddPortal(ctx, clienteId)
}

func (w *ServerInterfaceWrapper) UpdatePortal(ctx echo.Context) error {
	var portalId string
	if err := bindPathParameter(ctx, "portal_id", &portalId); err != nil {
		return err
	}
	return w.Handler.UpdatePortal(ctx, portalId)
}

func (w *ServerInterfaceWrapper) DeletePortal(ctx echo.Context) error {
	var portalId string
	if err := bindPathParameter(ctx, "portal_id", &portalId); err != nil {
		return err
	}
	return w.Handler.DeletePortal(ctx, portalId)
}

func bindPathParameter(ctx echo.Context, name string, dest any) error {
	err := runtime.BindStyledParameterWithOptions("simple", name, ctx.Param(name), dest,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
	}
	return nil
}

func bindHistoryParams(ctx echo.Context) (HistoryParams, error) {
	var params HistoryParams
	query := ctx.QueryParams()

	for name, dest := range map[string]**string{
		"cliente":    &params.Cliente,
		"localidad":  &params.Localidad,
		"canal":      &params.Canal,
		"start_date": &params.StartDate,
		"end_date":   &params.EndDate,
	} {
		if err := runtime.BindQueryParameter("form", true, false, name, query, dest); err != nil {
			return params, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
		}
	}
	return params, nil
}

// EchoRouter is satisfied by *echo.Echo and *echo.Group.
type EchoRouter interface {
	CONNECT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	HEAD(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	OPTIONS(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	TRACE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route relative to the router's prefix.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers the handlers under baseURL.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{Handler: si}

	router.GET(baseURL+"/logistica/datos", wrapper.GetLogisticsData)
	router.POST(baseURL+"/logistica/sincronizar", wrapper.SyncLogistics)
	router.POST(baseURL+"/actualizar-estado", wrapper.UpdateStatus)
	router.POST(baseURL+"/actualizar-notas", wrapper.UpdateNotes)
	router.POST(baseURL+"/actualizar-tarea", wrapper.UpdateTask)
	router.POST(baseURL+"/archivar-orden", wrapper.ArchiveOrder)
	router.POST(baseURL+"/archivar-bloque", wrapper.ArchiveBlock)
	router.POST(baseURL+"/crear-bloque", wrapper.CreateBlock)
	router.POST(baseURL+"/desagrupar-bloque", wrapper.UngroupBlock)
	router.POST(baseURL+"/orden/liberar/:historial_id", wrapper.ReleaseArchived)
	router.POST(baseURL+"/orden/clear-notes", wrapper.ClearNotes)
	router.GET(baseURL+"/historial", wrapper.GetHistory)
	router.GET(baseURL+"/historial/descargar", wrapper.DownloadHistory)
	router.GET(baseURL+"/me", wrapper.GetCurrentUser)
	router.GET(baseURL+"/channels", wrapper.ListChannels)
	router.GET(baseURL+"/users", wrapper.ListUsers)
	router.POST(baseURL+"/users/:user_id/permissions", wrapper.UpdateUserPermissions)
	router.POST(baseURL+"/users/:user_id/channels", wrapper.UpdateUserChannels)
	router.GET(baseURL+"/portales", wrapper.ListPortals)
	router.POST(baseURL+"/portales/clientes", wrapper.AddPortalClient)
	router.DELETE(baseURL+"/portales/clientes/:cliente_id", wrapper.DeletePortalClient)
	router.POST(baseURL+"/portales/clientes/:cliente_id/portals", wrapper.AddPortal)
	router.PUT(baseURL+"/portales/portals/:portal_id", wrapper.UpdatePortal)
	router.DELETE(baseURL+"/portales/portals/:portal_id", wrapper.DeletePortal)
}
