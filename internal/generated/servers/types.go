// Package servers holds the wire types and the echo routing for api/openapi.yaml.
// JSON field names are the ones the board's front-end reads.
package servers

// Error defines model for Error.
type Error struct {
	Error string `json:"error"`
}

// Success defines model for Success.
type Success struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// SyncResult defines model for SyncResult.
type SyncResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Task defines model for Task.
type Task struct {
	Id          int64  `json:"id"`
	Descripcion string `json:"descripcion"`
	Completado  bool   `json:"completado"`
}

// ActiveOrder defines model for ActiveOrder.
type ActiveOrder struct {
	OrdenDeCompra    string   `json:"Orden de compra"`
	Cliente          string   `json:"Cliente"`
	Canal            string   `json:"Canal"`
	SO               string   `json:"SO"`
	Factura          string   `json:"Factura"`
	FechaDeEntrega   string   `json:"Fecha de entrega"`
	Horario          string   `json:"Horario"`
	LocalidadDestino string   `json:"Localidad destino"`
	NoBotellas       *int     `json:"No. Botellas"`
	NoCajas          *int     `json:"No. Cajas"`
	Subtotal         *float64 `json:"Subtotal"`
	Estado           string   `json:"Estado"`
	Notas            string   `json:"Notas"`
	Prioridad        string   `json:"Prioridad"`
	BloqueId         *int64   `json:"bloque_id"`
	Tareas           []Task   `json:"Tareas"`
}

// LogisticsData defines model for LogisticsData.
type LogisticsData struct {
	Data     []ActiveOrder `json:"data"`
	Channels []string      `json:"channels"`
}

// UpdateStatusRequest defines model for UpdateStatusRequest.
type UpdateStatusRequest struct {
	OrdenCompra string `json:"orden_compra"`
	NuevoEstado string `json:"nuevo_estado"`
}

// UpdateStatusResponse defines model for UpdateStatusResponse.
type UpdateStatusResponse struct {
	Success    bool     `json:"success"`
	UpdatedOcs []string `json:"updated_ocs"`
}

// UpdateNotesRequest defines model for UpdateNotesRequest.
type UpdateNotesRequest struct {
	OrdenCompra string  `json:"orden_compra"`
	Notas       *string `json:"notas"`
}

// UpdateTaskRequest defines model for UpdateTaskRequest.
type UpdateTaskRequest struct {
	TareaId    *int64 `json:"tarea_id"`
	Completado bool   `json:"completado"`
}

// ArchiveOrderRequest defines model for ArchiveOrderRequest.
type ArchiveOrderRequest struct {
	OrdenDeCompra *string `json:"Orden de compra"`
}

// ArchiveBlockRequest defines model for ArchiveBlockRequest.
type ArchiveBlockRequest struct {
	OrdersData []ArchiveOrderRequest `json:"orders_data"`
}

// CreateBlockRequest defines model for CreateBlockRequest.
type CreateBlockRequest struct {
	OrdenesCompra []string `json:"ordenes_compra"`
}

// CreateBlockResponse defines model for CreateBlockResponse.
type CreateBlockResponse struct {
	Success          bool     `json:"success"`
	Mensaje          string   `json:"mensaje"`
	BloqueId         int64    `json:"bloque_id"`
	OrdenesAgrupadas []string `json:"ordenes_agrupadas"`
}

// UngroupBlockRequest defines model for UngroupBlockRequest.
type UngroupBlockRequest struct {
	Ocs []string `json:"ocs"`
}

// ClearNotesRequest defines model for ClearNotesRequest.
type ClearNotesRequest struct {
	OrdenCompra *string `json:"orden_compra"`
}

// HistoryEntry defines model for HistoryEntry.
type HistoryEntry struct {
	Id               int64    `json:"id"`
	OrdenDeCompra    string   `json:"Orden de compra"`
	Cliente          string   `json:"Cliente"`
	Canal            string   `json:"Canal"`
	SO               string   `json:"SO"`
	Factura          string   `json:"Factura"`
	FechaEntrega     string   `json:"Fecha Entrega"`
	Horario          string   `json:"Horario"`
	EstadoFinal      string   `json:"Estado Final"`
	FechaArchivado   string   `json:"Fecha Archivado"`
	LocalidadDestino string   `json:"Localidad Destino"`
	NoBotellas       *int     `json:"No. Botellas"`
	NoCajas          *int     `json:"No. Cajas"`
	Subtotal         *float64 `json:"Subtotal"`
	Notas            string   `json:"Notas"`
}

// CurrentUser defines model for CurrentUser.
type CurrentUser struct {
	Email            string   `json:"email"`
	Nombre           string   `json:"nombre"`
	Rol              string   `json:"rol"`
	Permissions      []string `json:"permissions"`
	CanManagePortals bool     `json:"can_manage_portals"`
}

// UserSummary defines model for UserSummary.
type UserSummary struct {
	Id              int64    `json:"id"`
	Nombre          string   `json:"nombre"`
	Email           string   `json:"email"`
	Permissions     []string `json:"permissions"`
	AllowedChannels []string `json:"allowed_channels"`
}

// PermissionInfo defines model for PermissionInfo.
type PermissionInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// UsersListing defines model for UsersListing.
type UsersListing struct {
	Users          []UserSummary    `json:"users"`
	AllPermissions []PermissionInfo `json:"all_permissions"`
	AllChannels    []string         `json:"all_channels"`
}

// UpdatePermissionsRequest defines model for UpdatePermissionsRequest.
type UpdatePermissionsRequest struct {
	Permissions []string `json:"permissions"`
}

// UpdateChannelsRequest defines model for UpdateChannelsRequest.
type UpdateChannelsRequest struct {
	Channels []string `json:"channels"`
}

// Portal defines model for Portal.
type Portal struct {
	Id      string `json:"id"`
	Nombre  string `json:"nombre"`
	Url     string `json:"url"`
	Usuario string `json:"usuario"`
	Contra  string `json:"contra"`
}

// PortalClient defines model for PortalClient.
type PortalClient struct {
	Id       string   `json:"id"`
	Nombre   string   `json:"nombre"`
	Portales []Portal `json:"portales"`
}

// NewPortalClient defines model for NewPortalClient.
type NewPortalClient struct {
	Nombre *string `json:"nombre"`
}

// PortalFields defines model for PortalFields. Absent fields stay nil.
type PortalFields struct {
	Nombre  *string `json:"nombre,omitempty"`
	Url     *string `json:"url,omitempty"`
	Usuario *string `json:"usuario,omitempty"`
	Contra  *string `json:"contra,omitempty"`
}

// HistoryParams defines parameters for GetHistory and DownloadHistory.
type HistoryParams struct {
	Cliente   *string `form:"cliente" json:"cliente,omitempty"`
	Localidad *string `form:"localidad" json:"localidad,omitempty"`
	Canal     *string `form:"canal" json:"canal,omitempty"`
	StartDate *string `form:"start_date" json:"start_date,omitempty"`
	EndDate   *string `form:"end_date" json:"end_date,omitempty"`
}
