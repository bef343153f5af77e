package access

// Permission names an action a user may be granted.
type Permission string

const (
	PermUpdateStatus  Permission = "update_status"
	PermEditNotes     Permission = "edit_notes"
	PermArchiveOrders Permission = "archive_orders"
	PermGroupOrders   Permission = "group_orders"
	PermManagePortals Permission = "manage_portals"
	PermManageUsers   Permission = "manage_users"
)

// PermissionInfo pairs a permission with the description shown to administrators.
type PermissionInfo struct {
	Name        Permission
	Description string
}

// DefaultPermissions is the catalog seeded into a new database.
func DefaultPermissions() []PermissionInfo {
	return []PermissionInfo{
		{PermUpdateStatus, "Puede cambiar el estado de las órdenes"},
		{PermEditNotes, "Puede editar y limpiar las notas de cualquier orden"},
		{PermArchiveOrders, "Puede archivar y restaurar órdenes del historial"},
		{PermGroupOrders, "Puede agrupar órdenes en bloques"},
		{PermManagePortals, "Puede agregar, editar y eliminar portales"},
		{PermManageUsers, "Puede ver y cambiar permisos de otros usuarios"},
	}
}
