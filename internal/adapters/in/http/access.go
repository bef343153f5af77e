package http

import (
	"net/http"

	"tracking/internal/core/application/usecases/commands"
	"tracking/internal/core/application/usecases/queries"
	"tracking/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// GetCurrentUser handles GET /api/me.
func (s *Server) GetCurrentUser(c echo.Context) error {
	query, err := queries.NewGetCurrentUserQuery(currentUser(c))
	if err != nil {
		return s.fail(c, err, nil)
	}

	me, err := s.h.CurrentUser.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err, nil)
	}

	return c.JSON(http.StatusOK, servers.CurrentUser{
		Email:            me.Email,
		Nombre:           me.Name,
		Rol:              me.Role,
		Permissions:      nonNil(me.Permissions),
		CanManagePortals: me.CanManagePortals,
	})
}

// ListChannels handles GET /api/channels.
func (s *Server) ListChannels(c echo.Context) error {
	channels, err := s.h.Channels.Handle(c.Request().Context(), queries.NewListChannelsQuery())
	if err != nil {
		return s.fail(c, err, nil)
	}
	return c.JSON(http.StatusOK, nonNil(channels))
}

// ListUsers handles GET /api/users.
func (s *Server) ListUsers(c echo.Context) error {
	query, err := queries.NewListUsersQuery(currentUser(c))
	if err != nil {
		return s.fail(c, err, nil)
	}

	res, err := s.h.Users.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err, nil)
	}

	users := make([]servers.UserSummary, len(res.Users))
	for i, u := range res.Users {
		users[i] = servers.UserSummary{
			Id:              u.ID,
			Nombre:          u.Name,
			Email:           u.Email,
			Permissions:     nonNil(u.Permissions),
			AllowedChannels: nonNil(u.Channels),
		}
	}
	permissions := make([]servers.PermissionInfo, len(res.Permissions))
	for i, p := range res.Permissions {
		permissions[i] = servers.PermissionInfo{Name: p.Name, Description: p.Description}
	}

	return c.JSON(http.StatusOK, servers.UsersListing{
		Users:          users,
		AllPermissions: permissions,
		AllChannels:    nonNil(res.Channels),
	})
}

// UpdateUserPermissions handles POST /api/users/{user_id}/permissions.
func (s *Server) UpdateUserPermissions(c echo.Context, userId int64) error {
	var req servers.UpdatePermissionsRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, msgInvalid)
	}

	cmd, err := commands.NewUpdateUserPermissionsCommand(currentUser(c), userId, req.Permissions)
	if err != nil {
		return s.fail(c, err, nil)
	}

	user, err := s.h.Grants.HandlePermissions(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err, messages{
			http.StatusBadRequest: "No se pueden modificar los permisos del superadministrador.",
			http.StatusNotFound:   "Usuario no encontrado.",
		})
	}

	return c.JSON(http.StatusOK, servers.Success{Success: true, Message: "Permisos de " + user.Name() + " actualizados."})
}

// UpdateUserChannels handles POST /api/users/{user_id}/channels.
func (s *Server) UpdateUserChannels(c echo.Context, userId int64) error {
	var req servers.UpdateChannelsRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, msgInvalid)
	}

	cmd, err := commands.NewUpdateUserChannelsCommand(currentUser(c), userId, req.Channels)
	if err != nil {
		return s.fail(c, err, nil)
	}

	user, err := s.h.Grants.HandleChannels(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err, messages{
			http.StatusBadRequest: "No se pueden modificar los canales del superadministrador.",
			http.StatusNotFound:   "Usuario no encontrado.",
		})
	}

	return c.JSON(http.StatusOK, servers.Success{Success: true, Message: "Canales de " + user.Name() + " actualizados."})
}
