package queries

import (
	"context"
	"errors"

	"tracking/internal/core/domain/model/access"
	"tracking/internal/pkg/guard"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

var ErrListUsersQueryIsNotConstructed = errors.New(
	"ListUsersQuery must be created via NewListUsersQuery constructor",
)

// ListUsersQuery backs the administration page. Only a super user may run it.
type ListUsersQuery struct {
	viewer *access.User

	guard guard.ConstructorGuard
}

func NewListUsersQuery(viewer *access.User) (ListUsersQuery, error) {
	if err := validateViewer(viewer); err != nil {
		return ListUsersQuery{}, err
	}
	return ListUsersQuery{viewer: viewer, guard: guard.NewConstructorGuard()}, nil
}

func (q ListUsersQuery) Validate() error {
	return q.guard.Validate(ErrListUsersQueryIsNotConstructed)
}

type ListedUser struct {
	ID          int64
	Name        string
	Email       string
	Permissions []string
	Channels    []string
}

type ListedPermission struct {
	Name        string
	Description string
}

type ListUsersQueryResponse struct {
	Users       []ListedUser
	Permissions []ListedPermission
	Channels    []string
}

type ListUsersQueryHandler struct {
	db *gorm.DB
}

func NewListUsersQueryHandler(db *gorm.DB) ListUsersQueryHandler {
	return ListUsersQueryHandler{db: db}
}

func (h ListUsersQueryHandler) Handle(ctx context.Context, query ListUsersQuery) (ListUsersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListUsersQueryResponse{}, err
	}
	if err := query.viewer.RequireSuper(); err != nil {
		return ListUsersQueryResponse{}, err
	}

	db := h.db.WithContext(ctx)

	users, err := listUsers(db, string(access.RoleSuper))
	if err != nil {
		return ListUsersQueryResponse{}, err
	}

	permissions := make([]ListedPermission, 0)
	if err = db.Raw(`SELECT name, description FROM permissions ORDER BY name`).Scan(&permissions).Error; err != nil {
		return ListUsersQueryResponse{}, err
	}

	channels, err := listChannels(db)
	if err != nil {
		return ListUsersQueryResponse{}, err
	}

	return ListUsersQueryResponse{Users: users, Permissions: permissions, Channels: channels}, nil
}

func listUsers(db *gorm.DB, excludedRole string) ([]ListedUser, error) {
	rows, err := db.Raw(`
		SELECT
			u.id, u.name, u.email,
			COALESCE(ARRAY(
				SELECT p.name FROM user_permissions up
				JOIN permissions p ON p.id = up.permission_id
				WHERE up.user_id = u.id ORDER BY p.name
			), '{}') AS permissions,
			COALESCE(ARRAY(
				SELECT c.name FROM user_channels uc
				JOIN channels c ON c.id = uc.channel_id
				WHERE uc.user_id = u.id ORDER BY c.name
			), '{}') AS channels
		FROM users u
		WHERE u.role <> ?
		ORDER BY u.name, u.id
	`, excludedRole).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]ListedUser, 0)
	for rows.Next() {
		var (
			u           ListedUser
			permissions pq.StringArray
			channels    pq.StringArray
		)
		if err = rows.Scan(&u.ID, &u.Name, &u.Email, &permissions, &channels); err != nil {
			return nil, err
		}
		u.Permissions = []string(permissions)
		u.Channels = []string(channels)
		users = append(users, u)
	}

	return users, rows.Err()
}
