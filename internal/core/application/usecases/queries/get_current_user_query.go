package queries

import (
	"context"
	"errors"

	"tracking/internal/core/domain/model/access"
	"tracking/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrGetCurrentUserQueryIsNotConstructed = errors.New(
	"GetCurrentUserQuery must be created via NewGetCurrentUserQuery constructor",
)

type GetCurrentUserQuery struct {
	viewer *access.User

	guard guard.ConstructorGuard
}

func NewGetCurrentUserQuery(viewer *access.User) (GetCurrentUserQuery, error) {
	if err := validateViewer(viewer); err != nil {
		return GetCurrentUserQuery{}, err
	}
	return GetCurrentUserQuery{viewer: viewer, guard: guard.NewConstructorGuard()}, nil
}

func (q GetCurrentUserQuery) Validate() error {
	return q.guard.Validate(ErrGetCurrentUserQueryIsNotConstructed)
}

type GetCurrentUserQueryResponse struct {
	Email            string
	Name             string
	Role             string
	Permissions      []string
	CanManagePortals bool
}

// GetCurrentUserQueryHandler describes the signed-in user. A super user is
// reported with every permission in the catalog.
type GetCurrentUserQueryHandler struct {
	db *gorm.DB
}

func NewGetCurrentUserQueryHandler(db *gorm.DB) GetCurrentUserQueryHandler {
	return GetCurrentUserQueryHandler{db: db}
}

func (h GetCurrentUserQueryHandler) Handle(ctx context.Context, query GetCurrentUserQuery) (GetCurrentUserQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCurrentUserQueryResponse{}, err
	}

	viewer := query.viewer
	permissions := make([]string, 0)
	if viewer.IsSuper() {
		err := h.db.WithContext(ctx).Raw(`SELECT name FROM permissions ORDER BY name`).Scan(&permissions).Error
		if err != nil {
			return GetCurrentUserQueryResponse{}, err
		}
	} else {
		for _, p := range viewer.Permissions() {
			permissions = append(permissions, string(p))
		}
	}

	return GetCurrentUserQueryResponse{
		Email:            viewer.Email(),
		Name:             viewer.Name(),
		Role:             string(viewer.Role()),
		Permissions:      permissions,
		CanManagePortals: viewer.HasPermission(access.PermManagePortals),
	}, nil
}
