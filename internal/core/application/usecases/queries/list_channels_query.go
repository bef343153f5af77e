package queries

import (
	"context"
	"errors"

	"tracking/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrListChannelsQueryIsNotConstructed = errors.New(
	"ListChannelsQuery must be created via NewListChannelsQuery constructor",
)

// ListChannelsQuery returns every known channel name, sorted.
type ListChannelsQuery struct {
	guard guard.ConstructorGuard
}

func NewListChannelsQuery() ListChannelsQuery {
	return ListChannelsQuery{guard: guard.NewConstructorGuard()}
}

func (q ListChannelsQuery) Validate() error {
	return q.guard.Validate(ErrListChannelsQueryIsNotConstructed)
}

type ListChannelsQueryHandler struct {
	db *gorm.DB
}

func NewListChannelsQueryHandler(db *gorm.DB) ListChannelsQueryHandler {
	return ListChannelsQueryHandler{db: db}
}

func (h ListChannelsQueryHandler) Handle(ctx context.Context, query ListChannelsQuery) ([]string, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return listChannels(h.db.WithContext(ctx))
}

func listChannels(db *gorm.DB) ([]string, error) {
	channels := make([]string, 0)
	if err := db.Raw(`SELECT name FROM channels ORDER BY name`).Scan(&channels).Error; err != nil {
		return nil, err
	}
	return channels, nil
}
