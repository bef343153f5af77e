package accessrepo

import (
	"context"
	"slices"

	"tracking/internal/core/domain/model/access"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormChannelRepository implements ports.ChannelRepository using GORM.
// Channels are plain names; nothing is tracked.
type GormChannelRepository struct {
	db *gorm.DB
}

// NewGormChannelRepository creates a repository bound to db.
func NewGormChannelRepository(db *gorm.DB) *GormChannelRepository {
	return &GormChannelRepository{db: db}
}

// AddMissing inserts the names not stored yet and returns them in input
// order. Blank names are skipped. A name inserted concurrently elsewhere does
// not fail the call.
func (r *GormChannelRepository) AddMissing(ctx context.Context, names []string) ([]string, error) {
	added := make([]string, 0)
	if len(names) == 0 {
		return added, nil
	}

	db := r.db.WithContext(ctx)

	var existing []string
	if err := db.Model(&ChannelDTO{}).Where("name IN ?", names).Pluck("name", &existing).Error; err != nil {
		return nil, err
	}

	dtos := make([]ChannelDTO, 0, len(names))
	for _, name := range names {
		if name == "" || slices.Contains(existing, name) || slices.Contains(added, name) {
			continue
		}
		added = append(added, name)
		dtos = append(dtos, ChannelDTO{Name: name})
	}

	if len(dtos) == 0 {
		return added, nil
	}

	err := db.Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "name"}}, DoNothing: true}).
		Create(&dtos).Error
	if err != nil {
		return nil, err
	}

	return added, nil
}

// GormPermissionRepository implements ports.PermissionRepository using GORM.
type GormPermissionRepository struct {
	db *gorm.DB
}

// NewGormPermissionRepository creates a repository bound to db.
func NewGormPermissionRepository(db *gorm.DB) *GormPermissionRepository {
	return &GormPermissionRepository{db: db}
}

// Seed inserts missing permissions. Existing rows keep their description.
func (r *GormPermissionRepository) Seed(ctx context.Context, permissions []access.PermissionInfo) error {
	if len(permissions) == 0 {
		return nil
	}

	dtos := make([]PermissionDTO, 0, len(permissions))
	for _, p := range permissions {
		dtos = append(dtos, PermissionDTO{Name: string(p.Name), Description: p.Description})
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "name"}}, DoNothing: true}).
		Create(&dtos).Error
}
