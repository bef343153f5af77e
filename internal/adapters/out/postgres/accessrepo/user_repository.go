package accessrepo

import (
	"context"
	"errors"
	"strings"

	"tracking/internal/core/domain/model/access"
	"tracking/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormUserRepository implements ports.UserRepository using GORM. Users are
// loaded with their permission and channel grants, sorted by name.
type GormUserRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker receives every aggregate the repository writes. The unit
// of work implements it.
type aggregateTracker interface {
	TrackAggregate(key string, aggregate any)
}

// NewGormUserRepository creates a repository bound to db.
func NewGormUserRepository(db *gorm.DB, tracker aggregateTracker) *GormUserRepository {
	return &GormUserRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts the user with its grants and assigns the ID.
func (r *GormUserRepository) Add(ctx context.Context, aggregate *access.User) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)
	if err := db.Omit(clause.Associations).Create(&dto).Error; err != nil {
		return err
	}
	aggregate.AssignID(dto.ID)

	if err := r.replaceGrants(db, &dto, aggregate); err != nil {
		return err
	}

	r.tracker.TrackAggregate("user:"+aggregate.Email(), aggregate)
	return nil
}

// Update writes the profile and replaces both grant sets.
func (r *GormUserRepository) Update(ctx context.Context, aggregate *access.User) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	result := db.Model(&UserDTO{}).
		Where("id = ?", dto.ID).
		Select("Email", "Name", "Role").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	if err := r.replaceGrants(db, &dto, aggregate); err != nil {
		return err
	}

	r.tracker.TrackAggregate("user:"+aggregate.Email(), aggregate)
	return nil
}

// Get loads a user by ID.
// Returns errs.ObjectNotFoundError when the ID is unknown.
func (r *GormUserRepository) Get(ctx context.Context, id int64) (*access.User, error) {
	var dto UserDTO
	if err := r.withGrants(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("user", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByEmail loads a user by email, ignoring case and surrounding spaces.
// Returns errs.ObjectNotFoundError when nobody has signed in with it yet.
func (r *GormUserRepository) GetByEmail(ctx context.Context, email string) (*access.User, error) {
	email = strings.TrimSpace(email)

	var dto UserDTO
	if err := r.withGrants(ctx).First(&dto, "LOWER(email) = LOWER(?)", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("user", email)
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormUserRepository) withGrants(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Permissions", func(db *gorm.DB) *gorm.DB { return db.Order("permissions.name") }).
		Preload("Channels", func(db *gorm.DB) *gorm.DB { return db.Order("channels.name") })
}

// replaceGrants resolves names to catalog rows, so unknown names drop out.
func (r *GormUserRepository) replaceGrants(db *gorm.DB, dto *UserDTO, aggregate *access.User) error {
	names := make([]string, 0, len(aggregate.Permissions()))
	for _, p := range aggregate.Permissions() {
		names = append(names, string(p))
	}

	var permissions []PermissionDTO
	if len(names) > 0 {
		if err := db.Where("name IN ?", names).Find(&permissions).Error; err != nil {
			return err
		}
	}

	var channels []ChannelDTO
	if allowed := aggregate.Channels(); len(allowed) > 0 {
		if err := db.Where("name IN ?", allowed).Find(&channels).Error; err != nil {
			return err
		}
	}

	if err := replaceAssociation(db, dto, "Permissions", permissions); err != nil {
		return err
	}
	return replaceAssociation(db, dto, "Channels", channels)
}

func replaceAssociation[T any](db *gorm.DB, dto *UserDTO, name string, values []T) error {
	association := db.Model(dto).Association(name)
	if len(values) == 0 {
		return association.Clear()
	}
	return association.Replace(values)
}
