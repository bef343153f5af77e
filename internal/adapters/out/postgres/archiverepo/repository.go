package archiverepo

import (
	"context"
	"errors"

	"tracking/internal/core/domain/model/archive"
	"tracking/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormArchiveRepository implements ports.ArchiveRepository using GORM.
//
// Entries are immutable snapshots: they are added and deleted, never updated.
// An identifier may be archived more than once.
type GormArchiveRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker receives every aggregate the repository writes. The unit
// of work implements it.
type aggregateTracker interface {
	TrackAggregate(key string, aggregate any)
}

// NewGormArchiveRepository creates a repository bound to db.
func NewGormArchiveRepository(db *gorm.DB, tracker aggregateTracker) *GormArchiveRepository {
	return &GormArchiveRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts the entry and assigns its ID.
func (r *GormArchiveRepository) Add(ctx context.Context, entry *archive.Entry) error {
	if entry == nil {
		return errs.NewValueIsRequiredError("entry")
	}
	if entry.Identifier == "" {
		return errs.NewValueIsRequiredError("identifier")
	}

	dto := fromDomain(entry)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}
	entry.ID = dto.ID

	r.tracker.TrackAggregate("archive:"+entry.Identifier, entry)
	return nil
}

// Get loads one entry by its ID.
// Returns errs.ObjectNotFoundError when no entry has it.
func (r *GormArchiveRepository) Get(ctx context.Context, id int64) (*archive.Entry, error) {
	var dto ArchivedOrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("historial", id)
		}
		return nil, err
	}

	return toDomain(dto), nil
}

// Delete removes an entry, typically after it was restored to the board.
// Returns errs.ObjectNotFoundError when no entry has the ID.
func (r *GormArchiveRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&ArchivedOrderDTO{})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("historial", id)
	}
	return nil
}

// Identifiers returns the set of every archived identifier. The import uses
// it to keep archived orders off the board.
func (r *GormArchiveRepository) Identifiers(ctx context.Context) (map[string]struct{}, error) {
	var identifiers []string
	err := r.db.WithContext(ctx).
		Model(&ArchivedOrderDTO{}).
		Distinct().
		Pluck("identifier", &identifiers).Error
	if err != nil {
		return nil, err
	}

	set := make(map[string]struct{}, len(identifiers))
	for _, id := range identifiers {
		set[id] = struct{}{}
	}
	return set, nil
}
