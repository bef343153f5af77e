package blockrepo

import (
	"context"
	"errors"
	"strconv"

	"tracking/internal/core/domain/model/block"
	"tracking/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormBlockRepository implements ports.BlockRepository using GORM. Member
// orders are not loaded; block membership lives on the order rows.
type GormBlockRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker receives every aggregate the repository writes. The unit
// of work implements it.
type aggregateTracker interface {
	TrackAggregate(key string, aggregate any)
}

// NewGormBlockRepository creates a repository bound to db.
func NewGormBlockRepository(db *gorm.DB, tracker aggregateTracker) *GormBlockRepository {
	return &GormBlockRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts the block and assigns its ID.
func (r *GormBlockRepository) Add(ctx context.Context, aggregate *block.Block) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}
	aggregate.AssignID(dto.ID)

	r.tracker.TrackAggregate("block:"+strconv.FormatInt(dto.ID, 10), aggregate)
	return nil
}

// Get retrieves a block by ID.
func (r *GormBlockRepository) Get(ctx context.Context, id int64) (*block.Block, error) {
	var dto BlockDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("block", id)
		}
		return nil, err
	}
	return toDomain(dto), nil
}

// DeleteIfEmpty removes the blocks among ids that no order references.
func (r *GormBlockRepository) DeleteIfEmpty(ctx context.Context, ids []int64) ([]int64, error) {
	deleted := make([]int64, 0)
	if len(ids) == 0 {
		return deleted, nil
	}

	err := r.db.WithContext(ctx).Raw(`
		DELETE FROM blocks b
		WHERE b.id IN ?
		  AND NOT EXISTS (SELECT 1 FROM orders o WHERE o.block_id = b.id)
		RETURNING b.id
	`, ids).Scan(&deleted).Error
	if err != nil {
		return nil, err
	}

	return deleted, nil
}
