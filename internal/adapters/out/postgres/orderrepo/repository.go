package orderrepo

import (
	"context"
	"errors"

	"tracking/internal/core/domain/model/order"
	"tracking/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
//
// The repository runs on whatever *gorm.DB it is given; inside a unit of work
// that is the open transaction. Every written aggregate is reported to the
// tracker.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(key string, aggregate any)
}

// NewGormOrderRepository creates a repository bound to db.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts the order and its tasks, then copies the task IDs back.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	ids := make([]int64, 0, len(dto.Tasks))
	for _, t := range dto.Tasks {
		ids = append(ids, t.ID)
	}
	aggregate.AssignTaskIDs(ids)

	r.tracker.TrackAggregate(aggregate.Identifier(), aggregate)
	return nil
}

// Update writes the staff-owned columns (status, notes and block_id, which
// may be cleared) and the completion flag of each stored task. Detail columns
// belong to the import and are left alone.
//
// Returns gorm.ErrRecordNotFound when the order is not tracked.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	if err := r.updateColumns(db, dto.Identifier, staffColumns(dto)); err != nil {
		return err
	}

	for _, t := range dto.Tasks {
		if t.ID == 0 {
			continue
		}
		err := db.Model(&TaskDTO{}).
			Where("id = ? AND order_identifier = ?", t.ID, dto.Identifier).
			Update("completed", t.Completed).Error
		if err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.Identifier(), aggregate)
	return nil
}

// UpdateDetails writes only the spreadsheet columns. Status, notes, block
// membership and tasks keep whatever the database holds at write time.
//
// Returns gorm.ErrRecordNotFound when the order is not tracked.
func (r *GormOrderRepository) UpdateDetails(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.updateColumns(r.db.WithContext(ctx), dto.Identifier, detailColumns(dto)); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.Identifier(), aggregate)
	return nil
}

// updateColumns uses a map so cleared values (empty notes, NULL block) are
// written too.
func (r *GormOrderRepository) updateColumns(db *gorm.DB, identifier string, columns map[string]any) error {
	result := db.Model(&OrderDTO{}).Where("identifier = ?", identifier).Updates(columns)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Get loads one order with its tasks in creation order.
// Returns errs.ObjectNotFoundError when the identifier is not tracked.
func (r *GormOrderRepository) Get(ctx context.Context, identifier string) (*order.Order, error) {
	if identifier == "" {
		return nil, errs.NewValueIsRequiredError("identifier")
	}

	var dto OrderDTO
	if err := r.withTasks(ctx).First(&dto, "identifier = ?", identifier).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", identifier)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetMany loads the tracked subset of identifiers, sorted by identifier.
func (r *GormOrderRepository) GetMany(ctx context.Context, identifiers []string) ([]*order.Order, error) {
	if len(identifiers) == 0 {
		return []*order.Order{}, nil
	}
	return r.find(r.withTasks(ctx).Where("identifier IN ?", identifiers))
}

// GetAll loads every active order, sorted by identifier.
func (r *GormOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	return r.find(r.withTasks(ctx))
}

// GetByBlock loads the members of a block.
func (r *GormOrderRepository) GetByBlock(ctx context.Context, blockID int64) ([]*order.Order, error) {
	return r.find(r.withTasks(ctx).Where("block_id = ?", blockID))
}

// GetByTask loads the order owning the task.
// Returns errs.ObjectNotFoundError when no order owns it.
func (r *GormOrderRepository) GetByTask(ctx context.Context, taskID int64) (*order.Order, error) {
	var dto OrderDTO
	err := r.withTasks(ctx).
		Where("identifier = (SELECT order_identifier FROM tasks WHERE id = ?)", taskID).
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("task", taskID)
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes the order; its tasks go with it through the foreign key.
func (r *GormOrderRepository) Delete(ctx context.Context, identifier string) error {
	result := r.db.WithContext(ctx).Where("identifier = ?", identifier).Delete(&OrderDTO{})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", identifier)
	}
	return nil
}

func (r *GormOrderRepository) withTasks(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Tasks", func(db *gorm.DB) *gorm.DB {
		return db.Order("tasks.id")
	})
}

func (r *GormOrderRepository) find(query *gorm.DB) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := query.Order("identifier").Find(&dtos).Error; err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}
