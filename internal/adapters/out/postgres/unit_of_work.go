// Package postgres provides the GORM implementation of the unit of work and
// the schema migration for every repository package beneath it.
//
// A unit of work binds repositories to one transaction:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	if err := uow.ArchiveRepository().Add(ctx, entry); err != nil {
//	    return err
//	}
//	if err := uow.OrderRepository().Delete(ctx, entry.Identifier); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Rollback after Commit returns gorm.ErrInvalidTransaction, which the deferred
// call discards. Each UnitOfWork instance belongs to a single goroutine.
package postgres

import (
	"context"
	"log/slog"

	"tracking/internal/adapters/out/postgres/accessrepo"
	"tracking/internal/adapters/out/postgres/archiverepo"
	"tracking/internal/adapters/out/postgres/blockrepo"
	"tracking/internal/adapters/out/postgres/orderrepo"
	"tracking/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate is an aggregate written during the unit of work.
type trackedAggregate struct {
	Key       string
	Aggregate any
}

// GormUnitOfWorkFactory creates a fresh UnitOfWork per business operation.
// It is safe for concurrent use; the units of work it creates are not.
type GormUnitOfWorkFactory struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewGormUnitOfWorkFactory creates a factory over db. Committed units of work
// report the aggregates they wrote to logger at debug level.
func NewGormUnitOfWorkFactory(db *gorm.DB, logger *slog.Logger) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{
		db:     db,
		logger: logger.With("component", "unit_of_work"),
	}
}

// Create returns a unit of work with no open transaction.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		logger:            f.logger,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one database transaction. Repositories obtained
// before Begin run against the plain connection, so each of their statements
// commits on its own.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	logger            *slog.Logger
	trackedAggregates []trackedAggregate
}

// Begin starts the transaction. A second call is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit makes every write since Begin durable and logs the keys of the
// aggregates written. It returns gorm.ErrInvalidTransaction when no
// transaction is open.
func (uow *GormUnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	if err != nil {
		return err
	}

	if len(uow.trackedAggregates) > 0 {
		uow.logger.DebugContext(ctx, "unit of work committed", "aggregates", uow.trackedKeys())
	}
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return nil
}

// Rollback discards the transaction together with the aggregates tracked in it.
// It returns gorm.ErrInvalidTransaction when no transaction is open.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return err
}

// OrderRepository returns an order repository bound to the current connection.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

// BlockRepository returns a block repository bound to the current connection.
func (uow *GormUnitOfWork) BlockRepository() ports.BlockRepository {
	return blockrepo.NewGormBlockRepository(uow.conn(), uow)
}

// ArchiveRepository returns a history repository bound to the current connection.
func (uow *GormUnitOfWork) ArchiveRepository() ports.ArchiveRepository {
	return archiverepo.NewGormArchiveRepository(uow.conn(), uow)
}

// UserRepository returns a user repository bound to the current connection.
func (uow *GormUnitOfWork) UserRepository() ports.UserRepository {
	return accessrepo.NewGormUserRepository(uow.conn(), uow)
}

// ChannelRepository returns a channel repository bound to the current
// connection. Channels are not tracked.
func (uow *GormUnitOfWork) ChannelRepository() ports.ChannelRepository {
	return accessrepo.NewGormChannelRepository(uow.conn())
}

// PermissionRepository returns a permission repository bound to the current
// connection. Permissions are not tracked.
func (uow *GormUnitOfWork) PermissionRepository() ports.PermissionRepository {
	return accessrepo.NewGormPermissionRepository(uow.conn())
}

// TrackAggregate is called by repositories for every aggregate they write.
func (uow *GormUnitOfWork) TrackAggregate(key string, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		Key:       key,
		Aggregate: aggregate,
	})
}

// trackedKeys lists the keys of aggregates written so far, in write order.
func (uow *GormUnitOfWork) trackedKeys() []string {
	keys := make([]string, 0, len(uow.trackedAggregates))
	for _, t := range uow.trackedAggregates {
		keys = append(keys, t.Key)
	}
	return keys
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
