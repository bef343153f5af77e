package ports

import (
	"context"
)

type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork spans one command. Every repository it hands out shares the
// transaction opened by Begin; before Begin they read and write outside any
// transaction.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	// Rollback fails with gorm.ErrInvalidTransaction when nothing is open.
	Rollback(ctx context.Context) error

	OrderRepository() OrderRepository
	BlockRepository() BlockRepository
	ArchiveRepository() ArchiveRepository
	UserRepository() UserRepository
	ChannelRepository() ChannelRepository
	PermissionRepository() PermissionRepository
}
