// Package commands contains business operations that modify tracking state.
// Every command follows the same pattern: a constructor-guarded command value,
// a handler that checks the actor's permission, opens a unit of work, changes
// aggregates through repositories and commits.
package commands

import (
	"context"

	"tracking/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends on the narrowest combination it needs.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// BlockRepoFactory provides access to the block repository within a transaction.
	BlockRepoFactory interface {
		BlockRepository() ports.BlockRepository
	}

	// ArchiveRepoFactory provides access to the history repository within a transaction.
	ArchiveRepoFactory interface {
		ArchiveRepository() ports.ArchiveRepository
	}

	// UserRepoFactory provides access to the user repository within a transaction.
	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	// ChannelRepoFactory provides access to the channel repository within a transaction.
	ChannelRepoFactory interface {
		ChannelRepository() ports.ChannelRepository
	}

	// PermissionRepoFactory provides access to the permission repository within a transaction.
	PermissionRepoFactory interface {
		PermissionRepository() ports.PermissionRepository
	}

	// OrderUoW manages transactions that touch single orders only.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// BlockUoW manages transactions that move orders between blocks.
	BlockUoW interface {
		TxManager
		OrderRepoFactory
		BlockRepoFactory
	}

	// BlockUoWFactory creates new block unit of work instances.
	BlockUoWFactory interface {
		Create() BlockUoW
	}

	// ArchiveUoW manages transactions that move orders in and out of history.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   entry, _ := archive.NewEntryFromOrder(o, now)
	//   err = uow.ArchiveRepository().Add(ctx, entry)
	//   err = uow.OrderRepository().Delete(ctx, o.Identifier())
	//
	//   err = uow.Commit(ctx)
	ArchiveUoW interface {
		TxManager
		OrderRepoFactory
		BlockRepoFactory
		ArchiveRepoFactory
	}

	// ArchiveUoWFactory creates new archive unit of work instances.
	ArchiveUoWFactory interface {
		Create() ArchiveUoW
	}

	// SyncUoW manages the spreadsheet import transaction.
	SyncUoW interface {
		TxManager
		OrderRepoFactory
		ArchiveRepoFactory
		ChannelRepoFactory
	}

	// SyncUoWFactory creates new sync unit of work instances.
	SyncUoWFactory interface {
		Create() SyncUoW
	}

	// AccessUoW manages transactions over users and their grants.
	AccessUoW interface {
		TxManager
		UserRepoFactory
		PermissionRepoFactory
	}

	// AccessUoWFactory creates new access unit of work instances.
	AccessUoWFactory interface {
		Create() AccessUoW
	}
)
