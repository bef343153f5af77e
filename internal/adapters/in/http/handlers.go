package http

import (
	"context"

	"tracking/internal/core/application/usecases/commands"
	"tracking/internal/core/application/usecases/queries"
	"tracking/internal/core/domain/model/access"
	"tracking/internal/core/domain/model/portal"
)

// The interfaces below are satisfied by the command and query handlers of
// the application layer. Tests substitute fakes.

type ActiveOrdersReader interface {
	Handle(ctx context.Context, query queries.GetActiveOrdersQuery) (queries.GetActiveOrdersQueryResponse, error)
}

type OrderSyncer interface {
	Run(ctx context.Context, trigger string) (commands.SyncOrdersResult, error)
}

type StatusUpdater interface {
	Handle(ctx context.Context, command commands.UpdateStatusCommand) ([]string, error)
}

type NotesEditor interface {
	HandleUpdate(ctx context.Context, command commands.UpdateNotesCommand) error
	HandleClear(ctx context.Context, command commands.ClearNotesCommand) error
}

type TaskUpdater interface {
	Handle(ctx context.Context, command commands.UpdateTaskCommand) error
}

type OrderArchiver interface {
	Handle(ctx context.Context, command commands.ArchiveOrdersCommand) ([]string, error)
}

type ArchiveReleaser interface {
	Handle(ctx context.Context, command commands.ReleaseArchivedCommand) (string, error)
}

type BlockCreator interface {
	Handle(ctx context.Context, command commands.CreateBlockCommand) (commands.CreateBlockResult, error)
}

type BlockUngrouper interface {
	Handle(ctx context.Context, command commands.UngroupOrdersCommand) ([]int64, error)
}

type HistoryReader interface {
	Handle(ctx context.Context, query queries.GetArchivedOrdersQuery) ([]queries.ArchivedOrder, error)
}

type HistoryExporter interface {
	Handle(ctx context.Context, query queries.ExportArchivedOrdersQuery) (queries.ExportArchivedOrdersQueryResponse, error)
}

type CurrentUserReader interface {
	Handle(ctx context.Context, query queries.GetCurrentUserQuery) (queries.GetCurrentUserQueryResponse, error)
}

type ChannelLister interface {
	Handle(ctx context.Context, query queries.ListChannelsQuery) ([]string, error)
}

type UserLister interface {
	Handle(ctx context.Context, query queries.ListUsersQuery) (queries.ListUsersQueryResponse, error)
}

type GrantsEditor interface {
	HandlePermissions(ctx context.Context, command commands.UpdateUserPermissionsCommand) (*access.User, error)
	HandleChannels(ctx context.Context, command commands.UpdateUserChannelsCommand) (*access.User, error)
}

type PortalLister interface {
	Handle(ctx context.Context, query queries.ListPortalsQuery) ([]portal.Client, error)
}

type PortalEditor interface {
	AddClient(ctx context.Context, command commands.AddPortalClientCommand) (portal.Client, error)
	DeleteClient(ctx context.Context, command commands.DeletePortalClientCommand) error
	AddPortal(ctx context.Context, command commands.AddPortalCommand) (portal.Portal, error)
	UpdatePortal(ctx context.Context, command commands.UpdatePortalCommand) (portal.Portal, error)
	DeletePortal(ctx context.Context, command commands.DeletePortalCommand) error
}

type UserLoginHandler interface {
	Handle(ctx context.Context, command commands.LoginUserCommand) (*access.User, error)
}

// Handlers bundles every use case the API serves.
type Handlers struct {
	ActiveOrders ActiveOrdersReader
	Sync         OrderSyncer
	Status       StatusUpdater
	Notes        NotesEditor
	Tasks        TaskUpdater
	Archive      OrderArchiver
	Release      ArchiveReleaser
	CreateBlock  BlockCreator
	Ungroup      BlockUngrouper
	History      HistoryReader
	Export       HistoryExporter
	CurrentUser  CurrentUserReader
	Channels     ChannelLister
	Users        UserLister
	Grants       GrantsEditor
	Portals      PortalLister
	PortalEditor PortalEditor
}
