package http_test

import (
	"context"

	"tracking/internal/core/application/usecases/commands"
	"tracking/internal/core/application/usecases/queries"
	"tracking/internal/core/domain/model/access"
	"tracking/internal/core/domain/model/portal"
	httpadapter "tracking/internal/adapters/in/http"
)

type fakeProvider struct {
	identity  httpadapter.Identity
	lastNonce string
	err       error
}

func (p *fakeProvider) AuthCodeURL(state, nonce string) string {
	return "https://idp.test/authorize?state=" + state + "&nonce=" + nonce
}

func (p *fakeProvider) Exchange(_ context.Context, code, nonce string) (httpadapter.Identity, error) {
	p.lastNonce = nonce
	if p.err != nil {
		return httpadapter.Identity{}, p.err
	}
	return p.identity, nil
}

func (p *fakeProvider) LogoutURL(redirect string) string {
	return "https://idp.test/logout?to=" + redirect
}

type fakeLogin struct {
	user *access.User
	got  commands.LoginUserCommand
}

func (f *fakeLogin) Handle(_ context.Context, cmd commands.LoginUserCommand) (*access.User, error) {
	f.got = cmd
	return f.user, nil
}

type activeOrdersFunc func(context.Context, queries.GetActiveOrdersQuery) (queries.GetActiveOrdersQueryResponse, error)

func (f activeOrdersFunc) Handle(ctx context.Context, q queries.GetActiveOrdersQuery) (queries.GetActiveOrdersQueryResponse, error) {
	return f(ctx, q)
}

type syncFunc func(context.Context, string) (commands.SyncOrdersResult, error)

func (f syncFunc) Run(ctx context.Context, trigger string) (commands.SyncOrdersResult, error) {
	return f(ctx, trigger)
}

type statusFunc func(context.Context, commands.UpdateStatusCommand) ([]string, error)

func (f statusFunc) Handle(ctx context.Context, c commands.UpdateStatusCommand) ([]string, error) {
	return f(ctx, c)
}

type taskFunc func(context.Context, commands.UpdateTaskCommand) error

func (f taskFunc) Handle(ctx context.Context, c commands.UpdateTaskCommand) error {
	return f(ctx, c)
}

type archiveFunc func(context.Context, commands.ArchiveOrdersCommand) ([]string, error)

func (f archiveFunc) Handle(ctx context.Context, c commands.ArchiveOrdersCommand) ([]string, error) {
	return f(ctx, c)
}

type releaseFunc func(context.Context, commands.ReleaseArchivedCommand) (string, error)

func (f releaseFunc) Handle(ctx context.Context, c commands.ReleaseArchivedCommand) (string, error) {
	return f(ctx, c)
}

type createBlockFunc func(context.Context, commands.CreateBlockCommand) (commands.CreateBlockResult, error)

func (f createBlockFunc) Handle(ctx context.Context, c commands.CreateBlockCommand) (commands.CreateBlockResult, error) {
	return f(ctx, c)
}

type exportFunc func(context.Context, queries.ExportArchivedOrdersQuery) (queries.ExportArchivedOrdersQueryResponse, error)

func (f exportFunc) Handle(ctx context.Context, q queries.ExportArchivedOrdersQuery) (queries.ExportArchivedOrdersQueryResponse, error) {
	return f(ctx, q)
}

type currentUserFunc func(context.Context, queries.GetCurrentUserQuery) (queries.GetCurrentUserQueryResponse, error)

func (f currentUserFunc) Handle(ctx context.Context, q queries.GetCurrentUserQuery) (queries.GetCurrentUserQueryResponse, error) {
	return f(ctx, q)
}

type fakePortalEditor struct {
	added portal.Client
	err   error
}

func (f *fakePortalEditor) AddClient(_ context.Context, _ commands.AddPortalClientCommand) (portal.Client, error) {
	return f.added, f.err
}

func (f *fakePortalEditor) DeleteClient(context.Context, commands.DeletePortalClientCommand) error {
	return f.err
}

func (f *fakePortalEditor) AddPortal(context.Context, commands.AddPortalCommand) (portal.Portal, error) {
	return portal.Portal{}, f.err
}

func (f *fakePortalEditor) UpdatePortal(context.Context, commands.UpdatePortalCommand) (portal.Portal, error) {
	return portal.Portal{}, f.err
}

func (f *fakePortalEditor) DeletePortal(context.Context, commands.DeletePortalCommand) error {
	return f.err
}
