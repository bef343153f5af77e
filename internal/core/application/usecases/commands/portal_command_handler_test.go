package commands_test

import (
	"errors"
	"testing"

	"tracking/internal/core/application/usecases/commands"
	"tracking/internal/core/domain/model/access"
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/portal"
	"tracking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func str(s string) *string { return &s }

func TestPortalCommandHandler_Lifecycle(t *testing.T) {
	ctx := t.Context()
	actor := normalUser(access.PermManagePortals)
	dir := &MockPortalDirectory{Directory: portal.NewDirectory(nil)}
	dir.On("Update", ctx).Return(nil)
	handler := commands.NewPortalCommandHandler(dir)

	addClient, err := commands.NewAddPortalClientCommand(actor, "Walmart")
	require.NoError(t, err)
	client, err := handler.AddClient(ctx, addClient)
	require.NoError(t, err)
	assert.Equal(t, "Walmart", client.Name)

	addPortal, err := commands.NewAddPortalCommand(actor, client.ID.String(), portal.Fields{
		Name: str("Retail Link"), URL: str("https://retaillink.example.com"), User: str("log"), Password: str("pw"),
	})
	require.NoError(t, err)
	p, err := handler.AddPortal(ctx, addPortal)
	require.NoError(t, err)

	updatePortal, err := commands.NewUpdatePortalCommand(actor, p.ID.String(), portal.Fields{URL: str("https://new.example.com")})
	require.NoError(t, err)
	updated, err := handler.UpdatePortal(ctx, updatePortal)
	require.NoError(t, err)
	assert.Equal(t, "https://new.example.com", updated.URL)
	assert.Equal(t, "Retail Link", updated.Name)

	deletePortal, err := commands.NewDeletePortalCommand(actor, p.ID.String())
	require.NoError(t, err)
	require.NoError(t, handler.DeletePortal(ctx, deletePortal))
	assert.Empty(t, dir.Directory.Clients()[0].Portals)

	deleteClient, err := commands.NewDeletePortalClientCommand(actor, client.ID.String())
	require.NoError(t, err)
	require.NoError(t, handler.DeleteClient(ctx, deleteClient))
	assert.Empty(t, dir.Directory.Clients())
}

func TestPortalCommandHandler_Errors(t *testing.T) {
	ctx := t.Context()
	dir := &MockPortalDirectory{Directory: portal.NewDirectory(nil)}
	dir.On("Update", ctx).Return(nil)
	handler := commands.NewPortalCommandHandler(dir)

	t.Run("forbidden", func(t *testing.T) {
		cmd, _ := commands.NewAddPortalClientCommand(normalUser(), "Walmart")

		_, err := handler.AddClient(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("unknown portal", func(t *testing.T) {
		cmd, _ := commands.NewDeletePortalCommand(superUser(), kernel.NewUUID().String())

		require.ErrorIs(t, handler.DeletePortal(ctx, cmd), errs.ErrObjectNotFound)
	})

	t.Run("malformed id", func(t *testing.T) {
		_, err := commands.NewDeletePortalClientCommand(superUser(), "not-a-uuid")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value command", func(t *testing.T) {
		err := handler.DeleteClient(ctx, commands.DeletePortalClientCommand{})

		require.ErrorIs(t, err, commands.ErrPortalCommandIsNotConstructed)
	})
}

func TestPortalCommandHandler_StoreError(t *testing.T) {
	ctx := t.Context()
	dir := &MockPortalDirectory{Directory: portal.NewDirectory(nil)}
	dir.On("Update", ctx).Return(errors.New("disk full"))

	cmd, _ := commands.NewAddPortalClientCommand(superUser(), "Walmart")
	_, err := commands.NewPortalCommandHandler(dir).AddClient(ctx, cmd)

	require.EqualError(t, err, "disk full")
}
