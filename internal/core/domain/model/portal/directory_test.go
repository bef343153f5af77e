package portal_test

import (
	"testing"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/portal"
	"tracking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(s string) *string { return &s }

func fullFields() portal.Fields {
	return portal.Fields{Name: ptr("B2B"), URL: ptr("https://b2b.example.com"), User: ptr("logistica"), Password: ptr("s3cret")}
}

func TestDirectory_AddClient(t *testing.T) {
	d := portal.NewDirectory(nil)

	first, err := d.AddClient("Walmart")
	require.NoError(t, err)
	second, err := d.AddClient("  Soriana ")
	require.NoError(t, err)

	clients := d.Clients()
	require.Len(t, clients, 2)
	assert.Equal(t, second.ID, clients[0].ID, "newest client goes first")
	assert.Equal(t, "Soriana", clients[0].Name)
	assert.Equal(t, first.ID, clients[1].ID)
	require.NoError(t, d.Validate())
}

func TestDirectory_AddClientErrors(t *testing.T) {
	d := portal.NewDirectory(nil)
	_, err := d.AddClient("Walmart")
	require.NoError(t, err)

	_, err = d.AddClient("WALMART")
	require.ErrorIs(t, err, errs.ErrConflict)

	_, err = d.AddClient("   ")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestDirectory_DeleteClient(t *testing.T) {
	d := portal.NewDirectory(nil)
	c, _ := d.AddClient("Walmart")

	require.ErrorIs(t, d.DeleteClient(kernel.NewUUID()), errs.ErrObjectNotFound)
	require.NoError(t, d.DeleteClient(c.ID))
	assert.Empty(t, d.Clients())
}

func TestDirectory_Portals(t *testing.T) {
	d := portal.NewDirectory(nil)
	c, _ := d.AddClient("Walmart")

	t.Run("add requires every field", func(t *testing.T) {
		f := fullFields()
		f.Password = nil

		_, err := d.AddPortal(c.ID, f)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("add to unknown client", func(t *testing.T) {
		_, err := d.AddPortal(kernel.NewUUID(), fullFields())
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	p, err := d.AddPortal(c.ID, fullFields())
	require.NoError(t, err)

	t.Run("update patches present fields", func(t *testing.T) {
		got, err := d.UpdatePortal(p.ID, portal.Fields{Password: ptr("n3w")})

		require.NoError(t, err)
		assert.Equal(t, "n3w", got.Password)
		assert.Equal(t, "B2B", got.Name)
		assert.Equal(t, "n3w", d.Clients()[0].Portals[0].Password)
	})

	t.Run("update unknown portal", func(t *testing.T) {
		_, err := d.UpdatePortal(kernel.NewUUID(), portal.Fields{})
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, d.DeletePortal(p.ID))
		assert.Empty(t, d.Clients()[0].Portals)
		require.ErrorIs(t, d.DeletePortal(p.ID), errs.ErrObjectNotFound)
	})
}

func TestDirectory_ClientsIsDeepCopy(t *testing.T) {
	d := portal.NewDirectory(nil)
	c, _ := d.AddClient("Walmart")
	_, _ = d.AddPortal(c.ID, fullFields())

	clients := d.Clients()
	clients[0].Portals[0].Name = "changed"

	assert.Equal(t, "B2B", d.Clients()[0].Portals[0].Name)
}
