package access_test

import (
	"testing"

	"tracking/internal/core/domain/model/access"
	"tracking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleForEmail(t *testing.T) {
	assert.Equal(t, access.RoleSuper, access.RoleForEmail("J.Ortega@Example.com", "j.ortega@example.com"))
	assert.Equal(t, access.RoleNormal, access.RoleForEmail("ana@example.com", "j.ortega@example.com"))
	assert.Equal(t, access.RoleNormal, access.RoleForEmail("ana@example.com", ""))
}

func TestParseRole(t *testing.T) {
	r, err := access.ParseRole("super")
	require.NoError(t, err)
	assert.Equal(t, access.RoleSuper, r)

	_, err = access.ParseRole("admin")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNormalizeChannel(t *testing.T) {
	assert.Equal(t, "Autoservicio", access.NormalizeChannel("  AUTOSERVICIO "))
	assert.Equal(t, "Venta Directa", access.NormalizeChannel("venta directa"))
	assert.Empty(t, access.NormalizeChannel("   "))
}

func TestUniqueChannels(t *testing.T) {
	got := access.UniqueChannels([]string{"mayoreo", "", "Autoservicio", " MAYOREO", "  "})

	assert.Equal(t, []string{"Autoservicio", "Mayoreo"}, got)
}

func TestNewUser(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		u, err := access.NewUser(" ana@example.com ", "Ana", access.RoleNormal)

		require.NoError(t, err)
		require.NoError(t, u.Validate())
		assert.Equal(t, "ana@example.com", u.Email())
		assert.False(t, u.IsSuper())
	})

	t.Run("missing email and bad role", func(t *testing.T) {
		_, err := access.NewUser("", "Ana", "root")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("email without domain", func(t *testing.T) {
		_, err := access.NewUser("ana", "Ana", access.RoleNormal)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestUser_Permissions(t *testing.T) {
	normal, err := access.RestoreUser(1, "ana@example.com", "Ana", access.RoleNormal,
		[]access.Permission{access.PermUpdateStatus}, []string{"Mayoreo"})
	require.NoError(t, err)
	super, err := access.RestoreUser(2, "boss@example.com", "Jefe", access.RoleSuper, nil, nil)
	require.NoError(t, err)

	assert.True(t, normal.HasPermission(access.PermUpdateStatus))
	assert.False(t, normal.HasPermission(access.PermArchiveOrders))
	require.ErrorIs(t, normal.Require(access.PermArchiveOrders), errs.ErrForbidden)
	require.ErrorIs(t, normal.RequireSuper(), errs.ErrForbidden)

	for _, p := range access.DefaultPermissions() {
		assert.True(t, super.HasPermission(p.Name))
	}
	require.NoError(t, super.RequireSuper())
}

func TestUser_CanSee(t *testing.T) {
	normal, _ := access.RestoreUser(1, "ana@example.com", "Ana", access.RoleNormal, nil, []string{"Mayoreo"})
	super, _ := access.RestoreUser(2, "boss@example.com", "Jefe", access.RoleSuper, nil, nil)

	assert.True(t, normal.CanSee("Mayoreo"))
	assert.False(t, normal.CanSee("Autoservicio"))
	assert.True(t, super.CanSee("Autoservicio"))
}

func TestUser_Grants(t *testing.T) {
	normal, _ := access.RestoreUser(1, "ana@example.com", "Ana", access.RoleNormal, nil, nil)
	super, _ := access.RestoreUser(2, "boss@example.com", "Jefe", access.RoleSuper, nil, nil)

	require.NoError(t, normal.GrantPermissions([]access.Permission{access.PermGroupOrders}))
	require.NoError(t, normal.AllowChannels([]string{"Autoservicio"}))
	assert.Equal(t, []access.Permission{access.PermGroupOrders}, normal.Permissions())
	assert.Equal(t, []string{"Autoservicio"}, normal.Channels())

	require.ErrorIs(t, super.GrantPermissions(nil), access.ErrSuperUserIsImmutable)
	require.ErrorIs(t, super.AllowChannels(nil), access.ErrSuperUserIsImmutable)
}
