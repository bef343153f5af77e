package commands_test

import (
	"testing"

	"tracking/internal/core/application/usecases/commands"
	"tracking/internal/core/domain/model/access"
	"tracking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLoginUserCommandHandler_Handle_ExistingUser(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewLoginUserCommand("ana@example.com", "Ana")
	require.NoError(t, err)

	known := normalUser()
	repo := new(MockUserRepository)
	uow := new(MockUoW)
	factory := new(MockAccessUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(repo).Once(),
		repo.On("GetByEmail", ctx, "ana@example.com").Return(known, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	user, err := commands.NewLoginUserCommandHandler(factory, "boss@example.com").Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Same(t, known, user)
	repo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestLoginUserCommandHandler_Handle_FirstLogin(t *testing.T) {
	tests := []struct {
		name  string
		email string
		role  access.Role
	}{
		{"administrator becomes super", "Boss@Example.com", access.RoleSuper},
		{"anyone else is normal", "nuevo@example.com", access.RoleNormal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := t.Context()
			cmd, _ := commands.NewLoginUserCommand(tt.email, "Nombre")

			repo := new(MockUserRepository)
			uow := new(MockUoW)
			factory := new(MockAccessUoWFactory)

			factory.On("Create").Return(uow).Once()
			uow.On("Begin", ctx).Return(nil).Once()
			uow.On("UserRepository").Return(repo).Once()
			repo.On("GetByEmail", ctx, tt.email).Return(nil, errs.NewObjectNotFoundError("user", tt.email)).Once()
			repo.On("Add", ctx, mock.MatchedBy(func(u *access.User) bool { return u.Role() == tt.role })).
				Run(func(args mock.Arguments) { args.Get(1).(*access.User).AssignID(5) }).
				Return(nil).Once()
			uow.On("Commit", ctx).Return(nil).Once()
			uow.On("Rollback", ctx).Return(nil).Once()

			user, err := commands.NewLoginUserCommandHandler(factory, "boss@example.com").Handle(ctx, cmd)

			require.NoError(t, err)
			assert.Equal(t, int64(5), user.ID())
			assert.Equal(t, tt.role, user.Role())
			repo.AssertExpectations(t)
			uow.AssertExpectations(t)
		})
	}
}

func TestNewLoginUserCommand_RequiresEmail(t *testing.T) {
	_, err := commands.NewLoginUserCommand(" ", "x")

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestUserGrantsCommandHandler_HandlePermissions(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewUpdateUserPermissionsCommand(superUser(), 10, []string{"update_status", " edit_notes ", ""})
	require.NoError(t, err)

	target := normalUser()
	repo := new(MockUserRepository)
	uow := new(MockUoW)
	factory := new(MockAccessUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(repo).Once(),
		repo.On("Get", ctx, int64(10)).Return(target, nil).Once(),
		repo.On("Update", ctx, target).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	user, err := commands.NewUserGrantsCommandHandler(factory).HandlePermissions(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, []access.Permission{access.PermUpdateStatus, access.PermEditNotes}, user.Permissions())
	repo.AssertExpectations(t)
}

func TestUserGrantsCommandHandler_HandleChannels(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewUpdateUserChannelsCommand(superUser(), 10, []string{"Autoservicio"})

	target := normalUser()
	repo := new(MockUserRepository)
	uow := new(MockUoW)
	factory := new(MockAccessUoWFactory)

	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("UserRepository").Return(repo).Once()
	repo.On("Get", ctx, int64(10)).Return(target, nil).Once()
	repo.On("Update", ctx, target).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	user, err := commands.NewUserGrantsCommandHandler(factory).HandleChannels(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, []string{"Autoservicio"}, user.Channels())
}

func TestUserGrantsCommandHandler_SuperTargetIsRejected(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewUpdateUserChannelsCommand(superUser(), 1, []string{"Autoservicio"})

	repo := new(MockUserRepository)
	uow := new(MockUoW)
	factory := new(MockAccessUoWFactory)

	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("UserRepository").Return(repo).Once()
	repo.On("Get", ctx, int64(1)).Return(superUser(), nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	_, err := commands.NewUserGrantsCommandHandler(factory).HandleChannels(ctx, cmd)

	require.ErrorIs(t, err, access.ErrSuperUserIsImmutable)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUserGrantsCommandHandler_OnlySuperMayEdit(t *testing.T) {
	cmd, _ := commands.NewUpdateUserPermissionsCommand(normalUser(access.PermManageUsers), 11, nil)
	factory := new(MockAccessUoWFactory)

	_, err := commands.NewUserGrantsCommandHandler(factory).HandlePermissions(t.Context(), cmd)

	require.ErrorIs(t, err, errs.ErrForbidden)
	factory.AssertNotCalled(t, "Create")
}

func TestSeedPermissionsCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()

	repo := new(MockPermissionRepository)
	uow := new(MockUoW)
	factory := new(MockAccessUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PermissionRepository").Return(repo).Once(),
		repo.On("Seed", ctx, access.DefaultPermissions()).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	err := commands.NewSeedPermissionsCommandHandler(factory).Handle(ctx, commands.NewSeedPermissionsCommand())

	require.NoError(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}
