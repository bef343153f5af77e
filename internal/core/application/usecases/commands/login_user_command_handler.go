package commands

import (
	"context"
	"errors"

	"tracking/internal/core/domain/model/access"
	"tracking/internal/pkg/errs"
)

// LoginUserCommandHandler finds the user by email or registers a new one.
// A first sign-in from the configured administrator address becomes super;
// everyone else starts as normal with no grants.
type LoginUserCommandHandler struct {
	uowFactory AccessUoWFactory
	superEmail string
}

func NewLoginUserCommandHandler(uowFactory AccessUoWFactory, superEmail string) LoginUserCommandHandler {
	return LoginUserCommandHandler{uowFactory: uowFactory, superEmail: superEmail}
}

func (h LoginUserCommandHandler) Handle(ctx context.Context, command LoginUserCommand) (*access.User, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.UserRepository()

	existing, err := repo.GetByEmail(ctx, command.Email())
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	user, err := access.NewUser(command.Email(), command.Name(), access.RoleForEmail(command.Email(), h.superEmail))
	if err != nil {
		return nil, err
	}

	if err = repo.Add(ctx, user); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return user, nil
}
