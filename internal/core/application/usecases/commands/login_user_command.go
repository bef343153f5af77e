package commands

import (
	"errors"
	"strings"

	"tracking/internal/pkg/errs"
	"tracking/internal/pkg/guard"
)

var ErrLoginUserCommandIsNotConstructed = errors.New(
	"LoginUserCommand must be created via NewLoginUserCommand constructor",
)

// LoginUserCommand records a successful sign-in from the identity provider.
type LoginUserCommand struct {
	email string
	name  string

	guard guard.ConstructorGuard
}

// NewLoginUserCommand takes the verified id-token claims.
func NewLoginUserCommand(email, name string) (LoginUserCommand, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return LoginUserCommand{}, errs.NewValueIsRequiredError("preferred_username")
	}

	return LoginUserCommand{
		email: email,
		name:  strings.TrimSpace(name),
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c LoginUserCommand) Validate() error {
	return c.guard.Validate(ErrLoginUserCommandIsNotConstructed)
}

func (c LoginUserCommand) Email() string { return c.email }

func (c LoginUserCommand) Name() string { return c.name }
